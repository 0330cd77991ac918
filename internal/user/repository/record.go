package repository

import (
	"time"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

// userRecord is the persistence shape of a user. The unique index on email
// is the real uniqueness guarantee; application-level checks only exist for
// friendlier errors.
type userRecord struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	Status       string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (userRecord) TableName() string {
	return "users"
}

func recordFromUser(user *domain.User) *userRecord {
	return &userRecord{
		ID:           user.ID().String(),
		Name:         user.Name().String(),
		Email:        user.Email().String(),
		PasswordHash: user.PasswordHash().String(),
		Role:         user.Role().String(),
		Status:       user.Status().String(),
		CreatedAt:    user.CreatedAt(),
		UpdatedAt:    user.UpdatedAt(),
	}
}

func (r *userRecord) toDomain() (*domain.User, error) {
	id, err := domain.ParseUserID(r.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored user id is invalid")
	}
	name, err := domain.UserNameFromString(r.Name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored user name is invalid")
	}
	email, err := domain.EmailFromString(r.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored user email is invalid")
	}
	hash, err := domain.PasswordHashFromString(r.PasswordHash)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored password hash is invalid")
	}
	role, err := domain.ParseRole(r.Role)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored user role is invalid")
	}
	status, err := domain.ParseStatus(r.Status)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindStorage, err, "stored user status is invalid")
	}
	return domain.UserFromPersistence(id, name, email, hash, role, status, r.CreatedAt, r.UpdatedAt)
}
