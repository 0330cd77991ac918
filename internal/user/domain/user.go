package domain

import (
	"time"

	"github.com/tair/expense-tracker/pkg/apperrors"
)

// User is the aggregate root for accounts. It owns its value-object fields
// exclusively and carries no reference back to storage; repositories
// reconstruct it from persisted state via UserFromPersistence.
type User struct {
	id           UserID
	name         UserName
	email        Email
	passwordHash PasswordHash
	role         Role
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user at registration: fresh random id, ACTIVE status.
// Callers default the role to STAFF when the request does not name one.
func NewUser(name UserName, email Email, passwordHash PasswordHash, role Role) (*User, error) {
	now := time.Now()
	u := &User{
		id:           NewUserID(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		createdAt:    now,
		updatedAt:    now,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// UserFromPersistence reconstructs a user from stored state without applying
// any registration defaults.
func UserFromPersistence(
	id UserID,
	name UserName,
	email Email,
	passwordHash PasswordHash,
	role Role,
	status Status,
	createdAt, updatedAt time.Time,
) (*User, error) {
	u := &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) validate() error {
	switch {
	case u.id.IsZero():
		return apperrors.Validation("user id is required")
	case u.name.IsZero():
		return apperrors.Validation("user name is required")
	case u.email.IsZero():
		return apperrors.Validation("user email is required")
	case u.passwordHash.IsZero():
		return apperrors.Validation("user password is required")
	case !u.role.IsValid():
		return apperrors.Validation("user role is required")
	case !u.status.IsValid():
		return apperrors.Validation("user status is required")
	}
	return nil
}

// Getters

func (u *User) ID() UserID                 { return u.id }
func (u *User) Name() UserName             { return u.name }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() PasswordHash { return u.passwordHash }
func (u *User) Role() Role                 { return u.role }
func (u *User) Status() Status             { return u.status }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }

// Activate moves the account to ACTIVE. Legal only from PENDING or
// INACTIVE; a SUSPENDED account cannot be reactivated this way.
func (u *User) Activate() error {
	if !u.status.CanBeActivated() {
		return apperrors.Validation("cannot activate user with status: %s", u.status)
	}
	u.status = StatusActive
	u.touch()
	return nil
}

// Deactivate moves the account to INACTIVE
func (u *User) Deactivate() error {
	if u.status == StatusInactive {
		return apperrors.Validation("user is already inactive")
	}
	u.status = StatusInactive
	u.touch()
	return nil
}

// Suspend moves the account to SUSPENDED. Legal only from ACTIVE.
func (u *User) Suspend() error {
	if !u.status.CanBeSuspended() {
		return apperrors.Validation("cannot suspend user with status: %s", u.status)
	}
	u.status = StatusSuspended
	u.touch()
	return nil
}

// ChangePassword replaces the stored hash. The account must be in a state
// that permits login, and the new hash must differ from the current one.
func (u *User) ChangePassword(newHash PasswordHash) error {
	if !u.status.CanLogin() {
		return apperrors.Validation("cannot change password for inactive user")
	}
	if u.passwordHash.Equals(newHash) {
		return apperrors.Validation("new password must be different from current password")
	}
	u.passwordHash = newHash
	u.touch()
	return nil
}

// UpdateProfile replaces name and email. Always allowed.
func (u *User) UpdateProfile(name UserName, email Email) {
	u.name = name
	u.email = email
	u.touch()
}

// UpdateRole replaces the role. The new role must differ.
func (u *User) UpdateRole(newRole Role) error {
	if u.role == newRole {
		return apperrors.Validation("new role must be different from current role")
	}
	u.role = newRole
	u.touch()
	return nil
}

// CanLogin reports whether the account may authenticate
func (u *User) CanLogin() bool {
	return u.status.CanLogin()
}

// IsActive reports whether the account is ACTIVE
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// IsAdmin reports whether the user holds the ADMIN role
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// HasRole reports whether the user holds the given role
func (u *User) HasRole(role Role) bool {
	return u.role == role
}

// CanManageUsers derives the capability from the role
func (u *User) CanManageUsers() bool {
	return u.role.CanManageUsers()
}

// CanApproveExpenses derives the capability from the role
func (u *User) CanApproveExpenses() bool {
	return u.role.CanApproveExpenses()
}

// CanViewAllExpenses derives the capability from the role
func (u *User) CanViewAllExpenses() bool {
	return u.role.CanViewAllExpenses()
}

// CanAccessFinancialReports derives the capability from the role
func (u *User) CanAccessFinancialReports() bool {
	return u.role.CanAccessFinancialReports()
}

// HasHigherAuthorityThan compares role authority between users
func (u *User) HasHigherAuthorityThan(other *User) bool {
	return u.role.HasHigherAuthorityThan(other.role)
}

// Equals compares users by identity
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return u.id.Equals(other.id)
}

func (u *User) touch() {
	u.updatedAt = time.Now()
}
