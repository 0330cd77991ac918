package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tair/expense-tracker/internal/user/domain"
	"github.com/tair/expense-tracker/pkg/apperrors"
)

const userColumns = "id, name, email, password_hash, role, status, created_at, updated_at"

// PostgresUserQueryRepository implements the read-side UserQueryRepository
// with plain database/sql. Reads bypass the ORM; the write side owns the
// schema.
type PostgresUserQueryRepository struct {
	db *sql.DB
}

// NewPostgresUserQueryRepository creates a new read repository
func NewPostgresUserQueryRepository(db *sql.DB) *PostgresUserQueryRepository {
	return &PostgresUserQueryRepository{db: db}
}

// FindByID retrieves a user by id
func (r *PostgresUserQueryRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return r.queryOne(ctx, query, id.String())
}

// FindByEmail retrieves a user by normalized email
func (r *PostgresUserQueryRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	return r.queryOne(ctx, query, email.String())
}

// FindAll retrieves users matching the filter, newest first
func (r *PostgresUserQueryRepository) FindAll(ctx context.Context, filter domain.ListFilter) ([]*domain.User, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Role != nil {
		args = append(args, filter.Role.String())
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, domain.StatusActive.String())
		if *filter.IsActive {
			conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
		} else {
			conditions = append(conditions, fmt.Sprintf("status <> $%d", len(args)))
		}
	}
	if filter.SearchTerm != "" {
		args = append(args, "%"+filter.SearchTerm+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM users", userColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	query += limitOffset(&args, filter.Limit, filter.Offset)

	return r.queryMany(ctx, query, args...)
}

// FindByRole retrieves users holding the given role, newest first
func (r *PostgresUserQueryRepository) FindByRole(ctx context.Context, role domain.Role, limit, offset int) ([]*domain.User, error) {
	args := []interface{}{role.String()}
	query := fmt.Sprintf("SELECT %s FROM users WHERE role = $1 ORDER BY created_at DESC", userColumns)
	query += limitOffset(&args, limit, offset)
	return r.queryMany(ctx, query, args...)
}

// FindActiveUsers retrieves ACTIVE users, newest first
func (r *PostgresUserQueryRepository) FindActiveUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	args := []interface{}{domain.StatusActive.String()}
	query := fmt.Sprintf("SELECT %s FROM users WHERE status = $1 ORDER BY created_at DESC", userColumns)
	query += limitOffset(&args, limit, offset)
	return r.queryMany(ctx, query, args...)
}

// SearchUsers retrieves users whose name or email matches the term
func (r *PostgresUserQueryRepository) SearchUsers(ctx context.Context, searchTerm string, limit, offset int) ([]*domain.User, error) {
	args := []interface{}{"%" + searchTerm + "%"}
	query := fmt.Sprintf("SELECT %s FROM users WHERE name ILIKE $1 OR email ILIKE $1 ORDER BY created_at DESC", userColumns)
	query += limitOffset(&args, limit, offset)
	return r.queryMany(ctx, query, args...)
}

// Count returns the number of users matching the filter
func (r *PostgresUserQueryRepository) Count(ctx context.Context, filter domain.CountFilter) (int64, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.Role != nil {
		args = append(args, filter.Role.String())
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, domain.StatusActive.String())
		if *filter.IsActive {
			conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
		} else {
			conditions = append(conditions, fmt.Sprintf("status <> $%d", len(args)))
		}
	}

	query := "SELECT COUNT(*) FROM users"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.Storage(err, "failed to count users")
	}
	return count, nil
}

func (r *PostgresUserQueryRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	var record userRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.PasswordHash,
		&record.Role,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, apperrors.Storage(err, "failed to find user")
	}
	return record.toDomain()
}

func (r *PostgresUserQueryRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Storage(err, "failed to query users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var record userRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Email,
			&record.PasswordHash,
			&record.Role,
			&record.Status,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, apperrors.Storage(err, "failed to scan user row")
		}
		user, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err, "failed to iterate user rows")
	}
	return users, nil
}

func limitOffset(args *[]interface{}, limit, offset int) string {
	var clause string
	if limit > 0 {
		*args = append(*args, limit)
		clause += fmt.Sprintf(" LIMIT $%d", len(*args))
	}
	if offset > 0 {
		*args = append(*args, offset)
		clause += fmt.Sprintf(" OFFSET $%d", len(*args))
	}
	return clause
}
