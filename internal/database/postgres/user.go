package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grove-games/armory/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and returns the generated UUID.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (login_id, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`, user.LoginID, user.PasswordHash, user.Name).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "users_login_id_key") {
			return "", fmt.Errorf("login id %q: %w", user.LoginID, domain.ErrDuplicateLoginID)
		}
		if isUniqueViolation(err, "users_name_key") {
			return "", fmt.Errorf("name %q: %w", user.Name, domain.ErrDuplicateName)
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// GetUserByID retrieves a user by UUID. Returns (nil, nil) when absent.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, `
		SELECT user_id, login_id, password_hash, name, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`, uid))
}

// GetUserByLoginID retrieves a user by login handle. Returns (nil, nil) when absent.
func (r *UserRepository) GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT user_id, login_id, password_hash, name, created_at, updated_at
		FROM users
		WHERE login_id = $1
	`, loginID))
}

// GetUserByName retrieves a user by display name. Returns (nil, nil) when absent.
func (r *UserRepository) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `
		SELECT user_id, login_id, password_hash, name, created_at, updated_at
		FROM users
		WHERE name = $1
	`, name))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.LoginID, &user.PasswordHash, &user.Name, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
