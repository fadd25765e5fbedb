package repository

import (
	"context"

	"github.com/grove-games/armory/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) (string, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByLoginID(ctx context.Context, loginID string) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
}
