package repository

import (
	"context"

	"github.com/grove-games/armory/internal/domain"
)

// Catalog defines the interface for item catalog persistence.
// The engine treats the catalog as read-only reference data; CreateItem
// exists for the admin surface that seeds it.
type Catalog interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItemByCode(ctx context.Context, code int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
}
