package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grove-games/armory/internal/domain"
)

// CatalogRepository implements the item catalog repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// CreateItem inserts a new catalog entry. Duplicate codes and names map to
// their respective domain errors.
func (r *CatalogRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO items (item_code, item_name, slot, health, power, price)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.Code, item.Name, item.Slot, item.Stat.Health, item.Stat.Power, item.Price)
	if err != nil {
		if isUniqueViolation(err, "items_pkey") {
			return fmt.Errorf("item code %d: %w", item.Code, domain.ErrDuplicateItemCode)
		}
		if isUniqueViolation(err, "items_item_name_key") {
			return fmt.Errorf("item name %q: %w", item.Name, domain.ErrDuplicateName)
		}
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// GetItemByCode retrieves a catalog entry by its code.
// Returns (nil, nil) when no such item exists.
func (r *CatalogRepository) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	return scanItem(r.db.QueryRow(ctx, `
		SELECT item_code, item_name, slot, health, power, price
		FROM items
		WHERE item_code = $1
	`, code))
}

// GetItemByName retrieves a catalog entry by its unique name.
// Returns (nil, nil) when no such item exists.
func (r *CatalogRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	return scanItem(r.db.QueryRow(ctx, `
		SELECT item_code, item_name, slot, health, power, price
		FROM items
		WHERE item_name = $1
	`, name))
}

// ListItems retrieves the full catalog
func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT item_code, item_name, slot, health, power, price
		FROM items
		ORDER BY item_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.Code, &item.Name, &item.Slot, &item.Stat.Health, &item.Stat.Power, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var item domain.Item
	err := row.Scan(&item.Code, &item.Name, &item.Slot, &item.Stat.Health, &item.Stat.Power, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}
	return &item, nil
}
