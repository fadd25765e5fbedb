package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/repository"
)

// EconomyRepository implements the economy repository for PostgreSQL
type EconomyRepository struct {
	db *pgxpool.Pool
}

// NewEconomyRepository creates a new EconomyRepository
func NewEconomyRepository(db *pgxpool.Pool) *EconomyRepository {
	return &EconomyRepository{db: db}
}

// EconomyTx implements repository.EconomyTx
type EconomyTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *EconomyRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &EconomyTx{tx: tx}, nil
}

// GetCharacter retrieves a character by ID. Returns (nil, nil) when absent.
func (r *EconomyRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return scanCharacter(r.db.QueryRow(ctx, `
		SELECT character_id, user_id, name, health, power, money, created_at
		FROM characters
		WHERE character_id = $1
	`, characterID))
}

// GetItemByCode retrieves a catalog entry by code. Returns (nil, nil) when absent.
func (r *EconomyRepository) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	return scanItem(r.db.QueryRow(ctx, `
		SELECT item_code, item_name, slot, health, power, price
		FROM items
		WHERE item_code = $1
	`, code))
}

// Commit commits the transaction
func (t *EconomyTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *EconomyTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetInventoryEntry retrieves the stack for (character, item).
// Returns (nil, nil) when the character holds none of the item.
func (t *EconomyTx) GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error) {
	var entry domain.InventoryEntry
	err := t.tx.QueryRow(ctx, `
		SELECT inventory_id, character_id, item_code, quantity
		FROM character_inventory
		WHERE character_id = $1 AND item_code = $2
	`, characterID, itemCode).Scan(&entry.ID, &entry.CharacterID, &entry.ItemCode, &entry.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan inventory entry: %w", err)
	}
	return &entry, nil
}

// CreateInventoryEntry inserts a fresh stack for (character, item).
func (t *EconomyTx) CreateInventoryEntry(ctx context.Context, characterID int64, itemCode, quantity int) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO character_inventory (character_id, item_code, quantity)
		VALUES ($1, $2, $3)
	`, characterID, itemCode, quantity)
	if err != nil {
		return fmt.Errorf("failed to insert inventory entry: %w", err)
	}
	return nil
}

// UpdateInventoryQuantity sets the absolute quantity of an existing stack.
func (t *EconomyTx) UpdateInventoryQuantity(ctx context.Context, entryID int64, quantity int) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE character_inventory SET quantity = $2 WHERE inventory_id = $1
	`, entryID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update inventory quantity: %w", err)
	}
	return nil
}

// DeleteInventoryEntry removes an emptied stack. The schema forbids
// quantity zero, so a stack that runs out is deleted rather than updated.
func (t *EconomyTx) DeleteInventoryEntry(ctx context.Context, entryID int64) error {
	_, err := t.tx.Exec(ctx, `
		DELETE FROM character_inventory WHERE inventory_id = $1
	`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}
	return nil
}

// GetEquipmentEntry retrieves the equipment row for (character, item).
// Returns (nil, nil) when the item is not equipped.
func (t *EconomyTx) GetEquipmentEntry(ctx context.Context, characterID int64, itemCode int) (*domain.EquipmentEntry, error) {
	var entry domain.EquipmentEntry
	err := t.tx.QueryRow(ctx, `
		SELECT equipment_id, character_id, item_code, slot
		FROM character_equipment
		WHERE character_id = $1 AND item_code = $2
	`, characterID, itemCode).Scan(&entry.ID, &entry.CharacterID, &entry.ItemCode, &entry.Slot)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan equipment entry: %w", err)
	}
	return &entry, nil
}

// CreateEquipmentEntry records an equipped item with its slot copied from
// the catalog at equip time.
func (t *EconomyTx) CreateEquipmentEntry(ctx context.Context, characterID int64, itemCode int, slot domain.Slot) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO character_equipment (character_id, item_code, slot)
		VALUES ($1, $2, $3)
	`, characterID, itemCode, slot)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("item %d: %w", itemCode, domain.ErrAlreadyEquipped)
		}
		return fmt.Errorf("failed to insert equipment entry: %w", err)
	}
	return nil
}

// UpdateCharacterMoney sets the absolute money balance.
func (t *EconomyTx) UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE characters SET money = $2 WHERE character_id = $1
	`, characterID, money)
	if err != nil {
		return fmt.Errorf("failed to update character money: %w", err)
	}
	return nil
}

// UpdateCharacterStat sets the absolute stat aggregate.
func (t *EconomyTx) UpdateCharacterStat(ctx context.Context, characterID int64, stat domain.Stat) error {
	_, err := t.tx.Exec(ctx, `
		UPDATE characters SET health = $2, power = $3 WHERE character_id = $1
	`, characterID, stat.Health, stat.Power)
	if err != nil {
		return fmt.Errorf("failed to update character stat: %w", err)
	}
	return nil
}
