package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grove-games/armory/internal/domain"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CreateCharacter inserts a new character and returns its generated ID.
func (r *CharacterRepository) CreateCharacter(ctx context.Context, character *domain.Character) (int64, error) {
	uid, err := parseUserUUID(character.UserID)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO characters (user_id, name, health, power, money)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING character_id
	`, uid, character.Name, character.Stat.Health, character.Stat.Power, character.Money).Scan(&id)
	if err != nil {
		if isUniqueViolation(err, "characters_name_key") {
			return 0, fmt.Errorf("character name %q: %w", character.Name, domain.ErrDuplicateName)
		}
		return 0, fmt.Errorf("failed to insert character: %w", err)
	}
	return id, nil
}

// GetCharacter retrieves a character by ID. Returns (nil, nil) when absent.
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	return scanCharacter(r.db.QueryRow(ctx, `
		SELECT character_id, user_id, name, health, power, money, created_at
		FROM characters
		WHERE character_id = $1
	`, characterID))
}

// GetCharacterByName retrieves a character by its unique name.
// Returns (nil, nil) when absent.
func (r *CharacterRepository) GetCharacterByName(ctx context.Context, name string) (*domain.Character, error) {
	return scanCharacter(r.db.QueryRow(ctx, `
		SELECT character_id, user_id, name, health, power, money, created_at
		FROM characters
		WHERE name = $1
	`, name))
}

// DeleteCharacter removes a character; inventory and equipment rows cascade.
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, characterID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE character_id = $1`, characterID)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// ListInventory returns the character's inventory joined with catalog data.
// No ordering guarantee.
func (r *CharacterRepository) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ci.item_code, i.item_name, i.slot, ci.quantity
		FROM character_inventory ci
		JOIN items i ON i.item_code = ci.item_code
		WHERE ci.character_id = $1
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var views []domain.InventoryView
	for rows.Next() {
		var v domain.InventoryView
		if err := rows.Scan(&v.ItemCode, &v.ItemName, &v.Slot, &v.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// ListEquipment returns the character's equipped items joined with catalog data.
func (r *CharacterRepository) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ce.item_code, i.item_name
		FROM character_equipment ce
		JOIN items i ON i.item_code = ce.item_code
		WHERE ce.character_id = $1
	`, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equipment: %w", err)
	}
	defer rows.Close()

	var views []domain.EquipmentView
	for rows.Next() {
		var v domain.EquipmentView
		if err := rows.Scan(&v.ItemCode, &v.ItemName); err != nil {
			return nil, fmt.Errorf("failed to scan equipment row: %w", err)
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var ch domain.Character
	err := row.Scan(&ch.ID, &ch.UserID, &ch.Name, &ch.Stat.Health, &ch.Stat.Power, &ch.Money, &ch.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan character: %w", err)
	}
	return &ch, nil
}
