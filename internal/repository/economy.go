package repository

import (
	"context"

	"github.com/grove-games/armory/internal/domain"
)

// Economy defines the persistence interface the transaction engine consumes.
// Lookups return (nil, nil) when the record does not exist; the service layer
// decides which domain error that maps to.
type Economy interface {
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	GetItemByCode(ctx context.Context, code int) (*domain.Item, error)
	BeginTx(ctx context.Context) (EconomyTx, error)
}

// EconomyTx defines the writes of one economy operation. All mutations of a
// Purchase/Sell/Equip/Work call happen through a single EconomyTx so they
// commit or roll back as a unit.
type EconomyTx interface {
	Tx
	GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error)
	CreateInventoryEntry(ctx context.Context, characterID int64, itemCode, quantity int) error
	UpdateInventoryQuantity(ctx context.Context, entryID int64, quantity int) error
	DeleteInventoryEntry(ctx context.Context, entryID int64) error
	GetEquipmentEntry(ctx context.Context, characterID int64, itemCode int) (*domain.EquipmentEntry, error)
	CreateEquipmentEntry(ctx context.Context, characterID int64, itemCode int, slot domain.Slot) error
	UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error
	UpdateCharacterStat(ctx context.Context, characterID int64, stat domain.Stat) error
}
