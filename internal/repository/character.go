package repository

import (
	"context"

	"github.com/grove-games/armory/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	CreateCharacter(ctx context.Context, character *domain.Character) (int64, error)
	GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error)
	GetCharacterByName(ctx context.Context, name string) (*domain.Character, error)
	DeleteCharacter(ctx context.Context, characterID int64) error
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryView, error)
	ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentView, error)
}
