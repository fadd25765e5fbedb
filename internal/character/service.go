package character

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/repository"
)

// Service defines the interface for character lifecycle and read views
type Service interface {
	Create(ctx context.Context, userID, name string) (*domain.Character, error)
	Get(ctx context.Context, characterID int64, requesterUserID string) (*domain.CharacterView, error)
	Delete(ctx context.Context, userID string, characterID int64) error
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryView, error)
	ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentView, error)
}

type service struct {
	repo repository.Character
}

// NewService creates a new character service
func NewService(repo repository.Character) Service {
	return &service{repo: repo}
}

// Create validates the name, seeds default stats and money, and persists the
// character. Names are NFC-normalized before the length check and the
// uniqueness constraint so visually identical names cannot coexist.
func (s *service) Create(ctx context.Context, userID, name string) (*domain.Character, error) {
	log := logger.FromContext(ctx)

	normalized, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	character := &domain.Character{
		UserID: userID,
		Name:   normalized,
		Stat: domain.Stat{
			Health: domain.DefaultCharacterHealth,
			Power:  domain.DefaultCharacterPower,
		},
		Money: domain.DefaultCharacterMoney,
	}

	id, err := s.repo.CreateCharacter(ctx, character)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateCharacterFailed, err)
	}
	character.ID = id

	log.Info(LogMsgCharacterCreated, "characterID", id, "name", normalized)
	return character, nil
}

// Get returns the character's public view. The money field is populated only
// when the requester owns the character; anonymous requesters pass an empty
// requesterUserID and never see it.
func (s *service) Get(ctx context.Context, characterID int64, requesterUserID string) (*domain.CharacterView, error) {
	character, err := s.getCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}

	view := &domain.CharacterView{
		ID:   character.ID,
		Name: character.Name,
		Stat: character.Stat,
	}
	if requesterUserID != "" && character.OwnedBy(requesterUserID) {
		money := character.Money
		view.Money = &money
	}
	return view, nil
}

// Delete removes an owned character. Inventory and equipment rows cascade at
// the database level.
func (s *service) Delete(ctx context.Context, userID string, characterID int64) error {
	log := logger.FromContext(ctx)

	character, err := s.getCharacter(ctx, characterID)
	if err != nil {
		return err
	}
	if !character.OwnedBy(userID) {
		return fmt.Errorf(ErrMsgNotOwnedFmt, characterID, domain.ErrNotOwned)
	}

	if err := s.repo.DeleteCharacter(ctx, characterID); err != nil {
		return fmt.Errorf(ErrMsgDeleteCharacterFailed, err)
	}

	log.Info(LogMsgCharacterDeleted, "characterID", characterID)
	return nil
}

// ListInventory returns the character's inventory joined against the catalog.
// No ordering is guaranteed.
func (s *service) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryView, error) {
	if _, err := s.getCharacter(ctx, characterID); err != nil {
		return nil, err
	}

	views, err := s.repo.ListInventory(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	return views, nil
}

// ListEquipment returns the character's equipped items.
func (s *service) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentView, error) {
	if _, err := s.getCharacter(ctx, characterID); err != nil {
		return nil, err
	}

	views, err := s.repo.ListEquipment(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListEquipmentFailed, err)
	}
	return views, nil
}

func (s *service) getCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if character == nil {
		return nil, fmt.Errorf(ErrMsgCharacterNotFoundFmt, characterID, domain.ErrCharacterNotFound)
	}
	return character, nil
}

// normalizeName trims, NFC-normalizes, and length-checks a character name.
func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf(ErrMsgInvalidNameFmt, name, domain.ErrInvalidInput)
	}

	normalized := norm.NFC.String(trimmed)
	length := utf8.RuneCountInString(normalized)
	if length < MinNameLength || length > MaxNameLength {
		return "", fmt.Errorf(ErrMsgNameLengthFmt, MinNameLength, MaxNameLength, length, domain.ErrInvalidInput)
	}
	return normalized, nil
}
