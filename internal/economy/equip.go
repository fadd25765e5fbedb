package economy

import (
	"context"
	"fmt"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/metrics"
	"github.com/grove-games/armory/internal/repository"
)

// Equip moves one unit of an owned item from the inventory onto the
// character, recording the item's slot and adding its stat delta to the
// character's totals. Equipping the same item twice is a conflict; there is
// no slot exclusivity and no unequip, so several items may occupy one slot.
func (s *service) Equip(ctx context.Context, userID string, characterID int64, itemCode int) (*EquipResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgEquipCalled, "characterID", characterID, "itemCode", itemCode)

	if itemCode <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidItemCodeFmt, itemCode, domain.ErrInvalidInput)
	}

	unlock := s.lockCharacter(characterID)
	defer unlock()

	character, err := s.getOwnedCharacter(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByCode(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, itemCode, domain.ErrItemNotFound)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	equipped, err := tx.GetEquipmentEntry(ctx, characterID, itemCode)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEquipmentFailed, err)
	}
	if equipped != nil {
		return nil, fmt.Errorf(ErrMsgAlreadyEquippedFmt, itemCode, domain.ErrAlreadyEquipped)
	}

	entry, err := tx.GetInventoryEntry(ctx, characterID, itemCode)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}
	if entry == nil {
		return nil, fmt.Errorf(ErrMsgNotInInventoryFmt, itemCode, domain.ErrNotInInventory)
	}

	// Consume one unit from the stack
	if err := consumeEntry(ctx, tx, entry, 1); err != nil {
		return nil, err
	}

	if err := tx.CreateEquipmentEntry(ctx, characterID, itemCode, item.Slot); err != nil {
		return nil, fmt.Errorf(ErrMsgWriteEquipmentFailed, err)
	}

	// Stat aggregate grows by the item's delta; repeated equips accumulate.
	newStat := character.Stat.Add(item.Stat)
	if err := tx.UpdateCharacterStat(ctx, characterID, newStat); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStatFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ItemsEquipped.WithLabelValues(item.Name).Inc()

	log.Info(LogMsgEquipCompleted, "characterID", characterID, "itemCode", itemCode, "slot", item.Slot)
	return &EquipResult{Stat: newStat}, nil
}
