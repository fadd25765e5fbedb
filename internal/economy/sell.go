package economy

import (
	"context"
	"fmt"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/metrics"
	"github.com/grove-games/armory/internal/repository"
)

// Sell returns a batch of inventory items to the shop for money. The payout
// is the catalog total less the fixed sell tax, floored to whole currency.
// Stock for every line is verified before the first decrement; a single
// short line rejects the whole request with nothing applied.
func (s *service) Sell(ctx context.Context, userID string, characterID int64, lines []TradeLine) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "characterID", characterID, "lines", len(lines))

	if err := validateLines(lines); err != nil {
		return nil, err
	}
	merged := mergeLines(lines)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	character, err := s.getOwnedCharacter(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	items, total, err := s.priceLines(ctx, merged)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Validate stock for every line before the first write.
	entries := make(map[int]*domain.InventoryEntry, len(merged))
	for _, line := range merged {
		entry, err := tx.GetInventoryEntry(ctx, characterID, line.ItemCode)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		if entry == nil {
			return nil, fmt.Errorf(ErrMsgNotInInventoryFmt, line.ItemCode, domain.ErrNotInInventory)
		}
		if entry.Quantity < line.Count {
			return nil, fmt.Errorf(ErrMsgInsufficientStockFmt, line.ItemCode, entry.Quantity, line.Count, domain.ErrInsufficientStock)
		}
		entries[line.ItemCode] = entry
	}

	payout := calculatePayout(total)

	// Apply: decrement or delete each stack, then credit money once.
	for _, line := range merged {
		entry := entries[line.ItemCode]
		if err := consumeEntry(ctx, tx, entry, line.Count); err != nil {
			return nil, err
		}
	}

	newBalance := character.Money + payout
	if err := tx.UpdateCharacterMoney(ctx, characterID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateMoneyFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	for _, line := range merged {
		metrics.ItemsSold.WithLabelValues(items[line.ItemCode].Name).Add(float64(line.Count))
	}
	metrics.MoneyEarned.Add(float64(payout))

	log.Info(LogMsgSellCompleted, "characterID", characterID, "total", total, "payout", payout, "money", newBalance)
	return &SellResult{Payout: payout, Money: newBalance}, nil
}

// calculatePayout applies the sell tax to a catalog total.
// Floor rounding: the shop never pays out fractional currency.
func calculatePayout(total int) int {
	return int(float64(total) * SellPriceRatio)
}

// consumeEntry removes count units from a stack, deleting the row when it
// empties. Quantity zero must never be stored.
func consumeEntry(ctx context.Context, tx repository.EconomyTx, entry *domain.InventoryEntry, count int) error {
	var err error
	if entry.Quantity == count {
		err = tx.DeleteInventoryEntry(ctx, entry.ID)
	} else {
		err = tx.UpdateInventoryQuantity(ctx, entry.ID, entry.Quantity-count)
	}
	if err != nil {
		return fmt.Errorf(ErrMsgWriteInventoryFailed, err)
	}
	return nil
}
