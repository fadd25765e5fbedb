package economy

import (
	"context"
	"fmt"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/metrics"
	"github.com/grove-games/armory/internal/repository"
)

// Purchase buys a batch of catalog items for a character. The request is a
// single logical unit: every line is validated against the catalog and the
// total priced against the balance before any inventory row is written, and
// money is debited exactly once after all lines are applied.
func (s *service) Purchase(ctx context.Context, userID string, characterID int64, lines []TradeLine) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPurchaseCalled, "characterID", characterID, "lines", len(lines))

	// 1. Validate request shape
	if err := validateLines(lines); err != nil {
		return nil, err
	}
	merged := mergeLines(lines)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	// 2. Ownership check
	character, err := s.getOwnedCharacter(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	// 3. Resolve catalog entries and price the request
	items, total, err := s.priceLines(ctx, merged)
	if err != nil {
		return nil, err
	}

	// 4. Affordability check - before any mutation
	if total > character.Money {
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, total, character.Money, domain.ErrInsufficientFunds)
	}

	// 5. Apply: upsert inventory rows, then debit money once
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	for _, line := range merged {
		entry, err := tx.GetInventoryEntry(ctx, characterID, line.ItemCode)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
		}
		if entry == nil {
			err = tx.CreateInventoryEntry(ctx, characterID, line.ItemCode, line.Count)
		} else {
			err = tx.UpdateInventoryQuantity(ctx, entry.ID, entry.Quantity+line.Count)
		}
		if err != nil {
			return nil, fmt.Errorf(ErrMsgWriteInventoryFailed, err)
		}
	}

	newBalance := character.Money - total
	if err := tx.UpdateCharacterMoney(ctx, characterID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateMoneyFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	for _, line := range merged {
		metrics.ItemsPurchased.WithLabelValues(items[line.ItemCode].Name).Add(float64(line.Count))
	}
	metrics.MoneySpent.Add(float64(total))

	log.Info(LogMsgPurchaseCompleted, "characterID", characterID, "total", total, "money", newBalance)
	return &PurchaseResult{TotalCost: total, Money: newBalance}, nil
}

// priceLines resolves each line's catalog entry and sums the request total.
// A single unknown item code rejects the whole request.
func (s *service) priceLines(ctx context.Context, lines []TradeLine) (map[int]*domain.Item, int, error) {
	items := make(map[int]*domain.Item, len(lines))
	total := 0
	for _, line := range lines {
		item, err := s.repo.GetItemByCode(ctx, line.ItemCode)
		if err != nil {
			return nil, 0, fmt.Errorf(ErrMsgGetItemFailed, err)
		}
		if item == nil {
			return nil, 0, fmt.Errorf(ErrMsgItemNotFoundFmt, line.ItemCode, domain.ErrItemNotFound)
		}
		items[line.ItemCode] = item
		total += item.Price * line.Count
	}
	return items, total, nil
}
