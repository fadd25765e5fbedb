package economy

import (
	"context"
	"fmt"
	"strconv"

	"github.com/grove-games/armory/internal/concurrency"
	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/metrics"
	"github.com/grove-games/armory/internal/repository"
)

// TradeLine is one line item of a purchase or sell request.
type TradeLine struct {
	ItemCode int `json:"item_code"`
	Count    int `json:"count"`
}

// PurchaseResult contains the result of a purchase operation
type PurchaseResult struct {
	TotalCost int `json:"total_cost"`
	Money     int `json:"money"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	Payout int `json:"payout"`
	Money  int `json:"money"`
}

// EquipResult contains the character's stat totals after equipping
type EquipResult struct {
	Stat domain.Stat `json:"stat"`
}

// WorkResult contains the balance after a work payout
type WorkResult struct {
	Earned int `json:"earned"`
	Money  int `json:"money"`
}

// Service defines the interface for economy operations.
//
// Every mutating operation checks ownership first, then holds the
// character's lock for its whole read-validate-write sequence, and applies
// all writes through a single repository transaction. Validation completes
// before the first write, so a rejected request never mutates anything.
type Service interface {
	Purchase(ctx context.Context, userID string, characterID int64, lines []TradeLine) (*PurchaseResult, error)
	Sell(ctx context.Context, userID string, characterID int64, lines []TradeLine) (*SellResult, error)
	Equip(ctx context.Context, userID string, characterID int64, itemCode int) (*EquipResult, error)
	Work(ctx context.Context, userID string, characterID int64) (*WorkResult, error)
}

type service struct {
	repo  repository.Economy
	locks *concurrency.LockManager
}

// NewService creates a new economy service
func NewService(repo repository.Economy, locks *concurrency.LockManager) Service {
	return &service{
		repo:  repo,
		locks: locks,
	}
}

// lockCharacter serializes mutating operations per character. Operations on
// different characters proceed independently.
func (s *service) lockCharacter(characterID int64) func() {
	lock := s.locks.GetLock(strconv.FormatInt(characterID, 10))
	lock.Lock()
	return lock.Unlock
}

// getOwnedCharacter loads the character and verifies the requester owns it.
// A missing character and a foreign character are distinct failures: the
// former is not-found, the latter an authorization error.
func (s *service) getOwnedCharacter(ctx context.Context, characterID int64, userID string) (*domain.Character, error) {
	character, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCharacterFailed, err)
	}
	if character == nil {
		return nil, fmt.Errorf("character %d: %w", characterID, domain.ErrCharacterNotFound)
	}
	if !character.OwnedBy(userID) {
		return nil, fmt.Errorf("character %d: %w", characterID, domain.ErrNotOwned)
	}
	return character, nil
}

func (s *service) Work(ctx context.Context, userID string, characterID int64) (*WorkResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkCalled, "characterID", characterID)

	unlock := s.lockCharacter(characterID)
	defer unlock()

	character, err := s.getOwnedCharacter(ctx, characterID, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance := character.Money + WorkPayout
	if err := tx.UpdateCharacterMoney(ctx, characterID, newBalance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateMoneyFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.WorkPerformed.Inc()
	metrics.MoneyEarned.Add(float64(WorkPayout))

	log.Info(LogMsgWorkCompleted, "characterID", characterID, "earned", WorkPayout, "money", newBalance)
	return &WorkResult{Earned: WorkPayout, Money: newBalance}, nil
}
