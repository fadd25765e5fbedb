package economy

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/repository"
)

// MockRepository implements repository.Economy for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacter(ctx context.Context, characterID int64) (*domain.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) GetItemByCode(ctx context.Context, itemCode int) (*domain.Item, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.EconomyTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.EconomyTx), args.Error(1)
}

// Ensure MockRepository implements repository.Economy
var _ repository.Economy = (*MockRepository)(nil)

// MockTx implements repository.EconomyTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetInventoryEntry(ctx context.Context, characterID int64, itemCode int) (*domain.InventoryEntry, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryEntry), args.Error(1)
}

func (m *MockTx) CreateInventoryEntry(ctx context.Context, characterID int64, itemCode, quantity int) error {
	args := m.Called(ctx, characterID, itemCode, quantity)
	return args.Error(0)
}

func (m *MockTx) UpdateInventoryQuantity(ctx context.Context, entryID int64, quantity int) error {
	args := m.Called(ctx, entryID, quantity)
	return args.Error(0)
}

func (m *MockTx) DeleteInventoryEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockTx) GetEquipmentEntry(ctx context.Context, characterID int64, itemCode int) (*domain.EquipmentEntry, error) {
	args := m.Called(ctx, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentEntry), args.Error(1)
}

func (m *MockTx) CreateEquipmentEntry(ctx context.Context, characterID int64, itemCode int, slot domain.Slot) error {
	args := m.Called(ctx, characterID, itemCode, slot)
	return args.Error(0)
}

func (m *MockTx) UpdateCharacterMoney(ctx context.Context, characterID int64, money int) error {
	args := m.Called(ctx, characterID, money)
	return args.Error(0)
}

func (m *MockTx) UpdateCharacterStat(ctx context.Context, characterID int64, stat domain.Stat) error {
	args := m.Called(ctx, characterID, stat)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTx implements repository.EconomyTx
var _ repository.EconomyTx = (*MockTx)(nil)
