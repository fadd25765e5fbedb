package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/economy"
)

// MockEconomyService implements economy.Service for testing
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Purchase(ctx context.Context, userID string, characterID int64, lines []economy.TradeLine) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, userID, characterID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, userID string, characterID int64, lines []economy.TradeLine) (*economy.SellResult, error) {
	args := m.Called(ctx, userID, characterID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) Equip(ctx context.Context, userID string, characterID int64, itemCode int) (*economy.EquipResult, error) {
	args := m.Called(ctx, userID, characterID, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.EquipResult), args.Error(1)
}

func (m *MockEconomyService) Work(ctx context.Context, userID string, characterID int64) (*economy.WorkResult, error) {
	args := m.Called(ctx, userID, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.WorkResult), args.Error(1)
}

// MockCharacterService implements character.Service for testing
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) Create(ctx context.Context, userID, name string) (*domain.Character, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, characterID int64, requesterUserID string) (*domain.CharacterView, error) {
	args := m.Called(ctx, characterID, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterView), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, userID string, characterID int64) error {
	args := m.Called(ctx, userID, characterID)
	return args.Error(0)
}

func (m *MockCharacterService) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryView, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryView), args.Error(1)
}

func (m *MockCharacterService) ListEquipment(ctx context.Context, characterID int64) ([]domain.EquipmentView, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentView), args.Error(1)
}

// MockItemService implements item.Service for testing
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemSummary), args.Error(1)
}

// MockUserService implements user.Service for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) SignUp(ctx context.Context, loginID, password, confirmPassword, name string) (*domain.User, error) {
	args := m.Called(ctx, loginID, password, confirmPassword, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SignIn(ctx context.Context, loginID, password string) (string, error) {
	args := m.Called(ctx, loginID, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
