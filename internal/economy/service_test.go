package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/grove-games/armory/internal/concurrency"
	"github.com/grove-games/armory/internal/domain"
)

const (
	testUserID  = "user-123"
	otherUserID = "user-456"
	testCharID  = int64(1)
)

// Test fixtures
func createTestCharacter(money int) *domain.Character {
	return &domain.Character{
		ID:     testCharID,
		UserID: testUserID,
		Name:   "arwen",
		Stat:   domain.Stat{Health: 500, Power: 100},
		Money:  money,
	}
}

func createTestItem(code int, name string, price int) *domain.Item {
	return &domain.Item{
		Code:  code,
		Name:  name,
		Slot:  domain.SlotWeapon,
		Stat:  domain.Stat{Health: 10, Power: 5},
		Price: price,
	}
}

func createInventoryEntry(entryID int64, itemCode, quantity int) *domain.InventoryEntry {
	return &domain.InventoryEntry{
		ID:          entryID,
		CharacterID: testCharID,
		ItemCode:    itemCode,
		Quantity:    quantity,
	}
}

func newTestService(repo *MockRepository) Service {
	return NewService(repo, concurrency.NewLockManager())
}

// =============================================================================
// Purchase Tests - Demonstrating 5-Case Testing Model
// =============================================================================

// CASE 1: BEST CASE - Happy path
func TestPurchase_Success(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("CreateInventoryEntry", ctx, testCharID, 1, 3).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 7000).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 3000, result.TotalCost, "Should charge catalog price times count")
	assert.Equal(t, 7000, result.Money, "Should debit the total exactly once")
	mockRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

// CASE 2: WORST CASE - Boundary conditions
func TestPurchase_ExactBalance(t *testing.T) {
	// ARRANGE - total equals the balance exactly; the purchase must succeed
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(3000)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("CreateInventoryEntry", ctx, testCharID, 1, 3).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 0).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 0, result.Money, "Balance may reach exactly zero")
	mockRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestPurchase_ExistingStack(t *testing.T) {
	// ARRANGE - the character already holds some of the item
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 2)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("UpdateInventoryQuantity", ctx, int64(42), 5).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 7000).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 7000, result.Money, "Should stack onto the existing entry")
	mockTx.AssertExpectations(t)
}

func TestPurchase_DuplicateLinesMerged(t *testing.T) {
	// ARRANGE - two lines for the same item fold into one aggregate write
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil).Once()

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(nil, nil).Once()
	mockTx.On("CreateInventoryEntry", ctx, testCharID, 1, 5).Return(nil).Once()
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 5000).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{
		{ItemCode: 1, Count: 2},
		{ItemCode: 1, Count: 3},
	})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 5000, result.TotalCost)
	mockTx.AssertExpectations(t)
}

// CASE 3: ERROR CASE - Insufficient funds rejects before any write
func TestPurchase_InsufficientFunds(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(2999)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT - rejected before a transaction is even opened
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPurchase_UnknownItem(t *testing.T) {
	// ARRANGE - one unknown code rejects the whole request
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)
	mockRepo.On("GetItemByCode", ctx, 999).Return(nil, nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{
		{ItemCode: 1, Count: 1},
		{ItemCode: 999, Count: 1},
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPurchase_NotOwned(t *testing.T) {
	// ARRANGE - character belongs to a different user
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)

	// ACT
	result, err := service.Purchase(ctx, otherUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 1}})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwned)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "GetItemByCode", mock.Anything, mock.Anything)
}

func TestPurchase_CharacterNotFound(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetCharacter", ctx, testCharID).Return(nil, nil)

	// ACT
	result, err := service.Purchase(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 1}})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	assert.Nil(t, result)
}

// CASE 4: INVALID INPUT - request shape is checked before any lookup
func TestPurchase_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		lines []TradeLine
	}{
		{"empty request", []TradeLine{}},
		{"zero count", []TradeLine{{ItemCode: 1, Count: 0}}},
		{"negative count", []TradeLine{{ItemCode: 1, Count: -5}}},
		{"zero item code", []TradeLine{{ItemCode: 0, Count: 1}}},
		{"count above maximum", []TradeLine{{ItemCode: 1, Count: domain.MaxTransactionQuantity + 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			mockRepo := &MockRepository{}
			service := newTestService(mockRepo)

			// ACT
			result, err := service.Purchase(context.Background(), testUserID, testCharID, tt.lines)

			// ASSERT
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, result)
			mockRepo.AssertNotCalled(t, "GetCharacter", mock.Anything, mock.Anything)
		})
	}
}

func TestPurchase_TooManyLines(t *testing.T) {
	// ARRANGE
	lines := make([]TradeLine, domain.MaxPurchaseLines+1)
	for i := range lines {
		lines[i] = TradeLine{ItemCode: i + 1, Count: 1}
	}
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)

	// ACT
	result, err := service.Purchase(context.Background(), testUserID, testCharID, lines)

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
}

// =============================================================================
// Sell Tests
// =============================================================================

func TestSell_Success(t *testing.T) {
	// ARRANGE - one sword at catalog price 1000 pays out 600 after tax
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7000)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 3)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("UpdateInventoryQuantity", ctx, int64(42), 2).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 7600).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 1}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 600, result.Payout, "Payout is 60% of catalog total")
	assert.Equal(t, 7600, result.Money)
	mockTx.AssertExpectations(t)
}

func TestSell_EntireStack(t *testing.T) {
	// ARRANGE - selling the whole stack removes the inventory row
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(1000)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 3)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("DeleteInventoryEntry", ctx, int64(42)).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 2800).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 1800, result.Payout)
	mockTx.AssertNotCalled(t, "UpdateInventoryQuantity", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertExpectations(t)
}

func TestSell_PayoutFloors(t *testing.T) {
	// ARRANGE - 333 * 0.6 = 199.8 pays out 199, never rounds up
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(0)
	item := createTestItem(1, "Trinket", 333)
	entry := createInventoryEntry(42, 1, 2)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("UpdateInventoryQuantity", ctx, int64(42), 1).Return(nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 199).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 1}})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 199, result.Payout)
	mockTx.AssertExpectations(t)
}

func TestSell_NotInInventory(t *testing.T) {
	// ARRANGE - the character holds none of the item
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(1000)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 1}})

	// ASSERT - nothing is written and the transaction rolls back
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotInInventory)
	assert.Nil(t, result)
	mockTx.AssertNotCalled(t, "UpdateCharacterMoney", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSell_InsufficientStock(t *testing.T) {
	// ARRANGE - asked for more than the stack holds; the request is rejected,
	// never clamped to the available quantity
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(1000)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 2)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{{ItemCode: 1, Count: 3}})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, result)
	mockTx.AssertNotCalled(t, "UpdateInventoryQuantity", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSell_DuplicateLinesCheckedAgainstAggregate(t *testing.T) {
	// ARRANGE - two lines of 2 against a stack of 3: each line alone fits,
	// but the aggregate of 4 must be rejected
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(1000)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 3)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Sell(ctx, testUserID, testCharID, []TradeLine{
		{ItemCode: 1, Count: 2},
		{ItemCode: 1, Count: 2},
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, result)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

// =============================================================================
// Equip Tests
// =============================================================================

func TestEquip_Success(t *testing.T) {
	// ARRANGE - equipping consumes one unit and adds the item's stat delta
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7600)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 2)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetEquipmentEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("UpdateInventoryQuantity", ctx, int64(42), 1).Return(nil)
	mockTx.On("CreateEquipmentEntry", ctx, testCharID, 1, domain.SlotWeapon).Return(nil)
	mockTx.On("UpdateCharacterStat", ctx, testCharID, domain.Stat{Health: 510, Power: 105}).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Equip(ctx, testUserID, testCharID, 1)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, domain.Stat{Health: 510, Power: 105}, result.Stat, "Stat delta is additive")
	mockTx.AssertExpectations(t)
}

func TestEquip_LastUnitRemovesEntry(t *testing.T) {
	// ARRANGE - equipping the last unit deletes the inventory row
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7600)
	item := createTestItem(1, "Longsword", 1000)
	entry := createInventoryEntry(42, 1, 1)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetEquipmentEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(entry, nil)
	mockTx.On("DeleteInventoryEntry", ctx, int64(42)).Return(nil)
	mockTx.On("CreateEquipmentEntry", ctx, testCharID, 1, domain.SlotWeapon).Return(nil)
	mockTx.On("UpdateCharacterStat", ctx, testCharID, domain.Stat{Health: 510, Power: 105}).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	_, err := service.Equip(ctx, testUserID, testCharID, 1)

	// ASSERT
	require.NoError(t, err)
	mockTx.AssertNotCalled(t, "UpdateInventoryQuantity", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertExpectations(t)
}

func TestEquip_AlreadyEquipped(t *testing.T) {
	// ARRANGE - the same item may not be equipped twice
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7600)
	item := createTestItem(1, "Longsword", 1000)
	equipped := &domain.EquipmentEntry{ID: 7, CharacterID: testCharID, ItemCode: 1, Slot: domain.SlotWeapon}

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetEquipmentEntry", ctx, testCharID, 1).Return(equipped, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Equip(ctx, testUserID, testCharID, 1)

	// ASSERT - the inventory is untouched
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyEquipped)
	assert.Nil(t, result)
	mockTx.AssertNotCalled(t, "GetInventoryEntry", mock.Anything, mock.Anything, mock.Anything)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEquip_NotInInventory(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7600)
	item := createTestItem(1, "Longsword", 1000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 1).Return(item, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("GetEquipmentEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("GetInventoryEntry", ctx, testCharID, 1).Return(nil, nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Equip(ctx, testUserID, testCharID, 1)

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotInInventory)
	assert.Nil(t, result)
	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestEquip_UnknownItem(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(7600)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)
	mockRepo.On("GetItemByCode", ctx, 999).Return(nil, nil)

	// ACT
	result, err := service.Equip(ctx, testUserID, testCharID, 999)

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

// =============================================================================
// Work Tests
// =============================================================================

func TestWork_Success(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)

	mockTx := &MockTx{}
	mockRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockTx.On("UpdateCharacterMoney", ctx, testCharID, 10100).Return(nil)
	mockTx.On("Commit", ctx).Return(nil)
	mockTx.On("Rollback", ctx).Return(nil)

	// ACT
	result, err := service.Work(ctx, testUserID, testCharID)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, WorkPayout, result.Earned)
	assert.Equal(t, 10100, result.Money)
	mockTx.AssertExpectations(t)
}

func TestWork_NotOwned(t *testing.T) {
	// ARRANGE
	mockRepo := &MockRepository{}
	service := newTestService(mockRepo)
	ctx := context.Background()

	character := createTestCharacter(10000)

	mockRepo.On("GetCharacter", ctx, testCharID).Return(character, nil)

	// ACT
	result, err := service.Work(ctx, otherUserID, testCharID)

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOwned)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "BeginTx", mock.Anything)
}
