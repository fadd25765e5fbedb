package economy

// SellPriceRatio is the fraction of catalog price paid out when selling an
// item back to the shop. The remaining 40% is the fixed sell tax.
const SellPriceRatio = 0.6

// WorkPayout is the flat amount of money credited per work action.
const WorkPayout = 100

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidItemCodeFmt    = "invalid item code: %d: %w"
	ErrMsgInvalidCountFmt       = "invalid count: %d: %w"
	ErrMsgCountExceedsMaxFmt    = "count %d exceeds maximum allowed (%d): %w"
	ErrMsgEmptyLinesFmt         = "no line items: %w"
	ErrMsgTooManyLinesFmt       = "%d line items exceeds maximum allowed (%d): %w"
	ErrMsgItemNotFoundFmt       = "item %d: %w"
	ErrMsgNotInInventoryFmt     = "item %d: %w"
	ErrMsgAlreadyEquippedFmt    = "item %d: %w"
	ErrMsgInsufficientStockFmt  = "item %d: have %d, want %d: %w"
	ErrMsgInsufficientFundsFmt  = "total %d exceeds balance %d: %w"
)

// Database operation error messages
const (
	ErrMsgGetCharacterFailed      = "failed to get character: %w"
	ErrMsgGetItemFailed           = "failed to get item: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory entry: %w"
	ErrMsgWriteInventoryFailed    = "failed to write inventory entry: %w"
	ErrMsgGetEquipmentFailed      = "failed to get equipment entry: %w"
	ErrMsgWriteEquipmentFailed    = "failed to write equipment entry: %w"
	ErrMsgUpdateMoneyFailed       = "failed to update money: %w"
	ErrMsgUpdateStatFailed        = "failed to update stat: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPurchaseCalled    = "Purchase called"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgSellCalled        = "Sell called"
	LogMsgSellCompleted     = "Sell completed"
	LogMsgEquipCalled       = "Equip called"
	LogMsgEquipCompleted    = "Equip completed"
	LogMsgWorkCalled        = "Work called"
	LogMsgWorkCompleted     = "Work completed"
)
