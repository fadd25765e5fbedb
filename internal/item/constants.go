package item

import "time"

// Catalog cache sizing. The catalog is small and effectively immutable, so a
// modest LRU with a short TTL keeps hot lookups off the database without a
// separate invalidation channel.
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidItemCodeFmt = "invalid item code: %d: %w"
	ErrMsgInvalidNameFmt     = "invalid item name %q: %w"
	ErrMsgInvalidSlotFmt     = "invalid slot %q: %w"
	ErrMsgInvalidPriceFmt    = "invalid price: %d: %w"
	ErrMsgItemNotFoundFmt    = "item %d: %w"
	ErrMsgItemNameNotFoundFmt = "item %q: %w"

	ErrMsgCreateItemFailed = "failed to create item: %w"
	ErrMsgGetItemFailed    = "failed to get item: %w"
	ErrMsgListItemsFailed  = "failed to list items: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgItemCreated   = "Item created"
	LogMsgCatalogListed = "Catalog listed"
)
