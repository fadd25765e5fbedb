package domain

// InventoryEntry is one stack of an unequipped item owned by a character.
// Quantity is always positive: an entry that would reach zero is deleted
// instead of being stored.
type InventoryEntry struct {
	ID          int64 `json:"inventory_id"`
	CharacterID int64 `json:"character_id"`
	ItemCode    int   `json:"item_code"`
	Quantity    int   `json:"quantity"`
}

// InventoryView is the read model for inventory listings, joined with
// catalog data. Ordering is not guaranteed.
type InventoryView struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
	Slot     Slot   `json:"slot"`
	Quantity int    `json:"quantity"`
}
