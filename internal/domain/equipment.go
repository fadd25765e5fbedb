package domain

// EquipmentEntry is a currently-worn item record. A character never holds
// two entries for the same item code; the slot is copied from the catalog
// at equip time. Nothing prevents two entries from sharing a slot - the
// game has no unequip or displacement step yet.
type EquipmentEntry struct {
	ID          int64 `json:"equipment_id"`
	CharacterID int64 `json:"character_id"`
	ItemCode    int   `json:"item_code"`
	Slot        Slot  `json:"slot"`
}

// EquipmentView is the read model for equipment listings.
type EquipmentView struct {
	ItemCode int    `json:"item_code"`
	ItemName string `json:"item_name"`
}
