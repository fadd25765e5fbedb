package domain

// Slot is the equipment category an item occupies when equipped.
type Slot string

const (
	SlotArmor  Slot = "ARMOR"
	SlotWeapon Slot = "WEAPON"
	SlotRing   Slot = "RING"
	SlotAmulet Slot = "AMULET"
)

// ValidSlots lists every recognized equipment slot.
var ValidSlots = map[Slot]bool{
	SlotArmor:  true,
	SlotWeapon: true,
	SlotRing:   true,
	SlotAmulet: true,
}

// IsValid reports whether the slot is one of the recognized categories.
func (s Slot) IsValid() bool {
	return ValidSlots[s]
}

// Stat holds the health/power pair used both as an item's stat delta
// and as a character's aggregate totals.
type Stat struct {
	Health int `json:"health"`
	Power  int `json:"power"`
}

// Add returns the component-wise sum of two stats.
func (s Stat) Add(other Stat) Stat {
	return Stat{
		Health: s.Health + other.Health,
		Power:  s.Power + other.Power,
	}
}

// ItemSummary is the abbreviated catalog row returned by list endpoints.
// Stats are deliberately omitted; clients fetch the full row by code.
type ItemSummary struct {
	Code  int    `json:"item_code"`
	Name  string `json:"item_name"`
	Price int    `json:"price"`
}

// Item is a catalog entry. Catalog rows are immutable once referenced by
// inventory or equipment records; the engine only ever reads them.
type Item struct {
	Code  int    `json:"item_code"`
	Name  string `json:"item_name"`
	Slot  Slot   `json:"slot"`
	Stat  Stat   `json:"stat"`
	Price int    `json:"price"`
}
