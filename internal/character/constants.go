package character

// Character name length bounds, counted in runes after NFC normalization.
const (
	MinNameLength = 2
	MaxNameLength = 12
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidNameFmt      = "invalid character name %q: %w"
	ErrMsgNameLengthFmt       = "character name must be %d-%d characters, got %d: %w"
	ErrMsgCharacterNotFoundFmt = "character %d: %w"
	ErrMsgNotOwnedFmt          = "character %d: %w"

	ErrMsgCreateCharacterFailed = "failed to create character: %w"
	ErrMsgGetCharacterFailed    = "failed to get character: %w"
	ErrMsgDeleteCharacterFailed = "failed to delete character: %w"
	ErrMsgListInventoryFailed   = "failed to list inventory: %w"
	ErrMsgListEquipmentFailed   = "failed to list equipment: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterDeleted = "Character deleted"
)
