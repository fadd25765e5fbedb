package domain

import "time"

// Default seed values for a freshly created character.
const (
	DefaultCharacterHealth = 500
	DefaultCharacterPower  = 100
	DefaultCharacterMoney  = 10000
)

// Character is a playable character owned by exactly one user.
// Stat is a derived aggregate: seeded at creation and incremented
// additively whenever equipment changes.
type Character struct {
	ID        int64     `json:"character_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Stat      Stat      `json:"stat"`
	Money     int       `json:"money"`
	CreatedAt time.Time `json:"created_at"`
}

// OwnedBy reports whether the character belongs to the given user.
func (c *Character) OwnedBy(userID string) bool {
	return c.UserID == userID
}

// CharacterView is the read model returned to clients. Money is only
// populated when the requester owns the character.
type CharacterView struct {
	ID    int64  `json:"character_id"`
	Name  string `json:"name"`
	Stat  Stat   `json:"stat"`
	Money *int   `json:"money,omitempty"`
}
