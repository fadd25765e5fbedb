package domain

import "time"

// User is a registered account. LoginID is the lowercase-alphanumeric
// handle used at sign-in; ID is the stable UUID everything else references.
type User struct {
	ID           string    `json:"user_id"`
	LoginID      string    `json:"login_id"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
