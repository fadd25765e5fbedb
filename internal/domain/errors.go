package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgDuplicateLoginID   = "login id already taken"

	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgNotOwned          = "character not owned by requester"
	ErrMsgDuplicateName     = "name already taken"

	// Item errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgDuplicateItemCode = "item code already exists"

	// Inventory errors
	ErrMsgNotInInventory    = "item not in inventory"
	ErrMsgInsufficientStock = "insufficient stock"

	// Equipment errors
	ErrMsgAlreadyEquipped = "item already equipped"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Auth errors
	ErrMsgInvalidToken = "invalid or expired token"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors.
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrDuplicateLoginID   = errors.New(ErrMsgDuplicateLoginID)

	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrNotOwned          = errors.New(ErrMsgNotOwned)
	ErrDuplicateName     = errors.New(ErrMsgDuplicateName)

	// Item errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItemCode = errors.New(ErrMsgDuplicateItemCode)

	// Inventory errors
	ErrNotInInventory    = errors.New(ErrMsgNotInInventory)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)

	// Equipment errors
	ErrAlreadyEquipped = errors.New(ErrMsgAlreadyEquipped)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Auth errors
	ErrInvalidToken = errors.New(ErrMsgInvalidToken)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
