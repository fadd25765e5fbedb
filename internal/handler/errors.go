package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidCharacterID = "Invalid character ID"
	ErrMsgInvalidItemCode    = "Invalid item code"
	ErrMsgValidationFailed   = "Invalid request"
)

// Success messages for API responses
const (
	MsgSignUpSuccess          = "Account created successfully"
	MsgCharacterDeleteSuccess = "Character deleted successfully"
)
