package user

// Credential rules enforced at sign-up.
const (
	MinPasswordLength = 6
	MinLoginIDLength  = 4
	MaxLoginIDLength  = 20
)

// ==================== Error Messages ====================

const (
	ErrMsgInvalidLoginIDFmt   = "invalid login id %q: %w"
	ErrMsgPasswordTooShortFmt = "password must be at least %d characters: %w"
	ErrMsgPasswordMismatch    = "password confirmation does not match: %w"
	ErrMsgInvalidUserNameFmt  = "invalid name %q: %w"

	ErrMsgCreateUserFailed = "failed to create user: %w"
	ErrMsgGetUserFailed    = "failed to get user: %w"
	ErrMsgHashFailed       = "failed to hash password: %w"
	ErrMsgIssueTokenFailed = "failed to issue token: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgUserRegistered = "User registered"
	LogMsgUserSignedIn   = "User signed in"
	LogMsgSignInRejected = "Sign-in rejected"
)
