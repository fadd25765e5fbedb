package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/grove-games/armory/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors. Stable strings clients can
// match on; internal error details never leak through these.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgInvalidCredentialsError = "Invalid login id or password"
	ErrMsgInvalidTokenError       = "Authentication required"
	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgCharacterNotFoundError  = "Character not found"
	ErrMsgNotOwnedError           = "You do not own that character"
	ErrMsgDuplicateNameError      = "That name is already taken"
	ErrMsgDuplicateLoginIDError   = "That login id is already taken"
	ErrMsgDuplicateItemCodeError  = "That item code already exists"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgNotInInventoryError     = "You don't have that item"
	ErrMsgInsufficientStockError  = "Not enough items"
	ErrMsgAlreadyEquippedError    = "That item is already equipped"
	ErrMsgNotEnoughMoneyError     = "Not enough money"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Conflicts map to 409, ownership to 403, lookups to 404, and
// everything business-rule-shaped to 400.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, ErrMsgInvalidTokenError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNotOwned):
		return http.StatusForbidden, ErrMsgNotOwnedError
	case errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict, ErrMsgDuplicateNameError
	case errors.Is(err, domain.ErrDuplicateLoginID):
		return http.StatusConflict, ErrMsgDuplicateLoginIDError
	case errors.Is(err, domain.ErrDuplicateItemCode):
		return http.StatusConflict, ErrMsgDuplicateItemCodeError
	case errors.Is(err, domain.ErrAlreadyEquipped):
		return http.StatusConflict, ErrMsgAlreadyEquippedError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusBadRequest, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, ErrMsgInsufficientStockError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs and maps a service error in one step.
func respondServiceError(w http.ResponseWriter, log *slog.Logger, operation string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(operation, "error", err)
	} else {
		log.Warn(operation, "error", err)
	}
	respondError(w, status, message)
}
