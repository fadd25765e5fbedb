package handler

import (
	"encoding/json"
	"net/http"

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/character"
	"github.com/grove-games/armory/internal/economy"
	"github.com/grove-games/armory/internal/logger"
)

type CreateCharacterRequest struct {
	Name string `json:"name" validate:"required,min=2,max=48"`
}

// HandleCreateCharacter creates a character for the authenticated user.
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		var req CreateCharacterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create character request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		created, err := svc.Create(r.Context(), userID, req.Name)
		if err != nil {
			respondServiceError(w, log, "Failed to create character", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetCharacter returns the character view. Owners see money;
// everyone else gets name and stats only.
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		view, err := svc.Get(r.Context(), characterID, auth.UserIDFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, log, "Failed to get character", err)
			return
		}

		respondJSON(w, http.StatusOK, view)
	}
}

// HandleDeleteCharacter deletes an owned character.
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		if err := svc.Delete(r.Context(), userID, characterID); err != nil {
			respondServiceError(w, log, "Failed to delete character", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCharacterDeleteSuccess})
	}
}

// HandleListInventory returns the character's inventory.
func HandleListInventory(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		views, err := svc.ListInventory(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, log, "Failed to list inventory", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// HandleWork credits the flat work payout to an owned character.
func HandleWork(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		result, err := svc.Work(r.Context(), userID, characterID)
		if err != nil {
			respondServiceError(w, log, "Failed to work", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
