package handler

import (
	"encoding/json"
	"net/http"

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/character"
	"github.com/grove-games/armory/internal/economy"
	"github.com/grove-games/armory/internal/logger"
)

type EquipRequest struct {
	ItemCode int `json:"item_code" validate:"required,gt=0"`
}

// HandleEquip equips one unit of an inventory item onto the character.
func HandleEquip(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid equip request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		result, err := svc.Equip(r.Context(), userID, characterID, req.ItemCode)
		if err != nil {
			respondServiceError(w, log, "Failed to equip", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListEquipment returns the character's equipped items.
func HandleListEquipment(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		views, err := svc.ListEquipment(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, log, "Failed to list equipment", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}
