package handler

import (
	"encoding/json"
	"net/http"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/item"
	"github.com/grove-games/armory/internal/logger"
)

type CreateItemRequest struct {
	ItemCode int    `json:"item_code" validate:"required,gt=0"`
	ItemName string `json:"item_name" validate:"required,max=100"`
	Slot     string `json:"slot" validate:"required,slot"`
	Health   int    `json:"health"`
	Power    int    `json:"power"`
	Price    int    `json:"price" validate:"gte=0"`
}

// HandleCreateItem adds a row to the item catalog.
func HandleCreateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create item request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
			return
		}

		created, err := svc.CreateItem(r.Context(), &domain.Item{
			Code: req.ItemCode,
			Name: req.ItemName,
			Slot: domain.Slot(req.Slot),
			Stat: domain.Stat{Health: req.Health, Power: req.Power},
			Price: req.Price,
		})
		if err != nil {
			respondServiceError(w, log, "Failed to create item", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListItems returns the catalog as code/name/price summaries.
func HandleListItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		summaries, err := svc.ListItems(r.Context())
		if err != nil {
			respondServiceError(w, log, "Failed to list items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: summaries})
	}
}

// HandleGetItem returns the full catalog row for an item code.
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		code, ok := itemCodeParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemCode)
			return
		}

		found, err := svc.GetItemByCode(r.Context(), code)
		if err != nil {
			respondServiceError(w, log, "Failed to get item", err)
			return
		}

		respondJSON(w, http.StatusOK, found)
	}
}
