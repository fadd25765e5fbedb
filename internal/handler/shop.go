package handler

import (
	"encoding/json"
	"net/http"

	"github.com/grove-games/armory/internal/auth"
	"github.com/grove-games/armory/internal/economy"
	"github.com/grove-games/armory/internal/logger"
)

type TradeLineRequest struct {
	ItemCode int `json:"item_code" validate:"required,gt=0"`
	Count    int `json:"count" validate:"required,gt=0,max=1000"`
}

type TradeRequest struct {
	Lines []TradeLineRequest `json:"lines" validate:"required,min=1,max=50,dive"`
}

func (req *TradeRequest) toLines() []economy.TradeLine {
	lines := make([]economy.TradeLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, economy.TradeLine{ItemCode: line.ItemCode, Count: line.Count})
	}
	return lines
}

// decodeTradeRequest reads and validates a multi-line trade body.
func decodeTradeRequest(w http.ResponseWriter, r *http.Request) ([]economy.TradeLine, bool) {
	log := logger.FromContext(r.Context())

	var req TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode trade request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return nil, false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn("Invalid trade request", "error", err)
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": FormatValidationError(err)})
		return nil, false
	}

	return req.toLines(), true
}

// HandlePurchase buys a batch of catalog items for an owned character.
func HandlePurchase(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		lines, ok := decodeTradeRequest(w, r)
		if !ok {
			return
		}

		result, err := svc.Purchase(r.Context(), userID, characterID, lines)
		if err != nil {
			respondServiceError(w, log, "Failed to purchase", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleSell sells a batch of inventory items back to the shop.
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := auth.UserIDFromContext(r.Context())

		characterID, ok := characterIDParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCharacterID)
			return
		}

		lines, ok := decodeTradeRequest(w, r)
		if !ok {
			return
		}

		result, err := svc.Sell(r.Context(), userID, characterID, lines)
		if err != nil {
			respondServiceError(w, log, "Failed to sell", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
