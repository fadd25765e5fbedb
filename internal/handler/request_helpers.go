package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// characterIDParam extracts and parses the {characterID} URL parameter.
func characterIDParam(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "characterID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// itemCodeParam extracts and parses the {itemCode} URL parameter.
func itemCodeParam(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "itemCode")
	code, err := strconv.Atoi(raw)
	if err != nil || code <= 0 {
		return 0, false
	}
	return code, true
}
