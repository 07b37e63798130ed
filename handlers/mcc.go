package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"finledger/mcc"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// MCCHandler serves the static merchant-category-code table.
type MCCHandler struct {
	table *mcc.Table
	log   zerolog.Logger
}

func NewMCCHandler(table *mcc.Table, log zerolog.Logger) *MCCHandler {
	return &MCCHandler{table: table, log: log}
}

// GetAll handles GET /mcc
func (h *MCCHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.table.All()
	if err != nil {
		h.log.Error().Err(err).Msg("mcc table unavailable")
		writeError(w, http.StatusInternalServerError, "MCC data not loaded.")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GetByCode handles GET /mcc/{code}
func (h *MCCHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["code"]
	code, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid MCC '%s': must be an integer", raw))
		return
	}

	entry, err := h.table.ByCode(code)
	switch {
	case errors.Is(err, mcc.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("MCC '%d' not found.", code))
	case errors.Is(err, mcc.ErrNotLoaded):
		h.log.Error().Err(err).Msg("mcc table unavailable")
		writeError(w, http.StatusInternalServerError, "MCC data not loaded.")
	case err != nil:
		h.log.Error().Err(err).Int("code", code).Msg("mcc lookup failed")
		writeError(w, http.StatusInternalServerError, "MCC lookup failed.")
	default:
		writeJSON(w, http.StatusOK, entry)
	}
}
