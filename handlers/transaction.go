package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"finledger/etl"
	"finledger/models"

	"github.com/rs/zerolog"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// TransactionLister is the read side of the transaction store needed
// by the HTTP surface.
type TransactionLister interface {
	ListPaged(ctx context.Context, skip, limit int) ([]models.Transaction, error)
	ListByCategory(ctx context.Context, categoryCode string) ([]models.Transaction, error)
}

// TransactionHandler translates HTTP requests into processor and store
// calls.
type TransactionHandler struct {
	processor *etl.Processor
	lister    TransactionLister
	log       zerolog.Logger
}

func NewTransactionHandler(processor *etl.Processor, lister TransactionLister, log zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{processor: processor, lister: lister, log: log}
}

// Register handles POST /transacoes/
func (h *TransactionHandler) Register(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	created, err := h.processor.ProcessAndLoad(r.Context(), input)
	if err != nil {
		h.writeProcessError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// RegisterWithMCC handles POST /transacoes/with-mcc
func (h *TransactionHandler) RegisterWithMCC(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	created, err := h.processor.ProcessAndLoadWithMCC(r.Context(), input)
	if err != nil {
		h.writeProcessError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /transacoes/?skip=&limit=
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, ok := queryInt(w, r, "skip", defaultSkip)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", defaultLimit)
	if !ok {
		return
	}

	transactions, err := h.lister.ListPaged(r.Context(), skip, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list transactions")
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

// ListByCategory handles GET /transacoes/mcc?mcc=
func (h *TransactionHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("mcc")
	if code == "" {
		writeError(w, http.StatusBadRequest, "mcc is required")
		return
	}

	transactions, err := h.lister.ListByCategory(r.Context(), code)
	if err != nil {
		h.log.Error().Err(err).Str("mcc", code).Msg("failed to list transactions by category")
		writeError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

func (h *TransactionHandler) decodeInput(w http.ResponseWriter, r *http.Request) (models.TransactionInput, bool) {
	var input models.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return input, false
	}
	return input, true
}

func (h *TransactionHandler) writeProcessError(w http.ResponseWriter, err error) {
	var vErr *etl.ValidationError
	var lErr *etl.CategoryLookupError

	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusUnprocessableEntity, vErr.Error())
	case errors.Is(err, etl.ErrDuplicate):
		writeError(w, http.StatusConflict, "Uma transação similar já foi registrada.")
	case errors.As(err, &lErr):
		writeError(w, http.StatusBadRequest, lErr.Error())
	default:
		h.log.Error().Err(err).Msg("failed to register transaction")
		writeError(w, http.StatusInternalServerError, "failed to register transaction")
	}
}

func queryInt(w http.ResponseWriter, r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		writeError(w, http.StatusBadRequest, name+" must be a non-negative integer")
		return 0, false
	}
	return value, true
}
