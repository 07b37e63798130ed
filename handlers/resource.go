package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"finledger/jsonstore"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ResourceHandler exposes the generic resource engine over REST.
type ResourceHandler struct {
	engine *jsonstore.Engine
	log    zerolog.Logger
}

func NewResourceHandler(engine *jsonstore.Engine, log zerolog.Logger) *ResourceHandler {
	return &ResourceHandler{engine: engine, log: log}
}

// List handles GET /{resource}
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	items, err := h.engine.List(resource)
	if err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /{resource}/{id}
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource := vars["resource"]

	item, err := h.engine.Get(resource, vars["id"])
	if err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /{resource}
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	resource := mux.Vars(r)["resource"]

	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	collection, err := h.engine.Create(resource, item)
	if err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusCreated, collection)
}

// Replace handles PUT /{resource}/{id}
func (h *ResourceHandler) Replace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource := vars["resource"]

	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	updated, err := h.engine.Replace(resource, vars["id"], item)
	if err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Merge handles PATCH /{resource}/{id}
func (h *ResourceHandler) Merge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource := vars["resource"]

	partial, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	merged, err := h.engine.Merge(resource, vars["id"], partial)
	if err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

// Delete handles DELETE /{resource}/{id}
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource := vars["resource"]

	if err := h.engine.Delete(resource, vars["id"]); err != nil {
		h.writeEngineError(w, resource, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%s deleted", resource)})
}

func (h *ResourceHandler) decodeItem(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var item map[string]any
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return item, true
}

func (h *ResourceHandler) writeEngineError(w http.ResponseWriter, resource string, err error) {
	switch {
	case errors.Is(err, jsonstore.ErrCollectionNotFound), errors.Is(err, jsonstore.ErrItemNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s not found", resource))
	default:
		h.log.Error().Err(err).Str("resource", resource).Msg("resource store operation failed")
		writeError(w, http.StatusInternalServerError, "storage operation failed")
	}
}
