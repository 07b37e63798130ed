package handlers

import "github.com/gorilla/mux"

// RegisterRoutes sets up the transaction API routes.
func (h *TransactionHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/transacoes/", h.Register).Methods("POST")
	r.HandleFunc("/transacoes/with-mcc", h.RegisterWithMCC).Methods("POST")
	r.HandleFunc("/transacoes/mcc", h.ListByCategory).Methods("GET")
	r.HandleFunc("/transacoes/", h.List).Methods("GET")
}

// RegisterRoutes sets up the MCC lookup API routes.
func (h *MCCHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/mcc", h.GetAll).Methods("GET")
	r.HandleFunc("/mcc/{code}", h.GetByCode).Methods("GET")
}

// RegisterRoutes sets up the generic resource API routes. The wildcard
// routes must be registered after any fixed routes (such as /health)
// on the same router.
func (h *ResourceHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/{resource}", h.List).Methods("GET")
	r.HandleFunc("/{resource}", h.Create).Methods("POST")
	r.HandleFunc("/{resource}/{id}", h.Get).Methods("GET")
	r.HandleFunc("/{resource}/{id}", h.Replace).Methods("PUT")
	r.HandleFunc("/{resource}/{id}", h.Merge).Methods("PATCH")
	r.HandleFunc("/{resource}/{id}", h.Delete).Methods("DELETE")
}
