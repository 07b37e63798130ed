package handlers

import (
	"io"
	"testing"
	"time"

	"finledger/database"
	"finledger/etl"
	"finledger/jsonstore"
	"finledger/logger"
	"finledger/services"
	"finledger/store"

	"github.com/gorilla/mux"
)

// newTransactionRouter wires a full transaction API against an
// in-memory sqlite database. mccAPIURL points at a fake MCC server;
// tests that never hit the enrichment path can pass any value.
func newTransactionRouter(t *testing.T, mccAPIURL string) *mux.Router {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logger.NewWithWriter(io.Discard)
	transactions := store.NewTransactionStore(db)
	mccClient := services.NewMCCClient(mccAPIURL, 2*time.Second)
	processor := etl.NewProcessor(transactions, mccClient, log)
	handler := NewTransactionHandler(processor, transactions, log)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

// newResourceRouter wires the generic resource API over an in-memory
// storage seeded with db.
func newResourceRouter(t *testing.T, db jsonstore.Database) *mux.Router {
	t.Helper()

	log := logger.NewWithWriter(io.Discard)
	handler := NewResourceHandler(jsonstore.NewEngine(jsonstore.NewMemoryStorage(db)), log)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}
