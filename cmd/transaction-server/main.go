package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"finledger/database"
	"finledger/etl"
	"finledger/handlers"
	"finledger/logger"
	"finledger/middleware"
	"finledger/services"
	"finledger/store"

	"github.com/gorilla/mux"
)

func main() {
	dbPath := flag.String("db", envOrDefault("DB_PATH", "./transactions.db"), "path to the sqlite database")
	mccURL := flag.String("mcc-api", envOrDefault("MCC_API_URL", "http://localhost:8080"), "base URL of the MCC lookup API")
	flag.Parse()

	log := logger.New("transaction-api")

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to open database")
	}
	defer db.Close()

	transactions := store.NewTransactionStore(db)
	mccClient := services.NewMCCClient(*mccURL, 10*time.Second)
	processor := etl.NewProcessor(transactions, mccClient, log)
	handler := handlers.NewTransactionHandler(processor, transactions, log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.EnableCORS)

	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")
	handler.RegisterRoutes(r)

	port := envOrDefault("PORT", "8000")
	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", port).Str("db", *dbPath).Str("mcc_api", *mccURL).Msg("starting transaction server")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
