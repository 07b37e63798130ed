package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"finledger/handlers"
	"finledger/logger"
	"finledger/mcc"
	"finledger/middleware"

	"github.com/gorilla/mux"
)

func main() {
	dataFile := flag.String("data", envOrDefault("MCC_FILE", "mcc.json"), "path to the MCC dataset")
	flag.Parse()

	log := logger.New("mcc-api")

	// A missing or malformed dataset is unrecoverable: abort startup
	// rather than serve 500s forever.
	table, err := mcc.Load(*dataFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", *dataFile).Msg("failed to load MCC data")
	}

	entries, _ := table.All()
	log.Info().Int("entries", len(entries)).Str("path", *dataFile).Msg("loaded MCC data")

	handler := handlers.NewMCCHandler(table, log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.EnableCORS)

	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")
	handler.RegisterRoutes(r)

	port := envOrDefault("PORT", "8080")
	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", port).Msg("starting MCC server")
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
