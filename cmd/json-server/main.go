package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"finledger/handlers"
	"finledger/jsonstore"
	"finledger/logger"
	"finledger/middleware"

	"github.com/gorilla/mux"
)

func main() {
	dbPath := flag.String("db", envOrDefault("DB_JSON_PATH", "db.json"), "path to the JSON database file")
	flag.Parse()

	log := logger.New("json-server")

	// The backing file must exist at boot; a file that disappears at
	// runtime later degrades to an empty database instead.
	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("JSON database file not found")
	}

	storage := jsonstore.NewFileStorage(*dbPath)
	db, err := storage.Load()
	if err != nil {
		log.Fatal().Err(err).Str("path", *dbPath).Msg("failed to load JSON database")
	}
	for name, items := range db {
		log.Info().Str("collection", name).Int("items", len(items)).
			Msgf("serving GET|POST /%s and GET|PUT|PATCH|DELETE /%s/{id}", name, name)
	}

	handler := handlers.NewResourceHandler(jsonstore.NewEngine(storage), log)

	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.EnableCORS)

	// Fixed routes before the /{resource} wildcards.
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")
	handler.RegisterRoutes(r)

	port := envOrDefault("PORT", "3000")
	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", port).Str("db", *dbPath).Msg("starting JSON server")
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
