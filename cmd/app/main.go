package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cueshop/station-ledger/pkg/handlers/credits"
	"github.com/cueshop/station-ledger/pkg/handlers/payments"
	"github.com/cueshop/station-ledger/pkg/handlers/reports"
	"github.com/cueshop/station-ledger/pkg/handlers/sessions"
	"github.com/cueshop/station-ledger/pkg/handlers/stations"
	"github.com/cueshop/station-ledger/pkg/ledger"
	appmiddleware "github.com/cueshop/station-ledger/pkg/middleware"
	"github.com/cueshop/station-ledger/pkg/storage"
	dynamostore "github.com/cueshop/station-ledger/pkg/storage/dynamodb"
	"github.com/cueshop/station-ledger/pkg/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	core := ledger.New(store, logger)

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(appmiddleware.NewStructuredLogger(logger))
	router.Use(appmiddleware.Metrics)

	router.Mount("/stations", stations.NewStationsHandler(store).Routes())
	router.Mount("/sessions", sessions.NewSessionsHandler(core).Routes())
	router.Mount("/credits", credits.NewCreditsHandler(core, store).Routes())
	router.Mount("/payments", payments.NewPaymentsHandler(store).Routes())
	router.Mount("/reports", reports.NewReportsHandler(store).Routes())

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newStore picks the storage backend from STORAGE_BACKEND: "memory" for local
// development, anything else (or unset) means DynamoDB.
func newStore() (storage.Storage, error) {
	if os.Getenv("STORAGE_BACKEND") == "memory" {
		log.Println("Using in-memory storage; data will not survive a restart")
		return memory.New(), nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, err
	}
	dbClient := dynamodb.NewFromConfig(cfg)

	stationsTable := os.Getenv("DYNAMODB_STATIONS_TABLE_NAME")
	sessionsTable := os.Getenv("DYNAMODB_SESSIONS_TABLE_NAME")
	creditsTable := os.Getenv("DYNAMODB_CREDITS_TABLE_NAME")
	paymentsTable := os.Getenv("DYNAMODB_PAYMENTS_TABLE_NAME")
	if stationsTable == "" || sessionsTable == "" || creditsTable == "" || paymentsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	return dynamostore.New(dbClient, stationsTable, sessionsTable, creditsTable, paymentsTable), nil
}
