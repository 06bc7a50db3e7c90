package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/text/language"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/money"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/service"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/store"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8112"
	}

	// Reporting timezone for day bucketing. Explicit so aggregates don't
	// depend on where the process happens to run.
	loc := time.UTC
	if tz := os.Getenv("REPORT_TZ"); tz != "" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("Invalid REPORT_TZ %q: %v", tz, err)
		}
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "RWF"
	}

	ctx := context.Background()
	st := store.NewMemoryStore()
	if path := os.Getenv("TRANSACTIONS_FILE"); path != "" {
		n, rejected, err := seedFromFile(ctx, st, path, loc)
		if err != nil {
			log.Fatalf("Failed to seed transactions from %s: %v", path, err)
		}
		log.Printf("Seeded %d transactions from %s (%d rows rejected)", n, path, rejected)
	}

	formatter := money.NewFormatter(language.English)
	analytics := service.NewAnalyticsService(st, loc, store.Filter{}, formatter, currency)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", analytics.Routes())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"https://portal.movasafe.rw",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(c.Handler(r), &http2.Server{}),
	}

	log.Printf("Starting analytics server on port %s (reporting tz %s)", port, loc)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedFromFile loads a JSON array of transactions into the store. Rows that
// fail validation are counted and skipped; a malformed file is fatal.
func seedFromFile(ctx context.Context, st store.Store, path string, loc *time.Location) (loaded, rejected int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed file: %w", err)
	}
	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return 0, 0, fmt.Errorf("parse seed file: %w", err)
	}
	valid, bad := model.Partition(txns, loc)
	keep := make([]model.Transaction, 0, len(valid))
	for _, r := range valid {
		keep = append(keep, r.Transaction)
	}
	if err := st.AddTransactions(ctx, keep); err != nil {
		return 0, 0, err
	}
	return len(keep), len(bad), nil
}
