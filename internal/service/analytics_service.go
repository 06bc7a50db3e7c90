// Package service exposes the analytics core to the dashboard as a REST
// JSON surface. Handlers validate caller input, fetch transactions through
// the store boundary, delegate all math to trend/finmath, and render the
// result; they never mutate what the core returns.
package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/money"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/store"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/trend"
)

// AnalyticsService serves the dashboard's analytics endpoints.
type AnalyticsService struct {
	store    store.Store
	loc      *time.Location
	defaults store.Filter
	money    *money.Formatter
	currency string
}

// NewAnalyticsService wires the service. loc is the reporting timezone used
// for all day bucketing; defaults is the immutable base filter merged under
// each request's query parameters.
func NewAnalyticsService(st store.Store, loc *time.Location, defaults store.Filter, formatter *money.Formatter, currency string) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		store:    st,
		loc:      loc,
		defaults: defaults,
		money:    formatter,
		currency: currency,
	}
}

// Routes returns the service's router.
func (s *AnalyticsService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/analytics", func(r chi.Router) {
		r.Get("/daily-trend", s.handleDailyTrend)
		r.Get("/summary", s.handleSummary)
		r.Get("/by-type", s.handleByType)
		r.Get("/risk-distribution", s.handleRiskDistribution)
		r.Get("/new-users", s.handleNewUsers)
		r.Post("/anomalies", s.handleAnomalies)
		r.Post("/forecast", s.handleForecast)
	})
	r.Route("/api/finance", func(r chi.Router) {
		r.Post("/break-even", s.handleBreakEven)
		r.Post("/runway", s.handleRunway)
		r.Post("/profit-margin", s.handleProfitMargin)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return r
}

type dailyTrendResponse struct {
	Buckets        []trend.DayBucket `json:"buckets"`
	MaxDailyVolume float64           `json:"maxDailyVolume"`
}

func (s *AnalyticsService) handleDailyTrend(w http.ResponseWriter, r *http.Request) {
	start, end, err := s.requireWindow(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Fetch without the window: new-vs-returning classification inside
	// DailyTrend needs a user's history from before the window, and the
	// engine excludes out-of-range transactions itself.
	txns, err := s.store.ListTransactions(r.Context(), s.filterFromQuery(r))
	if err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Sprintf("list transactions: %v", err))
		return
	}

	buckets, err := trend.DailyTrend(txns, start, end, s.loc)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Dashboard charts scale against the busiest day.
	var maxVolume float64
	for _, b := range buckets {
		if b.Volume > maxVolume {
			maxVolume = b.Volume
		}
	}
	respondJSON(w, http.StatusOK, dailyTrendResponse{Buckets: buckets, MaxDailyVolume: maxVolume})
}

type summaryResponse struct {
	trend.SummaryMetrics
	TotalVolumeDisplay string `json:"totalVolumeDisplay,omitempty"`
	TotalFeesDisplay   string `json:"totalFeesDisplay,omitempty"`
}

func (s *AnalyticsService) handleSummary(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.ListTransactions(r.Context(), s.filterFromQuery(r))
	if err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Sprintf("list transactions: %v", err))
		return
	}

	metrics := trend.Summary(txns)
	resp := summaryResponse{SummaryMetrics: metrics}
	if s.money != nil {
		if v, err := s.money.Format(metrics.TotalVolume, s.currency); err == nil {
			resp.TotalVolumeDisplay = v
		}
		if v, err := s.money.FormatPrecision(metrics.TotalFees, s.currency, 2); err == nil {
			resp.TotalFeesDisplay = v
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *AnalyticsService) handleByType(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.ListTransactions(r.Context(), s.filterFromQuery(r))
	if err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Sprintf("list transactions: %v", err))
		return
	}
	respondJSON(w, http.StatusOK, trend.ByType(txns))
}

func (s *AnalyticsService) handleRiskDistribution(w http.ResponseWriter, r *http.Request) {
	txns, err := s.store.ListTransactions(r.Context(), s.filterFromQuery(r))
	if err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Sprintf("list transactions: %v", err))
		return
	}
	respondJSON(w, http.StatusOK, trend.RiskScoreDistribution(txns))
}

type newUsersPoint struct {
	Date           string `json:"date"`
	NewUsers       int    `json:"newUsers"`
	ReturningUsers int    `json:"returningUsers"`
}

func (s *AnalyticsService) handleNewUsers(w http.ResponseWriter, r *http.Request) {
	start, end, err := s.requireWindow(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns, err := s.store.ListTransactions(r.Context(), s.filterFromQuery(r))
	if err != nil {
		httpError(w, http.StatusInternalServerError, fmt.Sprintf("list transactions: %v", err))
		return
	}

	buckets, err := trend.DailyTrend(txns, start, end, s.loc)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	points := make([]newUsersPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, newUsersPoint{
			Date:           b.Date,
			NewUsers:       b.NewUsers,
			ReturningUsers: b.ActiveUsers - b.NewUsers,
		})
	}
	respondJSON(w, http.StatusOK, points)
}
