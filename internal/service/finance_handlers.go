package service

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/finmath"
)

type anomaliesRequest struct {
	Data       map[string]float64         `json:"data"`
	Thresholds []finmath.AnomalyThreshold `json:"thresholds"`
	Previous   map[string]float64         `json:"previousData,omitempty"`
}

func (s *AnalyticsService) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	var req anomaliesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	anomalies, err := finmath.DetectAnomalies(req.Data, req.Thresholds, req.Previous)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	if anomalies == nil {
		anomalies = []finmath.DetectedAnomaly{}
	}
	respondJSON(w, http.StatusOK, anomalies)
}

type forecastRequest struct {
	Series     []float64              `json:"series"`
	Periods    int                    `json:"periods"`
	Method     finmath.ForecastMethod `json:"method"`
	GrowthRate *float64               `json:"growthRate,omitempty"`
}

func (s *AnalyticsService) handleForecast(w http.ResponseWriter, r *http.Request) {
	var req forecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	predictions, err := finmath.Forecast(req.Series, req.Periods, finmath.ForecastOptions{
		Method:     req.Method,
		GrowthRate: req.GrowthRate,
	})
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string][]float64{"predictions": predictions})
}

type breakEvenRequest struct {
	FixedCosts          float64 `json:"fixedCosts"`
	VariableCostPerUnit float64 `json:"variableCostPerUnit"`
	PricePerUnit        float64 `json:"pricePerUnit"`
}

// breakEvenResponse encodes +Inf (no positive contribution margin) as null
// fields plus unreachable=true, since JSON has no infinity literal.
type breakEvenResponse struct {
	Units       *float64 `json:"units"`
	Revenue     *float64 `json:"revenue"`
	Unreachable bool     `json:"unreachable"`
}

func (s *AnalyticsService) handleBreakEven(w http.ResponseWriter, r *http.Request) {
	var req breakEvenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	point := finmath.BreakEven(req.FixedCosts, req.VariableCostPerUnit, req.PricePerUnit)
	resp := breakEvenResponse{}
	if math.IsInf(point.Units, 1) {
		resp.Unreachable = true
	} else {
		resp.Units = &point.Units
		resp.Revenue = &point.Revenue
	}
	respondJSON(w, http.StatusOK, resp)
}

type runwayRequest struct {
	CashBalance     float64 `json:"cashBalance"`
	MonthlyBurnRate float64 `json:"monthlyBurnRate"`
}

// runwayResponse encodes +Inf (no burn) as a null Days plus unlimited=true.
type runwayResponse struct {
	Days      *float64 `json:"days"`
	Unlimited bool     `json:"unlimited"`
}

func (s *AnalyticsService) handleRunway(w http.ResponseWriter, r *http.Request) {
	var req runwayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	days := finmath.DaysOfCashRemaining(req.CashBalance, req.MonthlyBurnRate)
	resp := runwayResponse{}
	if math.IsInf(days, 1) {
		resp.Unlimited = true
	} else {
		resp.Days = &days
	}
	respondJSON(w, http.StatusOK, resp)
}

type profitMarginRequest struct {
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

func (s *AnalyticsService) handleProfitMargin(w http.ResponseWriter, r *http.Request) {
	var req profitMarginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	margin := finmath.ProfitMargin(req.Revenue, req.Costs)
	respondJSON(w, http.StatusOK, map[string]float64{"margin": margin})
}
