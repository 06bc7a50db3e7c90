package service

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/model"
	"github.com/Orrie-Dan/Movasafe-Portal-sub002/internal/store"
)

const dateLayout = "2006-01-02"

// requireWindow parses the mandatory start/end query parameters as ISO
// dates in the service's reporting timezone, so the window means the same
// calendar days the engine buckets by. Range validity (end >= start) is the
// engine's call to make, not the parser's.
func (s *AnalyticsService) requireWindow(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		return start, end, fmt.Errorf("start and end query parameters are required")
	}
	start, err = time.ParseInLocation(dateLayout, startStr, s.loc)
	if err != nil {
		return start, end, fmt.Errorf("invalid start date %q", startStr)
	}
	end, err = time.ParseInLocation(dateLayout, endStr, s.loc)
	if err != nil {
		return start, end, fmt.Errorf("invalid end date %q", endStr)
	}
	return start, end, nil
}

// filterFromQuery merges the request's filter parameters over the service's
// immutable defaults.
func (s *AnalyticsService) filterFromQuery(r *http.Request) store.Filter {
	q := r.URL.Query()
	f := store.Filter{
		UserID: q.Get("userId"),
		Status: model.TransactionStatus(q.Get("status")),
		Type:   model.TransactionType(q.Get("type")),
	}
	return f.Merge(s.defaults)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func httpError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
