package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/energyadvisor/energyadvisor/pkg/analysis"
	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// handleRecommendations returns targeted advice for the appliances that
// dominate the household's consumption.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, struct {
		Recommendations []types.Recommendation `json:"recommendations"`
	}{Recommendations: analysis.Recommendations(session.Appliances, s.rates)})
}

// handleSavings projects the household totals under a reduction
// percentage. The reduction query parameter defaults to 20.
func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}

	reduction := 20.0
	if raw := r.URL.Query().Get("reduction"); raw != "" {
		var err error
		reduction, err = strconv.ParseFloat(raw, 64)
		if err != nil || reduction < 0 || reduction > 100 {
			writeJSONError(w, fmt.Sprintf("invalid reduction %q", raw), http.StatusBadRequest)
			return
		}
	}

	projection := analysis.ProjectSavings(session.Appliances, s.rates, reduction)
	writeJSON(w, struct {
		Projection types.SavingsProjection   `json:"projection"`
		Impact     types.EnvironmentalImpact `json:"impact"`
	}{
		Projection: projection,
		Impact:     analysis.Impact(projection.MonthlyKWHSavings),
	})
}
