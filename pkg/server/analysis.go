package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/energyadvisor/energyadvisor/pkg/analysis"
	"github.com/energyadvisor/energyadvisor/pkg/bill"
	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// handleSummary returns the household totals alongside the per-appliance
// breakdown with consumption categories.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}

	writeJSON(w, struct {
		Summary        types.ConsumptionSummary          `json:"summary"`
		Appliances     []types.ApplianceConsumption      `json:"appliances"`
		CategoryCounts map[types.ConsumptionCategory]int `json:"categoryCounts"`
	}{
		Summary:        analysis.Summarize(session.Appliances, s.rates),
		Appliances:     analysis.Categorize(session.Appliances, s.rates, s.thresholds),
		CategoryCounts: analysis.CategoryCounts(session.Appliances, s.rates, s.thresholds),
	})
}

// handleEfficiency scores how evenly consumption is spread across the
// household and, when a bill is on file, reconciles the calculated total
// against the metered units.
func (s *Server) handleEfficiency(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, analysis.Score(session.Appliances, s.rates, bill.Units(session.Bill)))
}

// handleHogs returns the appliances at or above the given share of total
// consumption. The threshold query parameter is a percentage and defaults
// to 20.
func (s *Server) handleHogs(w http.ResponseWriter, r *http.Request) {
	session, ok := s.getSession(w, r)
	if !ok {
		return
	}

	threshold := analysis.DefaultHogThresholdPct
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		var err error
		threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil || threshold < 0 || threshold > 100 {
			writeJSONError(w, fmt.Sprintf("invalid threshold %q", raw), http.StatusBadRequest)
			return
		}
	}

	hogs := analysis.EnergyHogs(session.Appliances, s.rates, threshold)
	writeJSON(w, struct {
		Threshold float64           `json:"threshold"`
		Hogs      []types.EnergyHog `json:"hogs"`
	}{Threshold: threshold, Hogs: hogs})
}
