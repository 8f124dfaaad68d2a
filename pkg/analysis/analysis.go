// Package analysis implements the consumption analytics engine. Every
// function is a pure, synchronous reduction over an appliance sequence:
// results are recomputed from the input on each call and nothing is cached.
// Input validation is the caller's responsibility (see pkg/dataset);
// degenerate values (empty input, zero totals) yield well-defined defaults
// rather than errors.
package analysis

import (
	"math"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// Rates holds the billing constants used to turn wattage into cost.
type Rates struct {
	// PerKWH is the electricity rate in currency units per kWh.
	PerKWH float64
	// DaysPerMonth is the number of days a "month" of consumption covers.
	DaysPerMonth float64
}

// DefaultRates matches the utility rate the advisor was built around.
var DefaultRates = Rates{
	PerKWH:       6.5,
	DaysPerMonth: 30,
}

const (
	// RecommendationThresholdPct is the energy-hog share above which an
	// appliance earns a recommendation. Intentionally higher than the 10%
	// the analysis view uses for display: "shown as notable" is a lower
	// bar than "recommended against".
	RecommendationThresholdPct = 15.0

	// DefaultHogThresholdPct is the energy-hog share used when the caller
	// does not supply one.
	DefaultHogThresholdPct = 20.0

	// KGCO2PerKWH converts saved energy to avoided emissions.
	KGCO2PerKWH = 0.82
	// KGCO2PerTreePerYear is the CO2 one tree absorbs annually.
	KGCO2PerTreePerYear = 22.0
)

// Consumption derives energy and cost figures for each appliance. The
// result has the same order and length as the input. Zero wattage, hours
// or quantity rows produce zero consumption, not an error.
func Consumption(records []types.ApplianceRecord, rates Rates) []types.ApplianceConsumption {
	out := make([]types.ApplianceConsumption, len(records))
	for i, r := range records {
		daily := r.Wattage * r.HoursPerDay * float64(r.Quantity) / 1000
		monthly := daily * rates.DaysPerMonth
		out[i] = types.ApplianceConsumption{
			ApplianceRecord: r,
			DailyKWH:        daily,
			MonthlyKWH:      monthly,
			MonthlyCost:     monthly * rates.PerKWH,
		}
	}
	return out
}

// round2 rounds to 2 decimal places. Only applied at output boundaries;
// intermediate math is unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
