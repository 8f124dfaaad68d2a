package analysis

import (
	"math"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/montanaflynn/stats"
)

// balancedCVLimit is the coefficient-of-variation (percent) below which
// consumption counts as balanced.
const balancedCVLimit = 50.0

// Bill accuracy thresholds on the difference percentage, exclusive upper
// bounds evaluated in order.
const (
	accuracyGoodLimit = 15.0
	accuracyFairLimit = 30.0
)

// Score computes the variability-based efficiency score and, when
// billUnits is supplied, reconciles calculated consumption against the
// bill. The score penalizes spread: 100 minus the coefficient of variation
// of monthly consumption, floored at 0. The sample standard deviation
// (N-1) is used; a single appliance therefore scores 100. A zero mean
// scores 0 and is labeled Unbalanced.
func Score(records []types.ApplianceRecord, rates Rates, billUnits *float64) types.EfficiencyResult {
	consumption := Consumption(records, rates)

	values := make([]float64, len(consumption))
	var total float64
	for i, c := range consumption {
		values[i] = c.MonthlyKWH
		total += c.MonthlyKWH
	}

	result := types.EfficiencyResult{
		CalculatedMonthlyKWH: total,
		ConsumptionBalance:   types.BalanceUnbalanced,
	}

	mean, err := stats.Mean(values)
	if err == nil && mean > 0 {
		// stats.StandardDeviationSample divides by N-1 which is undefined
		// for a single value, but a lone appliance has no spread
		std := 0.0
		if len(values) > 1 {
			std, _ = stats.StandardDeviationSample(values)
		}
		cv := std / mean * 100
		result.EfficiencyScore = round2(math.Max(0, 100-cv))
		if cv < balancedCVLimit {
			result.ConsumptionBalance = types.BalanceBalanced
		}
	}

	if billUnits != nil && *billUnits != 0 {
		difference := math.Abs(total - *billUnits)
		differencePct := difference / *billUnits * 100
		rec := &types.BillReconciliation{
			BillUnits:            *billUnits,
			Difference:           difference,
			DifferencePercentage: round2(differencePct),
		}
		switch {
		case differencePct < accuracyGoodLimit:
			rec.Accuracy = types.AccuracyGood
		case differencePct < accuracyFairLimit:
			rec.Accuracy = types.AccuracyFair
		default:
			rec.Accuracy = types.AccuracyPoor
		}
		result.Reconciliation = rec
	}

	return result
}
