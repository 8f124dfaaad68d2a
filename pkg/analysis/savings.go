package analysis

import "github.com/energyadvisor/energyadvisor/pkg/types"

// ProjectSavings computes a hypothetical scenario where total consumption
// drops by reductionPct (0-100; values outside that range are the caller's
// problem). Outputs are rounded to 2 decimal places.
func ProjectSavings(records []types.ApplianceRecord, rates Rates, reductionPct float64) types.SavingsProjection {
	summary := Summarize(records, rates)

	factor := 1 - reductionPct/100
	targetKWH := summary.TotalMonthlyKWH * factor
	targetCost := summary.TotalMonthlyCost * factor

	return types.SavingsProjection{
		CurrentMonthlyKWH:   round2(summary.TotalMonthlyKWH),
		CurrentMonthlyCost:  round2(summary.TotalMonthlyCost),
		TargetMonthlyKWH:    round2(targetKWH),
		TargetMonthlyCost:   round2(targetCost),
		MonthlyKWHSavings:   round2(summary.TotalMonthlyKWH - targetKWH),
		MonthlyCostSavings:  round2(summary.TotalMonthlyCost - targetCost),
		AnnualCostSavings:   round2((summary.TotalMonthlyCost - targetCost) * 12),
		ReductionPercentage: reductionPct,
	}
}

// Impact converts a monthly kWh saving into avoided emissions.
func Impact(monthlyKWHSavings float64) types.EnvironmentalImpact {
	monthlyCO2 := monthlyKWHSavings * KGCO2PerKWH
	annualCO2 := monthlyCO2 * 12
	return types.EnvironmentalImpact{
		MonthlyCO2SavedKG: round2(monthlyCO2),
		AnnualCO2SavedKG:  round2(annualCO2),
		TreesEquivalent:   round2(annualCO2 / KGCO2PerTreePerYear),
	}
}
