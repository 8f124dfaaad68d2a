package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectSavings(t *testing.T) {
	t.Run("20 percent reduction", func(t *testing.T) {
		// current 498 kWh / 3237 cost; target 398.4 / 2589.6
		p := ProjectSavings(sampleHousehold(), DefaultRates, 20)
		assert.InDelta(t, 498.0, p.CurrentMonthlyKWH, 1e-9)
		assert.InDelta(t, 3237.0, p.CurrentMonthlyCost, 1e-9)
		assert.InDelta(t, 398.4, p.TargetMonthlyKWH, 1e-9)
		assert.InDelta(t, 2589.6, p.TargetMonthlyCost, 1e-9)
		assert.InDelta(t, 99.6, p.MonthlyKWHSavings, 1e-9)
		assert.InDelta(t, 647.4, p.MonthlyCostSavings, 1e-9)
		assert.InDelta(t, 7768.8, p.AnnualCostSavings, 1e-9)
		assert.Equal(t, 20.0, p.ReductionPercentage)
	})

	t.Run("round trip", func(t *testing.T) {
		p := ProjectSavings(sampleHousehold(), DefaultRates, 35)
		assert.InDelta(t, p.CurrentMonthlyKWH, p.TargetMonthlyKWH+p.MonthlyKWHSavings, 0.01)
		assert.InDelta(t, p.CurrentMonthlyCost, p.TargetMonthlyCost+p.MonthlyCostSavings, 0.01)
	})

	t.Run("zero reduction saves nothing", func(t *testing.T) {
		p := ProjectSavings(sampleHousehold(), DefaultRates, 0)
		assert.Equal(t, 0.0, p.MonthlyKWHSavings)
		assert.Equal(t, 0.0, p.MonthlyCostSavings)
		assert.Equal(t, 0.0, p.AnnualCostSavings)
		assert.InDelta(t, p.CurrentMonthlyKWH, p.TargetMonthlyKWH, 1e-9)
	})

	t.Run("full reduction zeroes the target", func(t *testing.T) {
		p := ProjectSavings(sampleHousehold(), DefaultRates, 100)
		assert.Equal(t, 0.0, p.TargetMonthlyKWH)
		assert.Equal(t, 0.0, p.TargetMonthlyCost)
		assert.InDelta(t, p.CurrentMonthlyKWH, p.MonthlyKWHSavings, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		p := ProjectSavings(nil, DefaultRates, 20)
		assert.Equal(t, 0.0, p.CurrentMonthlyKWH)
		assert.Equal(t, 0.0, p.MonthlyKWHSavings)
	})
}

func TestImpact(t *testing.T) {
	// 99.6 kWh/month * 0.82 = 81.67 kg/month, 980.06 kg/year, ~44.55 trees
	impact := Impact(99.6)
	assert.InDelta(t, 81.67, impact.MonthlyCO2SavedKG, 1e-9)
	assert.InDelta(t, 980.06, impact.AnnualCO2SavedKG, 1e-9)
	assert.InDelta(t, 44.55, impact.TreesEquivalent, 1e-9)

	zero := Impact(0)
	assert.Equal(t, 0.0, zero.MonthlyCO2SavedKG)
	assert.Equal(t, 0.0, zero.TreesEquivalent)
}
