package analysis

import (
	"testing"

	"github.com/energyadvisor/energyadvisor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("totals and mean", func(t *testing.T) {
		summary := Summarize(sampleHousehold(), DefaultRates)

		// 12 + 3.6 + 1 = 16.6 kWh/day
		assert.InDelta(t, 16.6, summary.TotalDailyKWH, 1e-9)
		assert.InDelta(t, 498.0, summary.TotalMonthlyKWH, 1e-9)
		assert.InDelta(t, 3237.0, summary.TotalMonthlyCost, 1e-9)
		// 16.6 / 3
		assert.InDelta(t, 5.533333333, summary.AvgDailyKWH, 1e-6)
		assert.Equal(t, 3, summary.ApplianceCount)
		// 1500 + 150 + 100*2 = 1850W
		assert.Equal(t, 1850.0, summary.TotalWattage)
	})

	t.Run("top consumers descending", func(t *testing.T) {
		summary := Summarize(sampleHousehold(), DefaultRates)
		require.Len(t, summary.TopConsumers, 3)
		assert.Equal(t, "Air Conditioner", summary.TopConsumers[0].Appliance)
		assert.Equal(t, "Refrigerator", summary.TopConsumers[1].Appliance)
		assert.Equal(t, "Television", summary.TopConsumers[2].Appliance)
		assert.Equal(t, 360.0, summary.TopConsumers[0].MonthlyKWH)
	})

	t.Run("top consumers capped at five, stable ties", func(t *testing.T) {
		records := []types.ApplianceRecord{
			{Name: "A", Wattage: 100, HoursPerDay: 1, Quantity: 1},
			{Name: "B", Wattage: 100, HoursPerDay: 1, Quantity: 1},
			{Name: "C", Wattage: 200, HoursPerDay: 1, Quantity: 1},
			{Name: "D", Wattage: 100, HoursPerDay: 1, Quantity: 1},
			{Name: "E", Wattage: 300, HoursPerDay: 1, Quantity: 1},
			{Name: "F", Wattage: 100, HoursPerDay: 1, Quantity: 1},
		}
		summary := Summarize(records, DefaultRates)
		require.Len(t, summary.TopConsumers, 5)
		assert.Equal(t, "E", summary.TopConsumers[0].Appliance)
		assert.Equal(t, "C", summary.TopConsumers[1].Appliance)
		// the 100W ties keep input order
		assert.Equal(t, "A", summary.TopConsumers[2].Appliance)
		assert.Equal(t, "B", summary.TopConsumers[3].Appliance)
		assert.Equal(t, "D", summary.TopConsumers[4].Appliance)
	})

	t.Run("sum of rows matches total", func(t *testing.T) {
		records := sampleHousehold()
		consumption := Consumption(records, DefaultRates)
		var sum float64
		for _, c := range consumption {
			sum += c.MonthlyKWH
		}
		summary := Summarize(records, DefaultRates)
		assert.InDelta(t, sum, summary.TotalMonthlyKWH, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		summary := Summarize(nil, DefaultRates)
		assert.Equal(t, 0.0, summary.TotalMonthlyKWH)
		assert.Equal(t, 0.0, summary.AvgDailyKWH)
		assert.Equal(t, 0, summary.ApplianceCount)
		assert.Empty(t, summary.TopConsumers)
	})

	t.Run("duplicate names contribute independently", func(t *testing.T) {
		records := []types.ApplianceRecord{
			{Name: "Fan", Wattage: 75, HoursPerDay: 10, Quantity: 1},
			{Name: "Fan", Wattage: 75, HoursPerDay: 10, Quantity: 1},
		}
		summary := Summarize(records, DefaultRates)
		assert.Equal(t, 2, summary.ApplianceCount)
		assert.InDelta(t, 45.0, summary.TotalMonthlyKWH, 1e-9)
	})
}
