package analysis

import "github.com/energyadvisor/energyadvisor/pkg/types"

// CategoryThresholds are the upper bounds (exclusive) of the Low, Medium
// and High consumption buckets in monthly kWh. Anything at or above High
// is Very High.
type CategoryThresholds struct {
	Low    float64
	Medium float64
	High   float64
}

// DefaultCategoryThresholds buckets appliances at 10/50/150 monthly kWh.
var DefaultCategoryThresholds = CategoryThresholds{
	Low:    10,
	Medium: 50,
	High:   150,
}

// Category maps a monthly consumption value to its bucket. Boundary values
// map to the higher bucket: exactly 10 kWh is Medium, 150 is Very High.
func (t CategoryThresholds) Category(monthlyKWH float64) types.ConsumptionCategory {
	switch {
	case monthlyKWH < t.Low:
		return types.CategoryLow
	case monthlyKWH < t.Medium:
		return types.CategoryMedium
	case monthlyKWH < t.High:
		return types.CategoryHigh
	default:
		return types.CategoryVeryHigh
	}
}

// Categorize computes consumption for each appliance and attaches its
// consumption category. Same order and length as the input.
func Categorize(records []types.ApplianceRecord, rates Rates, thresholds CategoryThresholds) []types.ApplianceConsumption {
	consumption := Consumption(records, rates)
	for i := range consumption {
		consumption[i].Category = thresholds.Category(consumption[i].MonthlyKWH)
	}
	return consumption
}

// CategoryCounts returns how many appliances fall into each category.
// Categories with no appliances are omitted.
func CategoryCounts(records []types.ApplianceRecord, rates Rates, thresholds CategoryThresholds) map[types.ConsumptionCategory]int {
	counts := make(map[types.ConsumptionCategory]int)
	for _, c := range Categorize(records, rates, thresholds) {
		counts[c.Category]++
	}
	return counts
}
