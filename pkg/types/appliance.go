package types

// ApplianceRecord is a single row of household appliance usage as supplied
// by the caller (CSV upload or sample data). Names are not unique; duplicate
// rows are legal and contribute independently to every aggregate.
type ApplianceRecord struct {
	Name        string  `json:"name"`
	Wattage     float64 `json:"wattage"`
	HoursPerDay float64 `json:"hoursPerDay"`
	Quantity    int     `json:"quantity"`
}

// ApplianceConsumption is an ApplianceRecord with its derived energy and
// cost figures. It is recomputed from the record on every query, never
// stored.
type ApplianceConsumption struct {
	ApplianceRecord

	DailyKWH    float64 `json:"dailyKWH"`
	MonthlyKWH  float64 `json:"monthlyKWH"`
	MonthlyCost float64 `json:"monthlyCost"`

	// Category is only populated by the classifier.
	Category ConsumptionCategory `json:"category,omitempty"`
}

// ConsumptionCategory buckets an appliance by its monthly consumption.
type ConsumptionCategory string

const (
	CategoryLow      ConsumptionCategory = "Low"
	CategoryMedium   ConsumptionCategory = "Medium"
	CategoryHigh     ConsumptionCategory = "High"
	CategoryVeryHigh ConsumptionCategory = "Very High"
)

// EnergyHog is an appliance whose share of total monthly consumption meets
// or exceeds a caller-supplied threshold.
type EnergyHog struct {
	Appliance   string  `json:"appliance"`
	MonthlyKWH  float64 `json:"monthlyKWH"`
	Percentage  float64 `json:"percentage"`
	MonthlyCost float64 `json:"monthlyCost"`
}

// Recommendation is a single piece of savings advice for an energy hog.
type Recommendation struct {
	Appliance      string `json:"appliance"`
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
}
