package types

// TopConsumer is one entry in the summary's highest-consumption ranking.
type TopConsumer struct {
	Appliance   string  `json:"appliance"`
	MonthlyKWH  float64 `json:"monthlyKWH"`
	MonthlyCost float64 `json:"monthlyCost"`
}

// ConsumptionSummary aggregates the per-appliance consumption table.
type ConsumptionSummary struct {
	TotalDailyKWH    float64 `json:"totalDailyKWH"`
	TotalMonthlyKWH  float64 `json:"totalMonthlyKWH"`
	TotalMonthlyCost float64 `json:"totalMonthlyCost"`
	// AvgDailyKWH is the mean per-appliance daily consumption. Zero when
	// there are no appliances.
	AvgDailyKWH    float64       `json:"avgDailyKWH"`
	ApplianceCount int           `json:"applianceCount"`
	TotalWattage   float64       `json:"totalWattage"`
	TopConsumers   []TopConsumer `json:"topConsumers"`
}

// ConsumptionBalance labels how evenly consumption is spread across
// appliances.
type ConsumptionBalance string

const (
	BalanceBalanced   ConsumptionBalance = "Balanced"
	BalanceUnbalanced ConsumptionBalance = "Unbalanced"
)

// BillAccuracy grades how closely calculated consumption matches the bill.
type BillAccuracy string

const (
	AccuracyGood BillAccuracy = "Good"
	AccuracyFair BillAccuracy = "Fair"
	AccuracyPoor BillAccuracy = "Poor"
)

// BillReconciliation compares calculated consumption against the metered
// units reported on an actual bill.
type BillReconciliation struct {
	BillUnits            float64      `json:"billUnits"`
	Difference           float64      `json:"difference"`
	DifferencePercentage float64      `json:"differencePercentage"`
	Accuracy             BillAccuracy `json:"accuracy"`
}

// EfficiencyResult is the output of the efficiency scorer. Reconciliation
// is only set when bill units were supplied.
type EfficiencyResult struct {
	EfficiencyScore      float64             `json:"efficiencyScore"` // 0-100
	CalculatedMonthlyKWH float64             `json:"calculatedMonthlyKWH"`
	ConsumptionBalance   ConsumptionBalance  `json:"consumptionBalance"`
	Reconciliation       *BillReconciliation `json:"reconciliation,omitempty"`
}

// SavingsProjection is a hypothetical reduced-consumption scenario. All
// values are rounded to 2 decimal places at this boundary.
type SavingsProjection struct {
	CurrentMonthlyKWH   float64 `json:"currentMonthlyKWH"`
	CurrentMonthlyCost  float64 `json:"currentMonthlyCost"`
	TargetMonthlyKWH    float64 `json:"targetMonthlyKWH"`
	TargetMonthlyCost   float64 `json:"targetMonthlyCost"`
	MonthlyKWHSavings   float64 `json:"monthlyKWHSavings"`
	MonthlyCostSavings  float64 `json:"monthlyCostSavings"`
	AnnualCostSavings   float64 `json:"annualCostSavings"`
	ReductionPercentage float64 `json:"reductionPercentage"`
}

// EnvironmentalImpact estimates the emissions avoided by a savings
// projection.
type EnvironmentalImpact struct {
	MonthlyCO2SavedKG float64 `json:"monthlyCO2SavedKG"`
	AnnualCO2SavedKG  float64 `json:"annualCO2SavedKG"`
	// TreesEquivalent is the number of trees absorbing the same CO2 per
	// year.
	TreesEquivalent float64 `json:"treesEquivalent"`
}
