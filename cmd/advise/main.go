// advise runs the full analysis offline against a local CSV file and
// prints the report as JSON, no server or session storage involved.
package main

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/energyadvisor/energyadvisor/pkg/analysis"
	"github.com/energyadvisor/energyadvisor/pkg/bill"
	"github.com/energyadvisor/energyadvisor/pkg/dataset"
	"github.com/energyadvisor/energyadvisor/pkg/log"
	"github.com/energyadvisor/energyadvisor/pkg/types"

	"github.com/levenlabs/go-lflag"
)

type report struct {
	Summary         types.ConsumptionSummary          `json:"summary"`
	Appliances      []types.ApplianceConsumption      `json:"appliances"`
	CategoryCounts  map[types.ConsumptionCategory]int `json:"categoryCounts"`
	Hogs            []types.EnergyHog                 `json:"hogs"`
	Efficiency      types.EfficiencyResult            `json:"efficiency"`
	Recommendations []types.Recommendation            `json:"recommendations"`
	Savings         types.SavingsProjection           `json:"savings"`
	Impact          types.EnvironmentalImpact         `json:"impact"`
}

func main() {
	csvPath := lflag.RequiredString("csv", "Path to the appliance CSV file (columns: appliance, wattage, hours_per_day, quantity)")
	billPath := lflag.String("bill", "", "Optional path to a text file with the utility bill contents")
	rateStr := lflag.String("rate-per-kwh", strconv.FormatFloat(analysis.DefaultRates.PerKWH, 'f', -1, 64), "Electricity rate in currency units per kWh")
	hogStr := lflag.String("hog-threshold", "20", "Minimum percentage of total consumption to flag an appliance")
	reductionStr := lflag.String("reduction", "20", "Consumption reduction percentage for the savings projection")
	lflag.Configure()

	ctx := context.Background()

	ratePerKWH, err := strconv.ParseFloat(*rateStr, 64)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "rate-per-kwh must be numeric", "error", err)
		os.Exit(1)
	}
	hogThreshold, err := strconv.ParseFloat(*hogStr, 64)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "hog-threshold must be numeric", "error", err)
		os.Exit(1)
	}
	reduction, err := strconv.ParseFloat(*reductionStr, 64)
	if err != nil || reduction < 0 || reduction > 100 {
		log.Ctx(ctx).ErrorContext(ctx, "reduction must be a percentage between 0 and 100", "error", err)
		os.Exit(1)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to open csv", "error", err)
		os.Exit(1)
	}
	records, err := dataset.ParseCSV(f)
	f.Close()
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to parse csv", "error", err)
		os.Exit(1)
	}

	var billUnits *float64
	if *billPath != "" {
		text, err := os.ReadFile(*billPath)
		if err != nil {
			log.Ctx(ctx).ErrorContext(ctx, "failed to read bill", "error", err)
			os.Exit(1)
		}
		extracted := bill.Extract(string(text))
		billUnits = bill.Units(&extracted)
	}

	rates := analysis.Rates{
		PerKWH:       ratePerKWH,
		DaysPerMonth: analysis.DefaultRates.DaysPerMonth,
	}
	thresholds := analysis.DefaultCategoryThresholds

	projection := analysis.ProjectSavings(records, rates, reduction)
	out := report{
		Summary:         analysis.Summarize(records, rates),
		Appliances:      analysis.Categorize(records, rates, thresholds),
		CategoryCounts:  analysis.CategoryCounts(records, rates, thresholds),
		Hogs:            analysis.EnergyHogs(records, rates, hogThreshold),
		Efficiency:      analysis.Score(records, rates, billUnits),
		Recommendations: analysis.Recommendations(records, rates),
		Savings:         projection,
		Impact:          analysis.Impact(projection.MonthlyKWHSavings),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to encode report", "error", err)
		os.Exit(1)
	}
}
