package analysis

import (
	"sort"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// topConsumerCount is how many appliances the summary ranks.
const topConsumerCount = 5

// Summarize reduces the appliance sequence into totals, the mean daily
// consumption and a ranking of the heaviest consumers. An empty sequence
// produces zero aggregates.
func Summarize(records []types.ApplianceRecord, rates Rates) types.ConsumptionSummary {
	consumption := Consumption(records, rates)

	summary := types.ConsumptionSummary{
		ApplianceCount: len(records),
	}
	for _, c := range consumption {
		summary.TotalDailyKWH += c.DailyKWH
		summary.TotalMonthlyKWH += c.MonthlyKWH
		summary.TotalMonthlyCost += c.MonthlyCost
		summary.TotalWattage += c.Wattage * float64(c.Quantity)
	}
	if len(consumption) > 0 {
		summary.AvgDailyKWH = summary.TotalDailyKWH / float64(len(consumption))
	}

	// rank by monthly consumption, ties keep input order
	ranked := make([]types.ApplianceConsumption, len(consumption))
	copy(ranked, consumption)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MonthlyKWH > ranked[j].MonthlyKWH
	})
	if len(ranked) > topConsumerCount {
		ranked = ranked[:topConsumerCount]
	}
	for _, c := range ranked {
		summary.TopConsumers = append(summary.TopConsumers, types.TopConsumer{
			Appliance:   c.Name,
			MonthlyKWH:  c.MonthlyKWH,
			MonthlyCost: c.MonthlyCost,
		})
	}

	return summary
}
