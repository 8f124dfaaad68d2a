package analysis

import (
	"sort"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// EnergyHogs flags appliances whose share of total monthly consumption
// meets or exceeds thresholdPct (inclusive). The result is sorted by
// percentage descending; ties keep input order. A zero total (all-zero
// consumption is legal input) yields an empty result rather than NaN.
func EnergyHogs(records []types.ApplianceRecord, rates Rates, thresholdPct float64) []types.EnergyHog {
	consumption := Consumption(records, rates)

	var total float64
	for _, c := range consumption {
		total += c.MonthlyKWH
	}
	if total == 0 {
		return nil
	}

	var hogs []types.EnergyHog
	for _, c := range consumption {
		percentage := c.MonthlyKWH / total * 100
		if percentage >= thresholdPct {
			hogs = append(hogs, types.EnergyHog{
				Appliance:   c.Name,
				MonthlyKWH:  c.MonthlyKWH,
				Percentage:  percentage,
				MonthlyCost: c.MonthlyCost,
			})
		}
	}
	sort.SliceStable(hogs, func(i, j int) bool {
		return hogs[i].Percentage > hogs[j].Percentage
	})
	return hogs
}
