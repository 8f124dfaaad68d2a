package analysis

import (
	"fmt"
	"strings"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

// advice pairs name keywords with a canned recommendation. The table is
// evaluated in order and the first matching entry wins, so more specific
// groups must come before generic ones.
type advice struct {
	keywords []string
	text     string
}

var adviceTable = []advice{
	{
		keywords: []string{"AC", "AIR CONDITIONER"},
		text:     "Set temperature to 24-26°C, use timer mode, clean filters monthly",
	},
	{
		keywords: []string{"REFRIGERATOR", "FRIDGE"},
		text:     "Ensure door seals are tight, set optimal temperature (3-4°C), defrost regularly",
	},
	{
		keywords: []string{"HEATER", "GEYSER"},
		text:     "Use timer, reduce temperature setting, insulate pipes, consider solar heating",
	},
}

const genericAdvice = "Reduce usage hours, use energy-efficient alternatives, unplug when not in use"

// adviceFor matches an appliance name case-insensitively against the
// keyword table.
func adviceFor(name string) string {
	upper := strings.ToUpper(name)
	for _, a := range adviceTable {
		for _, kw := range a.keywords {
			if strings.Contains(upper, kw) {
				return a.text
			}
		}
	}
	return genericAdvice
}

// Recommendations maps energy hogs to savings advice. Hogs are detected at
// the fixed RecommendationThresholdPct share and their order is preserved.
func Recommendations(records []types.ApplianceRecord, rates Rates) []types.Recommendation {
	hogs := EnergyHogs(records, rates, RecommendationThresholdPct)

	recommendations := make([]types.Recommendation, 0, len(hogs))
	for _, hog := range hogs {
		recommendations = append(recommendations, types.Recommendation{
			Appliance:      hog.Appliance,
			Issue:          fmt.Sprintf("Consuming %.1f%% of total energy", hog.Percentage),
			Recommendation: adviceFor(hog.Appliance),
		})
	}
	return recommendations
}
