// Package bill extracts structured fields from utility bill text with a
// single pass of pattern matches. It is deliberately lenient: fields that
// cannot be found keep their zero values and extraction never fails, since
// only the metered units feed the analytics.
package bill

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/energyadvisor/energyadvisor/pkg/types"
)

var (
	consumerNoRe   = regexp.MustCompile(`(?i)Consumer\s*(?:No|Number|ID)[:\s]*([A-Z0-9\-]+)`)
	consumerNameRe = regexp.MustCompile(`(?i)(?:Consumer\s*)?Name[:\s]*([A-Za-z \t.]+)`)
	billMonthRe    = regexp.MustCompile(`(?i)(?:Bill(?:ing)?\s*(?:Period|Month)|For\s*the\s*(?:month|period)\s*of)[:\s]*([A-Za-z]+\s*\d{4}|\d{1,2}/\d{4})`)
	billingDateRe  = regexp.MustCompile(`(?i)Bill(?:ing)?\s*Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	dueDateRe      = regexp.MustCompile(`(?i)Due\s*Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`)
	unitsRe        = regexp.MustCompile(`(?i)(?:Total\s*)?(?:Units?|Consumption|kWh)[:\s]*(\d+(?:\.\d+)?)`)
	amountRe       = regexp.MustCompile(`(?i)(?:Total\s*(?:Amount|Bill)|Amount\s*Payable|Net\s*Amount)[:\s]*(?:Rs\.?|₹|\$)?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`)
	prevReadingRe  = regexp.MustCompile(`(?i)Previous\s*Reading[:\s]*(\d+)`)
	currReadingRe  = regexp.MustCompile(`(?i)Current\s*Reading[:\s]*(\d+)`)
)

// Extract scans bill text for the fields the advisor understands. When the
// metered units are absent but both meter readings are present, the units
// are derived from the reading difference.
func Extract(text string) types.BillRecord {
	var b types.BillRecord

	if m := consumerNoRe.FindStringSubmatch(text); m != nil {
		b.ConsumerNo = strings.TrimSpace(m[1])
	}
	if m := consumerNameRe.FindStringSubmatch(text); m != nil {
		b.ConsumerName = strings.TrimSpace(m[1])
	}
	if m := billMonthRe.FindStringSubmatch(text); m != nil {
		b.BillMonth = strings.TrimSpace(m[1])
	}
	if m := billingDateRe.FindStringSubmatch(text); m != nil {
		b.BillingDate = strings.TrimSpace(m[1])
	}
	if m := dueDateRe.FindStringSubmatch(text); m != nil {
		b.DueDate = strings.TrimSpace(m[1])
	}
	if m := unitsRe.FindStringSubmatch(text); m != nil {
		b.MeteredUnits, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := amountRe.FindStringSubmatch(text); m != nil {
		b.TotalAmount, _ = strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	}
	if m := prevReadingRe.FindStringSubmatch(text); m != nil {
		b.PreviousReading, _ = strconv.Atoi(m[1])
	}
	if m := currReadingRe.FindStringSubmatch(text); m != nil {
		b.CurrentReading, _ = strconv.Atoi(m[1])
	}

	if b.MeteredUnits == 0 && b.CurrentReading > 0 {
		b.MeteredUnits = float64(b.CurrentReading - b.PreviousReading)
	}

	return b
}

// Units returns the metered units as an optional value: nil when the bill
// is absent or reported no usable reading.
func Units(b *types.BillRecord) *float64 {
	if b == nil || b.MeteredUnits == 0 {
		return nil
	}
	return &b.MeteredUnits
}
