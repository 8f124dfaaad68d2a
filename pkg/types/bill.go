package types

// BillRecord holds the fields extracted from a utility bill. Only
// MeteredUnits feeds the analytics; the remaining fields are carried
// opaquely for display. Missing fields keep their zero values.
type BillRecord struct {
	ConsumerNo   string `json:"consumerNo,omitempty"`
	ConsumerName string `json:"consumerName,omitempty"`
	BillMonth    string `json:"billMonth,omitempty"`
	BillingDate  string `json:"billingDate,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`

	MeteredUnits float64 `json:"meteredUnits"`
	TotalAmount  float64 `json:"totalAmount"`

	PreviousReading int `json:"previousReading"`
	CurrentReading  int `json:"currentReading"`
}
