package types

import "time"

// Session holds the data uploaded by a single household for the duration
// of an advisory session. Analytics are always recomputed from Appliances;
// nothing derived is stored here.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Appliances []ApplianceRecord `json:"appliances"`
	// Bill is nil until a bill has been submitted.
	Bill *BillRecord `json:"bill,omitempty"`
}
