package domain

import "time"

type HoldStatus string

const (
	HoldStatusReserved  HoldStatus = "RESERVED"
	HoldStatusActive    HoldStatus = "ACTIVE"
	HoldStatusCompleted HoldStatus = "COMPLETED"
	HoldStatusCancelled HoldStatus = "CANCELLED"
)

// CountsAgainstStock reports whether a hold in this status still ties up
// inventory. Completed and cancelled holds do not.
func (s HoldStatus) CountsAgainstStock() bool {
	return s == HoldStatusReserved || s == HoldStatusActive
}

// Hold is a committed reservation of quantity for a product over the
// half-open interval [Start, End).
type Hold struct {
	ID        string     `json:"id"`
	ProductID string     `json:"product_id"`
	OwnerID   string     `json:"owner_id"` // order or customer that owns the hold
	Quantity  int        `json:"quantity"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Status    HoldStatus `json:"status"`
	CreatedOn time.Time  `json:"created_on"`
	UpdatedOn time.Time  `json:"updated_on"`
}

// Overlaps reports whether the hold's interval shares at least one instant
// with [start, end). Half-open semantics: a hold ending exactly when the
// window starts does not overlap, so back-to-back bookings never conflict.
func (h *Hold) Overlaps(start, end time.Time) bool {
	return h.Start.Before(end) && h.End.After(start)
}
