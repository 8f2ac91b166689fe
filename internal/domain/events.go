package domain

import "time"

// Event is a domain event produced by the hold-commit path. The core never
// dispatches events itself; callers forward them to ledger/notification
// collaborators explicitly.
type Event interface {
	EventName() string
}

// HoldCommittedEvent is emitted when a hold is durably recorded.
type HoldCommittedEvent struct {
	HoldID     string
	ProductID  string
	OwnerID    string
	Quantity   int
	Start      time.Time
	End        time.Time
	OccurredAt time.Time
}

func (HoldCommittedEvent) EventName() string { return "hold.committed" }

func NewHoldCommittedEvent(h *Hold, now time.Time) HoldCommittedEvent {
	return HoldCommittedEvent{
		HoldID:     h.ID,
		ProductID:  h.ProductID,
		OwnerID:    h.OwnerID,
		Quantity:   h.Quantity,
		Start:      h.Start,
		End:        h.End,
		OccurredAt: now.UTC(),
	}
}

// HoldReleasedEvent is emitted when a hold is cancelled and its quantity
// returns to the available pool.
type HoldReleasedEvent struct {
	HoldID     string
	ProductID  string
	Quantity   int
	OccurredAt time.Time
}

func (HoldReleasedEvent) EventName() string { return "hold.released" }

func NewHoldReleasedEvent(h *Hold, now time.Time) HoldReleasedEvent {
	return HoldReleasedEvent{
		HoldID:     h.ID,
		ProductID:  h.ProductID,
		Quantity:   h.Quantity,
		OccurredAt: now.UTC(),
	}
}

// OverbookingPreventedEvent is emitted when a commit is rejected because the
// requested quantity no longer fits the window.
type OverbookingPreventedEvent struct {
	ProductID         string
	OwnerID           string
	Quantity          int
	AvailableQuantity int
	Start             time.Time
	End               time.Time
	OccurredAt        time.Time
}

func (OverbookingPreventedEvent) EventName() string { return "hold.overbooking_prevented" }
