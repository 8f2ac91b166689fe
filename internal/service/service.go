package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rentcore-backend/internal/domain"
)

// AvailabilityService answers feasibility questions over the hold set. All
// operations are pure reads; nothing here mutates shared state, so checks
// may run concurrently and are advisory until a hold is committed through
// the ledger.
type AvailabilityService interface {
	Check(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error)
	BatchCheck(ctx context.Context, req BatchAvailabilityRequest) (map[string]*AvailabilityResult, error)
	FindAlternativeDates(ctx context.Context, req AlternativesRequest) ([]AlternativeWindow, error)
	Calendar(ctx context.Context, req CalendarRequest) (map[string]DayAvailability, error)
}

// PriceResolver selects pricing configuration: one price list per request,
// then the single most specific rule inside it.
type PriceResolver interface {
	ResolvePriceList(ctx context.Context, customerSegment string, at time.Time) (*domain.PriceList, error)
	ResolvePriceRule(product *domain.Product, list *domain.PriceList, durationHours float64, quantity int, at time.Time) *domain.PriceRule
}

// PricingService computes rental quotes. Quotes are captured by the caller
// at order time; they are never re-derived from holds, so later rate
// changes do not touch confirmed orders.
type PricingService interface {
	CalculateRentalPrice(ctx context.Context, req PriceRequest) (*PriceQuote, error)
}

// LateFeeService computes late-return penalties once an actual return
// timestamp is known.
type LateFeeService interface {
	CalculateLateFee(ctx context.Context, req LateFeeRequest) (*LateFeeResult, error)
}

// LedgerService is the inventory ledger: read views over stock and holds,
// plus the hold-commit path, which is the single serialization point for
// reservation writes.
type LedgerService interface {
	Snapshot(ctx context.Context, productID string, at time.Time) (*LedgerSnapshot, error)
	ActiveHolds(ctx context.Context, productID string, start, end time.Time) ([]domain.Hold, error)
	CommitHold(ctx context.Context, req CommitHoldRequest) (*domain.Hold, []domain.Event, error)
	ReleaseHold(ctx context.Context, holdID string) (*domain.Hold, []domain.Event, error)
}

// OverdueService finds active holds past their scheduled end and reports
// the fee accrued so far, for collaborator jobs to act on.
// Quoted rental amounts are keyed by hold ID; holds without a known amount
// are assessed with a zero base, which zeroes percentage-type fees only.
type OverdueService interface {
	ScanOverdue(ctx context.Context, asOf time.Time, rentalAmounts map[string]decimal.Decimal) ([]OverdueHold, error)
}
