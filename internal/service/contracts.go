package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"rentcore-backend/internal/domain"
)

var validate = validator.New()

// AvailabilityRequest asks whether Quantity units of a product can be
// committed for the half-open window [Start, End). ExcludeOwnerID lets an
// order re-validate itself without counting its own committed holds.
type AvailabilityRequest struct {
	ProductID      string    `json:"product_id" validate:"required"`
	Start          time.Time `json:"start" validate:"required"`
	End            time.Time `json:"end" validate:"required,gtfield=Start"`
	Quantity       int       `json:"quantity" validate:"min=1"`
	ExcludeOwnerID string    `json:"exclude_owner_id,omitempty"`
}

// HoldConflict describes one hold that overlaps a requested window.
type HoldConflict struct {
	OwnerID  string    `json:"owner_id"`
	Quantity int       `json:"quantity"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// AvailabilityResult reports whether the request fits and why not when it
// does not.
type AvailabilityResult struct {
	Available         bool           `json:"available"`
	AvailableQuantity int            `json:"available_quantity"`
	TotalStock        int            `json:"total_stock"`
	ReservedQuantity  int            `json:"reserved_quantity"`
	Conflicts         []HoldConflict `json:"conflicts,omitempty"`
}

type BatchAvailabilityRequest struct {
	Items []AvailabilityRequest `json:"items" validate:"min=1"`
}

type CalendarRequest struct {
	ProductID string    `json:"product_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
}

// DayAvailability is one calendar day's availability, computed over the
// day's full 24h window.
type DayAvailability struct {
	AvailableQuantity int `json:"available_quantity"`
	ReservedQuantity  int `json:"reserved_quantity"`
	TotalStock        int `json:"total_stock"`
}

type AlternativesRequest struct {
	ProductID        string    `json:"product_id" validate:"required"`
	PreferredStart   time.Time `json:"preferred_start" validate:"required"`
	PreferredEnd     time.Time `json:"preferred_end" validate:"required,gtfield=PreferredStart"`
	Quantity         int       `json:"quantity" validate:"min=1"`
	SearchWindowDays int       `json:"search_window_days" validate:"min=0"` // 0 = configured default
}

// AlternativeWindow is a fully available candidate interval with the same
// duration as the preferred window.
type AlternativeWindow struct {
	Start             time.Time `json:"start"`
	End               time.Time `json:"end"`
	AvailableQuantity int       `json:"available_quantity"`
}

type PriceRequest struct {
	ProductID       string    `json:"product_id" validate:"required"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required,gtfield=Start"`
	Quantity        int       `json:"quantity" validate:"min=1"`
	CustomerSegment string    `json:"customer_segment,omitempty"`
}

// PriceBreakdown records how many whole units of each tier the duration
// consumed and what each tier contributed to the base price.
type PriceBreakdown struct {
	Months      int             `json:"months"`
	Weeks       int             `json:"weeks"`
	Days        int             `json:"days"`
	Hours       float64         `json:"hours"`
	MonthsPrice decimal.Decimal `json:"months_price"`
	WeeksPrice  decimal.Decimal `json:"weeks_price"`
	DaysPrice   decimal.Decimal `json:"days_price"`
	HoursPrice  decimal.Decimal `json:"hours_price"`
}

// PriceQuote is the pricing engine's answer. Zero amounts with empty
// PriceListID/RuleID mean no pricing is configured, which is a business
// condition rather than an error.
type PriceQuote struct {
	BasePrice      decimal.Decimal `json:"base_price"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalPrice     decimal.Decimal `json:"final_price"`
	Currency       string          `json:"currency"`
	PriceListID    string          `json:"price_list_id,omitempty"`
	RuleID         string          `json:"rule_id,omitempty"`
	Breakdown      PriceBreakdown  `json:"breakdown"`
}

type LateFeeRequest struct {
	ProductID       string          `json:"product_id" validate:"required"`
	ScheduledReturn time.Time       `json:"scheduled_return" validate:"required"`
	ActualReturn    time.Time       `json:"actual_return" validate:"required"`
	RentalAmount    decimal.Decimal `json:"rental_amount"`
}

type LateFeeResult struct {
	FeeAmount decimal.Decimal `json:"fee_amount"`
	Currency  string          `json:"currency"`
}

// CommitHoldRequest asks the ledger to durably record a hold. When
// ExcludeOwnHolds is set, the commit-time re-validation ignores holds
// already owned by OwnerID, which makes retries of a committed order
// idempotent.
type CommitHoldRequest struct {
	ProductID       string    `json:"product_id" validate:"required"`
	OwnerID         string    `json:"owner_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"min=1"`
	Start           time.Time `json:"start" validate:"required"`
	End             time.Time `json:"end" validate:"required,gtfield=Start"`
	ExcludeOwnHolds bool      `json:"exclude_own_holds,omitempty"`
}

// LedgerSnapshot is the inventory ledger's view of a product at an instant.
type LedgerSnapshot struct {
	ProductID         string    `json:"product_id"`
	At                time.Time `json:"at"`
	TotalStock        int       `json:"total_stock"`
	HeldQuantity      int       `json:"held_quantity"`
	AvailableQuantity int       `json:"available_quantity"`
}

// OverdueHold pairs an active hold past its scheduled end with the late fee
// accrued so far.
type OverdueHold struct {
	Hold       domain.Hold     `json:"hold"`
	HoursLate  float64         `json:"hours_late"`
	AccruedFee decimal.Decimal `json:"accrued_fee"`
	Currency   string          `json:"currency"`
}

// validateRequest maps struct-tag violations onto the core's range-error
// taxonomy so callers see one error shape for all bad input.
func validateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			first := verrs[0]
			return domain.NewInvalidRangeError(describeViolation(first))
		}
		return domain.NewInvalidRangeError(err.Error())
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gtfield":
		return "end must be after start"
	case "gtefield":
		return "end date must not precede start date"
	case "min":
		if fe.Kind().String() == "slice" {
			return "at least one item is required"
		}
		return "quantity must be at least 1"
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " failed validation on " + fe.Tag()
	}
}
