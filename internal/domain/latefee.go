package domain

import "github.com/shopspring/decimal"

type LateFeeType string

const (
	LateFeeTypePercentage   LateFeeType = "PERCENTAGE"
	LateFeeTypeFixedPerDay  LateFeeType = "FIXED_PER_DAY"
	LateFeeTypeFixedPerHour LateFeeType = "FIXED_PER_HOUR"
)

// LateFeeRule is a penalty specification applied when the actual return
// exceeds the scheduled return beyond the grace period. Scope is one of:
// product-specific (ProductID set), category-level (CategoryID set), or
// global (neither set). ProductID and CategoryID are never both set.
type LateFeeRule struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id,omitempty"`
	CategoryID       string           `json:"category_id,omitempty"`
	FeeType          LateFeeType      `json:"fee_type"`
	FeeValue         decimal.Decimal  `json:"fee_value"`
	GracePeriodHours int              `json:"grace_period_hours"`
	MaxFeeAmount     *decimal.Decimal `json:"max_fee_amount,omitempty"`
	MaxFeeDays       *int             `json:"max_fee_days,omitempty"`
	Priority         int              `json:"priority"`
	Active           bool             `json:"active"`
}

// AppliesTo reports whether the rule covers the product. Global rules cover
// every product.
func (r *LateFeeRule) AppliesTo(p *Product) bool {
	if r.ProductID != "" {
		return r.ProductID == p.ID
	}
	if r.CategoryID != "" {
		return r.CategoryID == p.CategoryID
	}
	return true
}

// Specificity ranks the rule scope for resolution: product-specific rules
// beat category rules, which beat global rules.
func (r *LateFeeRule) Specificity() int {
	switch {
	case r.ProductID != "":
		return 2
	case r.CategoryID != "":
		return 1
	default:
		return 0
	}
}
