package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// Discount is a single reduction applied to a computed base price.
type Discount struct {
	Type  DiscountType    `json:"type"`
	Value decimal.Decimal `json:"value"`
}

// PriceList is a named, prioritized, time-scoped collection of price rules.
// An empty CustomerSegment means the list applies to any customer.
type PriceList struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	CustomerSegment string      `json:"customer_segment,omitempty"`
	ValidFrom       *time.Time  `json:"valid_from,omitempty"`
	ValidTo         *time.Time  `json:"valid_to,omitempty"`
	Priority        int         `json:"priority"`
	IsDefault       bool        `json:"is_default"`
	Active          bool        `json:"active"`
	Rules           []PriceRule `json:"rules"`
}

// ValidAt reports whether the list's validity window covers the instant.
// Nil bounds are open-ended.
func (pl *PriceList) ValidAt(at time.Time) bool {
	if pl.ValidFrom != nil && at.Before(*pl.ValidFrom) {
		return false
	}
	if pl.ValidTo != nil && at.After(*pl.ValidTo) {
		return false
	}
	return true
}

// MatchesSegment reports whether the list serves the given customer
// segment. Segment-agnostic lists match everything.
func (pl *PriceList) MatchesSegment(segment string) bool {
	return pl.CustomerSegment == "" || pl.CustomerSegment == segment
}

// PriceRule carries tier rates for one product or one category. Exactly one
// of ProductID/CategoryID must be set, and at least one rate configured.
type PriceRule struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id,omitempty"`
	CategoryID       string           `json:"category_id,omitempty"`
	RateHour         *decimal.Decimal `json:"rate_hour,omitempty"`
	RateDay          *decimal.Decimal `json:"rate_day,omitempty"`
	RateWeek         *decimal.Decimal `json:"rate_week,omitempty"`
	RateMonth        *decimal.Decimal `json:"rate_month,omitempty"`
	Discount         *Discount        `json:"discount,omitempty"`
	MinDurationHours int              `json:"min_duration_hours"`
	MinQuantity      int              `json:"min_quantity"`
	ValidFrom        *time.Time       `json:"valid_from,omitempty"`
	ValidTo          *time.Time       `json:"valid_to,omitempty"`
	Active           bool             `json:"active"`
}

// ValidAt reports whether the rule's own validity window covers the instant.
func (r *PriceRule) ValidAt(at time.Time) bool {
	if r.ValidFrom != nil && at.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && at.After(*r.ValidTo) {
		return false
	}
	return true
}

// AppliesTo reports whether the rule is scoped to the product, either
// directly or through its category.
func (r *PriceRule) AppliesTo(p *Product) bool {
	if r.ProductID != "" {
		return r.ProductID == p.ID
	}
	return r.CategoryID != "" && r.CategoryID == p.CategoryID
}

// IsProductSpecific reports whether the rule targets one product rather
// than a whole category.
func (r *PriceRule) IsProductSpecific() bool {
	return r.ProductID != ""
}
