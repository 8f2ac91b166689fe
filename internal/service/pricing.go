package service

import (
	"context"

	"github.com/shopspring/decimal"

	"rentcore-backend/internal/config"
	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
	"rentcore-backend/internal/utils"
)

type pricingService struct {
	productRepo repository.ProductRepository
	resolver    PriceResolver
	cfg         config.PricingConfig
}

func NewPricingService(
	productRepo repository.ProductRepository,
	resolver PriceResolver,
	cfg config.PricingConfig,
) PricingService {
	return &pricingService{
		productRepo: productRepo,
		resolver:    resolver,
		cfg:         cfg,
	}
}

// CalculateRentalPrice resolves the governing price list and rule, computes
// the base price by greedy largest-unit decomposition, and applies the
// rule's discount. Absent configuration degrades to a zero quote with empty
// list/rule IDs so callers can tell "priced at zero" from "nothing
// configured".
func (s *pricingService) CalculateRentalPrice(ctx context.Context, req PriceRequest) (*PriceQuote, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	quote := &PriceQuote{Currency: s.cfg.Currency}

	list, err := s.resolver.ResolvePriceList(ctx, req.CustomerSegment, req.Start)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return quote, nil
	}
	quote.PriceListID = list.ID

	totalHours := utils.HoursBetween(req.Start, req.End)
	rule := s.resolver.ResolvePriceRule(product, list, totalHours, req.Quantity, req.Start)
	if rule == nil {
		logger.WithService("pricing").DebugContext(ctx, "no price rule configured",
			"product_id", product.ID, "price_list_id", list.ID)
		return quote, nil
	}
	quote.RuleID = rule.ID

	base, breakdown := calculateBasePrice(rule, totalHours, req.Quantity)
	quote.BasePrice = base
	quote.Breakdown = breakdown

	final, discount := applyDiscount(base, rule.Discount)
	quote.FinalPrice = final
	quote.DiscountAmount = discount
	return quote, nil
}

// calculateBasePrice decomposes the duration into whole months, weeks and
// days plus an hourly remainder, consuming each unit only when its rate is
// configured, then scales linearly by quantity and rounds half-up to two
// decimals. Quantity has no volume effect here; volume shows up only
// through rule thresholds during resolution.
func calculateBasePrice(rule *domain.PriceRule, totalHours float64, quantity int) (decimal.Decimal, PriceBreakdown) {
	units := utils.ConfiguredUnits{
		Month: rule.RateMonth != nil,
		Week:  rule.RateWeek != nil,
		Day:   rule.RateDay != nil,
		Hour:  rule.RateHour != nil,
	}
	d := utils.DecomposeHours(totalHours, units)

	breakdown := PriceBreakdown{
		Months:      d.Months,
		Weeks:       d.Weeks,
		Days:        d.Days,
		Hours:       d.Hours,
		MonthsPrice: decimal.Zero,
		WeeksPrice:  decimal.Zero,
		DaysPrice:   decimal.Zero,
		HoursPrice:  decimal.Zero,
	}
	if d.Months > 0 {
		breakdown.MonthsPrice = rule.RateMonth.Mul(decimal.NewFromInt(int64(d.Months)))
	}
	if d.Weeks > 0 {
		breakdown.WeeksPrice = rule.RateWeek.Mul(decimal.NewFromInt(int64(d.Weeks)))
	}
	if d.Days > 0 {
		breakdown.DaysPrice = rule.RateDay.Mul(decimal.NewFromInt(int64(d.Days)))
	}
	if d.Hours > 0 {
		breakdown.HoursPrice = rule.RateHour.Mul(decimal.NewFromFloat(d.Hours))
	}

	subtotal := breakdown.MonthsPrice.
		Add(breakdown.WeeksPrice).
		Add(breakdown.DaysPrice).
		Add(breakdown.HoursPrice)
	base := subtotal.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	return base, breakdown
}

// applyDiscount returns the discounted price and the discount amount. The
// discount is clamped at the base price so prices never go negative; a nil
// discount passes the base through untouched.
func applyDiscount(base decimal.Decimal, d *domain.Discount) (final, discount decimal.Decimal) {
	if d == nil {
		return base, decimal.Zero
	}

	switch d.Type {
	case domain.DiscountTypePercentage:
		discount = base.Mul(d.Value).Div(decimal.NewFromInt(100))
	case domain.DiscountTypeFixed:
		discount = d.Value
	default:
		// Unknown tag: charge full price rather than guessing a reduction.
		logger.WithService("pricing").Warn("unknown discount type", "type", string(d.Type))
		return base, decimal.Zero
	}

	if discount.GreaterThan(base) {
		discount = base
	}
	discount = discount.Round(2)
	return base.Sub(discount).Round(2), discount
}
