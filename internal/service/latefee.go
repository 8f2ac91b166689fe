package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"rentcore-backend/internal/config"
	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
	"rentcore-backend/internal/utils"
)

type lateFeeService struct {
	productRepo repository.ProductRepository
	ruleRepo    repository.LateFeeRuleRepository
	cfg         config.PricingConfig
}

func NewLateFeeService(
	productRepo repository.ProductRepository,
	ruleRepo repository.LateFeeRuleRepository,
	cfg config.PricingConfig,
) LateFeeService {
	return &lateFeeService{
		productRepo: productRepo,
		ruleRepo:    ruleRepo,
		cfg:         cfg,
	}
}

// CalculateLateFee computes the penalty for a late return. Returns on time,
// returns within the grace period, and products with no applicable rule all
// yield a zero fee amount, never an error.
func (s *lateFeeService) CalculateLateFee(ctx context.Context, req LateFeeRequest) (*LateFeeResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	result := &LateFeeResult{FeeAmount: decimal.Zero, Currency: s.cfg.Currency}

	if !req.ActualReturn.After(req.ScheduledReturn) {
		return result, nil
	}

	rule, err := s.resolveRule(ctx, product)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return result, nil
	}

	lateHours := utils.HoursBetween(req.ScheduledReturn, req.ActualReturn)
	grace := float64(rule.GracePeriodHours)
	if lateHours <= grace {
		return result, nil
	}
	billableHours := lateHours - grace

	var fee decimal.Decimal
	switch rule.FeeType {
	case domain.LateFeeTypePercentage:
		// Flat penalty regardless of how late: duration is not a factor
		// for this fee type.
		fee = req.RentalAmount.Mul(rule.FeeValue).Div(decimal.NewFromInt(100))
	case domain.LateFeeTypeFixedPerDay:
		lateDays := int(math.Ceil(billableHours / utils.HoursPerDay))
		if rule.MaxFeeDays != nil && lateDays > *rule.MaxFeeDays {
			lateDays = *rule.MaxFeeDays
		}
		fee = rule.FeeValue.Mul(decimal.NewFromInt(int64(lateDays)))
	case domain.LateFeeTypeFixedPerHour:
		cappedHours := billableHours
		if rule.MaxFeeDays != nil {
			maxHours := float64(*rule.MaxFeeDays * utils.HoursPerDay)
			if cappedHours > maxHours {
				cappedHours = maxHours
			}
		}
		fee = rule.FeeValue.Mul(decimal.NewFromFloat(cappedHours))
	default:
		logger.WithService("latefee").Warn("unknown late fee type", "type", string(rule.FeeType))
		return result, nil
	}

	if rule.MaxFeeAmount != nil && fee.GreaterThan(*rule.MaxFeeAmount) {
		fee = *rule.MaxFeeAmount
	}
	result.FeeAmount = fee.Round(2)

	logger.WithService("latefee").DebugContext(ctx, "late fee assessed",
		"product_id", product.ID,
		"rule_id", rule.ID,
		"hours_late", lateHours,
		"fee", result.FeeAmount.String())
	return result, nil
}

// resolveRule picks the most specific active late-fee rule for the product:
// product-specific over category over global, then priority descending.
func (s *lateFeeService) resolveRule(ctx context.Context, product *domain.Product) (*domain.LateFeeRule, error) {
	rules, err := s.ruleRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active late fee rules: %w", err)
	}

	var candidates []domain.LateFeeRule
	for _, r := range rules {
		if r.AppliesTo(product) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		if a.Specificity() != b.Specificity() {
			return a.Specificity() > b.Specificity()
		}
		return a.Priority > b.Priority
	})
	best := candidates[0]
	return &best, nil
}
