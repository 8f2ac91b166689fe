package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
	"rentcore-backend/internal/utils"
)

type overdueService struct {
	holdRepo   repository.HoldRepository
	lateFeeSvc LateFeeService
}

func NewOverdueService(holdRepo repository.HoldRepository, lateFeeSvc LateFeeService) OverdueService {
	return &overdueService{
		holdRepo:   holdRepo,
		lateFeeSvc: lateFeeSvc,
	}
}

// ScanOverdue returns the ACTIVE holds whose scheduled end has passed as of
// the given instant, each with the late fee accrued so far. rentalAmounts
// supplies the quoted amount the caller captured per hold; holds without an
// entry are assessed against a zero base, which only affects
// percentage-type fees. The scan mutates nothing; marking holds overdue or
// billing the fee stays with the caller.
func (s *overdueService) ScanOverdue(ctx context.Context, asOf time.Time, rentalAmounts map[string]decimal.Decimal) ([]OverdueHold, error) {
	holds, err := s.holdRepo.ListByStatus(ctx, domain.HoldStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active holds: %w", err)
	}

	var overdue []OverdueHold
	for _, h := range holds {
		if !h.End.Before(asOf) {
			continue
		}

		fee, err := s.lateFeeSvc.CalculateLateFee(ctx, LateFeeRequest{
			ProductID:       h.ProductID,
			ScheduledReturn: h.End,
			ActualReturn:    asOf,
			RentalAmount:    rentalAmounts[h.ID],
		})
		if err != nil {
			return nil, fmt.Errorf("assess late fee for hold %s: %w", h.ID, err)
		}

		overdue = append(overdue, OverdueHold{
			Hold:       h,
			HoursLate:  utils.HoursBetween(h.End, asOf),
			AccruedFee: fee.FeeAmount,
			Currency:   fee.Currency,
		})
	}

	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].HoursLate > overdue[j].HoursLate
	})

	if len(overdue) > 0 {
		logger.WithService("overdue").InfoContext(ctx, "overdue holds found",
			"count", len(overdue), "as_of", asOf.Format(time.RFC3339))
	}
	return overdue, nil
}
