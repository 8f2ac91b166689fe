package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/multierr"

	"rentcore-backend/internal/config"
	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
	"rentcore-backend/internal/utils"
)

type availabilityService struct {
	productRepo repository.ProductRepository
	holdRepo    repository.HoldRepository
	cfg         config.AvailabilityConfig
	now         func() time.Time
}

func NewAvailabilityService(
	productRepo repository.ProductRepository,
	holdRepo repository.HoldRepository,
	cfg config.AvailabilityConfig,
) AvailabilityService {
	return &availabilityService{
		productRepo: productRepo,
		holdRepo:    holdRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// NewAvailabilityServiceWithClock is NewAvailabilityService with an
// injectable clock for the past-date cut-off in alternative-date search.
func NewAvailabilityServiceWithClock(
	productRepo repository.ProductRepository,
	holdRepo repository.HoldRepository,
	cfg config.AvailabilityConfig,
	now func() time.Time,
) AvailabilityService {
	return &availabilityService{
		productRepo: productRepo,
		holdRepo:    holdRepo,
		cfg:         cfg,
		now:         now,
	}
}

func (s *availabilityService) Check(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	holds, err := s.holdRepo.ListActiveByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("list holds for product %s: %w", req.ProductID, err)
	}

	result := evaluateWindow(product, holds, req.Start, req.End, req.Quantity, req.ExcludeOwnerID)
	if !result.Available {
		logger.WithService("availability").DebugContext(ctx, "window not available",
			"product_id", req.ProductID,
			"requested", req.Quantity,
			"available", result.AvailableQuantity,
			"conflicts", len(result.Conflicts))
	}
	return result, nil
}

// evaluateWindow is the overlap arithmetic shared by every availability
// operation. Holds in RESERVED/ACTIVE that overlap [start, end) count
// against stock; the remainder is clamped at zero so over-committed input
// data never yields a negative availability.
func evaluateWindow(product *domain.Product, holds []domain.Hold, start, end time.Time, quantity int, excludeOwnerID string) *AvailabilityResult {
	reserved := 0
	var conflicts []HoldConflict
	for i := range holds {
		h := &holds[i]
		if !h.Status.CountsAgainstStock() {
			continue
		}
		if excludeOwnerID != "" && h.OwnerID == excludeOwnerID {
			continue
		}
		if !h.Overlaps(start, end) {
			continue
		}
		reserved += h.Quantity
		conflicts = append(conflicts, HoldConflict{
			OwnerID:  h.OwnerID,
			Quantity: h.Quantity,
			Start:    h.Start,
			End:      h.End,
		})
	}

	available := product.TotalStock - reserved
	if available < 0 {
		available = 0
	}

	return &AvailabilityResult{
		Available:         available >= quantity,
		AvailableQuantity: available,
		TotalStock:        product.TotalStock,
		ReservedQuantity:  reserved,
		Conflicts:         conflicts,
	}
}

// BatchCheck runs an independent check per item. Items that fail validation
// or reference unknown products are reported through the aggregated error;
// the remaining items are still answered. Atomic multi-item reservation is
// the order layer's job, not this one's.
func (s *availabilityService) BatchCheck(ctx context.Context, req BatchAvailabilityRequest) (map[string]*AvailabilityResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	results := make(map[string]*AvailabilityResult, len(req.Items))
	var errs error
	for i, item := range req.Items {
		res, err := s.Check(ctx, item)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %d (product %s): %w", i, item.ProductID, err))
			continue
		}
		results[item.ProductID] = res
	}
	return results, errs
}

// FindAlternativeDates probes day-shifted copies of the preferred window
// within ±SearchWindowDays, preserving the requested duration. Candidates
// are ordered by absolute day distance from the preferred start; for equal
// distance the earlier shift wins.
func (s *availabilityService) FindAlternativeDates(ctx context.Context, req AlternativesRequest) ([]AlternativeWindow, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	windowDays := req.SearchWindowDays
	if windowDays == 0 {
		windowDays = s.cfg.DefaultSearchWindowDays
	}
	if windowDays > s.cfg.MaxSearchWindowDays {
		windowDays = s.cfg.MaxSearchWindowDays
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	holds, err := s.holdRepo.ListActiveByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("list holds for product %s: %w", req.ProductID, err)
	}

	duration := req.PreferredEnd.Sub(req.PreferredStart)
	now := s.now()

	var candidates []AlternativeWindow
	for offset := 1; offset <= windowDays; offset++ {
		for _, shift := range []int{-offset, offset} {
			start := req.PreferredStart.AddDate(0, 0, shift)
			if start.Before(now) {
				continue
			}
			end := start.Add(duration)
			res := evaluateWindow(product, holds, start, end, req.Quantity, "")
			if !res.Available {
				continue
			}
			candidates = append(candidates, AlternativeWindow{
				Start:             start,
				End:               end,
				AvailableQuantity: res.AvailableQuantity,
			})
		}
	}

	// Iteration order already yields ascending |distance| with the earlier
	// shift first; the sort keeps that contract explicit.
	sort.SliceStable(candidates, func(i, j int) bool {
		di := absDays(candidates[i].Start.Sub(req.PreferredStart))
		dj := absDays(candidates[j].Start.Sub(req.PreferredStart))
		if di != dj {
			return di < dj
		}
		return candidates[i].Start.Before(candidates[j].Start)
	})

	if len(candidates) > s.cfg.MaxAlternatives {
		candidates = candidates[:s.cfg.MaxAlternatives]
	}
	return candidates, nil
}

func absDays(d time.Duration) int {
	days := int(d.Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// Calendar computes per-day availability over the inclusive date range,
// each day evaluated against its full 24h window. The hold set is fetched
// once and reused across days.
func (s *availabilityService) Calendar(ctx context.Context, req CalendarRequest) (map[string]DayAvailability, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	holds, err := s.holdRepo.ListActiveByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("list holds for product %s: %w", req.ProductID, err)
	}

	days := make(map[string]DayAvailability)
	lastDay := utils.StartOfDay(req.EndDate)
	for day := utils.StartOfDay(req.StartDate); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		res := evaluateWindow(product, holds, day, day.AddDate(0, 0, 1), 1, "")
		days[utils.DayKey(day)] = DayAvailability{
			AvailableQuantity: res.AvailableQuantity,
			ReservedQuantity:  res.ReservedQuantity,
			TotalStock:        res.TotalStock,
		}
	}
	return days, nil
}
