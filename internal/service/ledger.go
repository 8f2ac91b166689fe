package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
)

type ledgerService struct {
	productRepo repository.ProductRepository
	holdRepo    repository.HoldRepository
	now         func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLedgerService(
	productRepo repository.ProductRepository,
	holdRepo repository.HoldRepository,
) LedgerService {
	return &ledgerService{
		productRepo: productRepo,
		holdRepo:    holdRepo,
		now:         time.Now,
		locks:       make(map[string]*sync.Mutex),
	}
}

// lockFor returns the per-product mutex that serializes hold commits.
// Availability checks stay unsynchronized; only the commit path pays for
// the lock.
func (s *ledgerService) lockFor(productID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[productID] = l
	}
	return l
}

// Snapshot reports stock, held quantity and the available remainder for a
// product at a single instant.
func (s *ledgerService) Snapshot(ctx context.Context, productID string, at time.Time) (*LedgerSnapshot, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	holds, err := s.holdRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list holds for product %s: %w", productID, err)
	}

	held := 0
	for i := range holds {
		h := &holds[i]
		if h.Status.CountsAgainstStock() && !at.Before(h.Start) && at.Before(h.End) {
			held += h.Quantity
		}
	}
	available := product.TotalStock - held
	if available < 0 {
		available = 0
	}
	return &LedgerSnapshot{
		ProductID:         productID,
		At:                at,
		TotalStock:        product.TotalStock,
		HeldQuantity:      held,
		AvailableQuantity: available,
	}, nil
}

// ActiveHolds returns the holds that count against stock and overlap
// [start, end).
func (s *ledgerService) ActiveHolds(ctx context.Context, productID string, start, end time.Time) ([]domain.Hold, error) {
	holds, err := s.holdRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list holds for product %s: %w", productID, err)
	}

	var out []domain.Hold
	for _, h := range holds {
		if h.Status.CountsAgainstStock() && h.Overlaps(start, end) {
			out = append(out, h)
		}
	}
	return out, nil
}

// CommitHold is the single serialization point for reservation writes: it
// re-validates availability under the product's lock and only then records
// the hold. The returned events are for the caller to dispatch; nothing is
// published from here.
func (s *ledgerService) CommitHold(ctx context.Context, req CommitHoldRequest) (*domain.Hold, []domain.Event, error) {
	if err := validateRequest(req); err != nil {
		return nil, nil, err
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, nil, err
	}

	lock := s.lockFor(req.ProductID)
	lock.Lock()
	defer lock.Unlock()

	holds, err := s.holdRepo.ListActiveByProduct(ctx, req.ProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("list holds for product %s: %w", req.ProductID, err)
	}

	excludeOwner := ""
	if req.ExcludeOwnHolds {
		excludeOwner = req.OwnerID
	}
	res := evaluateWindow(product, holds, req.Start, req.End, req.Quantity, excludeOwner)
	now := s.now()
	if !res.Available {
		logger.WithService("ledger").InfoContext(ctx, "commit rejected, window over-committed",
			"product_id", req.ProductID,
			"owner_id", req.OwnerID,
			"requested", req.Quantity,
			"available", res.AvailableQuantity)
		events := []domain.Event{OverbookingPrevented(req, res.AvailableQuantity, now)}
		return nil, events, domain.ErrInsufficientAvailability
	}

	hold := &domain.Hold{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		OwnerID:   req.OwnerID,
		Quantity:  req.Quantity,
		Start:     req.Start,
		End:       req.End,
		Status:    domain.HoldStatusReserved,
		CreatedOn: now.UTC(),
		UpdatedOn: now.UTC(),
	}
	if err := s.holdRepo.Create(ctx, hold); err != nil {
		return nil, nil, fmt.Errorf("create hold: %w", err)
	}

	logger.WithService("ledger").InfoContext(ctx, "hold committed",
		"hold_id", hold.ID,
		"product_id", hold.ProductID,
		"quantity", hold.Quantity)
	events := []domain.Event{domain.NewHoldCommittedEvent(hold, now)}
	return hold, events, nil
}

// ReleaseHold cancels a hold, returning its quantity to the pool, and hands
// back the release event for the caller to dispatch.
func (s *ledgerService) ReleaseHold(ctx context.Context, holdID string) (*domain.Hold, []domain.Event, error) {
	hold, err := s.holdRepo.GetByID(ctx, holdID)
	if err != nil {
		return nil, nil, err
	}
	if !hold.Status.CountsAgainstStock() {
		return nil, nil, fmt.Errorf("hold %s is already %s", holdID, hold.Status)
	}

	lock := s.lockFor(hold.ProductID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.holdRepo.UpdateStatus(ctx, holdID, domain.HoldStatusCancelled); err != nil {
		return nil, nil, fmt.Errorf("cancel hold %s: %w", holdID, err)
	}
	hold.Status = domain.HoldStatusCancelled

	now := s.now()
	logger.WithService("ledger").InfoContext(ctx, "hold released",
		"hold_id", hold.ID, "product_id", hold.ProductID)
	events := []domain.Event{domain.NewHoldReleasedEvent(hold, now)}
	return hold, events, nil
}

// OverbookingPrevented builds the rejection event for a commit that no
// longer fits its window.
func OverbookingPrevented(req CommitHoldRequest, available int, now time.Time) domain.OverbookingPreventedEvent {
	return domain.OverbookingPreventedEvent{
		ProductID:         req.ProductID,
		OwnerID:           req.OwnerID,
		Quantity:          req.Quantity,
		AvailableQuantity: available,
		Start:             req.Start,
		End:               req.End,
		OccurredAt:        now.UTC(),
	}
}
