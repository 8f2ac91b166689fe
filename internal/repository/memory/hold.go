package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"rentcore-backend/internal/domain"
)

type HoldStore struct {
	mu    sync.RWMutex
	holds map[string]*domain.Hold
}

func NewHoldStore(holds ...*domain.Hold) *HoldStore {
	s := &HoldStore{holds: make(map[string]*domain.Hold)}
	for _, h := range holds {
		clone := *h
		if clone.ID == "" {
			clone.ID = uuid.NewString()
		}
		s.holds[clone.ID] = &clone
	}
	return s
}

func (s *HoldStore) Create(ctx context.Context, hold *domain.Hold) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	if hold.ID == "" {
		hold.ID = uuid.NewString()
	}
	clone := *hold
	s.holds[clone.ID] = &clone
	return nil
}

func (s *HoldStore) GetByID(ctx context.Context, id string) (*domain.Hold, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.holds[id]
	if !ok {
		return nil, domain.NewNotFoundError("hold", id)
	}
	clone := *h
	return &clone, nil
}

func (s *HoldStore) ListActiveByProduct(ctx context.Context, productID string) ([]domain.Hold, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Hold
	for _, h := range s.holds {
		if h.ProductID == productID && h.Status.CountsAgainstStock() {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (s *HoldStore) ListByStatus(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Hold
	for _, h := range s.holds {
		if h.Status == status {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (s *HoldStore) UpdateStatus(ctx context.Context, id string, status domain.HoldStatus) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[id]
	if !ok {
		return domain.NewNotFoundError("hold", id)
	}
	h.Status = status
	h.UpdatedOn = time.Now().UTC()
	return nil
}
