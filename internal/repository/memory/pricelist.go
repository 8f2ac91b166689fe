package memory

import (
	"context"
	"sync"

	"rentcore-backend/internal/domain"
)

type PriceListStore struct {
	mu    sync.RWMutex
	lists []domain.PriceList
}

func NewPriceListStore(lists ...domain.PriceList) *PriceListStore {
	s := &PriceListStore{}
	s.lists = append(s.lists, lists...)
	return s
}

func (s *PriceListStore) ListActive(ctx context.Context) ([]domain.PriceList, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PriceList
	for _, pl := range s.lists {
		if pl.Active {
			out = append(out, pl)
		}
	}
	return out, nil
}

func (s *PriceListStore) Put(ctx context.Context, pl domain.PriceList) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lists {
		if s.lists[i].ID == pl.ID {
			s.lists[i] = pl
			return
		}
	}
	s.lists = append(s.lists, pl)
}
