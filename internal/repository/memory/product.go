// Package memory provides mutex-guarded in-memory implementations of the
// provider interfaces. They back the test suites and give embedding callers
// a reference store with the same copy-on-read guarantees a real store has.
package memory

import (
	"context"
	"sync"

	"rentcore-backend/internal/domain"
)

type ProductStore struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewProductStore(products ...*domain.Product) *ProductStore {
	s := &ProductStore{products: make(map[string]*domain.Product)}
	for _, p := range products {
		s.products[p.ID] = cloneProduct(p)
	}
	return s
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domain.NewNotFoundError("product", id)
	}
	return cloneProduct(p), nil
}

func (s *ProductStore) Put(ctx context.Context, p *domain.Product) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products[p.ID] = cloneProduct(p)
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
