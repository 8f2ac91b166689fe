package memory

import (
	"context"
	"sync"

	"rentcore-backend/internal/domain"
)

type LateFeeRuleStore struct {
	mu    sync.RWMutex
	rules []domain.LateFeeRule
}

func NewLateFeeRuleStore(rules ...domain.LateFeeRule) *LateFeeRuleStore {
	s := &LateFeeRuleStore{}
	s.rules = append(s.rules, rules...)
	return s
}

func (s *LateFeeRuleStore) ListActive(ctx context.Context) ([]domain.LateFeeRule, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.LateFeeRule
	for _, r := range s.rules {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *LateFeeRuleStore) Put(ctx context.Context, rule domain.LateFeeRule) {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rules {
		if s.rules[i].ID == rule.ID {
			s.rules[i] = rule
			return
		}
	}
	s.rules = append(s.rules, rule)
}
