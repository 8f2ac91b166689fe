package repository

import (
	"context"

	"rentcore-backend/internal/domain"
)

// The engines consume read-only views supplied by collaborators: stock
// levels, active holds, pricing configuration, late-fee configuration.
// Hold creation is the single write, and only the ledger's commit path
// performs it.

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

type HoldRepository interface {
	Create(ctx context.Context, hold *domain.Hold) error
	GetByID(ctx context.Context, id string) (*domain.Hold, error)
	// ListActiveByProduct returns every hold for the product whose status
	// still counts against stock. Interval filtering stays in the engine.
	ListActiveByProduct(ctx context.Context, productID string) ([]domain.Hold, error)
	ListByStatus(ctx context.Context, status domain.HoldStatus) ([]domain.Hold, error)
	UpdateStatus(ctx context.Context, id string, status domain.HoldStatus) error
}

type PriceListRepository interface {
	ListActive(ctx context.Context) ([]domain.PriceList, error)
}

type LateFeeRuleRepository interface {
	ListActive(ctx context.Context) ([]domain.LateFeeRule, error)
}
