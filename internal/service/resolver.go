package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rentcore-backend/internal/domain"
	"rentcore-backend/internal/logger"
	"rentcore-backend/internal/repository"
)

type priceResolver struct {
	priceListRepo repository.PriceListRepository
}

func NewPriceResolver(priceListRepo repository.PriceListRepository) PriceResolver {
	return &priceResolver{priceListRepo: priceListRepo}
}

// ResolvePriceList chooses the single list that governs a pricing request:
// active lists valid at the instant, segment-matching lists first, then
// priority descending, then default flag. When nothing matches the segment
// filter, the first active default list is the fallback. A nil return
// means no pricing is configured at all.
func (r *priceResolver) ResolvePriceList(ctx context.Context, customerSegment string, at time.Time) (*domain.PriceList, error) {
	lists, err := r.priceListRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active price lists: %w", err)
	}

	var candidates []domain.PriceList
	for _, pl := range lists {
		if pl.ValidAt(at) && pl.MatchesSegment(customerSegment) {
			candidates = append(candidates, pl)
		}
	}

	if len(candidates) == 0 {
		for _, pl := range lists {
			if pl.IsDefault {
				fallback := pl
				return &fallback, nil
			}
		}
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := &candidates[i], &candidates[j]
		// A list scoped to the requested segment beats a segment-agnostic one.
		if customerSegment != "" {
			aExact := a.CustomerSegment == customerSegment
			bExact := b.CustomerSegment == customerSegment
			if aExact != bExact {
				return aExact
			}
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.IsDefault && !b.IsDefault
	})

	best := candidates[0]
	logger.WithService("pricing").Debug("resolved price list",
		"price_list_id", best.ID, "segment", customerSegment)
	return &best, nil
}

// ResolvePriceRule picks the single best rule in the list for the product,
// instant, duration and quantity. Survivors are ranked by specificity:
// product-scoped beats category-scoped, then the higher duration threshold,
// then the higher quantity threshold. The most demanding rule that the
// request still satisfies wins.
func (r *priceResolver) ResolvePriceRule(product *domain.Product, list *domain.PriceList, durationHours float64, quantity int, at time.Time) *domain.PriceRule {
	if list == nil {
		return nil
	}

	var candidates []domain.PriceRule
	for _, rule := range list.Rules {
		if !rule.Active || !rule.ValidAt(at) || !rule.AppliesTo(product) {
			continue
		}
		if float64(rule.MinDurationHours) > durationHours {
			continue
		}
		if rule.MinQuantity > quantity {
			continue
		}
		candidates = append(candidates, rule)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return morePreferredRule(&candidates[i], &candidates[j])
	})
	best := candidates[0]
	return &best
}

// morePreferredRule is the specificity comparator, kept as a standalone
// function so the ordering is unit-testable without any storage behind it.
func morePreferredRule(a, b *domain.PriceRule) bool {
	if a.IsProductSpecific() != b.IsProductSpecific() {
		return a.IsProductSpecific()
	}
	if a.MinDurationHours != b.MinDurationHours {
		return a.MinDurationHours > b.MinDurationHours
	}
	return a.MinQuantity > b.MinQuantity
}
