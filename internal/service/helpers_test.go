package service_test

import (
	"time"

	"github.com/shopspring/decimal"

	"rentcore-backend/internal/config"
	"rentcore-backend/internal/domain"
)

// jan returns Jan <day> 2030 at <hour>:00 UTC. Fixture dates are far in the
// future so the alternative-date past cut-off never interferes.
func jan(day, hour int) time.Time {
	return time.Date(2030, 1, day, hour, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(v int) *int {
	return &v
}

func testConfig() *config.Config {
	return config.Default()
}

func drill() *domain.Product {
	return &domain.Product{
		ID:         "tool-drill",
		Name:       "Hammer Drill",
		CategoryID: "cat-power",
		TotalStock: 10,
		Rentable:   true,
	}
}

func reservedHold(productID, ownerID string, qty, startDay, endDay int) *domain.Hold {
	return &domain.Hold{
		ProductID: productID,
		OwnerID:   ownerID,
		Quantity:  qty,
		Start:     jan(startDay, 0),
		End:       jan(endDay, 0),
		Status:    domain.HoldStatusReserved,
	}
}
