package domain

// Product is the read-only catalog view the engines consume. Catalog
// management owns the record; the core never mutates it.
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CategoryID     string `json:"category_id"`
	TotalStock     int    `json:"total_stock"`
	Rentable       bool   `json:"rentable"`
	MinRentalHours int    `json:"min_rental_hours"`
	MaxRentalHours int    `json:"max_rental_hours"` // 0 = no upper bound
}
