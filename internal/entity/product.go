package entity

import "time"

type Product struct {
	ID        int       `json:"_id"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductFilter is the explicit criteria type the listing endpoint builds
// from its query string. Zero values mean "no constraint". The repository
// translates it into SQL.
type ProductFilter struct {
	Search   string  // case-insensitive substring match on name
	MaxPrice float64 // upper bound on price
	Category string  // exact category match
	Sort     string  // "asc" or "dsc" by price, empty for store order
	Page     int
	Limit    int
}

// Offset returns the number of rows to skip for the requested page.
func (f ProductFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
