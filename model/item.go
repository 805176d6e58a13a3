// model/item.go
package model

import "time"

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Created     time.Time `json:"created"`
	IsAvailable bool      `json:"isAvailable"`
}

// SearchFilters is the catalog filter tuple. Nil means the filter is absent
// and imposes no constraint.
type SearchFilters struct {
	Text     *string
	MinPrice *float64
	MaxPrice *float64
}
