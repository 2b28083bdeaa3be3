package catalog

import "time"

type Category struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	SortOrder       int       `json:"sort_order"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

type Product struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	CategoryID      string    `json:"category_id,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"image_url,omitempty"`
	SKU             string    `json:"sku,omitempty"`
	Active          bool      `json:"active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProductGroup is one named section of the POS product grid.
type ProductGroup struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
