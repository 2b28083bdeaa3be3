package customer

import "time"

type Customer struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishment_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Active          bool      `json:"active"`
	GroupIDs        []string  `json:"group_ids,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// CustomerGroup is a loyalty segment carrying either a percentage or a
// flat discount.
type CustomerGroup struct {
	ID                 string    `json:"id"`
	EstablishmentID    string    `json:"establishment_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	DiscountPercentage float64   `json:"discount_percentage"`
	DiscountAmount     float64   `json:"discount_amount"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}
