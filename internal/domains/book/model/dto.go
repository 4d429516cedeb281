package model

import "github.com/shopspring/decimal"

// UpdateRequest is the payload for updating a book's editable fields,
// keyed by the book id on the route.
type UpdateRequest struct {
	Title       string          `json:"titulo"`
	Author      string          `json:"autor"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
}
