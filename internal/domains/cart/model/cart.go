package model

import "github.com/shopspring/decimal"

// CartItem is an add-to-cart request line. Quantity is always >= 1.
type CartItem struct {
	BookID   string `json:"libroId"`
	Quantity int    `json:"cantidad"`
}

// Confirmation reports a successful submission. It carries the quantity
// and title actually submitted, captured before the selector resets.
type Confirmation struct {
	Title    string          `json:"titulo"`
	Quantity int             `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}
