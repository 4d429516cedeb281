package model

import (
	"github.com/shopspring/decimal"
)

// DefaultImagePath is shown when a book carries no cover image.
const DefaultImagePath = "images/default.jpg"

// Book is the catalog entity as the remote book service returns it. Books
// are never created by the storefront, only fetched, displayed and edited.
// Price is always present and never negative after any mutation.
type Book struct {
	ID          string          `json:"id"`
	Title       string          `json:"titulo"`
	Author      string          `json:"autor"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Genre       string          `json:"genero"`
	OnSale      bool            `json:"oferta"`
	Popular     bool            `json:"popular"`
	Image       string          `json:"imagen,omitempty"`
	Popularity  *int            `json:"popularidad,omitempty"`
}

// ImagePath returns the cover image path, falling back to the default
// cover when the service sent none.
func (b Book) ImagePath() string {
	if b.Image == "" {
		return DefaultImagePath
	}
	return b.Image
}

// Rank is the popularity ordering key; books without an explicit rank
// fall back to zero and sort last among populars.
func (b Book) Rank() int {
	if b.Popularity != nil {
		return *b.Popularity
	}
	return 0
}
