package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EditDraft is the mutable shadow of a book's editable fields while edit
// mode is active. Price is held as text, exactly as typed; it is parsed
// only on save.
type EditDraft struct {
	Title       string
	Author      string
	Description string
	PriceText   string
}

// DraftOf seeds a draft from the canonical book.
func DraftOf(b Book) EditDraft {
	return EditDraft{
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		PriceText:   b.Price.String(),
	}
}

// Price parses the typed price. Unparsable input commits as zero rather
// than blocking the save.
func (d EditDraft) Price() decimal.Decimal {
	p, err := decimal.NewFromString(strings.TrimSpace(d.PriceText))
	if err != nil || p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// UpdateRequest builds the payload sent to the book service.
func (d EditDraft) UpdateRequest() UpdateRequest {
	return UpdateRequest{
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		Price:       d.Price(),
	}
}
