package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDraftOf(t *testing.T) {
	b := Book{
		Title:       "Cosmos",
		Author:      "Carl Sagan",
		Description: "Un viaje personal",
		Price:       decimal.NewFromFloat(25.00),
	}

	d := DraftOf(b)

	assert.Equal(t, "Cosmos", d.Title)
	assert.Equal(t, "Carl Sagan", d.Author)
	assert.Equal(t, "Un viaje personal", d.Description)
	assert.Equal(t, "25", d.PriceText)
}

func TestDraftPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want decimal.Decimal
	}{
		{"plain", "19.90", decimal.NewFromFloat(19.90)},
		{"integer", "12", decimal.NewFromInt(12)},
		{"surrounding spaces", " 9.95 ", decimal.NewFromFloat(9.95)},
		{"unparsable commits as zero", "abc", decimal.Zero},
		{"empty commits as zero", "", decimal.Zero},
		{"negative commits as zero", "-5", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EditDraft{PriceText: tt.text}.Price()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDraftUpdateRequest(t *testing.T) {
	d := EditDraft{
		Title:       "Nuevo título",
		Author:      "Autora",
		Description: "desc",
		PriceText:   "abc",
	}

	req := d.UpdateRequest()

	assert.Equal(t, "Nuevo título", req.Title)
	assert.True(t, decimal.Zero.Equal(req.Price))
}

func TestBookImagePath(t *testing.T) {
	assert.Equal(t, DefaultImagePath, Book{}.ImagePath())
	assert.Equal(t, "images/cosmos.jpg", Book{Image: "images/cosmos.jpg"}.ImagePath())
}
