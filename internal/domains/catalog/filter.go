package catalog

import (
	"sort"

	"libreria-storefront/internal/domains/book/model"
)

// DeriveFiltered computes the shelf for a selection. It is a pure
// function: no I/O, no hidden change tracking; callers re-invoke it
// whenever the books or the selection change. Identical inputs always
// produce identical output, membership and order included.
//
// An empty result is a valid shelf ("no books in this category"), not an
// error.
func DeriveFiltered(books []model.Book, sel Selection) []model.Book {
	switch sel {
	case SelectionTodas:
		out := make([]model.Book, len(books))
		copy(out, books)
		return out

	case SelectionOfertas:
		return filter(books, func(b model.Book) bool { return b.OnSale })

	case SelectionMasPopulares:
		populars := filter(books, func(b model.Book) bool { return b.Popular })
		// Best sellers read rank-first; the sort is stable so equal ranks
		// keep the service's order.
		sort.SliceStable(populars, func(i, j int) bool {
			return populars[i].Rank() > populars[j].Rank()
		})
		return populars

	default:
		genre := string(sel)
		return filter(books, func(b model.Book) bool { return b.Genre == genre })
	}
}

func filter(books []model.Book, keep func(model.Book) bool) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
