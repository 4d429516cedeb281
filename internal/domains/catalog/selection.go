package catalog

// Selection is the active category filter. It is a closed set of named
// shelves plus free-text genres.
type Selection string

const (
	// SelectionOfertas is the home shelf: books flagged as offers.
	SelectionOfertas Selection = "Ofertas"
	// SelectionTodas shows the whole catalog, unfiltered.
	SelectionTodas Selection = "Todas"
	// SelectionMasPopulares shows the best sellers.
	SelectionMasPopulares Selection = "Más populares"
)

// DefaultSelection is what the home view starts with and what navigation
// back home resets to.
const DefaultSelection = SelectionOfertas

// Genres offered by the category dropdown. Any other genre string is still
// a valid selection; these are just the ones the menu lists.
var Genres = []Selection{"Fantasía", "Terror", "Ciencia", "Infantil"}

// ParseSelection maps a raw query value to a Selection. Empty means the
// default shelf.
func ParseSelection(raw string) Selection {
	if raw == "" {
		return DefaultSelection
	}
	return Selection(raw)
}
