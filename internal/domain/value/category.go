package value

import (
	"strings"

	"git.appkode.ru/pub/go/failure"

	"bidhub/pkg/errcodes"
)

type Category string

const (
	// CategoryAll only exists as a filter; records never carry it.
	CategoryAll                Category = "All"
	CategoryWatches            Category = "Watches"
	CategoryCollectibles       Category = "Collectibles"
	CategoryArtAndAntiques     Category = "Art & Antiques"
	CategoryMusicalInstruments Category = "Musical Instruments"
	CategoryFashion            Category = "Fashion"
	CategoryElectronics        Category = "Electronics"
)

// Categories returns the filter chips in display order.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryWatches,
		CategoryCollectibles,
		CategoryArtAndAntiques,
		CategoryMusicalInstruments,
		CategoryFashion,
		CategoryElectronics,
	}
}

func (c Category) String() string {
	return string(c)
}

// Matches reports whether a record of category other passes this filter.
func (c Category) Matches(other Category) bool {
	return c == CategoryAll || c == other
}

// ParseCategory resolves a filter name case-insensitively. An empty name
// selects All.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, nil
	}

	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}

	return "", failure.NewInvalidArgumentError(
		"unknown category "+s,
		failure.WithCode(errcodes.InvalidCategory),
		failure.WithDescription("unknown category: "+s),
	)
}
