package screen

import (
	"strings"

	"github.com/Astemirdum/bookshelf/bookshelf/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter keeps the books whose title contains query, ignoring case. An empty
// query returns books as is. books is never modified.
func Filter(books []model.Book, query string) []model.Book {
	if query == "" {
		return books
	}
	lower := cases.Lower(language.Und)
	q := lower.String(query)

	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(lower.String(b.Title), q) {
			out = append(out, b)
		}
	}
	return out
}
