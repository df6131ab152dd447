package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/bookshelf/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf/bookshelf/internal/service/library"
	"golang.org/x/text/language"
)

const (
	invalidDate      = "Invalid Date"
	usDateTime       = "1/2/2006, 3:04:05 PM"
	dayFirstDateTime = "02/01/2006, 15:04:05"
)

// dateTimeLayouts maps a language to its short date-time layout. Languages
// not listed use the day-first form.
var dateTimeLayouts = map[language.Base]string{
	language.MustParseBase("de"): "2.1.2006, 15:04:05",
	language.MustParseBase("es"): "2/1/2006, 15:04:05",
	language.MustParseBase("fr"): "02/01/2006 15:04:05",
	language.MustParseBase("it"): "2/1/2006, 15:04:05",
	language.MustParseBase("ja"): "2006/1/2 15:04:05",
	language.MustParseBase("ko"): "2006. 1. 2. 15:04:05",
	language.MustParseBase("nl"): "2-1-2006, 15:04:05",
	language.MustParseBase("pl"): "2.01.2006, 15:04:05",
	language.MustParseBase("pt"): "02/01/2006, 15:04:05",
	language.MustParseBase("ru"): "02.01.2006, 15:04:05",
	language.MustParseBase("tr"): "02.01.2006 15:04:05",
	language.MustParseBase("zh"): "2006/1/2 15:04:05",
}

// ItemLines renders one book of the visible list; n is its 1-based position.
func (s *Screen) ItemLines(b model.Book, n int) []string {
	return []string{
		fmt.Sprintf("[%d] Title: %s", n, b.Title),
		"    Description: " + b.Description,
		"    Is Published: " + yesNo(b.IsPublished),
		"    Is Arabic: " + yesNo(b.IsArabic),
		"    Author: " + b.Author.Name,
		"    Category: " + b.Category.Name,
		"    Book Type: " + b.BookType,
		"    Tags: " + strings.Join(b.Tags, ", "),
		"    Created At: " + formatDateTime(b.CreatedAt.Time, s.lang, s.loc),
		"    Updated At: " + formatDateTime(b.UpdatedAt.Time, s.lang, s.loc),
		"    Cover: " + library.ResourceURL(s.server, b.CoverPhotoURI),
		fmt.Sprintf("    Open PDF (:open %d): %s", n, library.ResourceURL(s.server, b.FileURI)),
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatDateTime(t time.Time, tag language.Tag, loc *time.Location) string {
	if t.IsZero() {
		return invalidDate
	}
	return t.In(loc).Format(dateTimeLayout(tag))
}

func dateTimeLayout(tag language.Tag) string {
	base, _ := tag.Base()
	if base.String() == "en" {
		if region, _ := tag.Region(); region.String() == "US" {
			return usDateTime
		}
		return dayFirstDateTime
	}
	if layout, ok := dateTimeLayouts[base]; ok {
		return layout
	}
	return dayFirstDateTime
}
