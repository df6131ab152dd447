// Package locale reports the device locales from the POSIX environment.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguageCode = "en"

type Locale struct {
	Tag          language.Tag
	LanguageTag  string
	LanguageCode string
}

// Detect returns the locales in preference order: LANGUAGE entries, then
// LC_ALL, LC_MESSAGES and LANG. Unparsable values and the C/POSIX locale are
// skipped.
func Detect() []Locale {
	return DetectFrom(os.Getenv)
}

func DetectFrom(getenv func(string) string) []Locale {
	var raw []string
	if v := getenv("LANGUAGE"); v != "" {
		raw = append(raw, strings.Split(v, ":")...)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(key); v != "" {
			raw = append(raw, v)
		}
	}

	seen := make(map[string]struct{}, len(raw))
	locales := make([]Locale, 0, len(raw))
	for _, r := range raw {
		loc, ok := Parse(r)
		if !ok {
			continue
		}
		if _, dup := seen[loc.LanguageTag]; dup {
			continue
		}
		seen[loc.LanguageTag] = struct{}{}
		locales = append(locales, loc)
	}
	return locales
}

// Parse accepts POSIX ("ar_EG.UTF-8@latin") and BCP 47 ("ar-EG") forms.
func Parse(s string) (Locale, bool) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" || s == "C" || s == "POSIX" {
		return Locale{}, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, false
	}
	base, _ := tag.Base()
	return Locale{
		Tag:          tag,
		LanguageTag:  tag.String(),
		LanguageCode: base.String(),
	}, true
}

// LanguageCode is the primary language code, DefaultLanguageCode when none.
func LanguageCode(locales []Locale) string {
	if len(locales) == 0 {
		return DefaultLanguageCode
	}
	return locales[0].LanguageCode
}
