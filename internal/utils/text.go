package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase normalises free text such as holder names: "jane DOE" -> "Jane Doe".
func TitleCase(s string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lower := cases.Lower(language.Und).String(s)
	r := []rune(lower)
	return cases.Upper(language.Und).String(string(r[0])) + string(r[1:])
}
