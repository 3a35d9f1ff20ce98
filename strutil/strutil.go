// Package strutil converts identifiers between naming styles and trims text.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CamelToSnake converts camelCase (or PascalCase) to snake_case, inserting an
// underscore before every upper case rune except a leading one.
func CamelToSnake(name string) string {
	var sb strings.Builder

	sb.Grow(len(name) + 4)

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// SnakeToCamel converts snake_case to camelCase. The first component is kept
// as is and every following one is title cased.
func SnakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	title := cases.Title(language.Und)

	var sb strings.Builder

	sb.WriteString(parts[0])

	for _, p := range parts[1:] {
		sb.WriteString(title.String(p))
	}

	return sb.String()
}

// Truncate shortens text to at most length runes, replacing the tail with
// suffix when anything had to be cut. If suffix alone is longer than length
// the suffix itself is cut to fit.
func Truncate(text string, length int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}

	if length <= 0 {
		return ""
	}

	tail := []rune(suffix)
	if len(tail) >= length {
		return string(tail[:length])
	}

	return string(runes[:length-len(tail)]) + suffix
}

// WordCount returns the number of whitespace separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
