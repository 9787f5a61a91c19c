// Package casing provides the identifier transforms used to derive generated
// class and field names from arbitrary object keys. Both transforms are pure
// and deterministic so repeated runs over the same samples produce identical
// output.
package casing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var wordBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// ToSnakeCase converts text to snake_case by inserting an underscore before
// each uppercase letter that follows a lowercase letter or digit, then
// lowercasing the result. Leading underscore runs are kept verbatim.
func ToSnakeCase(text string) string {
	return strings.ToLower(wordBoundary.ReplaceAllString(text, "${1}_${2}"))
}

// ToPascalCase converts text to PascalCase. The input is split on
// underscores, empty segments are dropped (collapsing leading and repeated
// underscores), and each remaining segment gets its first letter uppercased.
func ToPascalCase(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, part := range strings.Split(text, "_") {
		if part == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(part)
		builder.WriteRune(unicode.ToUpper(first))
		builder.WriteString(part[size:])
	}
	return builder.String()
}
