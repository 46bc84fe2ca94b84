// Package textutil sanitizes free-text fields for pipe-delimited export.
package textutil

import "strings"

var replacer = strings.NewReplacer(
	"|", " ",
	"\n", " ",
	"\r", " ",
	`"`, "'",
)

// Clean strips the delimiter, line breaks and double quotes from a text
// field and collapses runs of whitespace.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(replacer.Replace(s)), " ")
}

// Truncate cuts a string to at most n bytes on a rune boundary.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	size := 0
	for _, r := range runes {
		size += len(string(r))
		if size > n {
			break
		}
		out = append(out, r)
	}
	return string(out)
}
