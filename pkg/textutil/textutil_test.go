package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "strips delimiter", in: "a|b|c", want: "a b c"},
		{name: "strips newlines", in: "line one\nline two\r\nline three", want: "line one line two line three"},
		{name: "quotes become apostrophes", in: `the "best" product`, want: "the 'best' product"},
		{name: "collapses whitespace", in: "a   b\t\tc", want: "a b c"},
		{name: "empty", in: "", want: ""},
		{name: "only junk", in: "|\n\r", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "shorter than limit", in: "abc", n: 10, want: "abc"},
		{name: "exact limit", in: "abc", n: 3, want: "abc"},
		{name: "cut", in: "abcdef", n: 3, want: "abc"},
		{name: "multibyte boundary", in: "héllo", n: 2, want: "h"},
		{name: "zero", in: "abc", n: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}
