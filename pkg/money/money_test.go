package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already quantized", in: "12.3456", want: "12.3456"},
		{name: "rounds half up", in: "12.34565", want: "12.3457"},
		{name: "rounds down below half", in: "12.34564", want: "12.3456"},
		{name: "integer", in: "100", want: "100"},
		{name: "zero", in: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(Quantize(in)), "got %s", Quantize(in))
		})
	}
}

func TestQuantizeRating(t *testing.T) {
	in := decimal.RequireFromString("4.675")
	assert.Equal(t, "4.68", QuantizeRating(in).String())

	in = decimal.RequireFromString("4.674")
	assert.Equal(t, "4.67", QuantizeRating(in).String())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "pads fraction", in: "12.3", want: "12.3000"},
		{name: "integer", in: "100", want: "100.0000"},
		{name: "rounds first", in: "0.99995", want: "1.0000"},
		{name: "zero", in: "0", want: "0.0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.50", FormatRating(decimal.RequireFromString("4.5")))
	assert.Equal(t, "0.00", FormatRating(decimal.Zero))
	assert.Equal(t, "5.00", FormatRating(decimal.RequireFromString("5")))
}
