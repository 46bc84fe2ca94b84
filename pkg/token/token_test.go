package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	h := Hash("4111111111111111")

	assert.Len(t, h, 64)
	assert.Equal(t, h, Hash("4111111111111111"), "same number must produce the same token")
	assert.NotEqual(t, h, Hash("4111111111111112"))
	assert.NotContains(t, h, "4111", "token must not leak card digits")
}

func TestLast4(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "full number", in: "4111111111111234", want: "1234"},
		{name: "exactly four", in: "1234", want: "1234"},
		{name: "shorter than four", in: "12", want: "12"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Last4(tt.in))
		})
	}
}
