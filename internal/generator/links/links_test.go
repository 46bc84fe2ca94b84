package links

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/martgen/internal/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newBuilder(seed int64) *Builder {
	rng := rand.New(rand.NewSource(seed))
	return New(rng, gofakeit.NewCustom(rng), testNow)
}

func makeConsumers(n int) []domain.Consumer {
	out := make([]domain.Consumer, n)
	for i := range out {
		out[i] = domain.Consumer{ID: fmt.Sprintf("consumer-%d", i)}
	}
	return out
}

func makeSellers(n int) []domain.Seller {
	out := make([]domain.Seller, n)
	for i := range out {
		out[i] = domain.Seller{ID: fmt.Sprintf("seller-%d", i)}
	}
	return out
}

func makeVerticals(n int) []domain.Vertical {
	out := make([]domain.Vertical, n)
	for i := range out {
		out[i] = domain.Vertical{ID: fmt.Sprintf("vertical-%d", i), Name: fmt.Sprintf("Vertical %d", i)}
	}
	return out
}

func TestBuildAddresses(t *testing.T) {
	consumers := makeConsumers(100)

	addresses, err := newBuilder(42).BuildAddresses(consumers, 1, 3)

	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(addresses), 100)
	assert.LessOrEqual(t, len(addresses), 300)

	defaults := map[string]int{}
	perConsumer := map[string]int{}
	for _, a := range addresses {
		perConsumer[a.UserID]++
		if a.IsDefault {
			defaults[a.UserID]++
		}

		lat, _ := a.Latitude.Float64()
		lng, _ := a.Longitude.Float64()
		assert.GreaterOrEqual(t, lat, -90.0)
		assert.LessOrEqual(t, lat, 90.0)
		assert.GreaterOrEqual(t, lng, -180.0)
		assert.LessOrEqual(t, lng, 180.0)
		assert.False(t, a.CreatedAt.After(testNow))
	}

	for _, c := range consumers {
		assert.GreaterOrEqual(t, perConsumer[c.ID], 1)
		assert.LessOrEqual(t, perConsumer[c.ID], 3)
		assert.Equal(t, 1, defaults[c.ID], "exactly one default address per consumer")
	}
}

func TestBuildAddressesInvalidRange(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
	}{
		{name: "min below one", min: 0, max: 3},
		{name: "max below min", min: 3, max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newBuilder(42).BuildAddresses(makeConsumers(5), tt.min, tt.max)
			assert.Error(t, err)
		})
	}
}

func TestBuildSellerVerticals(t *testing.T) {
	sellers := makeSellers(50)
	verticals := makeVerticals(20)

	links, bySeller, err := newBuilder(42).BuildSellerVerticals(sellers, verticals)

	assert.NoError(t, err)
	assert.Len(t, bySeller, 50, "every seller gets at least one vertical")

	validVerticals := map[string]bool{}
	for _, v := range verticals {
		validVerticals[v.ID] = true
	}

	linkCount := 0
	for sellerID, ids := range bySeller {
		assert.GreaterOrEqual(t, len(ids), 1)
		assert.LessOrEqual(t, len(ids), maxVerticalsPerSeller)
		linkCount += len(ids)

		seen := map[string]bool{}
		for _, id := range ids {
			assert.True(t, validVerticals[id], "unknown vertical id for seller %s", sellerID)
			assert.False(t, seen[id], "duplicate vertical for seller %s", sellerID)
			seen[id] = true
		}
	}
	assert.Len(t, links, linkCount, "link rows must match the index")
}

func TestBuildSellerVerticalsFewVerticals(t *testing.T) {
	links, bySeller, err := newBuilder(42).BuildSellerVerticals(makeSellers(10), makeVerticals(2))

	assert.NoError(t, err)
	assert.NotEmpty(t, links)
	for _, ids := range bySeller {
		assert.LessOrEqual(t, len(ids), 2)
	}
}

func TestBuildSellerVerticalsNoVerticals(t *testing.T) {
	links, bySeller, err := newBuilder(42).BuildSellerVerticals(makeSellers(10), nil)

	assert.ErrorIs(t, err, ErrNoVerticals)
	assert.Nil(t, links)
	assert.Nil(t, bySeller)
}

func TestBuildDeterministic(t *testing.T) {
	consumers := makeConsumers(20)

	a, err := newBuilder(7).BuildAddresses(consumers, 1, 3)
	assert.NoError(t, err)
	b, err := newBuilder(7).BuildAddresses(consumers, 1, 3)
	assert.NoError(t, err)

	assert.Equal(t, a, b)
}
