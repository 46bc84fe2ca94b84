package catalog

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

func newGenerator(seed int64) *Generator {
	rng := rand.New(rand.NewSource(seed))
	return New(rng, gofakeit.NewCustom(rng), testNow, 5.0, 2000.0)
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
		out[i] = domain.Vertical{ID: fmt.Sprintf("vertical-%d", i)}
	}
	return out
}

func makeBySeller(sellers []domain.Seller, verticals []domain.Vertical) map[string][]string {
	bySeller := make(map[string][]string, len(sellers))
	for i, s := range sellers {
		bySeller[s.ID] = []string{verticals[i%len(verticals)].ID, verticals[(i+1)%len(verticals)].ID}
	}
	return bySeller
}

func TestGenerate(t *testing.T) {
	sellers := makeSellers(10)
	verticals := makeVerticals(5)
	bySeller := makeBySeller(sellers, verticals)

	res, err := newGenerator(42).Generate(500, sellers, verticals, bySeller)

	assert.NoError(t, err)
	assert.False(t, res.Degraded)
	assert.Len(t, res.Commodities, 500)

	assigned := map[string]map[string]bool{}
	for id, vs := range bySeller {
		assigned[id] = map[string]bool{}
		for _, v := range vs {
			assigned[id][v] = true
		}
	}

	for _, c := range res.Commodities {
		assert.True(t, assigned[c.SellerID][c.VerticalID],
			"commodity vertical %s not assigned to seller %s", c.VerticalID, c.SellerID)

		price, _ := c.Price.Float64()
		assert.GreaterOrEqual(t, price, 5.0)
		assert.LessOrEqual(t, price, 2000.0001)
		assert.True(t, c.CostPrice.LessThan(c.Price), "cost price must stay below price")
		assert.True(t, c.CostPrice.IsPositive())

		assert.Regexp(t, `^[A-Z]{4}-\d{6}$`, c.SKU)
		assert.NotEmpty(t, c.Name)
		assert.GreaterOrEqual(t, c.Quantity, 0)
		assert.Zero(t, c.ReservedQuantity)

		// Rollups belong to the aggregation pass.
		assert.True(t, c.RatingAvg.IsZero())
		assert.Zero(t, c.ReviewCount)
		assert.Zero(t, c.TotalSold)
	}
}

func TestGenerateSkipsSellersWithoutVerticals(t *testing.T) {
	sellers := makeSellers(4)
	verticals := makeVerticals(3)
	bySeller := map[string][]string{
		sellers[0].ID: {verticals[0].ID},
		sellers[1].ID: {verticals[1].ID},
	}

	res, err := newGenerator(42).Generate(200, sellers, verticals, bySeller)

	assert.NoError(t, err)
	assert.False(t, res.Degraded)
	for _, c := range res.Commodities {
		assert.Contains(t, []string{sellers[0].ID, sellers[1].ID}, c.SellerID)
	}
}

func TestGenerateDegradedFallback(t *testing.T) {
	sellers := makeSellers(3)
	verticals := makeVerticals(4)

	res, err := newGenerator(42).Generate(100, sellers, verticals, map[string][]string{})

	assert.NoError(t, err)
	assert.True(t, res.Degraded, "run without any seller-vertical link must be flagged")
	assert.Len(t, res.Commodities, 100)

	valid := map[string]bool{}
	for _, v := range verticals {
		valid[v.ID] = true
	}
	for _, c := range res.Commodities {
		assert.True(t, valid[c.VerticalID])
	}
}

func TestGenerateEmptyPools(t *testing.T) {
	g := newGenerator(42)

	_, err := g.Generate(10, nil, makeVerticals(3), nil)
	assert.ErrorIs(t, err, ErrNoSellers)

	_, err = g.Generate(10, makeSellers(3), nil, nil)
	assert.ErrorIs(t, err, ErrNoVerticals)
}

func TestGenerateDeterministic(t *testing.T) {
	sellers := makeSellers(5)
	verticals := makeVerticals(3)
	bySeller := makeBySeller(sellers, verticals)

	a, err := newGenerator(7).Generate(50, sellers, verticals, bySeller)
	assert.NoError(t, err)
	b, err := newGenerator(7).Generate(50, sellers, verticals, bySeller)
	assert.NoError(t, err)

	assert.Equal(t, a.Commodities, b.Commodities)
}
