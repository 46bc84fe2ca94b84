package actors

import (
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
	return New(rng, gofakeit.NewCustom(rng), testNow)
}

func TestGenerateConsumers(t *testing.T) {
	users, consumers, err := newGenerator(42).GenerateConsumers(200)

	assert.NoError(t, err)
	assert.Len(t, users, 200)
	assert.Len(t, consumers, 200)

	seen := map[string]bool{}
	for i, u := range users {
		assert.Equal(t, u.ID, consumers[i].ID, "user and consumer must share the id")
		assert.False(t, seen[u.ID], "duplicate user id")
		seen[u.ID] = true

		assert.NotEmpty(t, u.Username)
		assert.NotEmpty(t, u.Email)
		assert.LessOrEqual(t, len(u.Phone), 15)
		assert.Contains(t, []string{domain.StatusActive, domain.StatusInactive, domain.StatusDeleted}, u.Status)
		assert.False(t, u.CreatedAt.After(testNow))
		assert.Equal(t, testNow, u.UpdatedAt)
	}

	for _, c := range consumers {
		age := testNow.Year() - c.Birthday.Year()
		assert.GreaterOrEqual(t, age, 17, "consumer younger than 18")
		assert.LessOrEqual(t, age, 81, "consumer older than 80")

		// Rollups stay zeroed until aggregation runs.
		assert.Zero(t, c.TotalOrders)
		assert.True(t, c.TotalSpent.IsZero())
		assert.Nil(t, c.FirstOrderDate)
		assert.Equal(t, domain.SegmentOneTime, c.CustomerSegment)
	}
}

func TestGenerateConsumersStatusDistribution(t *testing.T) {
	users, _, err := newGenerator(42).GenerateConsumers(5000)
	assert.NoError(t, err)

	counts := map[string]int{}
	for _, u := range users {
		counts[u.Status]++
	}
	assert.Greater(t, counts[domain.StatusActive], 4500, "most consumers should be active")
	assert.Less(t, counts[domain.StatusDeleted], 200)
}

func TestGenerateSellers(t *testing.T) {
	users, sellers, err := newGenerator(42).GenerateSellers(300)

	assert.NoError(t, err)
	assert.Len(t, users, 300)
	assert.Len(t, sellers, 300)

	for i, u := range users {
		assert.Equal(t, u.ID, sellers[i].ID)
		assert.Contains(t, u.Username, "seller_")
	}

	vendors := 0
	for _, s := range sellers {
		assert.Contains(t, []string{domain.SellerTypeVendor, domain.SellerTypeAuthorized}, s.Type)
		if s.Type == domain.SellerTypeVendor {
			vendors++
		}
		assert.NotEmpty(t, s.City)
		assert.NotEmpty(t, s.Country)

		assert.True(t, s.RatingAvg.IsZero())
		assert.True(t, s.TotalSales.IsZero())
		assert.Zero(t, s.TotalOrders)
	}
	assert.Greater(t, vendors, 200, "vendors should dominate the seller types")
}

func TestGenerateNegativeCount(t *testing.T) {
	g := newGenerator(42)

	_, _, err := g.GenerateConsumers(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, _, err = g.GenerateSellers(-1)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestGenerateZeroCount(t *testing.T) {
	g := newGenerator(42)

	users, consumers, err := g.GenerateConsumers(0)
	assert.NoError(t, err)
	assert.Empty(t, users)
	assert.Empty(t, consumers)
}

func TestGenerateDeterministic(t *testing.T) {
	usersA, consumersA, err := newGenerator(7).GenerateConsumers(50)
	assert.NoError(t, err)
	usersB, consumersB, err := newGenerator(7).GenerateConsumers(50)
	assert.NoError(t, err)

	assert.Equal(t, usersA, usersB)
	assert.Equal(t, consumersA, consumersB)
}
