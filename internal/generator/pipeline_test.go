package generator

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/internal/generator/verticals"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testParams(seed int64) Params {
	return Params{
		Consumers:    10,
		Sellers:      3,
		Commodities:  50,
		Orders:       100,
		AddressesMin: 1,
		AddressesMax: 3,
		CardsMin:     1,
		CardsMax:     3,
		MaxItems:     5,
		PriceMin:     5.0,
		PriceMax:     2000.0,
		LookbackDays: 365,
		Now:          testNow,
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

func runPipeline(t *testing.T, seed int64) *domain.Dataset {
	store := verticals.NewFileStore(filepath.Join(t.TempDir(), "verticals_master.csv"))
	ds, err := New(store, testParams(seed)).Run(context.Background())
	assert.NoError(t, err)
	return ds
}

func TestRunProducesCompleteDataset(t *testing.T) {
	ds := runPipeline(t, 42)

	assert.Len(t, ds.Users, 13, "10 consumers + 3 sellers")
	assert.Len(t, ds.Consumers, 10)
	assert.Len(t, ds.Sellers, 3)
	assert.NotEmpty(t, ds.Verticals)
	assert.NotEmpty(t, ds.SellerVerticals)
	assert.GreaterOrEqual(t, len(ds.Addresses), 10)
	assert.GreaterOrEqual(t, len(ds.Cards), 10)
	assert.Len(t, ds.Commodities, 50)
	assert.Len(t, ds.Orders, 100, "every consumer has an address, so nothing is skipped")
	assert.NotEmpty(t, ds.OrderLines)
	assert.False(t, ds.DegradedCatalog)
}

func TestRunReferentialIntegrity(t *testing.T) {
	ds := runPipeline(t, 42)

	userIDs := map[string]bool{}
	for _, u := range ds.Users {
		userIDs[u.ID] = true
	}
	consumerIDs := map[string]bool{}
	for _, c := range ds.Consumers {
		assert.True(t, userIDs[c.ID], "consumer without user record")
		consumerIDs[c.ID] = true
	}
	sellerIDs := map[string]bool{}
	for _, s := range ds.Sellers {
		assert.True(t, userIDs[s.ID], "seller without user record")
		sellerIDs[s.ID] = true
	}

	assigned := map[string]map[string]bool{}
	for _, sv := range ds.SellerVerticals {
		assert.True(t, sellerIDs[sv.SellerID])
		if assigned[sv.SellerID] == nil {
			assigned[sv.SellerID] = map[string]bool{}
		}
		assigned[sv.SellerID][sv.VerticalID] = true
	}

	commodityIDs := map[string]bool{}
	for _, c := range ds.Commodities {
		assert.True(t, sellerIDs[c.SellerID])
		assert.True(t, assigned[c.SellerID][c.VerticalID],
			"commodity vertical must come from its seller's assigned set")
		commodityIDs[c.ID] = true
	}

	for _, a := range ds.Addresses {
		assert.True(t, consumerIDs[a.UserID])
	}

	cardIDs := map[string]bool{}
	cardOwner := map[string]string{}
	for _, c := range ds.Cards {
		assert.True(t, consumerIDs[c.ConsumerID])
		cardIDs[c.ID] = true
		cardOwner[c.ID] = c.ConsumerID
	}

	orderIDs := map[string]bool{}
	orderConsumer := map[string]string{}
	for _, o := range ds.Orders {
		assert.True(t, consumerIDs[o.ConsumerID])
		assert.True(t, sellerIDs[o.SellerID])
		orderIDs[o.ID] = true
		orderConsumer[o.ID] = o.ConsumerID
	}

	for _, line := range ds.OrderLines {
		assert.True(t, orderIDs[line.OrderID])
		assert.True(t, commodityIDs[line.CommodityID])
	}

	for _, tx := range ds.Transactions {
		assert.True(t, orderIDs[tx.OrderID])
		assert.True(t, cardIDs[tx.CardID])
		assert.Equal(t, orderConsumer[tx.OrderID], cardOwner[tx.CardID],
			"transaction card must belong to the ordering consumer")
	}

	for _, r := range ds.Reviews {
		assert.True(t, orderIDs[r.OrderID])
		assert.True(t, commodityIDs[r.CommodityID])
		assert.True(t, consumerIDs[r.ConsumerID])
		assert.True(t, sellerIDs[r.SellerID])
	}
}

func TestRunDeterministic(t *testing.T) {
	a := runPipeline(t, 42)
	b := runPipeline(t, 42)

	assert.Equal(t, a, b, "same seed and reference time must reproduce the dataset exactly")
}

func TestRunDifferentSeedsDiffer(t *testing.T) {
	a := runPipeline(t, 42)
	b := runPipeline(t, 43)

	assert.NotEqual(t, a.Users, b.Users)
}

func TestRunReusesVerticalsMaster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verticals_master.csv")

	first, err := New(verticals.NewFileStore(path), testParams(1)).Run(context.Background())
	assert.NoError(t, err)

	second, err := New(verticals.NewFileStore(path), testParams(2)).Run(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, first.Verticals, second.Verticals,
		"vertical ids must stay stable once the master file exists")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := verticals.NewFileStore(filepath.Join(t.TempDir(), "verticals_master.csv"))
	_, err := New(store, testParams(42)).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
