// Package catalog produces commodities. The referential-integrity rule is
// that a commodity's vertical comes from its seller's assigned set; the
// documented degraded fallback (no seller has any vertical) keeps the run
// alive but is flagged on the result and in the log.
package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/money"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
)

var (
	ErrNoSellers   = errors.New("no sellers to own commodities")
	ErrNoVerticals = errors.New("no verticals to classify commodities")
)

var commodityStatusDist = sampling.NewWeighted(
	[]string{"available", "unavailable", "out of stock", "discontinued"},
	[]float64{0.85, 0.08, 0.05, 0.02},
)

var skuPrefixes = []string{"ELEC", "FASH", "HOME", "FOOD", "SPRT", "BABY", "AUTO", "BOOK"}

const (
	costPriceMinRatio = 0.4
	costPriceMaxRatio = 0.8
	catalogAgeDays    = 730
)

type Generator struct {
	rng      *rand.Rand
	faker    *gofakeit.Faker
	now      time.Time
	priceMin float64
	priceMax float64
}

func New(rng *rand.Rand, faker *gofakeit.Faker, now time.Time, priceMin, priceMax float64) *Generator {
	return &Generator{
		rng:      rng,
		faker:    faker,
		now:      now,
		priceMin: priceMin,
		priceMax: priceMax,
	}
}

// Result carries the commodities and the degraded-integrity flag.
type Result struct {
	Commodities []domain.Commodity
	Degraded    bool
}

// Generate creates n commodities. Sellers without any assigned vertical are
// never picked; when no seller has one at all, generation degrades to a
// uniform vertical from the full set instead of failing.
func (g *Generator) Generate(n int, sellers []domain.Seller, verticals []domain.Vertical, bySeller map[string][]string) (*Result, error) {
	if len(sellers) == 0 {
		return nil, ErrNoSellers
	}
	if len(verticals) == 0 {
		return nil, ErrNoVerticals
	}

	eligible := make([]domain.Seller, 0, len(sellers))
	for _, s := range sellers {
		if len(bySeller[s.ID]) > 0 {
			eligible = append(eligible, s)
		}
	}

	degraded := false
	if len(eligible) == 0 {
		degraded = true
		eligible = sellers
		zap.L().Warn("no seller has any vertical; degrading to uniform vertical assignment")
	}

	verticalIDs := make([]string, len(verticals))
	for i, v := range verticals {
		verticalIDs[i] = v.ID
	}

	commodities := make([]domain.Commodity, 0, n)
	for i := 0; i < n; i++ {
		seller := sampling.PickOne(g.rng, eligible)

		var verticalID string
		if assigned := bySeller[seller.ID]; len(assigned) > 0 {
			verticalID = sampling.PickOne(g.rng, assigned)
		} else {
			verticalID = sampling.PickOne(g.rng, verticalIDs)
		}

		price := sampling.DecimalBetween(g.rng, g.priceMin, g.priceMax, 4)
		costRatio := sampling.DecimalBetween(g.rng, costPriceMinRatio, costPriceMaxRatio, 4)

		c := domain.Commodity{
			ID:              uuid.Must(uuid.NewRandomFromReader(g.rng)).String(),
			SellerID:        seller.ID,
			SKU:             g.sku(),
			Name:            textutil.Truncate(textutil.Clean(g.faker.ProductName()), 255),
			Price:           price,
			CostPrice:       money.Quantize(price.Mul(costRatio)),
			Quantity:        sampling.IntBetween(g.rng, 0, 5000),
			ReorderLevel:    sampling.IntBetween(g.rng, 5, 50),
			ReorderQuantity: sampling.IntBetween(g.rng, 50, 500),
			WeightKg:        sampling.DecimalBetween(g.rng, 0.1, 50.0, 4),
			VerticalID:      verticalID,
			Status:          commodityStatusDist.Pick(g.rng),
			CreatedAt:       sampling.TimeWithin(g.rng, g.now, catalogAgeDays),
			UpdatedAt:       g.now,
		}
		if sampling.Chance(g.rng, 0.7) {
			c.Description = textutil.Truncate(textutil.Clean(g.faker.Sentence(15)), 200)
		}
		if sampling.Chance(g.rng, 0.4) {
			c.TechnicalInfo = textutil.Truncate(textutil.Clean(g.faker.Sentence(15)), 200)
		}
		if sampling.Chance(g.rng, 0.3) {
			c.GuaranteeInfo = textutil.Truncate(textutil.Clean(g.faker.Sentence(15)), 200)
		}
		if sampling.Chance(g.rng, 0.6) {
			c.ManufacturerName = textutil.Truncate(textutil.Clean(g.faker.Company()), 100)
		}
		commodities = append(commodities, c)
	}

	zap.L().Info("generated commodities", zap.Int("count", len(commodities)), zap.Bool("degraded", degraded))
	return &Result{Commodities: commodities, Degraded: degraded}, nil
}

func (g *Generator) sku() string {
	prefix := sampling.PickOne(g.rng, skuPrefixes)
	return fmt.Sprintf("%s-%d", prefix, sampling.IntBetween(g.rng, 100000, 999999))
}
