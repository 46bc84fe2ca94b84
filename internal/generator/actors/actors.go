// Package actors produces the identity space: users with their consumer or
// seller role record. Rollup fields on the role records stay zeroed here;
// the aggregation pass owns them.
package actors

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
)

var ErrNegativeCount = errors.New("negative actor count")

var (
	userStatusDist = sampling.NewWeighted(
		[]string{domain.StatusActive, domain.StatusInactive, domain.StatusDeleted},
		[]float64{0.95, 0.04, 0.01},
	)
	genderDist = sampling.NewWeighted(
		[]string{"male", "female", "prefer not to say", "undefined"},
		[]float64{0.48, 0.48, 0.02, 0.02},
	)
	sellerTypeDist = sampling.NewWeighted(
		[]string{domain.SellerTypeVendor, domain.SellerTypeAuthorized},
		[]float64{0.85, 0.15},
	)
)

const (
	consumerAccountAgeDays = 730
	sellerAccountAgeDays   = 1095
)

type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

func New(rng *rand.Rand, faker *gofakeit.Faker, now time.Time) *Generator {
	return &Generator{
		rng:   rng,
		faker: faker,
		now:   now,
	}
}

// GenerateConsumers returns n (User, Consumer) pairs sharing ids.
func (g *Generator) GenerateConsumers(n int) ([]domain.User, []domain.Consumer, error) {
	if n < 0 {
		return nil, nil, ErrNegativeCount
	}
	users := make([]domain.User, 0, n)
	consumers := make([]domain.Consumer, 0, n)

	for i := 0; i < n; i++ {
		id := uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
		users = append(users, domain.User{
			ID:        id,
			Username:  fmt.Sprintf("%s%d", g.faker.Username(), sampling.IntBetween(g.rng, 100, 9999)),
			Phone:     textutil.Truncate(g.faker.Phone(), 15),
			Name:      textutil.Truncate(textutil.Clean(g.faker.Name()), 100),
			Email:     g.faker.Email(),
			Status:    userStatusDist.Pick(g.rng),
			CreatedAt: sampling.TimeWithin(g.rng, g.now, consumerAccountAgeDays),
			UpdatedAt: g.now,
		})
		consumers = append(consumers, domain.Consumer{
			ID:              id,
			Birthday:        g.faker.DateRange(g.now.AddDate(-80, 0, 0), g.now.AddDate(-18, 0, 0)),
			Gender:          genderDist.Pick(g.rng),
			TotalOrders:     0,
			TotalSpent:      decimal.Zero,
			CustomerSegment: domain.SegmentOneTime,
		})
	}

	zap.L().Info("generated consumers", zap.Int("count", len(consumers)))
	return users, consumers, nil
}

// GenerateSellers returns n (User, Seller) pairs sharing ids.
func (g *Generator) GenerateSellers(n int) ([]domain.User, []domain.Seller, error) {
	if n < 0 {
		return nil, nil, ErrNegativeCount
	}
	users := make([]domain.User, 0, n)
	sellers := make([]domain.Seller, 0, n)

	for i := 0; i < n; i++ {
		id := uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
		users = append(users, domain.User{
			ID:        id,
			Username:  fmt.Sprintf("seller_%s%d", g.faker.Username(), sampling.IntBetween(g.rng, 100, 9999)),
			Phone:     textutil.Truncate(g.faker.Phone(), 15),
			Name:      textutil.Truncate(textutil.Clean(g.faker.Company()), 100),
			Email:     fmt.Sprintf("seller%d@%s", i, g.faker.DomainName()),
			Status:    userStatusDist.Pick(g.rng),
			CreatedAt: sampling.TimeWithin(g.rng, g.now, sellerAccountAgeDays),
			UpdatedAt: g.now,
		})
		sellers = append(sellers, domain.Seller{
			ID:           id,
			Type:         sellerTypeDist.Pick(g.rng),
			Introduction: textutil.Truncate(textutil.Clean(g.faker.Paragraph(1, 3, 12, " ")), 400),
			Address:      textutil.Truncate(textutil.Clean(g.faker.Street()), 150),
			City:         textutil.Truncate(textutil.Clean(g.faker.City()), 50),
			Province:     textutil.Truncate(textutil.Clean(g.faker.State()), 50),
			Country:      textutil.Truncate(textutil.Clean(g.faker.Country()), 60),
			RatingAvg:    decimal.Zero,
			TotalSales:   decimal.Zero,
			TotalOrders:  0,
		})
	}

	zap.L().Info("generated sellers", zap.Int("count", len(sellers)))
	return users, sellers, nil
}
