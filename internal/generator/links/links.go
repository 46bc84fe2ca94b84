// Package links builds the reference graph between the actor stage and the
// catalog/order stages: shipping addresses per consumer and the
// seller-vertical link table, plus the seller index later stages consume.
package links

import (
	"errors"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
)

var ErrNoVerticals = errors.New("no verticals to assign")

const (
	maxVerticalsPerSeller = 5
	addressAgeDays        = 365
	linkAgeDays           = 730
	secondaryLineChance   = 0.3
)

type Builder struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

func New(rng *rand.Rand, faker *gofakeit.Faker, now time.Time) *Builder {
	return &Builder{
		rng:   rng,
		faker: faker,
		now:   now,
	}
}

// BuildAddresses generates a uniform count in [min, max] of addresses per
// consumer; the first one per consumer is the default.
func (b *Builder) BuildAddresses(consumers []domain.Consumer, min, max int) ([]domain.Address, error) {
	if min < 1 || max < min {
		return nil, errors.New("invalid addresses per consumer range")
	}

	addresses := make([]domain.Address, 0, len(consumers)*min)
	for _, consumer := range consumers {
		count := sampling.IntBetween(b.rng, min, max)
		for i := 0; i < count; i++ {
			addr := domain.Address{
				ID:           uuid.Must(uuid.NewRandomFromReader(b.rng)).String(),
				UserID:       consumer.ID,
				AddressLine1: textutil.Truncate(textutil.Clean(b.faker.Street()), 100),
				City:         textutil.Truncate(textutil.Clean(b.faker.City()), 50),
				Province:     textutil.Truncate(textutil.Clean(b.faker.State()), 50),
				Country:      textutil.Truncate(textutil.Clean(b.faker.Country()), 30),
				PostalCode:   textutil.Truncate(b.faker.Zip(), 10),
				Phone:        textutil.Truncate(b.faker.Phone(), 15),
				ReceiverName: textutil.Truncate(textutil.Clean(b.faker.Name()), 100),
				IsDefault:    i == 0,
				Latitude:     sampling.DecimalBetween(b.rng, -90, 90, 7),
				Longitude:    sampling.DecimalBetween(b.rng, -180, 180, 7),
				CreatedAt:    sampling.TimeWithin(b.rng, b.now, addressAgeDays),
				UpdatedAt:    b.now,
			}
			if sampling.Chance(b.rng, secondaryLineChance) {
				addr.AddressLine2 = textutil.Truncate(textutil.Clean(b.faker.StreetNumber()), 100)
			}
			addresses = append(addresses, addr)
		}
	}

	zap.L().Info("generated addresses", zap.Int("count", len(addresses)))
	return addresses, nil
}

// BuildSellerVerticals links every seller to 1..min(5, |verticals|)
// distinct verticals and returns the link rows together with the
// seller id -> vertical ids index the catalog stage picks from.
func (b *Builder) BuildSellerVerticals(sellers []domain.Seller, verticals []domain.Vertical) ([]domain.SellerVertical, map[string][]string, error) {
	if len(verticals) == 0 {
		return nil, nil, ErrNoVerticals
	}

	limit := maxVerticalsPerSeller
	if len(verticals) < limit {
		limit = len(verticals)
	}

	links := make([]domain.SellerVertical, 0, len(sellers))
	bySeller := make(map[string][]string, len(sellers))
	for _, seller := range sellers {
		count := sampling.IntBetween(b.rng, 1, limit)
		for _, v := range sampling.Sample(b.rng, verticals, count) {
			links = append(links, domain.SellerVertical{
				SellerID:   seller.ID,
				VerticalID: v.ID,
				CreatedAt:  sampling.TimeWithin(b.rng, b.now, linkAgeDays),
				UpdatedAt:  b.now,
			})
			bySeller[seller.ID] = append(bySeller[seller.ID], v.ID)
		}
	}

	zap.L().Info("generated seller-vertical links", zap.Int("count", len(links)))
	return links, bySeller, nil
}
