// Package cards produces tokenized payment instruments. Numbers are drawn
// from the run PRNG with a computed Luhn check digit (goluhn's generator
// uses crypto/rand, which would break seed reproducibility) and every
// generated number is still validated through goluhn before use.
package cards

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
	"github.com/GlebRadaev/martgen/pkg/token"
)

var ErrInvalidCardNumber = errors.New("generated card number failed luhn check")

var (
	providerDist = sampling.NewWeighted(
		[]string{"visa", "mastercard", "jcb", "diners", "american_express", "discover", "unionpay"},
		[]float64{0.40, 0.30, 0.10, 0.05, 0.05, 0.05, 0.05},
	)
	cardStatusDist = sampling.NewWeighted(
		[]string{"active", "inactive", "expired", "anomaly", "fraud"},
		[]float64{0.90, 0.05, 0.03, 0.01, 0.01},
	)
)

const (
	cardNumberLength = 16
	cardAgeDays      = 1095
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

// Generate creates a uniform count in [min, max] of cards per consumer.
// The first card per consumer is the default. It also returns the
// consumer id -> cards index the order stage picks payment cards from.
func (g *Generator) Generate(consumers []domain.Consumer, min, max int) ([]domain.Card, map[string][]domain.Card, error) {
	if min < 1 || max < min {
		return nil, nil, errors.New("invalid cards per consumer range")
	}

	cards := make([]domain.Card, 0, len(consumers)*min)
	byConsumer := make(map[string][]domain.Card, len(consumers))

	for _, consumer := range consumers {
		count := sampling.IntBetween(g.rng, min, max)
		for i := 0; i < count; i++ {
			number, err := g.cardNumber()
			if err != nil {
				return nil, nil, err
			}
			card := domain.Card{
				ID:         uuid.Must(uuid.NewRandomFromReader(g.rng)).String(),
				ConsumerID: consumer.ID,
				Token:      token.Hash(number),
				Provider:   providerDist.Pick(g.rng),
				Last4:      token.Last4(number),
				CardHolder: textutil.Truncate(textutil.Clean(g.faker.Name()), 100),
				ExpYear:    sampling.IntBetween(g.rng, g.now.Year(), g.now.Year()+6),
				ExpMonth:   sampling.IntBetween(g.rng, 1, 12),
				Status:     cardStatusDist.Pick(g.rng),
				IsDefault:  i == 0,
				CreatedAt:  sampling.TimeWithin(g.rng, g.now, cardAgeDays),
				UpdatedAt:  g.now,
			}
			cards = append(cards, card)
			byConsumer[consumer.ID] = append(byConsumer[consumer.ID], card)
		}
	}

	zap.L().Info("generated cards", zap.Int("count", len(cards)))
	return cards, byConsumer, nil
}

// cardNumber draws 15 digits and appends the Luhn check digit.
func (g *Generator) cardNumber() (string, error) {
	var b strings.Builder
	b.Grow(cardNumberLength)
	// Leading digit is non-zero so the number keeps its full length.
	b.WriteByte(byte('1' + g.rng.Intn(9)))
	for i := 1; i < cardNumberLength-1; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
	number := b.String()
	number += string('0' + rune(checkDigit(number)))

	if err := goluhn.Validate(number); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidCardNumber, err)
	}
	return number, nil
}

// checkDigit computes the Luhn check digit for a digit string.
func checkDigit(digits string) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
