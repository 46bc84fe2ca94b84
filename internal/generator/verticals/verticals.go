package verticals

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
)

// Store persists the vertical set between runs. Load returns found=false
// when no prior state exists; a malformed state is an error, never an empty
// result, because the provider cannot guarantee catalog stability on top of
// a broken file.
type Store interface {
	Load() ([]domain.Vertical, bool, error)
	Save(verticals []domain.Vertical) error
}

var ErrNoNames = errors.New("no vertical names configured")

var statusDist = sampling.NewWeighted(
	[]string{domain.StatusActive, domain.StatusInactive, domain.StatusDeleted},
	[]float64{0.90, 0.08, 0.02},
)

type Provider struct {
	store Store
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func New(store Store, rng *rand.Rand, faker *gofakeit.Faker) *Provider {
	return &Provider{
		store: store,
		rng:   rng,
		faker: faker,
	}
}

// Obtain returns the stable vertical set. Persisted state wins unchanged;
// otherwise count verticals (capped at the fixed name list, the whole list
// when count <= 0) are generated, saved and returned. Two runs against the
// same store therefore always see identical verticals.
func (p *Provider) Obtain(count int) ([]domain.Vertical, error) {
	loaded, found, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load verticals: %w", err)
	}
	if found {
		zap.L().Info("loaded verticals from master store", zap.Int("count", len(loaded)))
		return loaded, nil
	}

	if len(Names) == 0 {
		return nil, ErrNoNames
	}
	if count <= 0 || count > len(Names) {
		count = len(Names)
	}

	verticals := make([]domain.Vertical, 0, count)
	for _, name := range Names[:count] {
		verticals = append(verticals, domain.Vertical{
			ID:          uuid.Must(uuid.NewRandomFromReader(p.rng)).String(),
			Name:        name,
			Description: textutil.Truncate(textutil.Clean(p.faker.Sentence(12)), 200),
			Status:      statusDist.Pick(p.rng),
		})
	}

	if err := p.store.Save(verticals); err != nil {
		return nil, fmt.Errorf("save verticals: %w", err)
	}
	zap.L().Info("generated verticals master set", zap.Int("count", len(verticals)))

	return verticals, nil
}
