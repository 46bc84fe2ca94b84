// Package generator wires the pipeline stages in dependency order:
// verticals -> actors -> links/addresses -> catalog -> cards -> order graph
// -> aggregation. The run is strictly sequential and every random draw
// comes from the one seeded stream in Params, so a fixed seed (with a fixed
// reference time and the same verticals master state) reproduces the
// dataset exactly.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/internal/generator/actors"
	"github.com/GlebRadaev/martgen/internal/generator/aggregate"
	"github.com/GlebRadaev/martgen/internal/generator/cards"
	"github.com/GlebRadaev/martgen/internal/generator/catalog"
	"github.com/GlebRadaev/martgen/internal/generator/links"
	"github.com/GlebRadaev/martgen/internal/generator/orders"
	"github.com/GlebRadaev/martgen/internal/generator/verticals"
)

type Params struct {
	Consumers    int
	Sellers      int
	Commodities  int
	Orders       int
	AddressesMin int
	AddressesMax int
	CardsMin     int
	CardsMax     int
	MaxItems     int
	PriceMin     float64
	PriceMax     float64
	LookbackDays int

	Now  time.Time
	Rand *rand.Rand
}

type Pipeline struct {
	store  verticals.Store
	params Params
	faker  *gofakeit.Faker
}

func New(store verticals.Store, params Params) *Pipeline {
	return &Pipeline{
		store:  store,
		params: params,
		// The faker shares the pipeline's random source; one seed drives
		// every draw of the run.
		faker: gofakeit.NewCustom(params.Rand),
	}
}

// Run executes every stage and returns the complete dataset.
func (p *Pipeline) Run(ctx context.Context) (*domain.Dataset, error) {
	rng, faker, now := p.params.Rand, p.faker, p.params.Now

	verts, err := verticals.New(p.store, rng, faker).Obtain(0)
	if err != nil {
		return nil, err
	}

	actorGen := actors.New(rng, faker, now)
	consumerUsers, consumers, err := actorGen.GenerateConsumers(p.params.Consumers)
	if err != nil {
		return nil, err
	}
	sellerUsers, sellers, err := actorGen.GenerateSellers(p.params.Sellers)
	if err != nil {
		return nil, err
	}

	linkBuilder := links.New(rng, faker, now)
	sellerVerticals, verticalsBySeller, err := linkBuilder.BuildSellerVerticals(sellers, verts)
	if err != nil {
		return nil, err
	}
	addresses, err := linkBuilder.BuildAddresses(consumers, p.params.AddressesMin, p.params.AddressesMax)
	if err != nil {
		return nil, err
	}

	catalogRes, err := catalog.New(rng, faker, now, p.params.PriceMin, p.params.PriceMax).
		Generate(p.params.Commodities, sellers, verts, verticalsBySeller)
	if err != nil {
		return nil, err
	}

	cardSet, cardsByConsumer, err := cards.New(rng, faker, now).
		Generate(consumers, p.params.CardsMin, p.params.CardsMax)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	addressesByConsumer := make(map[string][]domain.Address, len(consumers))
	for _, addr := range addresses {
		addressesByConsumer[addr.UserID] = append(addressesByConsumer[addr.UserID], addr)
	}

	orderRes, err := orders.New(rng, faker, now, p.params.MaxItems, p.params.LookbackDays).
		Generate(p.params.Orders, orders.Input{
			Consumers:           consumers,
			Sellers:             sellers,
			Commodities:         catalogRes.Commodities,
			AddressesByConsumer: addressesByConsumer,
			CardsByConsumer:     cardsByConsumer,
		})
	if err != nil {
		return nil, err
	}

	aggregate.Apply(orderRes.Stats, consumers, sellers, catalogRes.Commodities)

	users := make([]domain.User, 0, len(consumerUsers)+len(sellerUsers))
	users = append(users, consumerUsers...)
	users = append(users, sellerUsers...)

	return &domain.Dataset{
		Users:           users,
		Consumers:       consumers,
		Sellers:         sellers,
		Verticals:       verts,
		SellerVerticals: sellerVerticals,
		Addresses:       addresses,
		Cards:           cardSet,
		Commodities:     catalogRes.Commodities,
		Orders:          orderRes.Orders,
		OrderLines:      orderRes.Lines,
		Transactions:    orderRes.Transactions,
		Reviews:         orderRes.Reviews,
		DegradedCatalog: catalogRes.Degraded,
	}, nil
}
