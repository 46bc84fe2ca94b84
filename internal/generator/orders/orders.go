// Package orders builds the order graph: orders with their lines,
// transactions and reviews, referencing every previously generated entity.
// It also feeds the aggregation stats in the same pass so the rollups never
// need a second scan of the graph.
package orders

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
	"github.com/GlebRadaev/martgen/internal/generator/aggregate"
	"github.com/GlebRadaev/martgen/pkg/money"
	"github.com/GlebRadaev/martgen/pkg/sampling"
	"github.com/GlebRadaev/martgen/pkg/textutil"
)

var (
	ErrNoConsumers   = errors.New("no consumers to place orders")
	ErrNoSellers     = errors.New("no sellers to receive orders")
	ErrNoCommodities = errors.New("no commodities to order")
	ErrEmptyOrder    = errors.New("order generated with zero line items")
)

var (
	orderStatusDist = sampling.NewWeighted(
		[]string{
			domain.OrderStatusDraft, domain.OrderStatusInProgress, domain.OrderStatusPending,
			domain.OrderStatusShipped, domain.OrderStatusDelivered, domain.OrderStatusDone,
			domain.OrderStatusCancelled, domain.OrderStatusAbandoned,
		},
		[]float64{0.02, 0.05, 0.03, 0.10, 0.55, 0.20, 0.03, 0.02},
	)
	transStatusDist = sampling.NewWeighted(
		[]string{
			domain.TransStatusDraft, domain.TransStatusAuthorized, domain.TransStatusCaptured,
			domain.TransStatusFailed, domain.TransStatusRefunded, domain.TransStatusCancelled,
		},
		[]float64{0.05, 0.10, 0.80, 0.03, 0.01, 0.01},
	)
	rateDist = sampling.NewWeighted(
		[]int{1, 2, 3, 4, 5},
		[]float64{0.05, 0.05, 0.15, 0.35, 0.40},
	)
	reviewStatusDist = sampling.NewWeighted(
		[]string{"draft", "published", "deleted", "flagged"},
		[]float64{0.05, 0.90, 0.03, 0.02},
	)
)

var (
	taxRate           = decimal.NewFromFloat(0.08)
	lineDiscountCap   = decimal.NewFromFloat(0.2)
	orderDiscountCap  = decimal.NewFromFloat(0.1)
	fallbackCostRatio = decimal.NewFromFloat(0.6)
)

const (
	maxLineQuantity = 5
	maxShippingFee  = 20.0
	reviewChance    = 0.3
	lineReviewRate  = 0.5
)

type Generator struct {
	rng          *rand.Rand
	faker        *gofakeit.Faker
	now          time.Time
	maxItems     int
	lookbackDays int
}

func New(rng *rand.Rand, faker *gofakeit.Faker, now time.Time, maxItems, lookbackDays int) *Generator {
	return &Generator{
		rng:          rng,
		faker:        faker,
		now:          now,
		maxItems:     maxItems,
		lookbackDays: lookbackDays,
	}
}

// Input is everything the order stage reads. It holds read-only references
// into the earlier stages' collections.
type Input struct {
	Consumers           []domain.Consumer
	Sellers             []domain.Seller
	Commodities         []domain.Commodity
	AddressesByConsumer map[string][]domain.Address
	CardsByConsumer     map[string][]domain.Card
}

// Result is the generated order graph plus the running aggregation stats.
// Skipped counts iterations dropped because the consumer had no address, so
// len(Orders) can fall short of the requested count.
type Result struct {
	Orders       []domain.Order
	Lines        []domain.OrderLine
	Transactions []domain.Transaction
	Reviews      []domain.Review
	Stats        *aggregate.Stats
	Skipped      int
}

// Generate runs count order iterations.
func (g *Generator) Generate(count int, in Input) (*Result, error) {
	if len(in.Consumers) == 0 {
		return nil, ErrNoConsumers
	}
	if len(in.Sellers) == 0 {
		return nil, ErrNoSellers
	}
	if len(in.Commodities) == 0 {
		return nil, ErrNoCommodities
	}

	res := &Result{
		Orders: make([]domain.Order, 0, count),
		Stats:  aggregate.NewStats(),
	}

	for i := 0; i < count; i++ {
		consumer := sampling.PickOne(g.rng, in.Consumers)
		seller := sampling.PickOne(g.rng, in.Sellers)

		addresses := in.AddressesByConsumer[consumer.ID]
		if len(addresses) == 0 {
			res.Skipped++
			continue
		}
		if err := g.generateOrder(res, consumer, seller, addresses, in); err != nil {
			return nil, err
		}
	}

	zap.L().Info("generated order graph",
		zap.Int("orders", len(res.Orders)),
		zap.Int("lines", len(res.Lines)),
		zap.Int("transactions", len(res.Transactions)),
		zap.Int("reviews", len(res.Reviews)),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (g *Generator) generateOrder(res *Result, consumer domain.Consumer, seller domain.Seller, addresses []domain.Address, in Input) error {
	deliveryAddr := sampling.PickOne(g.rng, addresses)
	createdAt := sampling.TimeWithin(g.rng, g.now, g.lookbackDays)
	status := orderStatusDist.Pick(g.rng)
	orderID := uuid.Must(uuid.NewRandomFromReader(g.rng)).String()

	lines, subtotal, err := g.generateLines(orderID, in.Commodities)
	if err != nil {
		return err
	}

	tax := money.Quantize(subtotal.Mul(taxRate))
	shipping := sampling.DecimalBetween(g.rng, 0, maxShippingFee, 4)
	discount := g.uniformDiscount(subtotal, orderDiscountCap)
	total := money.Quantize(subtotal.Add(tax).Add(shipping).Sub(discount))

	order := domain.Order{
		ID:                orderID,
		ConsumerID:        consumer.ID,
		SellerID:          seller.ID,
		Status:            status,
		DeliveryAddress:   deliveryAddr.AddressLine1,
		DeliveryPostal:    deliveryAddr.PostalCode,
		DeliveryReceiver:  deliveryAddr.ReceiverName,
		DeliveryPhone:     deliveryAddr.Phone,
		DeliveryCity:      deliveryAddr.City,
		DeliveryCountry:   deliveryAddr.Country,
		DeliveryLatitude:  deliveryAddr.Latitude,
		DeliveryLongitude: deliveryAddr.Longitude,
		SubtotalAmount:    subtotal,
		TaxAmount:         tax,
		ShippingFee:       shipping,
		DiscountAmount:    discount,
		TotalAmount:       total,
		CreatedAt:         createdAt,
		UpdatedAt:         g.now,
	}
	g.applyLifecycle(&order)

	res.Orders = append(res.Orders, order)
	res.Lines = append(res.Lines, lines...)

	if tx := g.generateTransaction(order, in.CardsByConsumer[consumer.ID]); tx != nil {
		res.Transactions = append(res.Transactions, *tx)
	}
	g.generateReviews(res, order, lines)

	if domain.IsFulfilled(order.Status) {
		res.Stats.AddFulfilledOrder(consumer.ID, seller.ID, order.TotalAmount, order.CreatedAt)
		for _, line := range lines {
			res.Stats.AddLineSold(line.CommodityID, line.Quantity)
		}
	}
	return nil
}

// generateLines samples 1..maxItems distinct commodities and prices each
// line off the commodity snapshot. A zero-line order cannot happen while
// the commodity pool is non-empty; it is asserted anyway because a silent
// empty order would corrupt every downstream total.
func (g *Generator) generateLines(orderID string, commodities []domain.Commodity) ([]domain.OrderLine, decimal.Decimal, error) {
	picked := sampling.Sample(g.rng, commodities, sampling.IntBetween(g.rng, 1, g.maxItems))
	if len(picked) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: order %s", ErrEmptyOrder, orderID)
	}

	lines := make([]domain.OrderLine, 0, len(picked))
	subtotal := decimal.Zero
	for _, c := range picked {
		quantity := sampling.IntBetween(g.rng, 1, maxLineQuantity)
		unitPrice := c.Price
		unitCost := c.CostPrice
		if unitCost.IsZero() {
			unitCost = money.Quantize(unitPrice.Mul(fallbackCostRatio))
		}

		gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		discount := g.uniformDiscount(gross, lineDiscountCap)
		lineTotal := money.Quantize(gross.Sub(discount))

		lines = append(lines, domain.OrderLine{
			OrderID:         orderID,
			CommodityID:     c.ID,
			Quantity:        quantity,
			UnitPrice:       unitPrice,
			UnitCost:        unitCost,
			LineTotal:       lineTotal,
			DiscountApplied: discount,
		})
		subtotal = money.Quantize(subtotal.Add(lineTotal))
	}
	return lines, subtotal, nil
}

// uniformDiscount draws a quantized discount uniformly in [0, base*ratio].
func (g *Generator) uniformDiscount(base, ratio decimal.Decimal) decimal.Decimal {
	ceiling, _ := base.Mul(ratio).Float64()
	if ceiling <= 0 {
		return decimal.Zero
	}
	return sampling.DecimalBetween(g.rng, 0, ceiling, 4)
}

// applyLifecycle walks the forward-only timestamp chain. Each stage's
// timestamp is derived from the previous one, so the chain is monotonic by
// construction and stops exactly where the status stops.
func (g *Generator) applyLifecycle(order *domain.Order) {
	if order.Status == domain.OrderStatusDraft {
		return
	}
	confirmed := order.CreatedAt.Add(time.Duration(sampling.IntBetween(g.rng, 1, 24)) * time.Hour)
	order.ConfirmedAt = &confirmed

	if !domain.IsPaid(order.Status) {
		return
	}
	paid := confirmed.Add(time.Duration(sampling.IntBetween(g.rng, 1, 48)) * time.Hour)
	order.PaidAt = &paid

	if !domain.IsShippedStage(order.Status) {
		return
	}
	daysToShip := sampling.IntBetween(g.rng, 1, 5)
	shipped := paid.AddDate(0, 0, daysToShip)
	order.ShippedAt = &shipped
	order.DaysToShip = &daysToShip

	if !domain.IsDeliveredStage(order.Status) {
		return
	}
	daysToDeliver := sampling.IntBetween(g.rng, 1, 7)
	delivered := shipped.AddDate(0, 0, daysToDeliver)
	order.DeliveredAt = &delivered
	order.DaysToDeliver = &daysToDeliver

	if order.Status != domain.OrderStatusDone {
		return
	}
	completed := delivered.AddDate(0, 0, sampling.IntBetween(g.rng, 7, 14))
	order.CompletedAt = &completed
}

// generateTransaction creates the payment record for orders that progressed
// past the payment stage, provided the consumer owns at least one card.
// Payment is presumed successful once an order got that far, so the status
// is forced to captured.
func (g *Generator) generateTransaction(order domain.Order, cards []domain.Card) *domain.Transaction {
	if !domain.IsPaid(order.Status) || len(cards) == 0 {
		return nil
	}
	card := sampling.PickOne(g.rng, cards)

	created := order.CreatedAt.Add(time.Duration(sampling.IntBetween(g.rng, 0, 2)) * time.Hour)
	status := g.transactionStatus(order.Status)

	tx := domain.Transaction{
		ID:                   uuid.Must(uuid.NewRandomFromReader(g.rng)).String(),
		OrderID:              order.ID,
		CardID:               card.ID,
		PaymentMethod:        "card",
		TransactionType:      "sale",
		Amount:               order.TotalAmount,
		Status:               status,
		CreatedAt:            created,
		GatewayTransactionID: fmt.Sprintf("GTW-%d", sampling.IntBetween(g.rng, 100000000, 999999999)),
		IPAddress:            g.faker.IPv4Address(),
		UserAgent:            textutil.Truncate(textutil.Clean(g.faker.UserAgent()), 255),
	}
	if status == domain.TransStatusCaptured {
		tx.GatewayResponseCode = "00"
		tx.GatewayResponseMessage = "Approved"
	} else {
		tx.GatewayResponseCode = fmt.Sprintf("%02d", sampling.IntBetween(g.rng, 1, 99))
		tx.GatewayResponseMessage = "Declined"
	}
	if status != domain.TransStatusDraft {
		authorized := created.Add(time.Duration(sampling.IntBetween(g.rng, 1, 60)) * time.Second)
		tx.AuthorizedAt = &authorized
	}
	if status == domain.TransStatusCaptured {
		completed := created.Add(time.Duration(sampling.IntBetween(g.rng, 60, 300)) * time.Second)
		tx.CompletedAt = &completed
	}
	return &tx
}

// transactionStatus forces captured for orders that progressed past the
// payment stage; any other status falls back to the weighted distribution.
func (g *Generator) transactionStatus(orderStatus string) string {
	if domain.IsPaid(orderStatus) {
		return domain.TransStatusCaptured
	}
	return transStatusDist.Pick(g.rng)
}

// generateReviews gives each fulfilled order a 30% chance of reviews, and
// each of its lines an independent 50% chance within that. Rates feed the
// aggregation accumulators as they are created.
func (g *Generator) generateReviews(res *Result, order domain.Order, lines []domain.OrderLine) {
	if !domain.IsFulfilled(order.Status) || order.DeliveredAt == nil {
		return
	}
	if !sampling.Chance(g.rng, reviewChance) {
		return
	}

	for _, line := range lines {
		if !sampling.Chance(g.rng, lineReviewRate) {
			continue
		}
		rate := rateDist.Pick(g.rng)

		review := domain.Review{
			ID:                 uuid.Must(uuid.NewRandomFromReader(g.rng)).String(),
			OrderID:            order.ID,
			CommodityID:        line.CommodityID,
			ConsumerID:         order.ConsumerID,
			SellerID:           order.SellerID,
			Rate:               rate,
			Status:             reviewStatusDist.Pick(g.rng),
			IsVerifiedPurchase: true,
			HelpfulCount:       sampling.IntBetween(g.rng, 0, 100),
			CreatedAt:          order.DeliveredAt.AddDate(0, 0, sampling.IntBetween(g.rng, 1, 30)),
			UpdatedAt:          g.now,
			PublishedAt:        order.DeliveredAt.AddDate(0, 0, sampling.IntBetween(g.rng, 1, 31)),
		}
		if sampling.Chance(g.rng, 0.8) {
			review.Comment = textutil.Truncate(textutil.Clean(g.faker.Paragraph(1, 2, 15, " ")), 500)
		}
		res.Reviews = append(res.Reviews, review)
		res.Stats.AddRating(line.CommodityID, order.SellerID, rate)
	}
}
