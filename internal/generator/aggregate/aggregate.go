// Package aggregate owns the denormalized rollups. The order stage feeds
// Stats incrementally while it generates (one O(orders+lines) pass instead
// of rescanning the order graph per entity); Apply then folds the sums into
// the consumer, seller and commodity records.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/martgen/internal/domain"
	"github.com/GlebRadaev/martgen/pkg/money"
)

// Spend thresholds for customer segmentation.
var (
	segmentVIPThreshold        = decimal.NewFromInt(5000)
	segmentRegularThreshold    = decimal.NewFromInt(1000)
	segmentOccasionalThreshold = decimal.NewFromInt(100)
)

type consumerStats struct {
	orders     int
	spent      decimal.Decimal
	firstOrder *time.Time
}

type sellerStats struct {
	orders  int
	sales   decimal.Decimal
	ratings []int
}

type commodityStats struct {
	sold    int
	ratings []int
}

// Stats accumulates per-entity running sums keyed by entity id. Maps are
// populated lazily with explicit zero-value records.
type Stats struct {
	consumers   map[string]*consumerStats
	sellers     map[string]*sellerStats
	commodities map[string]*commodityStats
}

func NewStats() *Stats {
	return &Stats{
		consumers:   make(map[string]*consumerStats),
		sellers:     make(map[string]*sellerStats),
		commodities: make(map[string]*commodityStats),
	}
}

func (s *Stats) consumer(id string) *consumerStats {
	cs, ok := s.consumers[id]
	if !ok {
		cs = &consumerStats{spent: decimal.Zero}
		s.consumers[id] = cs
	}
	return cs
}

func (s *Stats) seller(id string) *sellerStats {
	ss, ok := s.sellers[id]
	if !ok {
		ss = &sellerStats{sales: decimal.Zero}
		s.sellers[id] = ss
	}
	return ss
}

func (s *Stats) commodity(id string) *commodityStats {
	cs, ok := s.commodities[id]
	if !ok {
		cs = &commodityStats{}
		s.commodities[id] = cs
	}
	return cs
}

// AddFulfilledOrder records a delivered/done order against its consumer and
// seller. firstOrder keeps the earliest creation time seen, not the first
// observed, because orders are generated in no particular date order.
func (s *Stats) AddFulfilledOrder(consumerID, sellerID string, total decimal.Decimal, createdAt time.Time) {
	cs := s.consumer(consumerID)
	cs.orders++
	cs.spent = cs.spent.Add(total)
	if cs.firstOrder == nil || createdAt.Before(*cs.firstOrder) {
		t := createdAt
		cs.firstOrder = &t
	}

	ss := s.seller(sellerID)
	ss.orders++
	ss.sales = ss.sales.Add(total)
}

// AddLineSold records line quantity into the commodity's sold counter.
func (s *Stats) AddLineSold(commodityID string, quantity int) {
	s.commodity(commodityID).sold += quantity
}

// AddRating appends a review rate to the commodity's and seller's
// accumulators.
func (s *Stats) AddRating(commodityID, sellerID string, rate int) {
	s.commodity(commodityID).ratings = append(s.commodity(commodityID).ratings, rate)
	s.seller(sellerID).ratings = append(s.seller(sellerID).ratings, rate)
}

// Apply finalizes the rollups in place. Entities with no activity keep
// their zero values (and the One-time segment).
func Apply(stats *Stats, consumers []domain.Consumer, sellers []domain.Seller, commodities []domain.Commodity) {
	for i := range consumers {
		cs, ok := stats.consumers[consumers[i].ID]
		if !ok {
			continue
		}
		consumers[i].TotalOrders = cs.orders
		consumers[i].TotalSpent = money.Quantize(cs.spent)
		consumers[i].CustomerSegment = SegmentFor(cs.spent)
		consumers[i].FirstOrderDate = cs.firstOrder
	}

	for i := range sellers {
		ss, ok := stats.sellers[sellers[i].ID]
		if !ok {
			continue
		}
		sellers[i].TotalOrders = ss.orders
		sellers[i].TotalSales = money.Quantize(ss.sales)
		sellers[i].RatingAvg = ratingAvg(ss.ratings)
	}

	for i := range commodities {
		cs, ok := stats.commodities[commodities[i].ID]
		if !ok {
			continue
		}
		commodities[i].TotalSold = cs.sold
		commodities[i].ReviewCount = len(cs.ratings)
		commodities[i].RatingAvg = ratingAvg(cs.ratings)
	}

	zap.L().Info("applied aggregates",
		zap.Int("consumers", len(stats.consumers)),
		zap.Int("sellers", len(stats.sellers)),
		zap.Int("commodities", len(stats.commodities)),
	)
}

// SegmentFor maps lifetime spend to a customer segment.
func SegmentFor(spent decimal.Decimal) string {
	switch {
	case spent.GreaterThanOrEqual(segmentVIPThreshold):
		return domain.SegmentVIP
	case spent.GreaterThanOrEqual(segmentRegularThreshold):
		return domain.SegmentRegular
	case spent.GreaterThanOrEqual(segmentOccasionalThreshold):
		return domain.SegmentOccasional
	default:
		return domain.SegmentOneTime
	}
}

// ratingAvg is the mean of the collected rates at 2 decimals, zero when
// nothing was collected.
func ratingAvg(ratings []int) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return money.QuantizeRating(decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(ratings)))))
}
