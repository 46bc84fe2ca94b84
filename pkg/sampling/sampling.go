// Package sampling holds the random draw primitives every generator uses.
// Nothing here touches global random state: each function takes the run's
// *rand.Rand so a single seeded stream drives the whole pipeline.
package sampling

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// Weighted is a discrete distribution over values. Construct once as a
// package-level variable and draw with Pick.
type Weighted[T any] struct {
	values []T
	cum    []float64
}

// NewWeighted panics on empty or mismatched inputs: distributions are
// compile-time constants and a bad one is a programming error.
func NewWeighted[T any](values []T, weights []float64) Weighted[T] {
	if len(values) == 0 || len(values) != len(weights) {
		panic(fmt.Sprintf("sampling: %d values with %d weights", len(values), len(weights)))
	}
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("sampling: negative weight %f", w))
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		panic("sampling: weights sum to zero")
	}
	return Weighted[T]{values: values, cum: cum}
}

// Pick draws one value according to the weights.
func (w Weighted[T]) Pick(rng *rand.Rand) T {
	target := rng.Float64() * w.cum[len(w.cum)-1]
	for i, c := range w.cum {
		if target < c {
			return w.values[i]
		}
	}
	return w.values[len(w.values)-1]
}

// PickOne draws uniformly. An empty pool is a fatal precondition failure.
func PickOne[T any](rng *rand.Rand, values []T) T {
	if len(values) == 0 {
		panic("sampling: pick from empty pool")
	}
	return values[rng.Intn(len(values))]
}

// Sample draws n distinct values uniformly without replacement. When n
// exceeds the pool size the whole pool is returned (shuffled).
func Sample[T any](rng *rand.Rand, values []T, n int) []T {
	if n > len(values) {
		n = len(values)
	}
	if n <= 0 {
		return nil
	}
	idx := rng.Perm(len(values))[:n]
	out := make([]T, n)
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

// IntBetween draws uniformly from [min, max] inclusive.
func IntBetween(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}

// DecimalBetween draws a uniform decimal in [min, max) rounded half-up to
// the given number of places.
func DecimalBetween(rng *rand.Rand, min, max float64, places int32) decimal.Decimal {
	v := min + rng.Float64()*(max-min)
	return decimal.NewFromFloat(v).Round(places)
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// TimeWithin draws a timestamp uniformly within the lookback window of
// daysBack whole days ending at now.
func TimeWithin(rng *rand.Rand, now time.Time, daysBack int) time.Time {
	if daysBack <= 0 {
		return now
	}
	return now.AddDate(0, 0, -rng.Intn(daysBack+1))
}
