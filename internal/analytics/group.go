// Package analytics is the aggregation library behind the dashboard views.
// Every function is a pure transform over the canonical order table: inputs
// are never modified and an empty table yields empty groupings or NaN/ok=false
// scalars instead of an error.
package analytics

import (
	"cmp"
	"slices"

	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/stats"
)

// bucket holds the values collected for one group key
type bucket[K comparable, V any] struct {
	key    K
	values []V
}

// collect groups a projection of orders by key, keeping first-appearance order
// of keys and of values within each group.
func collect[K comparable, V any](orders []models.Order, key func(models.Order) K, value func(models.Order) V) []bucket[K, V] {
	pos := make(map[K]int)
	var buckets []bucket[K, V]
	for _, o := range orders {
		k := key(o)
		i, ok := pos[k]
		if !ok {
			i = len(buckets)
			pos[k] = i
			buckets = append(buckets, bucket[K, V]{key: k})
		}
		buckets[i].values = append(buckets[i].values, value(o))
	}
	return buckets
}

// sortedBuckets is collect with buckets ordered by key
func sortedBuckets[K cmp.Ordered, V any](orders []models.Order, key func(models.Order) K, value func(models.Order) V) []bucket[K, V] {
	buckets := collect(orders, key, value)
	slices.SortStableFunc(buckets, func(a, b bucket[K, V]) int {
		return cmp.Compare(a.key, b.key)
	})
	return buckets
}

// pairKey is a two-level group key: city first, then a second category
type pairKey struct {
	city  string
	group string
}

func comparePairs(a, b pairKey) int {
	if c := cmp.Compare(a.city, b.city); c != 0 {
		return c
	}
	return cmp.Compare(a.group, b.group)
}

func sortedPairBuckets[V any](orders []models.Order, key func(models.Order) pairKey, value func(models.Order) V) []bucket[pairKey, V] {
	buckets := collect(orders, key, value)
	slices.SortStableFunc(buckets, func(a, b bucket[pairKey, V]) int {
		return comparePairs(a.key, b.key)
	})
	return buckets
}

// groupStats summarises a float projection per single key
func groupStats(orders []models.Order, key func(models.Order) string, value func(models.Order) float64) []models.GroupStat {
	buckets := sortedBuckets(orders, key, value)
	out := make([]models.GroupStat, 0, len(buckets))
	for _, b := range buckets {
		s := stats.Summarize(b.values)
		out = append(out, models.GroupStat{
			Group: b.key,
			Count: s.Count,
			Mean:  models.Stat(s.Mean),
			Std:   models.Stat(s.Std),
		})
	}
	return out
}

// pairStats summarises a float projection per (city, second key)
func pairStats(orders []models.Order, second func(models.Order) string, value func(models.Order) float64) []models.PairStat {
	buckets := sortedPairBuckets(orders, cityAnd(second), value)
	out := make([]models.PairStat, 0, len(buckets))
	for _, b := range buckets {
		s := stats.Summarize(b.values)
		out = append(out, models.PairStat{
			City:  b.key.city,
			Group: b.key.group,
			Count: s.Count,
			Mean:  models.Stat(s.Mean),
			Std:   models.Stat(s.Std),
		})
	}
	return out
}

// Field accessors shared by the view catalogs.
func byCity(o models.Order) string { return o.City }
func byTraffic(o models.Order) string { return o.TrafficDensity }
func byWeather(o models.Order) string { return o.Weather }
func byFestival(o models.Order) string { return o.Festival }
func byCourier(o models.Order) string { return o.CourierID }
func byOrderType(o models.Order) string { return o.OrderType }

func minutes(o models.Order) float64 { return float64(o.TimeTakenMinutes) }
func rating(o models.Order) float64 { return o.CourierRating }
func distance(o models.Order) float64 { return o.DistanceKm() }
