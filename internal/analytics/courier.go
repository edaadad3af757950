package analytics

import (
	"cmp"
	"slices"

	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/stats"
)

// TopCouriers is how many couriers each city contributes to a speed ranking
const TopCouriers = 10

// YoungestCourier returns the smallest courier age, false when orders is empty
func YoungestCourier(orders []models.Order) (int, bool) {
	return stats.Min(ints(orders, func(o models.Order) int { return o.CourierAge }))
}

// OldestCourier returns the largest courier age, false when orders is empty
func OldestCourier(orders []models.Order) (int, bool) {
	return stats.Max(ints(orders, func(o models.Order) int { return o.CourierAge }))
}

// BestVehicleCondition returns the highest vehicle condition score
func BestVehicleCondition(orders []models.Order) (int, bool) {
	return stats.Max(ints(orders, func(o models.Order) int { return o.VehicleCondition }))
}

// WorstVehicleCondition returns the lowest vehicle condition score
func WorstVehicleCondition(orders []models.Order) (int, bool) {
	return stats.Min(ints(orders, func(o models.Order) int { return o.VehicleCondition }))
}

// RatingMeanPerCourier averages the ratings of each courier, ordered by
// courier id. A courier with no numeric rating gets NaN.
func RatingMeanPerCourier(orders []models.Order) []models.CourierRating {
	buckets := sortedBuckets(orders, byCourier, rating)
	out := make([]models.CourierRating, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.CourierRating{
			CourierID:  b.key,
			MeanRating: models.Stat(stats.Mean(stats.Finite(b.values))),
		})
	}
	return out
}

// RatingByTraffic summarises ratings per traffic density
func RatingByTraffic(orders []models.Order) []models.GroupStat {
	return groupStats(orders, byTraffic, rating)
}

// RatingByWeather summarises ratings per weather condition
func RatingByWeather(orders []models.Order) []models.GroupStat {
	return groupStats(orders, byWeather, rating)
}

// FastestCouriersPerCity returns, for each city, the couriers with the lowest
// mean delivery time.
func FastestCouriersPerCity(orders []models.Order) []models.CourierSpeed {
	return rankCouriers(orders, func(a, b models.CourierSpeed) int {
		return cmp.Compare(a.MeanMinutes, b.MeanMinutes)
	})
}

// SlowestCouriersPerCity returns, for each city, the couriers with the highest
// mean delivery time.
func SlowestCouriersPerCity(orders []models.Order) []models.CourierSpeed {
	return rankCouriers(orders, func(a, b models.CourierSpeed) int {
		return cmp.Compare(b.MeanMinutes, a.MeanMinutes)
	})
}

// rankCouriers takes the first TopCouriers of each ranked city after a stable
// sort, so tied couriers keep their first-appearance order. Cities are
// concatenated in models.RankedCities order.
func rankCouriers(orders []models.Order, order func(a, b models.CourierSpeed) int) []models.CourierSpeed {
	var out []models.CourierSpeed
	for _, city := range models.RankedCities {
		inCity := make([]models.Order, 0)
		for _, o := range orders {
			if o.City == city {
				inCity = append(inCity, o)
			}
		}

		buckets := collect(inCity, byCourier, minutes)
		speeds := make([]models.CourierSpeed, 0, len(buckets))
		for _, b := range buckets {
			speeds = append(speeds, models.CourierSpeed{
				City:        city,
				CourierID:   b.key,
				MeanMinutes: models.Stat(stats.Mean(b.values)),
			})
		}

		slices.SortStableFunc(speeds, order)
		out = append(out, speeds[:min(TopCouriers, len(speeds))]...)
	}
	if out == nil {
		out = []models.CourierSpeed{}
	}
	return out
}

func ints(orders []models.Order, field func(models.Order) int) []int {
	out := make([]int, len(orders))
	for i, o := range orders {
		out[i] = field(o)
	}
	return out
}
