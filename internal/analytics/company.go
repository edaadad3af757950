package analytics

import (
	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/stats"
)

// OrdersPerDay counts orders per order date, oldest first
func OrdersPerDay(orders []models.Order) []models.DateCount {
	buckets := sortedBuckets(orders, func(o models.Order) int64 { return o.OrderDate.Unix() }, orderDate)
	out := make([]models.DateCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.DateCount{Date: b.values[0], Orders: len(b.values)})
	}
	return out
}

// OrdersPerWeek counts orders per ISO week number
func OrdersPerWeek(orders []models.Order) []models.WeekCount {
	buckets := sortedBuckets(orders, week, orderID)
	out := make([]models.WeekCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.WeekCount{Week: b.key, Orders: len(b.values)})
	}
	return out
}

// OrdersByTrafficDensity counts orders per traffic density with each
// density's share of all orders
func OrdersByTrafficDensity(orders []models.Order) []models.CategoryCount {
	buckets := sortedBuckets(orders, byTraffic, orderID)
	out := make([]models.CategoryCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.CategoryCount{
			Category: b.key,
			Orders:   len(b.values),
			Share:    models.Stat(stats.Ratio(float64(len(b.values)), float64(len(orders)))),
		})
	}
	return out
}

// OrdersByCityAndTraffic counts orders per (city, traffic density)
func OrdersByCityAndTraffic(orders []models.Order) []models.PairCount {
	buckets := sortedPairBuckets(orders, cityAnd(byTraffic), orderID)
	out := make([]models.PairCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.PairCount{City: b.key.city, Category: b.key.group, Orders: len(b.values)})
	}
	return out
}

// OrdersPerCourierPerWeek divides each week's order count by the number of
// distinct couriers active that week. A week without couriers yields NaN.
func OrdersPerCourierPerWeek(orders []models.Order) []models.WeekRatio {
	buckets := sortedBuckets(orders, week, byCourier)
	out := make([]models.WeekRatio, 0, len(buckets))
	for _, b := range buckets {
		couriers := countDistinct(b.values)
		out = append(out, models.WeekRatio{
			Week:             b.key,
			Orders:           len(b.values),
			Couriers:         couriers,
			OrdersPerCourier: models.Stat(stats.Ratio(float64(len(b.values)), float64(couriers))),
		})
	}
	return out
}

// CentralLocationByCityAndTraffic returns the median delivery point of each
// (city, traffic density) group
func CentralLocationByCityAndTraffic(orders []models.Order) []models.GroupLocation {
	buckets := sortedPairBuckets(orders, cityAnd(byTraffic), func(o models.Order) [2]float64 {
		return [2]float64{o.DeliveryLat, o.DeliveryLon}
	})
	out := make([]models.GroupLocation, 0, len(buckets))
	for _, b := range buckets {
		lats := make([]float64, len(b.values))
		lons := make([]float64, len(b.values))
		for i, p := range b.values {
			lats[i], lons[i] = p[0], p[1]
		}
		out = append(out, models.GroupLocation{
			City:      b.key.city,
			Traffic:   b.key.group,
			Latitude:  stats.Median(lats),
			Longitude: stats.Median(lons),
		})
	}
	return out
}

func orderDate(o models.Order) models.Date { return models.NewDate(o.OrderDate) }
func orderID(o models.Order) string { return o.ID }
func week(o models.Order) int { return o.WeekOfYear }

func cityAnd(second func(models.Order) string) func(models.Order) pairKey {
	return func(o models.Order) pairKey {
		return pairKey{city: o.City, group: second(o)}
	}
}

// countDistinct counts distinct non-empty values
func countDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
