package analytics

import (
	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/stats"
)

// UniqueCouriers counts the distinct couriers in orders
func UniqueCouriers(orders []models.Order) int {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.CourierID
	}
	return countDistinct(ids)
}

// MeanDeliveryDistance is the mean restaurant-to-customer distance in km,
// NaN when orders is empty
func MeanDeliveryDistance(orders []models.Order) float64 {
	distances := make([]float64, len(orders))
	for i, o := range orders {
		distances[i] = o.DistanceKm()
	}
	return stats.Mean(distances)
}

// MeanDistanceByCity summarises delivery distance per city
func MeanDistanceByCity(orders []models.Order) []models.GroupStat {
	return groupStats(orders, byCity, distance)
}

// TimeByFestival summarises delivery time by festival flag
func TimeByFestival(orders []models.Order) []models.GroupStat {
	return groupStats(orders, byFestival, minutes)
}

// TimeByCity summarises delivery time per city
func TimeByCity(orders []models.Order) []models.GroupStat {
	return groupStats(orders, byCity, minutes)
}

// TimeByCityAndTraffic summarises delivery time per (city, traffic density)
func TimeByCityAndTraffic(orders []models.Order) []models.PairStat {
	return pairStats(orders, byTraffic, minutes)
}

// TimeByCityAndOrderType summarises delivery time per (city, order type)
func TimeByCityAndOrderType(orders []models.Order) []models.PairStat {
	return pairStats(orders, byOrderType, minutes)
}
