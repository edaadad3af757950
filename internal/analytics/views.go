package analytics

import (
	"slices"

	"github.com/jengzang/delivery-insights-go/internal/models"
)

// View names served by the dashboard
const (
	ViewCompany    = "company"
	ViewCourier    = "courier"
	ViewRestaurant = "restaurant"
)

// ViewBuilder assembles one report view from already filtered orders
type ViewBuilder func(orders []models.Order) any

// viewRegistry maps view names to builders
var viewRegistry = make(map[string]ViewBuilder)

func init() {
	RegisterView(ViewCompany, func(orders []models.Order) any { return Company(orders) })
	RegisterView(ViewCourier, func(orders []models.Order) any { return Courier(orders) })
	RegisterView(ViewRestaurant, func(orders []models.Order) any { return Restaurant(orders) })
}

// RegisterView registers a builder under a view name, replacing any previous one
func RegisterView(name string, builder ViewBuilder) {
	viewRegistry[name] = builder
}

// GetView retrieves the builder for a view name
func GetView(name string) (ViewBuilder, bool) {
	builder, ok := viewRegistry[name]
	return builder, ok
}

// ViewNames lists the registered view names in ascending order
func ViewNames() []string {
	names := make([]string, 0, len(viewRegistry))
	for name := range viewRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Company builds the company view
func Company(orders []models.Order) models.CompanyView {
	return models.CompanyView{
		Orders:                  len(orders),
		OrdersPerDay:            OrdersPerDay(orders),
		OrdersByTraffic:         OrdersByTrafficDensity(orders),
		OrdersByCityAndTraffic:  OrdersByCityAndTraffic(orders),
		OrdersPerWeek:           OrdersPerWeek(orders),
		OrdersPerCourierPerWeek: OrdersPerCourierPerWeek(orders),
		CentralLocations:        CentralLocationByCityAndTraffic(orders),
	}
}

// Courier builds the courier view
func Courier(orders []models.Order) models.CourierView {
	return models.CourierView{
		Orders:                len(orders),
		YoungestAge:           optional(YoungestCourier(orders)),
		OldestAge:             optional(OldestCourier(orders)),
		BestVehicleCondition:  optional(BestVehicleCondition(orders)),
		WorstVehicleCondition: optional(WorstVehicleCondition(orders)),
		RatingPerCourier:      RatingMeanPerCourier(orders),
		RatingByTraffic:       RatingByTraffic(orders),
		RatingByWeather:       RatingByWeather(orders),
		FastestCouriers:       FastestCouriersPerCity(orders),
		SlowestCouriers:       SlowestCouriersPerCity(orders),
	}
}

// Restaurant builds the restaurant view
func Restaurant(orders []models.Order) models.RestaurantView {
	return models.RestaurantView{
		Orders:                 len(orders),
		UniqueCouriers:         UniqueCouriers(orders),
		MeanDistanceKm:         models.Stat(MeanDeliveryDistance(orders)),
		DistanceByCity:         MeanDistanceByCity(orders),
		TimeByFestival:         TimeByFestival(orders),
		TimeByCity:             TimeByCity(orders),
		TimeByCityAndTraffic:   TimeByCityAndTraffic(orders),
		TimeByCityAndOrderType: TimeByCityAndOrderType(orders),
	}
}

func optional(v int, ok bool) *int {
	if !ok {
		return nil
	}
	return &v
}
