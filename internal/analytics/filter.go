package analytics

import (
	"slices"

	"github.com/jengzang/delivery-insights-go/internal/models"
)

// Filter returns the orders dated within [StartDate, EndDate] whose city,
// traffic density and weather all belong to the filter's sets. The result
// keeps input order and shares no backing array with orders.
func Filter(orders []models.Order, f models.OrderFilter) []models.Order {
	cities := toSet(f.Cities)
	traffic := toSet(f.Traffic)
	weather := toSet(f.Weather)

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderDate.Before(f.StartDate) || o.OrderDate.After(f.EndDate) {
			continue
		}
		if !cities[o.City] || !traffic[o.TrafficDensity] || !weather[o.Weather] {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterOptions lists the distinct filterable values of the table in
// ascending order together with its date range.
func FilterOptions(orders []models.Order) models.FilterOptions {
	opts := models.FilterOptions{
		Cities:  distinct(orders, byCity),
		Traffic: distinct(orders, byTraffic),
		Weather: distinct(orders, byWeather),
	}
	for i, o := range orders {
		if i == 0 || o.OrderDate.Before(opts.MinDate.Time) {
			opts.MinDate = models.NewDate(o.OrderDate)
		}
		if i == 0 || o.OrderDate.After(opts.MaxDate.Time) {
			opts.MaxDate = models.NewDate(o.OrderDate)
		}
	}
	return opts
}

func distinct(orders []models.Order, key func(models.Order) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, o := range orders {
		k := key(o)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	slices.Sort(values)
	return values
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
