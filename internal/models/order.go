package models

import (
	"time"

	"github.com/jengzang/delivery-insights-go/internal/spatial"
)

// RawRecord is one delivery order exactly as it appears in the source export.
// Every field is kept as text; padding and sentinels are left untouched.
type RawRecord struct {
	ID                 string `json:"id" db:"id"`
	CourierID          string `json:"courierId" db:"courier_id"`
	CourierAge         string `json:"courierAge" db:"courier_age"` // "NaN " when missing
	CourierRating      string `json:"courierRating" db:"courier_rating"`
	RestaurantLat      string `json:"restaurantLat" db:"restaurant_lat"`
	RestaurantLon      string `json:"restaurantLon" db:"restaurant_lon"`
	DeliveryLat        string `json:"deliveryLat" db:"delivery_lat"`
	DeliveryLon        string `json:"deliveryLon" db:"delivery_lon"`
	OrderDate          string `json:"orderDate" db:"order_date"` // DD-MM-YYYY
	TimeOrdered        string `json:"timeOrdered" db:"time_ordered"`
	TimePicked         string `json:"timePicked" db:"time_picked"`
	Weather            string `json:"weather" db:"weather"` // "conditions Sunny"
	TrafficDensity     string `json:"trafficDensity" db:"traffic_density"`
	VehicleCondition   string `json:"vehicleCondition" db:"vehicle_condition"`
	OrderType          string `json:"orderType" db:"order_type"`
	VehicleType        string `json:"vehicleType" db:"vehicle_type"`
	MultipleDeliveries string `json:"multipleDeliveries" db:"multiple_deliveries"`
	Festival           string `json:"festival" db:"festival"`
	City               string `json:"city" db:"city"`
	TimeTaken          string `json:"timeTaken" db:"time_taken"` // "(min) 24"

	// Line is the 1-based line or sheet row the record was read from, 0 when unknown.
	Line int `json:"line,omitempty" db:"source_line"`
}

// Source column names of the delivery export, in file order.
const (
	ColumnID                 = "ID"
	ColumnCourierID          = "Delivery_person_ID"
	ColumnCourierAge         = "Delivery_person_Age"
	ColumnCourierRating      = "Delivery_person_Ratings"
	ColumnRestaurantLat      = "Restaurant_latitude"
	ColumnRestaurantLon      = "Restaurant_longitude"
	ColumnDeliveryLat        = "Delivery_location_latitude"
	ColumnDeliveryLon        = "Delivery_location_longitude"
	ColumnOrderDate          = "Order_Date"
	ColumnTimeOrdered        = "Time_Orderd"
	ColumnTimePicked         = "Time_Order_picked"
	ColumnWeather            = "Weatherconditions"
	ColumnTrafficDensity     = "Road_traffic_density"
	ColumnVehicleCondition   = "Vehicle_condition"
	ColumnOrderType          = "Type_of_order"
	ColumnVehicleType        = "Type_of_vehicle"
	ColumnMultipleDeliveries = "multiple_deliveries"
	ColumnFestival           = "Festival"
	ColumnCity               = "City"
	ColumnTimeTaken          = "Time_taken(min)"
)

// RawColumns lists the export header in file order.
var RawColumns = []string{
	ColumnID, ColumnCourierID, ColumnCourierAge, ColumnCourierRating,
	ColumnRestaurantLat, ColumnRestaurantLon, ColumnDeliveryLat, ColumnDeliveryLon,
	ColumnOrderDate, ColumnTimeOrdered, ColumnTimePicked, ColumnWeather,
	ColumnTrafficDensity, ColumnVehicleCondition, ColumnOrderType, ColumnVehicleType,
	ColumnMultipleDeliveries, ColumnFestival, ColumnCity, ColumnTimeTaken,
}

// Values returns the record's fields in RawColumns order.
func (r RawRecord) Values() []string {
	return []string{
		r.ID, r.CourierID, r.CourierAge, r.CourierRating,
		r.RestaurantLat, r.RestaurantLon, r.DeliveryLat, r.DeliveryLon,
		r.OrderDate, r.TimeOrdered, r.TimePicked, r.Weather,
		r.TrafficDensity, r.VehicleCondition, r.OrderType, r.VehicleType,
		r.MultipleDeliveries, r.Festival, r.City, r.TimeTaken,
	}
}

// Order is the canonical, typed delivery order produced by the normalizer.
type Order struct {
	Index              int       `json:"index"` // contiguous position in the canonical table
	ID                 string    `json:"id"`
	CourierID          string    `json:"courierId"`
	CourierAge         int       `json:"courierAge"`
	CourierRating      float64   `json:"courierRating"` // NaN when the export had no rating
	RestaurantLat      float64   `json:"restaurantLat"`
	RestaurantLon      float64   `json:"restaurantLon"`
	DeliveryLat        float64   `json:"deliveryLat"`
	DeliveryLon        float64   `json:"deliveryLon"`
	OrderDate          time.Time `json:"orderDate"`  // UTC midnight
	WeekOfYear         int       `json:"weekOfYear"` // ISO 8601 week
	Weather            string    `json:"weather"`
	TrafficDensity     string    `json:"trafficDensity"`
	VehicleCondition   int       `json:"vehicleCondition"`
	OrderType          string    `json:"orderType"`
	VehicleType        string    `json:"vehicleType"`
	MultipleDeliveries int       `json:"multipleDeliveries"`
	Festival           string    `json:"festival"`
	City               string    `json:"city"`
	TimeTakenMinutes   int       `json:"timeTakenMinutes"`
}

// DistanceKm returns the great-circle distance from the restaurant to the delivery point.
func (o Order) DistanceKm() float64 {
	return spatial.HaversineKm(o.RestaurantLat, o.RestaurantLon, o.DeliveryLat, o.DeliveryLon)
}

// City constants. The export spells the largest tier "Metropolitian";
// the normalizer rewrites it to CityMetropolitan.
const (
	CityUrban           = "Urban"
	CitySemiUrban       = "Semi-Urban"
	CityMetropolitan    = "Metropolitan"
	CityMetropolitanRaw = "Metropolitian"
)

// RankedCities is the fixed city order used by the courier speed rankings.
var RankedCities = []string{CityUrban, CitySemiUrban, CityMetropolitan}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
