package models

// CompanyView is the company-perspective report: order volume over time and
// by traffic, courier throughput per week and central delivery points
type CompanyView struct {
	Orders                  int             `json:"orders"`
	OrdersPerDay            []DateCount     `json:"ordersPerDay"`
	OrdersByTraffic         []CategoryCount `json:"ordersByTraffic"`
	OrdersByCityAndTraffic  []PairCount     `json:"ordersByCityAndTraffic"`
	OrdersPerWeek           []WeekCount     `json:"ordersPerWeek"`
	OrdersPerCourierPerWeek []WeekRatio     `json:"ordersPerCourierPerWeek"`
	CentralLocations        []GroupLocation `json:"centralLocations"`
}

// CourierView is the courier-perspective report.
// Scalar extremes are nil when no order matched the filter.
type CourierView struct {
	Orders                int             `json:"orders"`
	YoungestAge           *int            `json:"youngestAge"`
	OldestAge             *int            `json:"oldestAge"`
	BestVehicleCondition  *int            `json:"bestVehicleCondition"`
	WorstVehicleCondition *int            `json:"worstVehicleCondition"`
	RatingPerCourier      []CourierRating `json:"ratingPerCourier"`
	RatingByTraffic       []GroupStat     `json:"ratingByTraffic"`
	RatingByWeather       []GroupStat     `json:"ratingByWeather"`
	FastestCouriers       []CourierSpeed  `json:"fastestCouriers"`
	SlowestCouriers       []CourierSpeed  `json:"slowestCouriers"`
}

// RestaurantView is the restaurant-perspective report: courier pool, delivery
// distance and delivery time breakdowns
type RestaurantView struct {
	Orders                 int         `json:"orders"`
	UniqueCouriers         int         `json:"uniqueCouriers"`
	MeanDistanceKm         Stat        `json:"meanDistanceKm"`
	DistanceByCity         []GroupStat `json:"distanceByCity"`
	TimeByFestival         []GroupStat `json:"timeByFestival"`
	TimeByCity             []GroupStat `json:"timeByCity"`
	TimeByCityAndTraffic   []PairStat  `json:"timeByCityAndTraffic"`
	TimeByCityAndOrderType []PairStat  `json:"timeByCityAndOrderType"`
}
