package models

// DateCount is the number of orders placed on one calendar day
type DateCount struct {
	Date   Date `json:"date"`
	Orders int  `json:"orders"`
}

// WeekCount is the number of orders placed in one ISO week
type WeekCount struct {
	Week   int `json:"week"`
	Orders int `json:"orders"`
}

// CategoryCount is the number of orders in one category with its share of the total
type CategoryCount struct {
	Category string `json:"category"`
	Orders   int    `json:"orders"`
	Share    Stat   `json:"share"` // 0-1
}

// PairCount is the number of orders for one (city, category) pair
type PairCount struct {
	City     string `json:"city"`
	Category string `json:"category"`
	Orders   int    `json:"orders"`
}

// WeekRatio is the average number of orders handled per active courier in one ISO week
type WeekRatio struct {
	Week             int  `json:"week"`
	Orders           int  `json:"orders"`
	Couriers         int  `json:"couriers"`
	OrdersPerCourier Stat `json:"ordersPerCourier"` // NaN when no courier was active
}

// GroupLocation is the median delivery point of one (city, traffic) group
type GroupLocation struct {
	City      string  `json:"city"`
	Traffic   string  `json:"traffic"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CourierRating is the mean rating received by one courier
type CourierRating struct {
	CourierID  string `json:"courierId"`
	MeanRating Stat   `json:"meanRating"`
}

// GroupStat holds the mean and sample standard deviation of a value within one group
type GroupStat struct {
	Group string `json:"group"`
	Count int    `json:"count"`
	Mean  Stat   `json:"mean"`
	Std   Stat   `json:"std"`
}

// PairStat holds the mean and sample standard deviation for a two-level group,
// e.g. city then traffic density, for drill-down rendering
type PairStat struct {
	City  string `json:"city"`
	Group string `json:"group"`
	Count int    `json:"count"`
	Mean  Stat   `json:"mean"`
	Std   Stat   `json:"std"`
}

// CourierSpeed is the mean delivery time of one courier within one city
type CourierSpeed struct {
	City        string `json:"city"`
	CourierID   string `json:"courierId"`
	MeanMinutes Stat   `json:"meanMinutes"`
}
