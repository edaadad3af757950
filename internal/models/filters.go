package models

import "time"

// OrderFilter narrows the canonical table before aggregation.
// Dates are inclusive. A nil or empty membership set admits nothing.
type OrderFilter struct {
	StartDate time.Time
	EndDate   time.Time
	Cities    []string
	Traffic   []string
	Weather   []string
}

// FilterQuery represents the query parameters accepted by the view endpoints
type FilterQuery struct {
	StartDate string   `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string   `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Cities    []string `form:"city" binding:"omitempty,dive,required"`
	Traffic   []string `form:"traffic" binding:"omitempty,dive,required"`
	Weather   []string `form:"weather" binding:"omitempty,dive,required"`
}

// FilterOptions describes the admissible filter values present in the dataset.
type FilterOptions struct {
	MinDate Date     `json:"minDate"`
	MaxDate Date     `json:"maxDate"`
	Cities  []string `json:"cities"`
	Traffic []string `json:"traffic"`
	Weather []string `json:"weather"`
}
