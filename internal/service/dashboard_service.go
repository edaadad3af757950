package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/delivery-insights-go/internal/analytics"
	"github.com/jengzang/delivery-insights-go/internal/dataset"
	"github.com/jengzang/delivery-insights-go/internal/models"
)

var (
	// ErrInvalidFilter is returned for unparseable or inverted date bounds
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnknownView is returned for a view name with no registered builder
	ErrUnknownView = errors.New("unknown view")
)

// DatasetReport describes the loaded canonical table
type DatasetReport struct {
	Source   string               `json:"source"`
	LoadedAt time.Time            `json:"loadedAt"`
	Load     dataset.Report       `json:"load"`
	Options  models.FilterOptions `json:"options"`
}

// DashboardService serves report views over the canonical table.
// The table is loaded once and only read afterwards, so the service is safe
// for concurrent use.
type DashboardService struct {
	orders   []models.Order
	report   dataset.Report
	options  models.FilterOptions
	source   string
	loadedAt time.Time
}

// NewDashboardService creates a dashboard service over a normalizer result
func NewDashboardService(res *dataset.Result, source string) *DashboardService {
	return &DashboardService{
		orders:   res.Orders,
		report:   res.Report,
		options:  analytics.FilterOptions(res.Orders),
		source:   source,
		loadedAt: time.Now().UTC(),
	}
}

// Options returns the admissible filter values
func (s *DashboardService) Options() models.FilterOptions {
	return s.options
}

// Report returns the load report of the canonical table
func (s *DashboardService) Report() DatasetReport {
	return DatasetReport{
		Source:   s.source,
		LoadedAt: s.loadedAt,
		Load:     s.report,
		Options:  s.options,
	}
}

// BuildFilter turns query parameters into a filter. Absent date bounds default
// to the dataset's date range and absent membership lists to every value.
func (s *DashboardService) BuildFilter(q models.FilterQuery) (models.OrderFilter, error) {
	f := models.OrderFilter{
		StartDate: s.options.MinDate.Time,
		EndDate:   s.options.MaxDate.Time,
		Cities:    orDefault(q.Cities, s.options.Cities),
		Traffic:   orDefault(q.Traffic, s.options.Traffic),
		Weather:   orDefault(q.Weather, s.options.Weather),
	}

	if q.StartDate != "" {
		d, err := models.ParseDate(q.StartDate)
		if err != nil {
			return f, fmt.Errorf("%w: startDate %q", ErrInvalidFilter, q.StartDate)
		}
		f.StartDate = d.Time
	}
	if q.EndDate != "" {
		d, err := models.ParseDate(q.EndDate)
		if err != nil {
			return f, fmt.Errorf("%w: endDate %q", ErrInvalidFilter, q.EndDate)
		}
		f.EndDate = d.Time
	}
	if f.StartDate.After(f.EndDate) {
		return f, fmt.Errorf("%w: startDate %s is after endDate %s", ErrInvalidFilter,
			f.StartDate.Format(models.DateLayout), f.EndDate.Format(models.DateLayout))
	}

	return f, nil
}

// Filtered returns the orders admitted by the query
func (s *DashboardService) Filtered(q models.FilterQuery) ([]models.Order, error) {
	f, err := s.BuildFilter(q)
	if err != nil {
		return nil, err
	}
	return analytics.Filter(s.orders, f), nil
}

// View builds the named view over the orders admitted by the query
func (s *DashboardService) View(name string, q models.FilterQuery) (any, error) {
	builder, ok := analytics.GetView(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownView, name, strings.Join(analytics.ViewNames(), ", "))
	}
	orders, err := s.Filtered(q)
	if err != nil {
		return nil, err
	}
	return builder(orders), nil
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return fallback
	}
	return values
}
