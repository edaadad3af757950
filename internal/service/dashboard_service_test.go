package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/delivery-insights-go/internal/analytics"
	"github.com/jengzang/delivery-insights-go/internal/dataset"
	"github.com/jengzang/delivery-insights-go/internal/models"
)

func testOrders() []models.Order {
	mk := func(d int, city, traffic, weather, courier string, minutes int) models.Order {
		date := time.Date(2022, time.March, d, 0, 0, 0, 0, time.UTC)
		_, week := date.ISOWeek()
		return models.Order{
			ID:               courier + "-" + date.Format("0102"),
			CourierID:        courier,
			CourierAge:       30,
			CourierRating:    4.5,
			OrderDate:        date,
			WeekOfYear:       week,
			City:             city,
			TrafficDensity:   traffic,
			Weather:          weather,
			Festival:         "No",
			OrderType:        "Meal",
			TimeTakenMinutes: minutes,
		}
	}
	return []models.Order{
		mk(11, models.CityUrban, "Low", "Sunny", "A", 20),
		mk(12, models.CityMetropolitan, "Jam", "Fog", "B", 40),
		mk(20, models.CityUrban, "High", "Fog", "A", 25),
		mk(25, models.CitySemiUrban, "Jam", "Stormy", "C", 50),
	}
}

func newTestService() *DashboardService {
	return NewDashboardService(&dataset.Result{
		Orders: testOrders(),
		Report: dataset.Report{RawRows: 6, KeptRows: 4, MissingDropped: map[string]int{models.ColumnCourierAge: 2}},
	}, "train.csv")
}

func TestBuildFilter_Defaults(t *testing.T) {
	svc := newTestService()

	f, err := svc.BuildFilter(models.FilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 3, 11, 0, 0, 0, 0, time.UTC), f.StartDate)
	assert.Equal(t, time.Date(2022, 3, 25, 0, 0, 0, 0, time.UTC), f.EndDate)
	assert.Equal(t, []string{"Metropolitan", "Semi-Urban", "Urban"}, f.Cities)
	assert.Equal(t, []string{"High", "Jam", "Low"}, f.Traffic)
	assert.Equal(t, []string{"Fog", "Stormy", "Sunny"}, f.Weather)
}

func TestBuildFilter_Errors(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name  string
		query models.FilterQuery
	}{
		{"bad start", models.FilterQuery{StartDate: "11-03-2022"}},
		{"bad end", models.FilterQuery{EndDate: "2022-13-01"}},
		{"inverted", models.FilterQuery{StartDate: "2022-03-20", EndDate: "2022-03-12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.BuildFilter(tt.query)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestFiltered(t *testing.T) {
	svc := newTestService()

	got, err := svc.Filtered(models.FilterQuery{
		StartDate: "2022-03-12",
		Cities:    []string{models.CityUrban, models.CityMetropolitan},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].CourierID)
	assert.Equal(t, "A", got[1].CourierID)
}

func TestView(t *testing.T) {
	svc := newTestService()

	v, err := svc.View(analytics.ViewCompany, models.FilterQuery{Traffic: []string{"Jam"}})
	require.NoError(t, err)
	company, ok := v.(models.CompanyView)
	require.True(t, ok)
	assert.Equal(t, 2, company.Orders)

	v, err = svc.View(analytics.ViewRestaurant, models.FilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, v.(models.RestaurantView).UniqueCouriers)

	_, err = svc.View("finance", models.FilterQuery{})
	assert.ErrorIs(t, err, ErrUnknownView)

	_, err = svc.View(analytics.ViewCourier, models.FilterQuery{StartDate: "bad"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestView_EmptySelection(t *testing.T) {
	svc := newTestService()

	v, err := svc.View(analytics.ViewCourier, models.FilterQuery{Weather: []string{"Windy"}})
	require.NoError(t, err)
	courier := v.(models.CourierView)
	assert.Zero(t, courier.Orders)
	assert.Nil(t, courier.OldestAge)
	assert.Empty(t, courier.RatingByWeather)
}

func TestReport(t *testing.T) {
	r := newTestService().Report()
	assert.Equal(t, "train.csv", r.Source)
	assert.Equal(t, 2, r.Load.DroppedRows())
	assert.Equal(t, 2, r.Load.MissingDropped[models.ColumnCourierAge])
	assert.False(t, r.LoadedAt.IsZero())
	assert.Equal(t, "2022-03-25", r.Options.MaxDate.String())
}
