package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jengzang/delivery-insights-go/internal/models"
	"github.com/jengzang/delivery-insights-go/internal/spatial"
)

const (
	// missingSentinel marks an empty cell in the export. Some columns carry it
	// with a trailing space; detection always compares the trimmed value.
	missingSentinel = "NaN"

	weatherPrefix = "conditions "

	// orderDateLayout is DD-MM-YYYY
	orderDateLayout = "02-01-2006"

	defaultMaxDiagnostics = 50
)

var digitRun = regexp.MustCompile(`\d+`)

// Options controls how the normalizer treats malformed rows
type Options struct {
	// Strict aborts the load on the first malformed row instead of dropping it.
	Strict bool
	// MaxDiagnostics caps the malformed-row details kept in the report.
	MaxDiagnostics int
}

// Report summarises what the normalizer kept and dropped
type Report struct {
	RawRows          int                     `json:"rawRows"`
	KeptRows         int                     `json:"keptRows"`
	MissingDropped   map[string]int          `json:"missingDropped"` // by source column
	MalformedDropped int                     `json:"malformedDropped"`
	Diagnostics      []*MalformedRecordError `json:"diagnostics"`
}

// DroppedRows returns the total number of raw rows excluded from the canonical table
func (r Report) DroppedRows() int {
	return r.RawRows - r.KeptRows
}

// Result is the canonical table plus the load report
type Result struct {
	Orders []models.Order
	Report Report
}

// Normalize turns raw export rows into the canonical order table.
//
// Rules run in a fixed order: trim text columns, strip the weather prefix,
// drop rows with a missing age/traffic/city/festival, parse the date, cast
// age and rating, drop rows with a missing multiple-deliveries count and cast
// it, parse and range-check coordinates, extract the minutes from the
// time-taken text, then derive the ISO week.
// Kept rows are indexed contiguously. The input is never modified.
func Normalize(raw []models.RawRecord, opts Options) (*Result, error) {
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = defaultMaxDiagnostics
	}

	res := &Result{
		Orders: make([]models.Order, 0, len(raw)),
		Report: Report{
			RawRows:        len(raw),
			MissingDropped: make(map[string]int),
			Diagnostics:    []*MalformedRecordError{},
		},
	}

	for i, r := range raw {
		order, missing, err := normalizeRow(i, r)
		if err != nil {
			if opts.Strict {
				return nil, err
			}
			res.Report.MalformedDropped++
			if len(res.Report.Diagnostics) < maxDiag {
				res.Report.Diagnostics = append(res.Report.Diagnostics, err)
			}
			continue
		}
		if missing != "" {
			res.Report.MissingDropped[missing]++
			continue
		}

		order.Index = len(res.Orders)
		res.Orders = append(res.Orders, order)
	}

	res.Report.KeptRows = len(res.Orders)
	return res, nil
}

// normalizeRow applies the cleaning rules to one raw row. A non-empty column
// name means the row is dropped for a missing value in that column.
func normalizeRow(row int, r models.RawRecord) (models.Order, string, *MalformedRecordError) {
	o := models.Order{
		ID:             strings.TrimSpace(r.ID),
		CourierID:      strings.TrimSpace(r.CourierID),
		TrafficDensity: strings.TrimSpace(r.TrafficDensity),
		OrderType:      strings.TrimSpace(r.OrderType),
		VehicleType:    strings.TrimSpace(r.VehicleType),
		City:           canonicalCity(strings.TrimSpace(r.City)),
		Festival:       strings.TrimSpace(r.Festival),
		Weather:        strings.TrimSpace(strings.TrimPrefix(r.Weather, weatherPrefix)),
	}

	switch {
	case isMissing(r.CourierAge):
		return o, models.ColumnCourierAge, nil
	case isMissing(o.TrafficDensity):
		return o, models.ColumnTrafficDensity, nil
	case isMissing(o.City):
		return o, models.ColumnCity, nil
	case isMissing(o.Festival):
		return o, models.ColumnFestival, nil
	}

	malformed := func(column, value string, err error) *MalformedRecordError {
		return newMalformed(row, r.Line, o.ID, column, value, err)
	}

	date, err := time.Parse(orderDateLayout, strings.TrimSpace(r.OrderDate))
	if err != nil {
		return o, "", malformed(models.ColumnOrderDate, r.OrderDate, err)
	}
	o.OrderDate = models.NewDate(date).Time

	if o.CourierAge, err = strconv.Atoi(strings.TrimSpace(r.CourierAge)); err != nil {
		return o, "", malformed(models.ColumnCourierAge, r.CourierAge, err)
	}
	// ParseFloat accepts "NaN", so an unrated courier keeps a NaN rating.
	if o.CourierRating, err = strconv.ParseFloat(strings.TrimSpace(r.CourierRating), 64); err != nil {
		return o, "", malformed(models.ColumnCourierRating, r.CourierRating, err)
	}

	if isMissing(r.MultipleDeliveries) {
		return o, models.ColumnMultipleDeliveries, nil
	}
	if o.MultipleDeliveries, err = strconv.Atoi(strings.TrimSpace(r.MultipleDeliveries)); err != nil {
		return o, "", malformed(models.ColumnMultipleDeliveries, r.MultipleDeliveries, err)
	}

	coords := []struct {
		column string
		value  string
		dst    *float64
	}{
		{models.ColumnRestaurantLat, r.RestaurantLat, &o.RestaurantLat},
		{models.ColumnRestaurantLon, r.RestaurantLon, &o.RestaurantLon},
		{models.ColumnDeliveryLat, r.DeliveryLat, &o.DeliveryLat},
		{models.ColumnDeliveryLon, r.DeliveryLon, &o.DeliveryLon},
	}
	for _, c := range coords {
		if *c.dst, err = strconv.ParseFloat(strings.TrimSpace(c.value), 64); err != nil {
			return o, "", malformed(c.column, c.value, err)
		}
	}
	if !spatial.ValidCoordinate(o.RestaurantLat, o.RestaurantLon) {
		return o, "", malformed(models.ColumnRestaurantLat, r.RestaurantLat+","+r.RestaurantLon, ErrCoordinateRange)
	}
	if !spatial.ValidCoordinate(o.DeliveryLat, o.DeliveryLon) {
		return o, "", malformed(models.ColumnDeliveryLat, r.DeliveryLat+","+r.DeliveryLon, ErrCoordinateRange)
	}

	if o.VehicleCondition, err = strconv.Atoi(strings.TrimSpace(r.VehicleCondition)); err != nil {
		return o, "", malformed(models.ColumnVehicleCondition, r.VehicleCondition, err)
	}

	minutes, err := extractMinutes(r.TimeTaken)
	if err != nil {
		return o, "", malformed(models.ColumnTimeTaken, r.TimeTaken, err)
	}
	o.TimeTakenMinutes = minutes

	_, o.WeekOfYear = o.OrderDate.ISOWeek()
	return o, "", nil
}

// extractMinutes returns the first run of digits in s, e.g. "(min) 24" -> 24
func extractMinutes(s string) (int, error) {
	run := digitRun.FindString(s)
	if run == "" {
		return 0, ErrNoDigits
	}
	return strconv.Atoi(run)
}

func isMissing(v string) bool {
	return strings.TrimSpace(v) == missingSentinel
}

func canonicalCity(city string) string {
	if city == models.CityMetropolitanRaw {
		return models.CityMetropolitan
	}
	return city
}
