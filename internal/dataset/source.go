package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jengzang/delivery-insights-go/internal/models"
)

// Source yields the raw delivery records of one export
type Source interface {
	Name() string
	Read(ctx context.Context) ([]models.RawRecord, error)
}

// RawOrderReader lists raw records from a table store
type RawOrderReader interface {
	ListRaw(ctx context.Context) ([]models.RawRecord, error)
}

// Format names a source encoding
type Format string

const (
	FormatCSV    Format = "csv"
	FormatXLSX   Format = "xlsx"
	FormatSQLite Format = "sqlite"
)

// DetectFormat infers the source format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("unsupported dataset extension %q", filepath.Ext(path))
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads the export as a comma-separated file
type CSVSource struct {
	Path string
}

func (s *CSVSource) Name() string { return s.Path }

func (s *CSVSource) Read(ctx context.Context) ([]models.RawRecord, error) {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, &SourceLoadError{Source: s.Path, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := ReadCSV(bytes.NewReader(content))
	if err != nil {
		return nil, &SourceLoadError{Source: s.Path, Err: err}
	}
	return records, nil
}

// ReadCSV decodes raw records from CSV text with a header row.
// A leading UTF-8 byte order mark is ignored.
func ReadCSV(r io.Reader) ([]models.RawRecord, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	// The reader skips empty lines, so each row's line comes from FieldPos.
	var rows [][]string
	var lines []int
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, row)
		lines = append(lines, line)
	}
	return decodeRows(rows, lines)
}

// XLSXSource reads the export from a spreadsheet workbook
type XLSXSource struct {
	Path  string
	Sheet string // defaults to the first sheet
}

func (s *XLSXSource) Name() string { return s.Path }

func (s *XLSXSource) Read(ctx context.Context) ([]models.RawRecord, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, &SourceLoadError{Source: s.Path, Err: err}
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &SourceLoadError{Source: s.Path, Err: ErrEmptySource}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &SourceLoadError{Source: s.Path, Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := make([]int, len(rows))
	for i := range lines {
		lines[i] = i + 1
	}

	records, err := decodeRows(rows, lines)
	if err != nil {
		return nil, &SourceLoadError{Source: s.Path, Err: err}
	}
	return records, nil
}

// TableSource reads raw records previously imported into a database table
type TableSource struct {
	Label  string
	Reader RawOrderReader
}

func (s *TableSource) Name() string { return s.Label }

func (s *TableSource) Read(ctx context.Context) ([]models.RawRecord, error) {
	records, err := s.Reader.ListRaw(ctx)
	if err != nil {
		return nil, &SourceLoadError{Source: s.Label, Err: err}
	}
	return records, nil
}

// decodeRows maps a header row plus data rows onto raw records.
// lines[i] is the source line of rows[i]. Short rows are padded with empty cells.
func decodeRows(rows [][]string, lines []int) ([]models.RawRecord, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySource
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range models.RawColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	records := make([]models.RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		get := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		records = append(records, models.RawRecord{
			ID:                 get(models.ColumnID),
			CourierID:          get(models.ColumnCourierID),
			CourierAge:         get(models.ColumnCourierAge),
			CourierRating:      get(models.ColumnCourierRating),
			RestaurantLat:      get(models.ColumnRestaurantLat),
			RestaurantLon:      get(models.ColumnRestaurantLon),
			DeliveryLat:        get(models.ColumnDeliveryLat),
			DeliveryLon:        get(models.ColumnDeliveryLon),
			OrderDate:          get(models.ColumnOrderDate),
			TimeOrdered:        get(models.ColumnTimeOrdered),
			TimePicked:         get(models.ColumnTimePicked),
			Weather:            get(models.ColumnWeather),
			TrafficDensity:     get(models.ColumnTrafficDensity),
			VehicleCondition:   get(models.ColumnVehicleCondition),
			OrderType:          get(models.ColumnOrderType),
			VehicleType:        get(models.ColumnVehicleType),
			MultipleDeliveries: get(models.ColumnMultipleDeliveries),
			Festival:           get(models.ColumnFestival),
			City:               get(models.ColumnCity),
			TimeTaken:          get(models.ColumnTimeTaken),
			Line:               lines[i+1],
		})
	}
	return records, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
