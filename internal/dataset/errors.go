package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when the source header lacks a required column
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptySource is returned when the source has no header row at all
	ErrEmptySource = errors.New("source has no header row")

	// ErrNoDigits is returned when the time-taken field holds no digit run
	ErrNoDigits = errors.New("no digits found")

	// ErrCoordinateRange is returned for a latitude/longitude outside WGS84 bounds
	ErrCoordinateRange = errors.New("coordinate out of range")
)

// SourceLoadError means the input could not be read as tabular data.
// It is fatal for the whole load.
type SourceLoadError struct {
	Source string
	Err    error
}

func (e *SourceLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *SourceLoadError) Unwrap() error {
	return e.Err
}

// MalformedRecordError means one row failed a typed conversion.
type MalformedRecordError struct {
	Row     int    `json:"row"`            // zero-based position among the decoded records
	Line    int    `json:"line,omitempty"` // source line or sheet row, 0 when unknown
	OrderID string `json:"orderId"`
	Column  string `json:"column"`
	Value   string `json:"value"`
	Reason  string `json:"reason"`
	Err     error  `json:"-"`
}

func newMalformed(row, line int, orderID, column, value string, err error) *MalformedRecordError {
	return &MalformedRecordError{
		Row:     row,
		Line:    line,
		OrderID: orderID,
		Column:  column,
		Value:   value,
		Reason:  err.Error(),
		Err:     err,
	}
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d (order %s): column %s value %q: %v", e.Line, e.OrderID, e.Column, e.Value, e.Err)
	}
	return fmt.Sprintf("row %d (order %s): column %s value %q: %v", e.Row, e.OrderID, e.Column, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
