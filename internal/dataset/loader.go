package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jengzang/delivery-insights-go/internal/database"
	"github.com/jengzang/delivery-insights-go/internal/repository"
)

// SourceConfig locates the export to load
type SourceConfig struct {
	Path   string
	Format Format // inferred from Path when empty
	Sheet  string // xlsx only
}

// OpenSource builds the Source for cfg. The returned closer releases any
// handle the source holds and is never nil.
func OpenSource(cfg SourceConfig) (Source, io.Closer, error) {
	format := cfg.Format
	if format == "" {
		detected, err := DetectFormat(cfg.Path)
		if err != nil {
			return nil, nil, &SourceLoadError{Source: cfg.Path, Err: err}
		}
		format = detected
	}

	switch format {
	case FormatCSV:
		return &CSVSource{Path: cfg.Path}, nopCloser{}, nil
	case FormatXLSX:
		return &XLSXSource{Path: cfg.Path, Sheet: cfg.Sheet}, nopCloser{}, nil
	case FormatSQLite:
		db, err := database.OpenReadOnly(cfg.Path)
		if err != nil {
			return nil, nil, &SourceLoadError{Source: cfg.Path, Err: err}
		}
		return &TableSource{Label: cfg.Path, Reader: repository.NewRawOrderRepository(db)}, db, nil
	default:
		return nil, nil, &SourceLoadError{Source: cfg.Path, Err: fmt.Errorf("unknown format %q", format)}
	}
}

// Load reads every raw record from src and normalizes it.
// Read failures come back as *SourceLoadError.
func Load(ctx context.Context, src Source, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	raw, err := src.Read(ctx)
	if err != nil {
		var loadErr *SourceLoadError
		if !errors.As(err, &loadErr) {
			err = &SourceLoadError{Source: src.Name(), Err: err}
		}
		return nil, err
	}

	res, err := Normalize(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", src.Name(), err)
	}

	logger.Info("dataset loaded",
		slog.String("source", src.Name()),
		slog.Int("raw_rows", res.Report.RawRows),
		slog.Int("kept_rows", res.Report.KeptRows),
		slog.Int("malformed_rows", res.Report.MalformedDropped),
		slog.Any("missing_dropped", res.Report.MissingDropped),
		slog.Duration("duration", time.Since(start)))

	for _, d := range res.Report.Diagnostics {
		logger.Debug("dropped malformed row",
			slog.Int("row", d.Row),
			slog.Int("line", d.Line),
			slog.String("order_id", d.OrderID),
			slog.String("column", d.Column),
			slog.String("reason", d.Reason))
	}

	return res, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
