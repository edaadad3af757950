// Command importcsv copies a raw delivery export (CSV or XLSX) into the SQLite
// store so the server can load it with DELIVERY_DATASET_PATH pointing at
// the database file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jengzang/delivery-insights-go/internal/config"
	"github.com/jengzang/delivery-insights-go/internal/database"
	"github.com/jengzang/delivery-insights-go/internal/dataset"
	"github.com/jengzang/delivery-insights-go/internal/logger"
	"github.com/jengzang/delivery-insights-go/internal/repository"
)

func main() {
	in := flag.String("in", "train.csv", "raw export to import (.csv or .xlsx)")
	dbPath := flag.String("db", "data/deliveries.db", "SQLite database file")
	sheet := flag.String("sheet", "", "worksheet name for .xlsx input (defaults to the first sheet)")
	check := flag.Bool("check", true, "normalize the records and log the load report before importing")
	level := flag.String("log-level", "info", "debug | info | warn | error")
	flag.Parse()

	log := logger.New(config.LoggingConfig{Level: *level, Format: "text"})

	if err := run(context.Background(), log, *in, *dbPath, *sheet, *check); err != nil {
		log.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, in, dbPath, sheet string, check bool) error {
	format, err := dataset.DetectFormat(in)
	if err != nil {
		return err
	}
	if format == dataset.FormatSQLite {
		return fmt.Errorf("input %s is already a database", in)
	}

	src, closer, err := dataset.OpenSource(dataset.SourceConfig{Path: in, Format: format, Sheet: sheet})
	if err != nil {
		return err
	}
	defer closer.Close()

	records, err := src.Read(ctx)
	if err != nil {
		return err
	}
	log.Info("read export", slog.String("source", src.Name()), slog.Int("rows", len(records)))

	if check {
		res, err := dataset.Normalize(records, dataset.Options{})
		if err != nil {
			return err
		}
		log.Info("load report",
			slog.Int("kept_rows", res.Report.KeptRows),
			slog.Int("malformed_rows", res.Report.MalformedDropped),
			slog.Any("missing_dropped", res.Report.MissingDropped))
	}

	db, err := database.Open(database.Config{Path: dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	repo := repository.NewRawOrderRepository(db)
	if err := repo.ReplaceAll(ctx, in, records); err != nil {
		return err
	}

	last, err := repo.LastImport(ctx)
	if err != nil {
		return err
	}
	if last == nil {
		return fmt.Errorf("import run for %s was not recorded", in)
	}
	stored, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if stored != last.RowCount {
		return fmt.Errorf("import run %d recorded %d rows but %d are stored", last.ID, last.RowCount, stored)
	}

	// Leave a plain rollback-journal file so the server can open it read-only.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=DELETE"); err != nil {
		return fmt.Errorf("failed to reset journal mode: %w", err)
	}
	log.Info("import complete",
		slog.String("db", dbPath),
		slog.Int64("run", last.ID),
		slog.Int("rows", stored))
	return nil
}
