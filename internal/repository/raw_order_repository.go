package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/delivery-insights-go/internal/database"
	"github.com/jengzang/delivery-insights-go/internal/models"
)

var rawOrderColumns = []string{
	"id", "courier_id", "courier_age", "courier_rating",
	"restaurant_lat", "restaurant_lon", "delivery_lat", "delivery_lon",
	"order_date", "time_ordered", "time_picked", "weather",
	"traffic_density", "vehicle_condition", "order_type", "vehicle_type",
	"multiple_deliveries", "festival", "city", "time_taken",
}

// ImportRun records one import of a raw export into the database
type ImportRun struct {
	ID         int64     `json:"id"`
	SourcePath string    `json:"sourcePath"`
	RowCount   int       `json:"rowCount"`
	ImportedAt time.Time `json:"importedAt"`
}

// RawOrderRepository handles database operations for raw delivery records
type RawOrderRepository struct {
	db *sql.DB
}

// NewRawOrderRepository creates a new raw order repository
func NewRawOrderRepository(db *sql.DB) *RawOrderRepository {
	return &RawOrderRepository{db: db}
}

// ReplaceAll swaps the stored export for records, keeping their order,
// and logs the import run.
func (r *RawOrderRepository) ReplaceAll(ctx context.Context, sourcePath string, records []models.RawRecord) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(rawOrderColumns)+2), ", ")
	query := fmt.Sprintf(`INSERT INTO raw_orders (position, source_line, %s) VALUES (%s)`,
		strings.Join(rawOrderColumns, ", "), placeholders)

	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM raw_orders`); err != nil {
			return fmt.Errorf("failed to clear raw orders: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, rec := range records {
			values := rec.Values()
			args := make([]interface{}, 0, len(values)+2)
			args = append(args, i, rec.Line)
			for _, v := range values {
				args = append(args, v)
			}
			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				return fmt.Errorf("failed to insert raw order %d: %w", i, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO import_runs (source_path, row_count) VALUES (?, ?)`,
			sourcePath, len(records)); err != nil {
			return fmt.Errorf("failed to record import run: %w", err)
		}
		return nil
	})
}

// ListRaw returns every stored raw record in source order
func (r *RawOrderRepository) ListRaw(ctx context.Context) ([]models.RawRecord, error) {
	query := fmt.Sprintf(`SELECT source_line, %s FROM raw_orders ORDER BY position`, strings.Join(rawOrderColumns, ", "))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query raw orders: %w", err)
	}
	defer rows.Close()

	var records []models.RawRecord
	for rows.Next() {
		var rec models.RawRecord
		if err := rows.Scan(
			&rec.Line,
			&rec.ID, &rec.CourierID, &rec.CourierAge, &rec.CourierRating,
			&rec.RestaurantLat, &rec.RestaurantLon, &rec.DeliveryLat, &rec.DeliveryLon,
			&rec.OrderDate, &rec.TimeOrdered, &rec.TimePicked, &rec.Weather,
			&rec.TrafficDensity, &rec.VehicleCondition, &rec.OrderType, &rec.VehicleType,
			&rec.MultipleDeliveries, &rec.Festival, &rec.City, &rec.TimeTaken,
		); err != nil {
			return nil, fmt.Errorf("failed to scan raw order: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating raw orders: %w", err)
	}

	return records, nil
}

// Count returns the number of stored raw records
func (r *RawOrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM raw_orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count raw orders: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import run, or nil when nothing was imported
func (r *RawOrderRepository) LastImport(ctx context.Context) (*ImportRun, error) {
	var run ImportRun
	err := r.db.QueryRowContext(ctx, `
		SELECT id, source_path, row_count, imported_at
		FROM import_runs
		ORDER BY id DESC
		LIMIT 1`).Scan(&run.ID, &run.SourcePath, &run.RowCount, &run.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query import runs: %w", err)
	}
	return &run, nil
}
