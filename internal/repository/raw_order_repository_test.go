package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/delivery-insights-go/internal/database"
	"github.com/jengzang/delivery-insights-go/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "deliveries.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db, nil))
	return db
}

func rawRecord(id, courier string) models.RawRecord {
	return models.RawRecord{
		ID:                 id,
		CourierID:          courier,
		CourierAge:         "NaN ",
		CourierRating:      "4.9",
		RestaurantLat:      "22.745049",
		RestaurantLon:      "75.892471",
		DeliveryLat:        "22.765049",
		DeliveryLon:        "75.912471",
		OrderDate:          "19-03-2022",
		TimeOrdered:        "11:30:00",
		TimePicked:         "11:45:00",
		Weather:            "conditions Sunny",
		TrafficDensity:     "High ",
		VehicleCondition:   "2",
		OrderType:          "Snack ",
		VehicleType:        "motorcycle ",
		MultipleDeliveries: "0",
		Festival:           "No ",
		City:               "Urban ",
		TimeTaken:          "(min) 24",
	}
}

func TestRawOrderRepository_ReplaceAllAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRawOrderRepository(openTestDB(t))

	records := []models.RawRecord{
		rawRecord("0x4607 ", "INDORES13DEL02 "),
		rawRecord("0xb379 ", "BANGRES18DEL02 "),
		rawRecord("0x5d6d ", "BANGRES19DEL01 "),
	}
	for i := range records {
		records[i].Line = i + 2
	}
	records[2].Line = 6
	require.NoError(t, repo.ReplaceAll(ctx, "train.csv", records))

	got, err := repo.ListRaw(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got, "padding, sentinels and source lines must survive storage untouched")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// A second import replaces the first one.
	require.NoError(t, repo.ReplaceAll(ctx, "train-v2.csv", records[:1]))
	got, err = repo.ListRaw(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	run, err := repo.LastImport(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "train-v2.csv", run.SourcePath)
	assert.Equal(t, 1, run.RowCount)
}

func TestRawOrderRepository_Empty(t *testing.T) {
	ctx := context.Background()
	repo := NewRawOrderRepository(openTestDB(t))

	got, err := repo.ListRaw(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	run, err := repo.LastImport(ctx)
	require.NoError(t, err)
	assert.Nil(t, run)
}
