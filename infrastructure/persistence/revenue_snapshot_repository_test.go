package persistence_test

import (
	"context"
	"testing"
	"time"

	"video-studio/domain/model"
	"video-studio/infrastructure/persistence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSnapshotRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	entries := []model.PlatformRevenue{
		{Platform: "youtube", Revenue: 500, LastUpdated: now},
		{Platform: "tiktok", Revenue: 0, Error: "token expired", LastUpdated: now},
	}

	mock.ExpectExec(`INSERT INTO revenue_snapshots`).
		WithArgs("youtube", 500.0, nil, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO revenue_snapshots`).
		WithArgs("tiktok", 0.0, sqlmock.AnyArg(), now).
		WillReturnResult(sqlmock.NewResult(2, 1))

	repo := persistence.NewRevenueSnapshotRepository(db)
	require.NoError(t, repo.Append(context.Background(), entries))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevenueSnapshotRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "platform", "revenue", "error_message", "created_at"}).
		AddRow(int64(2), "patreon", 1200.0, nil, now).
		AddRow(int64(1), "youtube", 500.0, "quota exceeded", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, platform, revenue, error_message, created_at FROM revenue_snapshots`).
		WithArgs(10).
		WillReturnRows(rows)

	repo := persistence.NewRevenueSnapshotRepository(db)
	snapshots, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Equal(t, "patreon", snapshots[0].Platform)
	assert.Nil(t, snapshots[0].ErrorMessage)
	assert.Equal(t, "youtube", snapshots[1].Platform)
	require.NotNil(t, snapshots[1].ErrorMessage)
	assert.Equal(t, "quota exceeded", *snapshots[1].ErrorMessage)
}

func TestRevenueSnapshotRepository_ListRecent_DefaultLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, platform, revenue, error_message, created_at FROM revenue_snapshots`).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "platform", "revenue", "error_message", "created_at"}))

	repo := persistence.NewRevenueSnapshotRepository(db)
	snapshots, err := repo.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, snapshots)

	assert.NoError(t, mock.ExpectationsWereMet())
}
