package persistence

import (
	"context"
	"database/sql"
	"time"

	"video-studio/domain/model"
	"video-studio/domain/repository"
)

// RevenueSnapshotRepository appends aggregation runs to PostgreSQL.
type RevenueSnapshotRepository struct {
	db *sql.DB
}

func NewRevenueSnapshotRepository(db *sql.DB) repository.IRevenueSnapshot {
	return &RevenueSnapshotRepository{db: db}
}

func (r *RevenueSnapshotRepository) Append(ctx context.Context, entries []model.PlatformRevenue) error {
	q := `INSERT INTO revenue_snapshots (platform, revenue, error_message, created_at) VALUES ($1, $2, $3, $4)`
	for _, e := range entries {
		var errMsg *string
		if e.Error != "" {
			v := e.Error
			errMsg = &v
		}
		if _, err := r.db.ExecContext(ctx, q, e.Platform, e.Revenue, errMsg, e.LastUpdated.UTC()); err != nil {
			return err
		}
	}
	return nil
}

func (r *RevenueSnapshotRepository) ListRecent(ctx context.Context, limit int) ([]model.RevenueSnapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, platform, revenue, error_message, created_at FROM revenue_snapshots ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []model.RevenueSnapshot
	for rows.Next() {
		var s model.RevenueSnapshot
		var errMsg sql.NullString
		var createdAt time.Time
		if err := rows.Scan(&s.ID, &s.Platform, &s.Revenue, &errMsg, &createdAt); err != nil {
			return nil, err
		}
		if errMsg.Valid {
			v := errMsg.String
			s.ErrorMessage = &v
		}
		s.CreatedAt = createdAt
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
