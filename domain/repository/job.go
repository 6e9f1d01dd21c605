package repository

import (
	"context"

	"video-studio/domain/model"
)

// IJob is the durable store for video jobs. Implementations must refuse
// updates to jobs that already reached a terminal status.
type IJob interface {
	// Save inserts or replaces a job keyed by its ID.
	Save(ctx context.Context, job model.VideoJob) error
	// Get returns the job by ID, or (nil, nil) when unknown.
	Get(ctx context.Context, id string) (*model.VideoJob, error)
	// GetByTaskID resolves a job by the provider-assigned correlation id
	// (output.taskId / output.generationId), used by webhook reconciliation.
	GetByTaskID(ctx context.Context, taskID string) (*model.VideoJob, error)
}

// IRevenueSnapshot is an append-only log of revenue aggregation runs.
type IRevenueSnapshot interface {
	Append(ctx context.Context, entries []model.PlatformRevenue) error
	ListRecent(ctx context.Context, limit int) ([]model.RevenueSnapshot, error)
}
