package persistence_test

import (
	"context"
	"testing"

	"video-studio/domain/model"
	"video-studio/infrastructure/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepositoryMemory_SaveAndGet(t *testing.T) {
	repo := persistence.NewJobRepositoryMemory()
	ctx := context.Background()

	job := model.VideoJob{ID: "job-1", Status: model.JobStatusProcessing, Progress: 15}
	require.NoError(t, repo.Save(ctx, job))

	got, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 15, got.Progress)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestJobRepositoryMemory_TerminalStatusIsFinal(t *testing.T) {
	repo := persistence.NewJobRepositoryMemory()
	ctx := context.Background()

	job := model.VideoJob{ID: "job-1", Status: model.JobStatusProcessing}
	require.NoError(t, repo.Save(ctx, job))
	require.NoError(t, repo.Save(ctx, job.WithCompleted("https://cdn.example/v.mp4")))

	err := repo.Save(ctx, job.WithError("late failure"))
	assert.ErrorIs(t, err, persistence.ErrJobTerminal)

	got, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, got.Status)
	assert.Equal(t, "https://cdn.example/v.mp4", got.VideoURL)
}

func TestJobRepositoryMemory_GetByTaskID(t *testing.T) {
	repo := persistence.NewJobRepositoryMemory()
	ctx := context.Background()

	withTask := model.VideoJob{
		ID:     "job-1",
		Status: model.JobStatusProcessing,
		Output: map[string]interface{}{"taskId": "task-abc"},
	}
	withGeneration := model.VideoJob{
		ID:     "job-2",
		Status: model.JobStatusProcessing,
		Output: map[string]interface{}{"generationId": "stable_123"},
	}
	require.NoError(t, repo.Save(ctx, withTask))
	require.NoError(t, repo.Save(ctx, withGeneration))

	got, err := repo.GetByTaskID(ctx, "task-abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "job-1", got.ID)

	got, err = repo.GetByTaskID(ctx, "stable_123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "job-2", got.ID)

	got, err = repo.GetByTaskID(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}
