package usecase

import (
	"context"
	"fmt"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/domain/repository"
	"video-studio/infrastructure/cache"
	"video-studio/infrastructure/logger"
	"video-studio/infrastructure/providers"
	"video-studio/infrastructure/utils"

	"github.com/google/uuid"
)

// IVideoUsecase routes generation and upload requests to provider adapters.
// Adapter failures are converted into error-state jobs, never propagated:
// callers check job.Status.
type IVideoUsecase interface {
	GenerateVideo(ctx context.Context, prompt string, config *dto.GenerationConfig, webhookURL string) model.VideoJob
	UploadVideo(ctx context.Context, source *dto.UploadSource) model.VideoJob
	CheckJobStatus(ctx context.Context, jobID, provider string) model.VideoJob
}

type VideoUsecase struct {
	registry       *providers.Registry
	uploadRegistry *providers.UploadRegistry
	jobRepo        repository.IJob
	jobCache       cache.IJobCache // optional
}

func NewVideoUsecase(registry *providers.Registry, uploadRegistry *providers.UploadRegistry, jobRepo repository.IJob) *VideoUsecase {
	return &VideoUsecase{registry: registry, uploadRegistry: uploadRegistry, jobRepo: jobRepo}
}

// WithCache enables the redis cache-aside layer (fluent)
func (u *VideoUsecase) WithCache(jobCache cache.IJobCache) *VideoUsecase {
	u.jobCache = jobCache
	return u
}

// GenerateVideo dispatches the prompt to the adapter registered for
// config.Provider. The returned job is never pending.
func (u *VideoUsecase) GenerateVideo(ctx context.Context, prompt string, config *dto.GenerationConfig, webhookURL string) model.VideoJob {
	job := model.VideoJob{
		ID:     uuid.NewString(),
		Type:   model.JobTypeVideoGeneration,
		Status: model.JobStatusPending,
		Input: map[string]interface{}{
			"prompt": prompt,
			"config": config,
		},
		Progress:   0,
		CreatedAt:  utils.GetCurrentTime(),
		WebhookURL: webhookURL,
	}

	adapter, ok := u.registry.Get(config.Provider)
	if !ok {
		// The HTTP layer validates the provider tag; this covers direct callers.
		return u.persist(ctx, job.WithError(fmt.Sprintf("unsupported provider: %s", config.Provider)))
	}

	next, err := adapter.Generate(ctx, prompt, config, job)
	if err != nil {
		logger.GetLogger().
			WithField("provider", config.Provider).
			WithField("error", err).
			Warn("video generation adapter failed")
		return u.persist(ctx, job.WithError(err.Error()))
	}
	return u.persist(ctx, next)
}

// UploadVideo dispatches the upload source to the matching adapter. Upload
// jobs complete within the call; there is no provider polling.
func (u *VideoUsecase) UploadVideo(ctx context.Context, source *dto.UploadSource) model.VideoJob {
	job := model.VideoJob{
		ID:     uuid.NewString(),
		Type:   model.JobTypeVideoUpload,
		Status: model.JobStatusProcessing,
		Input: map[string]interface{}{
			"uploadSource": source,
		},
		Progress:  0,
		CreatedAt: utils.GetCurrentTime(),
	}

	adapter, ok := u.uploadRegistry.Get(source.Type)
	if !ok {
		return u.persist(ctx, job.WithError(fmt.Sprintf("unsupported upload type: %s", source.Type)))
	}

	next, err := adapter.Upload(ctx, source, job)
	if err != nil {
		logger.GetLogger().
			WithField("uploadType", source.Type).
			WithField("error", err).
			Warn("video upload adapter failed")
		return u.persist(ctx, job.WithError(err.Error()))
	}
	return u.persist(ctx, next)
}

// CheckJobStatus resolves a job by id: cache, then durable store. Unknown ids
// still answer with a synthesized completed job so pollers of pre-store jobs
// keep working; the synthesized payload is marked in output.
func (u *VideoUsecase) CheckJobStatus(ctx context.Context, jobID, provider string) model.VideoJob {
	if u.jobCache != nil {
		if job, err := u.jobCache.Get(ctx, jobID); err == nil && job != nil {
			return *job
		}
	}

	job, err := u.jobRepo.Get(ctx, jobID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("job store lookup failed")
	}
	if job != nil {
		if u.jobCache != nil {
			u.jobCache.Set(ctx, *job)
		}
		return *job
	}

	now := utils.GetCurrentTime()
	return model.VideoJob{
		ID:          jobID,
		Type:        model.JobTypeVideoGeneration,
		Status:      model.JobStatusCompleted,
		Input:       map[string]interface{}{},
		Output:      map[string]interface{}{"provider": provider, "synthetic": true},
		Progress:    100,
		CreatedAt:   now,
		CompletedAt: &now,
		VideoURL:    fmt.Sprintf("/generated/%s.mp4", jobID),
	}
}

func (u *VideoUsecase) persist(ctx context.Context, job model.VideoJob) model.VideoJob {
	if err := u.jobRepo.Save(ctx, job); err != nil {
		logger.GetLogger().WithField("jobId", job.ID).WithField("error", err).Error("failed to persist job")
	}
	if u.jobCache != nil {
		u.jobCache.Set(ctx, job)
	}
	return job
}
