package usecase

import (
	"context"
	"fmt"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/domain/repository"
	"video-studio/infrastructure/cache"
	"video-studio/infrastructure/logger"
	"video-studio/infrastructure/pubsub"
	"video-studio/infrastructure/servicebus"
)

// IWebhookUsecase normalizes provider callback payloads into job updates and
// reconciles them against the job store.
type IWebhookUsecase interface {
	HandleWebhook(ctx context.Context, provider string, payload map[string]interface{}) dto.WebhookResult
}

type WebhookUsecase struct {
	jobRepo    repository.IJob
	jobCache   cache.IJobCache       // optional
	pubsub     pubsub.IJobEvents     // optional
	serviceBus servicebus.IJobEvents // optional
}

func NewWebhookUsecase(jobRepo repository.IJob) *WebhookUsecase {
	return &WebhookUsecase{jobRepo: jobRepo}
}

func (u *WebhookUsecase) WithCache(jobCache cache.IJobCache) *WebhookUsecase {
	u.jobCache = jobCache
	return u
}

func (u *WebhookUsecase) WithPubSub(events pubsub.IJobEvents) *WebhookUsecase {
	u.pubsub = events
	return u
}

func (u *WebhookUsecase) WithServiceBus(events servicebus.IJobEvents) *WebhookUsecase {
	u.serviceBus = events
	return u
}

// HandleWebhook maps the provider payload into the canonical update shape,
// applies it to the stored job when one matches, and fans the update out to
// the configured sinks. Callbacks are never forwarded to the job's own
// webhook URL.
func (u *WebhookUsecase) HandleWebhook(ctx context.Context, provider string, payload map[string]interface{}) dto.WebhookResult {
	update, ok := normalizeWebhook(provider, payload)
	if !ok {
		logger.GetLogger().WithField("provider", provider).Warn("webhook payload carried no job id")
		return dto.WebhookResult{Success: false}
	}

	u.reconcile(ctx, update)
	u.publish(ctx, update)

	return dto.WebhookResult{Success: true, JobID: update.JobID}
}

// normalizeWebhook translates a vendor payload into a JobUpdate. Each vendor
// names the task id, status values, and video URL differently.
func normalizeWebhook(provider string, payload map[string]interface{}) (model.JobUpdate, bool) {
	update := model.JobUpdate{Provider: provider, Status: model.JobStatusProcessing}

	switch provider {
	case model.ProviderRunway:
		update.JobID = stringField(payload, "id")
		switch stringField(payload, "status") {
		case "SUCCEEDED":
			update.Status = model.JobStatusCompleted
			update.VideoURL = stringField(payload, "output")
		case "FAILED":
			update.Status = model.JobStatusError
		}
	case model.ProviderPika:
		update.JobID = stringField(payload, "task_id")
		switch stringField(payload, "status") {
		case "completed":
			update.Status = model.JobStatusCompleted
			update.VideoURL = stringField(payload, "video_url")
		case "failed":
			update.Status = model.JobStatusError
		}
	case model.ProviderStableVideo:
		update.JobID = stringField(payload, "id")
		switch stringField(payload, "status") {
		case "complete":
			update.Status = model.JobStatusCompleted
			update.VideoURL = firstArtifactURL(payload)
		case "failed":
			update.Status = model.JobStatusError
		}
	default:
		update.JobID = stringField(payload, "jobId")
		if update.JobID == "" {
			update.JobID = stringField(payload, "id")
		}
		if status := stringField(payload, "status"); status != "" {
			update.Status = status
		}
		update.VideoURL = stringField(payload, "videoUrl")
	}

	return update, update.JobID != ""
}

// reconcile looks the job up by provider task id first, then by our own job
// id for vendors that echo it back. A missing job is not a failure; the
// callback may outrun the store write.
func (u *WebhookUsecase) reconcile(ctx context.Context, update model.JobUpdate) {
	job, err := u.jobRepo.GetByTaskID(ctx, update.JobID)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("job lookup by task id failed")
	}
	if job == nil {
		if job, err = u.jobRepo.Get(ctx, update.JobID); err != nil {
			logger.GetLogger().WithField("error", err).Error("job lookup failed")
		}
	}
	if job == nil {
		logger.GetLogger().WithField("taskId", update.JobID).Info("webhook for unknown job")
		return
	}

	var next model.VideoJob
	switch update.Status {
	case model.JobStatusCompleted:
		next = job.WithCompleted(update.VideoURL)
	case model.JobStatusError:
		next = job.WithError(fmt.Sprintf("%s reported generation failure", update.Provider))
	default:
		// Intermediate progress callbacks keep the job processing.
		next = job.WithProcessing(job.Progress, job.Output)
	}

	if err := u.jobRepo.Save(ctx, next); err != nil {
		logger.GetLogger().WithField("jobId", next.ID).WithField("error", err).Warn("failed to apply webhook update")
		return
	}
	if u.jobCache != nil {
		u.jobCache.Set(ctx, next)
	}
}

func (u *WebhookUsecase) publish(ctx context.Context, update model.JobUpdate) {
	if u.pubsub != nil {
		if _, err := u.pubsub.PublishUpdate(ctx, update); err != nil {
			logger.GetLogger().WithField("error", err).Warn("failed to publish job update")
		}
	}
	if u.serviceBus != nil {
		if err := u.serviceBus.SendUpdate(ctx, update); err != nil {
			logger.GetLogger().WithField("error", err).Warn("failed to send job update")
		}
	}
}

func stringField(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func firstArtifactURL(payload map[string]interface{}) string {
	artifacts, ok := payload["artifacts"].([]interface{})
	if !ok || len(artifacts) == 0 {
		return ""
	}
	artifact, ok := artifacts[0].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringField(artifact, "url")
}
