package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/infrastructure/logger"
)

// CustomProvider posts to a user-defined endpoint. Missing configuration and
// vendor failures are both hard errors: the operator owns the endpoint, so
// there is nothing sensible to fall back to.
type CustomProvider struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewCustomProvider(client *http.Client, endpoint, apiKey string) *CustomProvider {
	return &CustomProvider{client: client, endpoint: endpoint, apiKey: apiKey}
}

func (p *CustomProvider) Generate(ctx context.Context, prompt string, config *dto.GenerationConfig, job model.VideoJob) (model.VideoJob, error) {
	if p.endpoint == "" {
		return job, errors.New("custom API endpoint not configured")
	}
	body := map[string]interface{}{
		"prompt":      prompt,
		"config":      config,
		"webhook_url": job.WebhookURL,
	}
	resp, err := postJSON(ctx, p.client, p.endpoint, apiKeyOrDefault(config, p.apiKey), body)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Custom API error")
		return job, fmt.Errorf("failed to start custom video generation")
	}

	return job.WithProcessing(30, resp), nil
}
