package providers

import (
	"context"
	"fmt"
	"net/http"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/infrastructure/logger"
)

const runwayBaseURL = "https://api.runwayml.com"

// RunwayProvider integrates the Runway ML generation API. Runway has no
// fallback policy: a vendor failure is surfaced as a hard error.
type RunwayProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewRunwayProvider(client *http.Client, apiKey string) *RunwayProvider {
	return &RunwayProvider{client: client, baseURL: runwayBaseURL, apiKey: apiKey}
}

// WithBaseURL overrides the endpoint (tests).
func (p *RunwayProvider) WithBaseURL(url string) *RunwayProvider {
	p.baseURL = url
	return p
}

func (p *RunwayProvider) Generate(ctx context.Context, prompt string, config *dto.GenerationConfig, job model.VideoJob) (model.VideoJob, error) {
	body := map[string]interface{}{
		"prompt":      prompt,
		"duration":    config.MaxDuration,
		"resolution":  config.Resolution,
		"style":       config.Style,
		"webhook_url": job.WebhookURL,
	}
	resp, err := postJSON(ctx, p.client, p.baseURL+"/v1/generate", apiKeyOrDefault(config, p.apiKey), body)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Runway API error")
		return job, fmt.Errorf("failed to start Runway video generation")
	}

	taskID, _ := resp["id"].(string)
	return job.WithProcessing(10, map[string]interface{}{"taskId": taskID}), nil
}
