package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/infrastructure/configuration"
)

// IVideoProvider is the contract every generation vendor adapter implements.
// Adapters return the advanced job value; a returned error means an
// unrecoverable configuration or vendor failure that the router converts
// into an error-state job. Adapters with a fallback policy swallow vendor
// failures themselves and report processing with a synthesized correlation id.
type IVideoProvider interface {
	Generate(ctx context.Context, prompt string, config *dto.GenerationConfig, job model.VideoJob) (model.VideoJob, error)
}

// Registry maps provider tags to their adapters.
type Registry struct {
	providers map[string]IVideoProvider
}

// NewRegistry wires the built-in adapters with credentials from configuration.
func NewRegistry(cfg configuration.Video) *Registry {
	client := &http.Client{Timeout: 30 * time.Second}
	return &Registry{providers: map[string]IVideoProvider{
		model.ProviderRunway:      NewRunwayProvider(client, cfg.RunwayAPIKey),
		model.ProviderPika:        NewPikaProvider(client, cfg.PikaAPIKey),
		model.ProviderStableVideo: NewStableVideoProvider(client, cfg.StableVideoAPIKey),
		model.ProviderLuma:        NewLumaProvider(),
		model.ProviderCustom:      NewCustomProvider(client, cfg.CustomEndpoint, cfg.CustomAPIKey),
	}}
}

// Get returns the adapter registered for the provider tag.
func (r *Registry) Get(provider string) (IVideoProvider, bool) {
	p, ok := r.providers[provider]
	return p, ok
}

// Register replaces or adds an adapter. Used by tests and custom deployments.
func (r *Registry) Register(provider string, p IVideoProvider) {
	r.providers[provider] = p
}

// postJSON posts a JSON body with a bearer token and decodes the JSON reply.
func postJSON(ctx context.Context, client *http.Client, url, apiKey string, body interface{}) (map[string]interface{}, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	out := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// apiKeyOrDefault prefers the per-request key over the configured one.
func apiKeyOrDefault(config *dto.GenerationConfig, fallback string) string {
	if config != nil && config.APIKey != "" {
		return config.APIKey
	}
	return fallback
}
