package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"video-studio/domain/dto"
	"video-studio/domain/model"
)

// IUploadProvider ingests a video from one source type. Upload adapters
// advance directly to completed within the same call; there is no polling.
type IUploadProvider interface {
	Upload(ctx context.Context, source *dto.UploadSource, job model.VideoJob) (model.VideoJob, error)
}

// UploadRegistry maps upload source types to their adapters.
type UploadRegistry struct {
	providers map[string]IUploadProvider
}

func NewUploadRegistry() *UploadRegistry {
	client := &http.Client{Timeout: 60 * time.Second}
	return &UploadRegistry{providers: map[string]IUploadProvider{
		"url":   &URLUploadProvider{client: client},
		"cloud": &CloudUploadProvider{},
		"file":  &FileUploadProvider{},
	}}
}

func (r *UploadRegistry) Get(uploadType string) (IUploadProvider, bool) {
	p, ok := r.providers[uploadType]
	return p, ok
}

func (r *UploadRegistry) Register(uploadType string, p IUploadProvider) {
	r.providers[uploadType] = p
}

// URLUploadProvider fetches the video over HTTP and keeps the original URL
// as the served location.
type URLUploadProvider struct {
	client *http.Client
}

func (p *URLUploadProvider) Upload(ctx context.Context, source *dto.UploadSource, job model.VideoJob) (model.VideoJob, error) {
	u, err := url.ParseRequestURI(source.Source)
	if err != nil {
		return job, fmt.Errorf("failed to upload from URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return job, fmt.Errorf("failed to upload from URL: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return job, fmt.Errorf("failed to upload from URL: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return job, fmt.Errorf("failed to upload from URL: unexpected status %d", resp.StatusCode)
	}
	// Drain the stream; a real implementation would persist it to storage.
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return job, fmt.Errorf("failed to upload from URL: %w", err)
	}

	return job.WithCompleted(source.Source), nil
}

// CloudUploadProvider registers an object already present in cloud storage.
type CloudUploadProvider struct{}

func (p *CloudUploadProvider) Upload(_ context.Context, source *dto.UploadSource, job model.VideoJob) (model.VideoJob, error) {
	return job.WithCompleted(source.Source), nil
}

// FileUploadProvider registers a locally uploaded file.
type FileUploadProvider struct{}

func (p *FileUploadProvider) Upload(_ context.Context, source *dto.UploadSource, job model.VideoJob) (model.VideoJob, error) {
	return job.WithCompleted("/uploads/" + source.Filename), nil
}
