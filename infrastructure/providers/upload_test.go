package providers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/infrastructure/providers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRegistry_KnownTypes(t *testing.T) {
	registry := providers.NewUploadRegistry()

	for _, uploadType := range model.ValidUploadTypes {
		_, ok := registry.Get(uploadType)
		assert.True(t, ok, uploadType)
	}
	_, ok := registry.Get("ftp")
	assert.False(t, ok)
}

func TestURLUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("video-bytes"))
	}))
	defer server.Close()

	registry := providers.NewUploadRegistry()
	adapter, ok := registry.Get("url")
	require.True(t, ok)

	job, err := adapter.Upload(context.Background(), &dto.UploadSource{
		Type:   "url",
		Source: server.URL + "/clip.mp4",
	}, newJob())

	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, 100, job.Progress)
	assert.Equal(t, server.URL+"/clip.mp4", job.VideoURL)
	assert.NotNil(t, job.CompletedAt)
}

func TestURLUpload_InvalidURL(t *testing.T) {
	registry := providers.NewUploadRegistry()
	adapter, _ := registry.Get("url")

	_, err := adapter.Upload(context.Background(), &dto.UploadSource{
		Type:   "url",
		Source: "not a url",
	}, newJob())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload from URL")
}

func TestURLUpload_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	registry := providers.NewUploadRegistry()
	adapter, _ := registry.Get("url")

	_, err := adapter.Upload(context.Background(), &dto.UploadSource{
		Type:   "url",
		Source: server.URL + "/missing.mp4",
	}, newJob())

	require.Error(t, err)
}

func TestCloudUpload(t *testing.T) {
	registry := providers.NewUploadRegistry()
	adapter, _ := registry.Get("cloud")

	job, err := adapter.Upload(context.Background(), &dto.UploadSource{
		Type:   "cloud",
		Source: "https://storage.example.com/bucket/clip.mp4",
	}, newJob())

	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, "https://storage.example.com/bucket/clip.mp4", job.VideoURL)
}

func TestFileUpload(t *testing.T) {
	registry := providers.NewUploadRegistry()
	adapter, _ := registry.Get("file")

	job, err := adapter.Upload(context.Background(), &dto.UploadSource{
		Type:     "file",
		Source:   "raw-bytes-ref",
		Filename: "clip.mp4",
	}, newJob())

	require.NoError(t, err)
	assert.Equal(t, model.JobStatusCompleted, job.Status)
	assert.Equal(t, "/uploads/clip.mp4", job.VideoURL)
}
