package model_test

import (
	"testing"

	"video-studio/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestVideoJob_Transitions(t *testing.T) {
	job := model.VideoJob{ID: "job-1", Status: model.JobStatusPending}

	processing := job.WithProcessing(10, map[string]interface{}{"taskId": "t1"})
	assert.Equal(t, model.JobStatusProcessing, processing.Status)
	assert.Equal(t, 10, processing.Progress)
	assert.Equal(t, "t1", processing.Output["taskId"])
	// The original value is untouched.
	assert.Equal(t, model.JobStatusPending, job.Status)

	completed := processing.WithCompleted("https://cdn.example/v.mp4")
	assert.Equal(t, model.JobStatusCompleted, completed.Status)
	assert.Equal(t, 100, completed.Progress)
	assert.Equal(t, "https://cdn.example/v.mp4", completed.VideoURL)
	assert.NotNil(t, completed.CompletedAt)
	assert.True(t, completed.Terminal())

	failed := processing.WithError("vendor down")
	assert.Equal(t, model.JobStatusError, failed.Status)
	assert.Equal(t, "vendor down", failed.Error)
	assert.True(t, failed.Terminal())

	assert.False(t, job.Terminal())
	assert.False(t, processing.Terminal())
}

func TestProviderTags(t *testing.T) {
	assert.Equal(t, []string{
		model.ProviderRunway,
		model.ProviderPika,
		model.ProviderStableVideo,
		model.ProviderLuma,
		model.ProviderCustom,
	}, model.ValidProviders)
}

func TestIsValidProvider(t *testing.T) {
	for _, p := range model.ValidProviders {
		assert.True(t, model.IsValidProvider(p), p)
	}
	assert.False(t, model.IsValidProvider("sora"))
	assert.False(t, model.IsValidProvider(""))
}

func TestIsValidUploadType(t *testing.T) {
	for _, u := range model.ValidUploadTypes {
		assert.True(t, model.IsValidUploadType(u), u)
	}
	assert.False(t, model.IsValidUploadType("ftp"))
}
