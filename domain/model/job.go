package model

import "time"

// Job statuses. Once a job reaches a terminal status (completed | error)
// no further mutation is accepted by the stores.
const (
	JobStatusPending    = "pending"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusError      = "error"
)

// Job types produced by the studio pipeline.
const (
	JobTypeVideoGeneration     = "video-generation"
	JobTypeVideoUpload         = "video-upload"
	JobTypeScriptGeneration    = "script-generation"
	JobTypeVoiceSynthesis      = "voice-synthesis"
	JobTypeAutoEdit            = "auto-edit"
	JobTypeThumbnailGeneration = "thumbnail-generation"
	JobTypeCaptions            = "captions"
	JobTypeSceneDetection      = "scene-detection"
)

// Video generation provider tags.
const (
	ProviderRunway      = "runway"
	ProviderPika        = "pika"
	ProviderStableVideo = "stable-video"
	ProviderLuma        = "luma"
	ProviderCustom      = "custom"
)

// Video generation providers accepted by the generate endpoint.
var ValidProviders = []string{ProviderRunway, ProviderPika, ProviderStableVideo, ProviderLuma, ProviderCustom}

// Upload source types accepted by the upload endpoint.
var ValidUploadTypes = []string{"url", "cloud", "file"}

// VideoJob is the unit of work state tracked for a generation/upload request.
// It is treated as a value: adapters and usecases return an advanced copy
// instead of mutating the caller's job.
type VideoJob struct {
	ID          string                 `json:"id" bson:"_id"`
	Type        string                 `json:"type" bson:"type"`
	Status      string                 `json:"status" bson:"status"`
	Input       map[string]interface{} `json:"input" bson:"input"`
	Output      map[string]interface{} `json:"output,omitempty" bson:"output,omitempty"`
	Progress    int                    `json:"progress" bson:"progress"`
	Error       string                 `json:"error,omitempty" bson:"error,omitempty"`
	CreatedAt   time.Time              `json:"createdAt" bson:"createdAt"`
	CompletedAt *time.Time             `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	VideoURL    string                 `json:"videoUrl,omitempty" bson:"videoUrl,omitempty"`
	WebhookURL  string                 `json:"webhookUrl,omitempty" bson:"webhookUrl,omitempty"`
}

// Terminal reports whether the job reached a final status.
func (j VideoJob) Terminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusError
}

// WithProcessing returns a copy advanced to processing with provider output attached.
func (j VideoJob) WithProcessing(progress int, output map[string]interface{}) VideoJob {
	j.Status = JobStatusProcessing
	j.Progress = progress
	j.Output = output
	return j
}

// WithCompleted returns a copy advanced to the terminal completed state.
func (j VideoJob) WithCompleted(videoURL string) VideoJob {
	now := time.Now().UTC()
	j.Status = JobStatusCompleted
	j.Progress = 100
	j.VideoURL = videoURL
	j.CompletedAt = &now
	return j
}

// WithError returns a copy advanced to the terminal error state.
func (j VideoJob) WithError(message string) VideoJob {
	j.Status = JobStatusError
	j.Error = message
	return j
}

// JobUpdate is a normalized webhook callback applied to a stored job.
type JobUpdate struct {
	JobID    string `json:"jobId"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// IsValidProvider reports whether the provider tag is in the accepted set.
func IsValidProvider(provider string) bool {
	for _, p := range ValidProviders {
		if p == provider {
			return true
		}
	}
	return false
}

// IsValidUploadType reports whether the upload source type is accepted.
func IsValidUploadType(t string) bool {
	for _, v := range ValidUploadTypes {
		if v == t {
			return true
		}
	}
	return false
}
