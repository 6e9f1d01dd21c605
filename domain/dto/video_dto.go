package dto

// GenerationConfig carries the normalized provider request parameters.
type GenerationConfig struct {
	Provider    string `json:"provider"`
	APIKey      string `json:"apiKey,omitempty"`
	MaxDuration int    `json:"maxDuration"`
	Resolution  string `json:"resolution"` // 720p | 1080p | 4k
	Style       string `json:"style,omitempty"`
}

// GenerateVideoRequest is the POST /api/video/generate body.
type GenerateVideoRequest struct {
	Prompt     string            `json:"prompt"`
	Config     *GenerationConfig `json:"config"`
	WebhookURL string            `json:"webhookUrl,omitempty"`
}

// UploadSource describes where the video to ingest comes from.
type UploadSource struct {
	Type     string `json:"type"` // url | cloud | file
	Source   string `json:"source"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

// UploadVideoRequest is the POST /api/video/upload body.
type UploadVideoRequest struct {
	UploadSource *UploadSource `json:"uploadSource"`
}

// WebhookResult is the normalized outcome of a provider callback.
type WebhookResult struct {
	Success bool   `json:"success"`
	JobID   string `json:"jobId,omitempty"`
}

// GenerateScriptRequest is the POST /api/ai/generate-script body.
type GenerateScriptRequest struct {
	Topic    string `json:"topic"`
	Duration int    `json:"duration,omitempty"`
}
