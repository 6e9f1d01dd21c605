package model

import "time"

// Monetization platform tags.
const (
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformPatreon   = "patreon"
	PlatformInstagram = "instagram"
)

// PlatformCredential identifies one connected monetization platform.
// Constructed per request, never stored.
type PlatformCredential struct {
	Type        string `json:"type"`
	APIKey      string `json:"apiKey,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
	ChannelID   string `json:"channelId,omitempty"`
}

// PlatformRevenue is the per-platform aggregation result. A failed platform
// keeps its slot with zero revenue and an error message.
type PlatformRevenue struct {
	Platform    string                 `json:"platform"`
	Revenue     float64                `json:"revenue"`
	Stats       map[string]interface{} `json:"stats"`
	Error       string                 `json:"error,omitempty"`
	LastUpdated time.Time              `json:"lastUpdated"`
}

// OptimizationSuggestion is a derived recommendation for a platform.
type OptimizationSuggestion struct {
	Platform string `json:"platform"`
	Type     string `json:"type"` // low_revenue | low_engagement | not_connected
	Message  string `json:"message"`
	Priority string `json:"priority"` // high | medium | low
}

// RevenueSnapshot is an append-only log row of one aggregation run.
type RevenueSnapshot struct {
	ID           int64     `json:"id"`
	Platform     string    `json:"platform"`
	Revenue      float64   `json:"revenue"`
	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
