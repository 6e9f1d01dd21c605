package youtube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API for channel statistics. API-key mode is
// sufficient for the read-only stats the revenue aggregator needs; OAuth mode
// is supported for channels that require it.
type Client struct {
	service   *youtube.Service
	channelID string
}

// Config represents YouTube API configuration
type Config struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ChannelID    string `json:"channel_id"`
	APIKey       string `json:"api_key"`
}

// ChannelStats is the normalized statistics payload.
type ChannelStats struct {
	Title       string `json:"title"`
	Subscribers uint64 `json:"subscribers"`
	TotalViews  uint64 `json:"totalViews"`
	VideoCount  uint64 `json:"videoCount"`
}

// NewClient creates a YouTube API client in API-key or OAuth mode.
func NewClient(ctx context.Context, config *Config) (*Client, error) {
	if (config.AccessToken == "" || config.RefreshToken == "") && config.APIKey != "" {
		service, err := youtube.NewService(ctx, option.WithAPIKey(config.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return &Client{service: service, channelID: config.ChannelID}, nil
	}

	oauth2Config := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       []string{youtube.YoutubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}
	token := &oauth2.Token{
		AccessToken:  config.AccessToken,
		RefreshToken: config.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(-1 * time.Minute), // Force refresh on first use
	}
	service, err := youtube.NewService(ctx, option.WithHTTPClient(oauth2Config.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service, channelID: config.ChannelID}, nil
}

// GetChannelStats fetches subscriber/view/video counts for the channel.
func (c *Client) GetChannelStats(ctx context.Context, channelID string) (*ChannelStats, error) {
	if channelID == "" {
		channelID = c.channelID
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	resp, err := c.service.Channels.List([]string{"statistics", "snippet"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch YouTube channel stats: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s not found", channelID)
	}

	channel := resp.Items[0]
	return &ChannelStats{
		Title:       channel.Snippet.Title,
		Subscribers: channel.Statistics.SubscriberCount,
		TotalViews:  channel.Statistics.ViewCount,
		VideoCount:  channel.Statistics.VideoCount,
	}, nil
}
