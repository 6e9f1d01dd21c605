package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/domain/repository"
	"video-studio/infrastructure/clients/patreon"
	"video-studio/infrastructure/clients/tiktok"
	"video-studio/infrastructure/clients/youtube"
	"video-studio/infrastructure/logger"
	"video-studio/infrastructure/utils"
)

// IMonetizationUsecase aggregates revenue across creator platforms.
type IMonetizationUsecase interface {
	AggregateRevenue(ctx context.Context, creds []model.PlatformCredential) dto.RevenueResponse
	CalculateProjectedRevenue(currentRevenue, growthRate float64, months int) float64
}

// Narrow views over the vendor clients so tests can stub them.
type IYouTubeStats interface {
	GetChannelStats(ctx context.Context, channelID string) (*youtube.ChannelStats, error)
}

type ITikTokStats interface {
	GetUserInfo(ctx context.Context) (*tiktok.UserInfo, error)
}

type IPatreonStats interface {
	GetCampaignInfo(ctx context.Context) (*patreon.CampaignInfo, error)
}

type MonetizationUsecase struct {
	snapshots repository.IRevenueSnapshot // optional
	simulate  bool
	fallback  map[string]model.PlatformCredential

	youtubeFactory func(ctx context.Context, apiKey, channelID string) (IYouTubeStats, error)
	tiktokFactory  func(accessToken string) ITikTokStats
	patreonFactory func(accessToken string) IPatreonStats
	randInt        func(n int) int
}

func NewMonetizationUsecase(simulate bool) *MonetizationUsecase {
	return &MonetizationUsecase{
		simulate: simulate,
		youtubeFactory: func(ctx context.Context, apiKey, channelID string) (IYouTubeStats, error) {
			client, err := youtube.NewClient(ctx, &youtube.Config{APIKey: apiKey, ChannelID: channelID})
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		tiktokFactory:  func(accessToken string) ITikTokStats { return tiktok.NewClient(accessToken) },
		patreonFactory: func(accessToken string) IPatreonStats { return patreon.NewClient(accessToken) },
		randInt:        rand.Intn,
	}
}

// WithFallbackCredentials supplies server-side credentials used when a
// request omits them for a platform.
func (u *MonetizationUsecase) WithFallbackCredentials(youtubeAPIKey, youtubeChannelID, tiktokToken, patreonToken string) *MonetizationUsecase {
	u.fallback = map[string]model.PlatformCredential{
		model.PlatformYouTube: {APIKey: youtubeAPIKey, ChannelID: youtubeChannelID},
		model.PlatformTikTok:  {AccessToken: tiktokToken},
		model.PlatformPatreon: {AccessToken: patreonToken},
	}
	return u
}

// WithSnapshots enables snapshot persistence after each aggregation (fluent)
func (u *MonetizationUsecase) WithSnapshots(snapshots repository.IRevenueSnapshot) *MonetizationUsecase {
	u.snapshots = snapshots
	return u
}

// WithClients overrides the vendor client factories (tests)
func (u *MonetizationUsecase) WithClients(
	yt func(ctx context.Context, apiKey, channelID string) (IYouTubeStats, error),
	tt func(accessToken string) ITikTokStats,
	pt func(accessToken string) IPatreonStats,
) *MonetizationUsecase {
	u.youtubeFactory = yt
	u.tiktokFactory = tt
	u.patreonFactory = pt
	return u
}

// WithRandSource overrides the simulated-revenue source (tests)
func (u *MonetizationUsecase) WithRandSource(randInt func(n int) int) *MonetizationUsecase {
	u.randInt = randInt
	return u
}

// AggregateRevenue fetches each platform independently; one platform failing
// never drops the others from the response. The failed entry keeps revenue 0
// and carries the error message.
func (u *MonetizationUsecase) AggregateRevenue(ctx context.Context, creds []model.PlatformCredential) dto.RevenueResponse {
	entries := make([]model.PlatformRevenue, 0, len(creds))
	total := 0.0

	for _, cred := range creds {
		entry := u.fetchPlatform(ctx, cred)
		total += entry.Revenue
		entries = append(entries, entry)
	}

	if u.snapshots != nil {
		if err := u.snapshots.Append(ctx, entries); err != nil {
			logger.GetLogger().WithField("error", err).Warn("failed to persist revenue snapshots")
		}
	}

	return dto.RevenueResponse{
		Platforms:    entries,
		TotalRevenue: total,
		Suggestions:  u.GetOptimizationSuggestions(entries),
		LastUpdated:  utils.GetCurrentTime(),
	}
}

func (u *MonetizationUsecase) fetchPlatform(ctx context.Context, cred model.PlatformCredential) model.PlatformRevenue {
	cred = u.applyFallback(cred)
	entry := model.PlatformRevenue{
		Platform:    cred.Type,
		Stats:       map[string]interface{}{},
		LastUpdated: utils.GetCurrentTime(),
	}

	switch cred.Type {
	case model.PlatformYouTube:
		if cred.APIKey == "" || cred.ChannelID == "" {
			entry.Error = "YouTube API key and channel ID are required"
			return entry
		}
		stats, err := u.youtubeStats(ctx, cred)
		if err != nil {
			entry.Error = err.Error()
			return entry
		}
		entry.Stats = map[string]interface{}{
			"title":       stats.Title,
			"subscribers": stats.Subscribers,
			"totalViews":  stats.TotalViews,
			"videos":      stats.VideoCount,
		}
		// Ad revenue is not exposed by the Data API; estimate until the
		// Analytics API integration lands.
		entry.Revenue = float64(u.randInt(1000))
	case model.PlatformTikTok:
		if cred.AccessToken == "" {
			entry.Error = "TikTok access token is required"
			return entry
		}
		info, err := u.tiktokFactory(cred.AccessToken).GetUserInfo(ctx)
		if err != nil {
			entry.Error = err.Error()
			return entry
		}
		entry.Stats = map[string]interface{}{
			"username":    info.Username,
			"displayName": info.DisplayName,
			"followers":   info.FollowerCount,
			"likes":       info.LikesCount,
		}
		entry.Revenue = float64(u.randInt(500))
	case model.PlatformPatreon:
		if cred.AccessToken == "" {
			entry.Error = "Patreon access token is required"
			return entry
		}
		info, err := u.patreonFactory(cred.AccessToken).GetCampaignInfo(ctx)
		if err != nil {
			entry.Error = err.Error()
			return entry
		}
		entry.Stats = map[string]interface{}{
			"name":    info.Name,
			"patrons": info.PatronCount,
		}
		entry.Revenue = info.MonthlyRevenue
	default:
		entry.Error = fmt.Sprintf("unsupported platform: %s", cred.Type)
	}

	return entry
}

func (u *MonetizationUsecase) applyFallback(cred model.PlatformCredential) model.PlatformCredential {
	defaults, ok := u.fallback[cred.Type]
	if !ok {
		return cred
	}
	if cred.APIKey == "" {
		cred.APIKey = defaults.APIKey
	}
	if cred.ChannelID == "" {
		cred.ChannelID = defaults.ChannelID
	}
	if cred.AccessToken == "" {
		cred.AccessToken = defaults.AccessToken
	}
	return cred
}

func (u *MonetizationUsecase) youtubeStats(ctx context.Context, cred model.PlatformCredential) (*youtube.ChannelStats, error) {
	if u.simulate {
		return &youtube.ChannelStats{
			Title:       "Demo Channel",
			Subscribers: 15420,
			TotalViews:  2340000,
			VideoCount:  47,
		}, nil
	}
	client, err := u.youtubeFactory(ctx, cred.APIKey, cred.ChannelID)
	if err != nil {
		return nil, err
	}
	return client.GetChannelStats(ctx, cred.ChannelID)
}

// GetOptimizationSuggestions flags underperforming platforms. Failed entries
// carry zero revenue and are flagged like any other low earner.
func (u *MonetizationUsecase) GetOptimizationSuggestions(entries []model.PlatformRevenue) []model.OptimizationSuggestion {
	suggestions := []model.OptimizationSuggestion{}
	for _, entry := range entries {
		if entry.Revenue < 100 {
			suggestions = append(suggestions, model.OptimizationSuggestion{
				Platform: entry.Platform,
				Type:     "low_revenue",
				Message:  fmt.Sprintf("Consider optimizing content strategy for %s", entry.Platform),
				Priority: "high",
			})
		}
		if engagement, ok := engagementStat(entry.Stats); ok && engagement < 0.05 {
			suggestions = append(suggestions, model.OptimizationSuggestion{
				Platform: entry.Platform,
				Type:     "low_engagement",
				Message:  fmt.Sprintf("Engagement rate on %s is below 5%%, try more interactive content", entry.Platform),
				Priority: "medium",
			})
		}
	}
	return suggestions
}

// engagementStat prefers the engagement rate reported by the platform and
// derives likes/followers only when no explicit stat is present.
func engagementStat(stats map[string]interface{}) (float64, bool) {
	if engagement, ok := toFloat(stats["engagement"]); ok {
		return engagement, true
	}
	followers, ok := toFloat(stats["followers"])
	if !ok || followers == 0 {
		return 0, false
	}
	likes, ok := toFloat(stats["likes"])
	if !ok {
		return 0, false
	}
	return likes / followers, true
}

// CalculateProjectedRevenue compounds the current revenue by growthRate per
// month over the horizon.
func (u *MonetizationUsecase) CalculateProjectedRevenue(currentRevenue, growthRate float64, months int) float64 {
	projected := currentRevenue
	for i := 0; i < months; i++ {
		projected *= 1 + growthRate
	}
	return projected
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
