package dto

import (
	"time"

	"video-studio/domain/model"
)

// RevenueRequest is the POST /api/monetization/revenue body.
type RevenueRequest struct {
	Platforms []model.PlatformCredential `json:"platforms"`
}

// RevenueResponse is the aggregation payload returned to the dashboard.
type RevenueResponse struct {
	Platforms    []model.PlatformRevenue        `json:"platforms"`
	TotalRevenue float64                        `json:"totalRevenue"`
	Suggestions  []model.OptimizationSuggestion `json:"suggestions"`
	LastUpdated  time.Time                      `json:"lastUpdated"`
}
