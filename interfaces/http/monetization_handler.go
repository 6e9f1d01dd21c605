package http

import (
	"net/http"

	"video-studio/domain/dto"
	"video-studio/usecase"

	"github.com/gin-gonic/gin"
)

type IMonetizationHandler interface {
	GetRevenue(c *gin.Context)
	GetDashboard(c *gin.Context)
}

type MonetizationHandler struct {
	MonetizationUsecase usecase.IMonetizationUsecase
}

func NewMonetizationHandler(monetizationUsecase usecase.IMonetizationUsecase) IMonetizationHandler {
	return &MonetizationHandler{MonetizationUsecase: monetizationUsecase}
}

func (h *MonetizationHandler) GetRevenue(c *gin.Context) {
	var req dto.RevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Platforms == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Platforms array is required"})
		return
	}

	res := h.MonetizationUsecase.AggregateRevenue(c.Request.Context(), req.Platforms)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}

// GetDashboard serves the demo dashboard payload for clients that have not
// connected their platform credentials yet.
func (h *MonetizationHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"platforms": []gin.H{
				{"platform": "youtube", "revenue": 2450.50, "stats": gin.H{"subscribers": 15420, "videos": 47}},
				{"platform": "tiktok", "revenue": 890.25, "stats": gin.H{"followers": 8750, "videos": 23}},
				{"platform": "patreon", "revenue": 1200.00, "stats": gin.H{"patrons": 156, "posts": 12}},
			},
			"totalRevenue": 4540.75,
			"suggestions": []gin.H{
				{
					"platform": "instagram",
					"type":     "not_connected",
					"message":  "Connect Instagram to track Reels bonuses",
					"priority": "low",
				},
			},
		},
	})
}
