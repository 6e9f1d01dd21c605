package http

import (
	"net/http"

	"video-studio/usecase"

	"github.com/gin-gonic/gin"
)

type IWebhookHandler interface {
	HandleWebhook(c *gin.Context)
	GetWebhookInfo(c *gin.Context)
}

type WebhookHandler struct {
	WebhookUsecase usecase.IWebhookUsecase
}

func NewWebhookHandler(webhookUsecase usecase.IWebhookUsecase) IWebhookHandler {
	return &WebhookHandler{WebhookUsecase: webhookUsecase}
}

// HandleWebhook receives a vendor callback. The provider tag comes from the
// path so each vendor gets its own callback URL.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	provider := c.Param("provider")

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	result := h.WebhookUsecase.HandleWebhook(c.Request.Context(), provider, payload)
	if !result.Success {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract job ID from webhook payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Webhook processed",
		"jobId":   result.JobID,
	})
}

func (h *WebhookHandler) GetWebhookInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":    "/api/video/webhook/:provider",
		"method":      "POST",
		"description": "Receives completion callbacks from video generation providers",
		"providers":   []string{"runway", "pika", "stable-video"},
	})
}
