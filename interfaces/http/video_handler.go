package http

import (
	"net/http"

	"video-studio/domain/dto"
	"video-studio/domain/model"
	"video-studio/usecase"

	"github.com/gin-gonic/gin"
)

type IVideoHandler interface {
	GenerateVideo(c *gin.Context)
	GetJobStatus(c *gin.Context)
	UploadVideo(c *gin.Context)
	GetUploadInfo(c *gin.Context)
}

type VideoHandler struct {
	VideoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) IVideoHandler {
	return &VideoHandler{VideoUsecase: videoUsecase}
}

// GenerateVideo validates the request before anything reaches a provider
// adapter; a bad provider tag never costs an outbound call.
func (h *VideoHandler) GenerateVideo(c *gin.Context) {
	var req dto.GenerateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Prompt == "" || req.Config == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt and config are required"})
		return
	}
	if !model.IsValidProvider(req.Config.Provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid provider"})
		return
	}

	job := h.VideoUsecase.GenerateVideo(c.Request.Context(), req.Prompt, req.Config, req.WebhookURL)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

func (h *VideoHandler) GetJobStatus(c *gin.Context) {
	jobID := c.Query("jobId")
	provider := c.Query("provider")
	if jobID == "" || provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId and provider are required"})
		return
	}

	job := h.VideoUsecase.CheckJobStatus(c.Request.Context(), jobID, provider)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

func (h *VideoHandler) UploadVideo(c *gin.Context) {
	var req dto.UploadVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UploadSource == nil || req.UploadSource.Type == "" || req.UploadSource.Source == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Upload source with type and source is required"})
		return
	}
	if !model.IsValidUploadType(req.UploadSource.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload type"})
		return
	}

	job := h.VideoUsecase.UploadVideo(c.Request.Context(), req.UploadSource)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// GetUploadInfo describes the accepted upload sources.
func (h *VideoHandler) GetUploadInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":       "/api/video/upload",
		"method":         "POST",
		"supportedTypes": model.ValidUploadTypes,
		"maxSize":        "500MB",
	})
}
