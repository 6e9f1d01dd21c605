package http

import (
	"net/http"

	"video-studio/domain/dto"
	"video-studio/usecase"

	"github.com/gin-gonic/gin"
)

type IScriptHandler interface {
	GenerateScript(c *gin.Context)
	GetScriptInfo(c *gin.Context)
}

type ScriptHandler struct {
	ScriptUsecase usecase.IScriptUsecase
}

func NewScriptHandler(scriptUsecase usecase.IScriptUsecase) IScriptHandler {
	return &ScriptHandler{ScriptUsecase: scriptUsecase}
}

func (h *ScriptHandler) GenerateScript(c *gin.Context) {
	var req dto.GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	script, err := h.ScriptUsecase.GenerateScript(c.Request.Context(), req.Topic, req.Duration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate script"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"script": script}})
}

func (h *ScriptHandler) GetScriptInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":    "/api/ai/generate-script",
		"method":      "POST",
		"description": "Generates a video script for the given topic",
		"parameters":  gin.H{"topic": "required", "duration": "optional, seconds, default 60"},
	})
}
