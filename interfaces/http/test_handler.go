package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ITestHandler interface {
	Healthz(c *gin.Context)
}

type TestHandler struct{}

func NewTestHandler() ITestHandler {
	return &TestHandler{}
}

// Healthz returns OK for health checks
func (h *TestHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
