package server

import (
	"time"

	httpHandler "video-studio/interfaces/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	webhookHandler httpHandler.IWebhookHandler,
	scriptHandler httpHandler.IScriptHandler,
	monetizationHandler httpHandler.IMonetizationHandler,
	testHandler httpHandler.ITestHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/healthz", testHandler.Healthz)

	api := router.Group("api")

	video := api.Group("/video")
	{
		video.POST("/generate", videoHandler.GenerateVideo)
		video.GET("/generate", videoHandler.GetJobStatus)
		video.POST("/upload", videoHandler.UploadVideo)
		video.GET("/upload", videoHandler.GetUploadInfo)
		video.POST("/webhook/:provider", webhookHandler.HandleWebhook)
		video.GET("/webhook/:provider", webhookHandler.GetWebhookInfo)
	}

	ai := api.Group("/ai")
	{
		ai.POST("/generate-script", scriptHandler.GenerateScript)
		ai.GET("/generate-script", scriptHandler.GetScriptInfo)
	}

	monetization := api.Group("/monetization")
	{
		monetization.POST("/revenue", monetizationHandler.GetRevenue)
		monetization.GET("/revenue", monetizationHandler.GetDashboard)
	}

	return router
}
