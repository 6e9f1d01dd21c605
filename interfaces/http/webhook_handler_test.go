package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"video-studio/domain/dto"
	httpHandler "video-studio/interfaces/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWebhookUsecase struct {
	mock.Mock
}

func (m *MockWebhookUsecase) HandleWebhook(ctx context.Context, provider string, payload map[string]interface{}) dto.WebhookResult {
	args := m.Called(ctx, provider, payload)
	return args.Get(0).(dto.WebhookResult)
}

func newWebhookRouter(mockUsecase *MockWebhookUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := httpHandler.NewWebhookHandler(mockUsecase)
	router := gin.New()
	router.POST("/api/video/webhook/:provider", handler.HandleWebhook)
	router.GET("/api/video/webhook/:provider", handler.GetWebhookInfo)
	return router
}

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	mockUsecase := new(MockWebhookUsecase)
	mockUsecase.On("HandleWebhook", mock.Anything, "runway", mock.Anything).
		Return(dto.WebhookResult{Success: true, JobID: "task-1"}).
		Once()

	router := newWebhookRouter(mockUsecase)
	body := `{"id":"task-1","status":"SUCCEEDED","output":"https://cdn.runway.example/v.mp4"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/video/webhook/runway", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "task-1")
	mockUsecase.AssertExpectations(t)
}

func TestWebhookHandler_HandleWebhook_NoJobID(t *testing.T) {
	mockUsecase := new(MockWebhookUsecase)
	mockUsecase.On("HandleWebhook", mock.Anything, "runway", mock.Anything).
		Return(dto.WebhookResult{Success: false}).
		Once()

	router := newWebhookRouter(mockUsecase)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/video/webhook/runway", strings.NewReader(`{"status":"SUCCEEDED"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Could not extract job ID")
	mockUsecase.AssertExpectations(t)
}

func TestWebhookHandler_HandleWebhook_BadBody(t *testing.T) {
	mockUsecase := new(MockWebhookUsecase)
	router := newWebhookRouter(mockUsecase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/video/webhook/runway", strings.NewReader(`not-json`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestWebhookHandler_GetWebhookInfo(t *testing.T) {
	mockUsecase := new(MockWebhookUsecase)
	router := newWebhookRouter(mockUsecase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/video/webhook/runway", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "callbacks")
}
