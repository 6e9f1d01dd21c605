package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpHandler "video-studio/interfaces/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScriptUsecase struct {
	mock.Mock
}

func (m *MockScriptUsecase) GenerateScript(ctx context.Context, topic string, duration int) (string, error) {
	args := m.Called(ctx, topic, duration)
	return args.String(0), args.Error(1)
}

func (m *MockScriptUsecase) GenerateThumbnailPrompts(ctx context.Context, title string) ([]string, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newScriptRouter(mockUsecase *MockScriptUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := httpHandler.NewScriptHandler(mockUsecase)
	router := gin.New()
	router.POST("/api/ai/generate-script", handler.GenerateScript)
	router.GET("/api/ai/generate-script", handler.GetScriptInfo)
	return router
}

func TestScriptHandler_GenerateScript(t *testing.T) {
	mockUsecase := new(MockScriptUsecase)
	mockUsecase.On("GenerateScript", mock.Anything, "urban gardening", 45).
		Return("[HOOK] Grow food anywhere.", nil).
		Once()

	router := newScriptRouter(mockUsecase)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-script", strings.NewReader(`{"topic":"urban gardening","duration":45}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grow food anywhere")
	mockUsecase.AssertExpectations(t)
}

func TestScriptHandler_GenerateScript_MissingTopic(t *testing.T) {
	mockUsecase := new(MockScriptUsecase)
	router := newScriptRouter(mockUsecase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-script", strings.NewReader(`{"duration":45}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Topic is required")
	mockUsecase.AssertExpectations(t)
}

func TestScriptHandler_GenerateScript_UsecaseError(t *testing.T) {
	mockUsecase := new(MockScriptUsecase)
	mockUsecase.On("GenerateScript", mock.Anything, "urban gardening", 0).
		Return("", assert.AnError).
		Once()

	router := newScriptRouter(mockUsecase)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai/generate-script", strings.NewReader(`{"topic":"urban gardening"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUsecase.AssertExpectations(t)
}

func TestScriptHandler_GetScriptInfo(t *testing.T) {
	mockUsecase := new(MockScriptUsecase)
	router := newScriptRouter(mockUsecase)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ai/generate-script", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "generate-script")
}
