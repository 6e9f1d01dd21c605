package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"video-studio/infrastructure/clients/openai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Configured(t *testing.T) {
	assert.True(t, openai.NewClient("sk-test", "").Configured())
	assert.False(t, openai.NewClient("", "").Configured())
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-4", body["model"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  A great script.  "}}]}`))
	}))
	defer server.Close()

	client := openai.NewClient("sk-test", "").WithBaseURL(server.URL)
	out, err := client.Complete(context.Background(), "system", "user", 100, 0.7)

	require.NoError(t, err)
	assert.Equal(t, "A great script.", out)
}

func TestClient_Complete_VendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := openai.NewClient("sk-test", "").WithBaseURL(server.URL)
	_, err := client.Complete(context.Background(), "system", "user", 100, 0.7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := openai.NewClient("sk-test", "").WithBaseURL(server.URL)
	_, err := client.Complete(context.Background(), "system", "user", 100, 0.7)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
