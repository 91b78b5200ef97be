package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finbuddy/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testGroqConfig(baseURL string) *config.GroqConfig {
	return &config.GroqConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.8,
		MaxTokens:   300,
		Timeout:     2 * time.Second,
	}
}

func TestGroqClientComplete(t *testing.T) {
	var captured groqRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hey! How's it going?"}}]}`))
	}))
	defer server.Close()

	client := NewGroqClient(testGroqConfig(server.URL), zap.NewNop())
	reply, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "hey"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hey! How's it going?", reply)
	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, 0.8, captured.Temperature)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
}

func TestGroqClientUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewGroqClient(testGroqConfig(server.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hey"}})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
}

func TestGroqClientTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	cfg := testGroqConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewGroqClient(cfg, zap.NewNop())

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hey"}})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGroqClientConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens on the URL anymore

	client := NewGroqClient(testGroqConfig(server.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hey"}})
	assert.ErrorIs(t, err, ErrConnection)
}

func TestGroqClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewGroqClient(testGroqConfig(server.URL), zap.NewNop())
	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hey"}})

	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream))
}
