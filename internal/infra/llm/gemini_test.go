package llm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cinematch/config"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*config.LLMConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.LLMConfig{
		Endpoint: server.URL + "/v1beta/",
		Model:    "gemini-2.0-flash",
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:      1,
			Timeout:          time.Minute,
			FailureThreshold: 2,
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	return newClient(cfg, server.Client(), slog.New(slog.DiscardHandler))
}

func answer(text string) string {
	payload, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	})

	return string(payload)
}

func TestClient_GenerateJSON(t *testing.T) {
	var gotBody generateRequest
	client := createTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &gotBody))

		_, _ = io.WriteString(w, answer(`[{"title":"Columbus"}]`))
	}, nil)

	out, err := client.GenerateJSON(t.Context(), "recommend something")

	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Columbus"}]`, string(out))
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "recommend something", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestClient_GenerateJSONStripsFence(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, answer("```json\n{\"recommendations\":[]}\n```"))
	}, nil)

	out, err := client.GenerateJSON(t.Context(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, `{"recommendations":[]}`, string(out))
}

func TestClient_GenerateJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "api error", status: http.StatusBadRequest, body: `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, wantErr: "API key not valid"},
		{name: "bare status", status: http.StatusInternalServerError, body: "oops", wantErr: "model returned 500"},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`, wantErr: ErrEmptyAnswer.Error()},
		{name: "not json", status: http.StatusOK, body: "<html>", wantErr: "decode response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, nil)

			_, err := client.GenerateJSON(t.Context(), "prompt")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	var calls atomic.Int32
	client := createTestClient(t, func(http.ResponseWriter, *http.Request) {
		calls.Add(1)
	}, func(cfg *config.LLMConfig) { cfg.APIKey = "" })

	_, err := client.GenerateJSON(t.Context(), "prompt")

	assert.True(t, errors.Is(err, ErrNotConfigured))
	assert.Zero(t, calls.Load())
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, nil)

	for range 2 {
		_, err := client.GenerateJSON(t.Context(), "prompt")
		require.Error(t, err)
	}

	_, err := client.GenerateJSON(t.Context(), "prompt")

	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, gobreaker.StateOpen, client.cb.State())
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	client := createTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, answer("{}"))
	}, func(cfg *config.LLMConfig) {
		cfg.RequestsPerSecond = 0.001
		cfg.Burst = 1
	})

	_, err := client.GenerateJSON(t.Context(), "prompt")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	_, err = client.GenerateJSON(ctx, "prompt")

	assert.Error(t, err)
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFence(` {"a":1} `))
	assert.Equal(t, `[1]`, stripFence("```\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFence("```json\n[1]```"))
}
