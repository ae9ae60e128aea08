// Package llm talks to a hosted generative model over its REST API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cinematch/config"
	"cinematch/internal/domain/service"
	"cinematch/internal/infra/metrics"

	"github.com/pkg/errors"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	breakerName = "llm"

	defaultFailureThreshold = 5
	maxResponseBytes        = 1 << 20
)

var (
	// ErrNotConfigured is returned when no API key is set.
	ErrNotConfigured = errors.New("llm api key is not configured")

	// ErrEmptyAnswer is returned when the model produced no text.
	ErrEmptyAnswer = errors.New("llm returned no candidates")
)

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client is a service.Generator backed by the Gemini generateContent endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
	timeout    time.Duration
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

// NewClient builds the generator from the llm config section.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return newClient(cfg.LLM, http.DefaultClient, logger)
}

// NewGenerator exposes the client as a service.Generator.
func NewGenerator(client *Client) service.Generator {
	return client
}

func newClient(cfg config.LLMConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	logger = logger.With(slog.String("component", "llm"), slog.String("model", cfg.Model))

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	threshold := cfg.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = defaultFailureThreshold
	}

	metrics.LLMCircuitState.Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    cfg.Breaker.Interval,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state transition",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.LLMCircuitState.Set(stateToFloat(to))
		},
	})

	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		limiter:    rate.NewLimiter(limit, burst),
		cb:         cb,
		logger:     logger,
	}
}

// GenerateJSON sends prompt to the model, asking for a JSON answer, and returns the answer text.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	if c.apiKey == "" {
		metrics.LLMRequests.WithLabelValues(metrics.ResultRejected).Inc()

		return nil, ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.LLMRequests.WithLabelValues(metrics.ResultRejected).Inc()

		return nil, errors.Wrap(err, "rate limit")
	}

	answer, err := c.cb.Execute(func() ([]byte, error) {
		return c.generate(ctx, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.LLMRequests.WithLabelValues(metrics.ResultRejected).Inc()
			c.logger.Warn("Model request rejected by circuit breaker", slog.Any("error", err))
		} else {
			metrics.LLMRequests.WithLabelValues(metrics.ResultFailure).Inc()
		}

		return nil, err
	}

	metrics.LLMRequests.WithLabelValues(metrics.ResultSuccess).Inc()

	return answer, nil
}

func (c *Client) generate(ctx context.Context, prompt string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	endpoint := c.endpoint + "/models/" + url.PathEscape(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "call model")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	c.logger.Debug("Model call finished",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, errors.Errorf("model returned %d %s: %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}

		return nil, errors.Errorf("model returned %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	var text strings.Builder
	if len(decoded.Candidates) > 0 {
		for _, p := range decoded.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, ErrEmptyAnswer
	}

	return []byte(stripFence(text.String())), nil
}

// stripFence removes a markdown code fence some models wrap around JSON answers.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}

	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
