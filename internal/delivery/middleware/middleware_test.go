package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinematch/config"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is kept", header: "abc-123", wantSame: true},
		{name: "missing id is generated"},
		{name: "oversized id is replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "control characters are replaced", header: "abc\x01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, seen)
			} else {
				assert.NotEqual(t, tt.header, seen)
			}
		})
	}
}

func newLoggerUnderTest(debug bool, buf *bytes.Buffer, skip ...string) *LoggerMiddleware {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewTextHandler(buf, nil)), cfg, skip...)
}

func TestLoggerMiddleware_LogsStatusOfDomainError(t *testing.T) {
	var buf bytes.Buffer
	mw := newLoggerUnderTest(true, &buf)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil), httptest.NewRecorder())
	deliverycontext.SetUser(c, &entity.User{ID: "u1"})

	err := mw.Handle(func(echo.Context) error {
		return domainerrors.ErrQuizNotCompleted.WrapMessage("recommend films")
	})(c)

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=409")
	assert.Contains(t, out, "user_id=u1")
}

func TestLoggerMiddleware_QuietPaths(t *testing.T) {
	t.Run("debug off", func(t *testing.T) {
		var buf bytes.Buffer
		mw := newLoggerUnderTest(false, &buf)
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/quiz", nil), httptest.NewRecorder())

		require.NoError(t, mw.Handle(func(echo.Context) error { return nil })(c))
		assert.Empty(t, buf.String())
	})

	t.Run("skipped path", func(t *testing.T) {
		var buf bytes.Buffer
		mw := newLoggerUnderTest(true, &buf, "/health")
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		require.NoError(t, mw.Handle(func(echo.Context) error { return nil })(c))
		assert.Empty(t, buf.String())
	})
}
