package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"cinematch/config"
	deliverycontext "cinematch/internal/delivery/context"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	skip   map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware.
// Requests to skipPaths are never logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, skipPaths ...string) *LoggerMiddleware {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		skip:   skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug {
			return next(c)
		}
		if _, ok := m.skip[c.Request().URL.Path]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := res.Status
	// The error handler has not run yet, so the response may still say 200.
	if err != nil {
		status = statusOf(err)
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if user := deliverycontext.GetUser(c); user != nil {
		fields = append(fields, slog.String("user_id", user.ID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id.
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}

func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
