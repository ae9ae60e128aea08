package impl

import (
	"io"
	"log/slog"

	"cinematch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(minPasswordLength int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth.MinPasswordLength = minPasswordLength

	return cfg
}

func intPtr(v int) *int {
	return &v
}
