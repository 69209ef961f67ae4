package impl

import (
	"io"
	"log/slog"
	"time"

	"passport/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      12,
			SessionDuration: 24 * time.Hour,
			JWTDuration:     15 * time.Minute,
		},
		Challenge: &config.ChallengeConfig{
			CodeLength: 6,
			Duration:   15 * time.Minute,
		},
	}
	cfg.SecretKey.JWT = "test-jwt-secret"
	cfg.SecretKey.OAuthState = "test-state-secret"

	return cfg
}
