package config_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/cli/config"
)

func TestSentry(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		var cfg config.Sentry
		parseFlags(t, cfg.Flags(),
			"--sentry-dsn", "https://key@sentry.example.com/42",
			"--sentry-env", "staging",
			"--sentry-release", "v1.2.0",
		)
		gt.True(t, cfg.Configured())

		text := logText(t, &cfg)
		gt.False(t, strings.Contains(text, "key@sentry.example.com"))
		gt.S(t, text).Contains("staging")
		gt.S(t, text).Contains("v1.2.0")
	})

	t.Run("not configured", func(t *testing.T) {
		t.Setenv("RELSUM_SENTRY_DSN", "")
		var cfg config.Sentry
		parseFlags(t, cfg.Flags())
		gt.False(t, cfg.Configured())
		gt.NoError(t, cfg.Configure(context.Background()))
	})

	t.Run("invalid DSN", func(t *testing.T) {
		var cfg config.Sentry
		parseFlags(t, cfg.Flags(), "--sentry-dsn", "not a dsn")
		gt.Error(t, cfg.Configure(context.Background()))
	})
}
