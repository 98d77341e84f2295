package config

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Sentry reports unexpected faults from tool calls and HTTP handlers.
type Sentry struct {
	dsn         string
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("RELSUM_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("RELSUM_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Release name attached to Sentry events",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("RELSUM_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Configured() bool {
	return x.dsn != ""
}

// Configure initializes the global Sentry hub. Without a DSN, faults are only logged.
func (x *Sentry) Configure(ctx context.Context) error {
	if !x.Configured() {
		logging.From(ctx).Warn("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              x.dsn,
		Environment:      x.environment,
		Release:          x.release,
		AttachStacktrace: true,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry", goerr.V("environment", x.environment))
	}

	return nil
}

// LogValue hides the DSN because it embeds the project key.
func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("DSN", x.Configured()),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}
