package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// AppVersion is replaced at build time with -ldflags "-X".
var AppVersion = "dev"

type CLI struct {
	stdin  io.Reader
	stdout io.Writer
}

type Option func(*CLI)

// WithStdio replaces the process standard input and output, e.g. for tests.
func WithStdio(stdin io.Reader, stdout io.Writer) Option {
	return func(x *CLI) {
		x.stdin = stdin
		x.stdout = stdout
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

type logConfig struct {
	level  string
	format string
	output string
}

func (x *CLI) Run(argv []string) error {
	var (
		logCfg  logConfig
		envFile string
	)

	if err := loadEnvFile(argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	app := &cli.Command{
		Name:  "relsum",
		Usage: "Release summary from Jira, GitHub and Confluence",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("RELSUM_LOG_LEVEL"),
				Destination: &logCfg.level,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("RELSUM_LOG_FORMAT"),
				Destination: &logCfg.format,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("RELSUM_LOG_OUTPUT"),
				Destination: &logCfg.output,
				Value:       "-",
			},
			&cli.StringFlag{
				Name:        envFileFlag,
				Usage:       "Path to a .env file loaded before other flags are resolved",
				Sources:     cli.EnvVars("RELSUM_ENV_FILE"),
				Destination: &envFile,
				Value:       defaultEnvFile,
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			mcpCommand(&logCfg, x.stdin, x.stdout),
			summaryCommand(&logCfg, x.stdout),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logCfg.format, logCfg.level, logCfg.output); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
