package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/relsum/pkg/controller/mcp"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// keepStdoutClean moves log output to stderr when stdout carries command output.
func keepStdoutClean(cfg *logConfig) error {
	switch cfg.output {
	case "stdout", "-", "":
		return ConfigureLogging(cfg.format, cfg.level, "stderr")
	}
	return nil
}

func mcpCommand(logCfg *logConfig, stdin io.Reader, stdout io.Writer) *cli.Command {
	var svc integrations

	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve tools as an MCP server over stdio",
		Flags: svc.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := keepStdoutClean(logCfg); err != nil {
				return err
			}
			ctx = logging.With(ctx, logging.Default())
			logging.Default().Info("starting mcp", slog.Any("Integrations", &svc))

			uc, err := svc.newUseCase(ctx)
			if err != nil {
				return err
			}

			return mcp.New(uc, mcp.WithVersion(AppVersion)).Serve(ctx, stdin, stdout)
		},
	}
}
