package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const releaseSummaryTool = "release_summary"

func summaryCommand(logCfg *logConfig, stdout io.Writer) *cli.Command {
	var (
		version      string
		project      string
		forceRefresh bool
		runID        int64

		svc integrations
	)
	summaryFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "version",
			Usage:       "Fix version name. The first unreleased version is used if omitted",
			Sources:     cli.EnvVars("RELSUM_VERSION"),
			Destination: &version,
		},
		&cli.StringFlag{
			Name:        "project",
			Usage:       "Jira project key overriding the configured project",
			Sources:     cli.EnvVars("RELSUM_PROJECT"),
			Destination: &project,
		},
		&cli.BoolFlag{
			Name:        "force-refresh",
			Usage:       "Ignore --run-id and use the latest completed workflow run",
			Destination: &forceRefresh,
		},
		&cli.Int64Flag{
			Name:        "run-id",
			Usage:       "Workflow run ID of the deploy. The latest completed run is used if omitted",
			Destination: &runID,
		},
	}

	return &cli.Command{
		Name:  "summary",
		Usage: "Build a release summary once and print it as JSON",
		Flags: slice.Flatten(
			summaryFlags,
			svc.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := keepStdoutClean(logCfg); err != nil {
				return err
			}
			ctx = logging.With(ctx, logging.Default())

			uc, err := svc.newUseCase(ctx)
			if err != nil {
				return err
			}

			args := model.ToolArgs{
				"force_refresh": forceRefresh,
			}
			if version != "" {
				args["version"] = version
			}
			if project != "" {
				args["project"] = project
			}
			if runID != 0 {
				args["run_id"] = runID
			}

			resp, err := uc.CallTool(ctx, releaseSummaryTool, args)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(resp); err != nil {
				return goerr.Wrap(err, "failed to write release summary")
			}

			if !resp.Success {
				return goerr.New("release summary failed", goerr.V("summary", resp.Summary))
			}
			logging.From(ctx).Info("release summary done", slog.String("summary", resp.Summary))
			return nil
		},
	}
}
