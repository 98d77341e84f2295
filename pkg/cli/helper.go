package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/relsum/pkg/cli/config"
	"github.com/m-mizutani/relsum/pkg/infra"
	"github.com/m-mizutani/relsum/pkg/usecase"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// integrations groups the configuration of every external service.
type integrations struct {
	jira       config.Jira
	github     config.GitHub
	confluence config.Confluence
	sentry     config.Sentry
}

func (x *integrations) Flags() []cli.Flag {
	return slice.Flatten(
		x.jira.Flags(),
		x.github.Flags(),
		x.confluence.Flags(),
		x.sentry.Flags(),
	)
}

func (x *integrations) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Jira", x.jira),
		slog.Any("GitHub", x.github),
		slog.Any("Confluence", x.confluence),
		slog.Any("Sentry", &x.sentry),
	)
}

// newUseCase builds the use case with every configured client. Integrations without
// configuration are left unset and their tools report "not configured".
func (x *integrations) newUseCase(ctx context.Context) (*usecase.UseCase, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	if x.github.Org() == "" {
		if org, err := DetectGitHubOrg("."); err != nil {
			logging.From(ctx).Debug("GitHub organization is not detected", slog.Any("error", err))
		} else {
			logging.From(ctx).Info("GitHub organization detected from git remote", slog.String("org", org))
			x.github.SetOrg(org)
		}
	}

	var infraOptions []infra.Option

	if client, err := x.jira.New(); err != nil {
		return nil, err
	} else if client != nil {
		infraOptions = append(infraOptions, infra.WithIssueTracker(client))
	} else {
		logging.From(ctx).Warn("Jira is not configured")
	}

	if client, err := x.github.New(ctx); err != nil {
		return nil, err
	} else if client != nil {
		infraOptions = append(infraOptions, infra.WithSourceControl(client))
	} else {
		logging.From(ctx).Warn("GitHub is not configured")
	}

	if client, err := x.confluence.New(&x.jira); err != nil {
		return nil, err
	} else if client != nil {
		infraOptions = append(infraOptions, infra.WithWiki(client))
	}

	return usecase.New(infra.New(infraOptions...),
		usecase.WithProject(x.jira.Project()),
		usecase.WithGitHubOrg(x.github.Org()),
		usecase.WithRepoPrefix(x.github.RepoPrefix()),
	), nil
}
