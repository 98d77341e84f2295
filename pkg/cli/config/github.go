package config

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	org        string
	repoPrefix string
	baseURL    string

	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "GitHub organization. Detected from the git origin remote if omitted",
			Category:    "GitHub",
			Destination: &x.org,
			Sources:     cli.EnvVars("RELSUM_GITHUB_ORG"),
		},
		&cli.StringFlag{
			Name:        "github-repo-prefix",
			Usage:       "Only repositories whose name starts with this prefix are inspected",
			Category:    "GitHub",
			Destination: &x.repoPrefix,
			Sources:     cli.EnvVars("RELSUM_GITHUB_REPO_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("RELSUM_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RELSUM_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("RELSUM_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("RELSUM_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("RELSUM_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) appConfigured() bool {
	return x.appID != 0 || x.installID != 0 || x.privateKey != ""
}

// HTTPClient returns an authenticated client. A token takes precedence over GitHub App
// credentials. It returns nil without error if neither is set.
func (x *GitHub) HTTPClient(ctx context.Context) (*http.Client, error) {
	switch {
	case x.token != "":
		return ghapi.NewTokenHTTPClient(ctx, x.token)
	case x.appConfigured():
		if x.appID == 0 || x.installID == 0 || x.privateKey == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "github-app-id, github-app-install-id and github-app-private-key must be set together")
		}
		return ghapi.NewAppHTTPClient(x.appID, x.installID, x.privateKey)
	default:
		return nil, nil
	}
}

// New returns nil client without error if GitHub credentials are not configured.
func (x *GitHub) New(ctx context.Context) (*ghapi.Client, error) {
	httpClient, err := x.HTTPClient(ctx)
	if err != nil || httpClient == nil {
		return nil, err
	}

	var options []ghapi.Option
	if x.baseURL != "" {
		options = append(options, ghapi.WithBaseURL(x.baseURL))
	}
	return ghapi.New(httpClient, options...)
}

func (x *GitHub) Org() string {
	return x.org
}

// SetOrg overrides the organization, e.g. with the one detected from the git remote.
func (x *GitHub) SetOrg(org string) {
	x.org = org
}

func (x *GitHub) RepoPrefix() string {
	return x.repoPrefix
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Org", x.org),
		slog.String("RepoPrefix", x.repoPrefix),
		slog.String("APIURL", x.baseURL),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
	)
}
