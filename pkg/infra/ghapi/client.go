package ghapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/m-mizutani/relsum/pkg/utils/safe"
	"golang.org/x/oauth2"
)

const (
	defaultPerPage     = 100
	defaultConcurrency = 8

	// GitHub run log archives are usually a few MB; anything above this is not a log archive.
	maxArchiveSize = 256 << 20
)

type Client struct {
	gh             *github.Client
	downloadClient *http.Client
	concurrency    int
}

var _ interfaces.SourceControl = (*Client)(nil)

type Option func(*Client) error

// WithBaseURL points the client at a GitHub Enterprise or test API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("url", baseURL))
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		x.gh.BaseURL = u
		return nil
	}
}

// WithDownloadClient sets the HTTP client used to fetch the pre-signed log archive URL.
func WithDownloadClient(client *http.Client) Option {
	return func(x *Client) error {
		x.downloadClient = client
		return nil
	}
}

// WithConcurrency limits concurrent page requests.
func WithConcurrency(n int) Option {
	return func(x *Client) error {
		if n <= 0 {
			return goerr.Wrap(types.ErrInvalidOption, "concurrency must be positive", goerr.V("value", n))
		}
		x.concurrency = n
		return nil
	}
}

// New creates a client on top of an authenticated HTTP client.
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	client := &Client{
		gh:             github.NewClient(httpClient),
		downloadClient: http.DefaultClient,
		concurrency:    defaultConcurrency,
	}

	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return client, nil
}

// NewTokenHTTPClient returns an HTTP client authenticated by a personal access token.
func NewTokenHTTPClient(ctx context.Context, token types.GitHubToken) (*http.Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	return oauth2.NewClient(ctx, ts), nil
}

// NewAppHTTPClient returns an HTTP client authenticated as a GitHub App installation.
func NewAppHTTPClient(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*http.Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	itr, err := ghinstallation.New(http.DefaultTransport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "Failed to create github client")
	}

	return &http.Client{Transport: itr}, nil
}

func (x *Client) ListRepositories(ctx context.Context, org, namePrefix string) ([]*model.Repository, error) {
	repos, err := fetchAllPages(ctx, x.concurrency, func(ctx context.Context, opt github.ListOptions) ([]*github.Repository, *github.Response, error) {
		return x.gh.Repositories.ListByOrg(ctx, org, &github.RepositoryListByOrgOptions{
			Type:        "all",
			Sort:        "full_name",
			ListOptions: opt,
		})
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("org", org))
	}

	prefix := strings.ToLower(namePrefix)
	var result []*model.Repository
	for _, repo := range repos {
		if !strings.HasPrefix(strings.ToLower(repo.GetName()), prefix) {
			continue
		}
		result = append(result, &model.Repository{
			Name:          types.RepoName(repo.GetName()),
			FullName:      repo.GetFullName(),
			DefaultBranch: repo.GetDefaultBranch(),
			Archived:      repo.GetArchived(),
		})
	}

	logging.From(ctx).Info("Listed repositories",
		slog.String("org", org),
		slog.String("prefix", namePrefix),
		slog.Int("total", len(repos)),
		slog.Int("matched", len(result)),
	)

	return result, nil
}

func (x *Client) ListBranches(ctx context.Context, org string, repo types.RepoName) ([]*model.Branch, error) {
	branches, err := fetchAllPages(ctx, x.concurrency, func(ctx context.Context, opt github.ListOptions) ([]*github.Branch, *github.Response, error) {
		return x.gh.Repositories.ListBranches(ctx, org, repo.String(), &github.BranchListOptions{
			ListOptions: opt,
		})
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("org", org), goerr.V("repo", repo))
	}

	result := make([]*model.Branch, 0, len(branches))
	for _, b := range branches {
		result = append(result, &model.Branch{
			Name:      b.GetName(),
			CommitSHA: b.GetCommit().GetSHA(),
		})
	}

	return result, nil
}

func (x *Client) ListWorkflowRuns(ctx context.Context, org string, repo types.RepoName, filter *model.WorkflowRunFilter) ([]*model.WorkflowRun, error) {
	opt := &github.ListWorkflowRunsOptions{}
	if filter != nil {
		opt.Status = filter.Status
		opt.ListOptions.PerPage = filter.PerPage
	}

	runs, _, err := x.gh.Actions.ListRepositoryWorkflowRuns(ctx, org, repo.String(), opt)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs", goerr.V("org", org), goerr.V("repo", repo))
	}

	result := make([]*model.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, &model.WorkflowRun{
			ID:         types.RunID(run.GetID()),
			Name:       run.GetName(),
			Status:     run.GetStatus(),
			Conclusion: run.GetConclusion(),
			HeadBranch: run.GetHeadBranch(),
			CreatedAt:  run.GetCreatedAt().Time,
		})
	}

	return result, nil
}

// DownloadRunLogArchive resolves the short-lived archive URL of a run's logs and downloads it.
func (x *Client) DownloadRunLogArchive(ctx context.Context, org string, repo types.RepoName, runID types.RunID) ([]byte, error) {
	// https://docs.github.com/en/rest/actions/workflow-runs#download-workflow-run-logs
	archiveURL, _, err := x.gh.Actions.GetWorkflowRunLogs(ctx, org, repo.String(), int64(runID), false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workflow run logs URL",
			goerr.V("org", org), goerr.V("repo", repo), goerr.V("runID", runID))
	}

	logging.From(ctx).Debug("Resolved run log archive", slog.Any("repo", repo), slog.Any("runID", runID))

	var buf bytes.Buffer
	if err := downloadArchive(ctx, x.downloadClient, archiveURL, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to download run log archive", goerr.V("repo", repo), goerr.V("runID", runID))
	}

	return buf.Bytes(), nil
}

func downloadArchive(ctx context.Context, httpClient *http.Client, archiveURL *url.URL, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request for log archive")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to download log archive")
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.Wrap(types.ErrUnexpectedResponse, "failed to download log archive",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	n, err := io.Copy(w, io.LimitReader(resp.Body, maxArchiveSize+1))
	if err != nil {
		return goerr.Wrap(err, "failed to read log archive")
	}
	if n > maxArchiveSize {
		return goerr.Wrap(types.ErrInvalidArchive, "log archive is too large", goerr.V("limit", maxArchiveSize))
	}

	return nil
}
