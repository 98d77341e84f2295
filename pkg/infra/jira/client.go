package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"github.com/m-mizutani/relsum/pkg/utils/safe"
)

const (
	// Jira returns at most 100 issues per search request regardless of maxResults.
	searchPageSize = 100
	bulkChunkSize  = 100

	createdLayout = "2006-01-02T15:04:05.000-0700"
)

var standardFields = []string{"summary", "issuetype", "status", "parent", "created"}

type Client struct {
	api    *gojira.Client
	fields CustomFieldIDs
}

var _ interfaces.IssueTracker = (*Client)(nil)

type Option func(*Client)

func WithCustomFieldIDs(ids CustomFieldIDs) Option {
	return func(x *Client) {
		x.fields = ids
	}
}

// New creates a Jira client using basic auth with an account email and API token.
func New(baseURL, email string, token types.JiraToken, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Jira base URL is empty")
	}
	if email == "" || token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Jira email and API token are required")
	}

	tp := gojira.BasicAuthTransport{
		Username: email,
		Password: string(token),
	}
	api, err := gojira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Jira client", goerr.V("baseURL", baseURL))
	}

	client := &Client{
		api:    api,
		fields: DefaultCustomFieldIDs(),
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type versionDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Released    bool   `json:"released"`
	Archived    bool   `json:"archived"`
	ReleaseDate string `json:"releaseDate"`
}

func (x *Client) ListUnreleasedVersions(ctx context.Context, project types.ProjectKey) ([]*model.FixVersion, error) {
	var versions []versionDTO
	path := fmt.Sprintf("rest/api/2/project/%s/versions", url.PathEscape(project.String()))
	if err := x.call(ctx, http.MethodGet, path, nil, &versions); err != nil {
		return nil, goerr.Wrap(err, "failed to list project versions", goerr.V("project", project))
	}

	var result []*model.FixVersion
	for _, v := range versions {
		if v.Released {
			continue
		}
		result = append(result, &model.FixVersion{
			ID:          v.ID,
			Name:        types.VersionName(v.Name),
			ReleaseDate: v.ReleaseDate,
		})
	}

	logging.From(ctx).Debug("Listed unreleased versions",
		slog.Any("project", project),
		slog.Int("total", len(versions)),
		slog.Int("unreleased", len(result)),
	)

	return result, nil
}

func (x *Client) SearchIssuesByVersion(ctx context.Context, query *model.IssueSearchQuery) (*model.IssueSearchResult, error) {
	clauses := []string{
		"project = " + quoteJQL(query.Project.String()),
		"fixVersion = " + quoteJQL(query.FixVersion.String()),
	}
	if query.ExcludeSubtasks {
		clauses = append(clauses, "issuetype not in subTaskIssueTypes()")
	}
	jql := strings.Join(clauses, " AND ") + " ORDER BY created ASC"

	issues, total, err := x.search(ctx, jql, query.MaxResults)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search issues", goerr.V("jql", jql))
	}

	return &model.IssueSearchResult{
		Issues: issues,
		Total:  total,
	}, nil
}

func (x *Client) GetIssues(ctx context.Context, keys []types.IssueKey) ([]*model.Issue, error) {
	var result []*model.Issue
	for start := 0; start < len(keys); start += bulkChunkSize {
		end := min(start+bulkChunkSize, len(keys))

		quoted := make([]string, 0, end-start)
		for _, key := range keys[start:end] {
			quoted = append(quoted, quoteJQL(key.String()))
		}
		jql := "key in (" + strings.Join(quoted, ",") + ")"

		issues, _, err := x.search(ctx, jql, end-start)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch issues", goerr.V("keys", keys[start:end]))
		}
		result = append(result, issues...)
	}

	return result, nil
}

type searchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	Fields     []string `json:"fields"`
}

type searchResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []issueDTO `json:"issues"`
}

type issueDTO struct {
	Key    string                     `json:"key"`
	Fields map[string]json.RawMessage `json:"fields"`
}

// search pages through results until limit issues are collected or the result set ends.
func (x *Client) search(ctx context.Context, jql string, limit int) ([]*model.Issue, int, error) {
	fields := append(append([]string{}, standardFields...), x.fields.ids()...)
	fields = append(fields, "*navigable")

	var (
		issues []*model.Issue
		total  int
	)
	for len(issues) < limit {
		req := searchRequest{
			JQL:        jql,
			StartAt:    len(issues),
			MaxResults: min(searchPageSize, limit-len(issues)),
			Fields:     fields,
		}

		var resp searchResponse
		if err := x.call(ctx, http.MethodPost, "rest/api/2/search", &req, &resp); err != nil {
			return nil, 0, err
		}

		total = resp.Total
		for _, dto := range resp.Issues {
			issues = append(issues, x.toIssue(dto))
		}

		if len(resp.Issues) == 0 || len(issues) >= total {
			break
		}
	}

	logging.From(ctx).Debug("Searched issues",
		slog.String("jql", jql),
		slog.Int("fetched", len(issues)),
		slog.Int("total", total),
	)

	return issues, total, nil
}

func (x *Client) call(ctx context.Context, method, path string, body, v any) error {
	req, err := x.api.NewRequestWithContext(ctx, method, path, body)
	if err != nil {
		return goerr.Wrap(err, "failed to create Jira request", goerr.V("path", path))
	}

	resp, err := x.api.Do(req, v)
	if err != nil {
		status := 0
		if resp != nil && resp.Response != nil {
			status = resp.StatusCode
			safe.Close(resp.Body)
		}
		return goerr.Wrap(types.ErrUnexpectedResponse, err.Error(),
			goerr.V("path", path),
			goerr.V("status", status),
		)
	}

	return nil
}

func (x *Client) toIssue(dto issueDTO) *model.Issue {
	f := dto.Fields
	issue := &model.Issue{
		Key:       types.IssueKey(dto.Key),
		Summary:   textValue(f["summary"]),
		IssueType: textValue(f["issuetype"]),
		Status:    textValue(f["status"]),
		Fields:    x.fields.decode(f),
		Extra:     x.fields.extra(f),
	}

	if raw, ok := f["parent"]; ok && !isNull(raw) {
		var parent struct {
			Key string `json:"key"`
		}
		if err := json.Unmarshal(raw, &parent); err == nil {
			issue.ParentKey = types.IssueKey(parent.Key)
		}
	}

	if created := textValue(f["created"]); created != "" {
		if t, err := time.Parse(createdLayout, created); err == nil {
			issue.Created = t
		}
	}

	return issue
}

func quoteJQL(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
