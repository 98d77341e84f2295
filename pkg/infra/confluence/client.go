package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gojira "github.com/andygrunwald/go-jira"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/safe"
)

const defaultSearchLimit = 25

// Client talks to the Confluence REST API. Confluence Cloud lives on the same Atlassian site
// and accepts the same basic auth as Jira, so go-jira's generic request layer is reused.
type Client struct {
	api     *gojira.Client
	baseURL string
	prefix  string
}

var _ interfaces.Wiki = (*Client)(nil)

type Option func(*Client)

// WithAPIPrefix sets the path of the REST API below the base URL. Cloud sites use "wiki/",
// self-hosted installations often use "".
func WithAPIPrefix(prefix string) Option {
	return func(x *Client) {
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		x.prefix = strings.TrimPrefix(prefix, "/")
	}
}

func New(baseURL, email string, token types.ConfluenceToken, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Confluence base URL is empty")
	}
	if email == "" || token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Confluence email and API token are required")
	}

	tp := gojira.BasicAuthTransport{Username: email, Password: string(token)}
	api, err := gojira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Confluence client", goerr.V("baseURL", baseURL))
	}

	client := &Client{
		api:     api,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		prefix:  "wiki/",
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

type contentDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Space struct {
		Key string `json:"key"`
	} `json:"space"`
	Version struct {
		Number int `json:"number"`
	} `json:"version"`
	Body struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
	Links struct {
		WebUI string `json:"webui"`
	} `json:"_links"`
}

func (x *Client) toPage(dto *contentDTO) *model.WikiPage {
	page := &model.WikiPage{
		ID:      dto.ID,
		Title:   dto.Title,
		Space:   dto.Space.Key,
		Version: dto.Version.Number,
		Body:    dto.Body.Storage.Value,
	}
	if dto.Links.WebUI != "" {
		page.URL = x.baseURL + "/" + strings.TrimPrefix(x.prefix+strings.TrimPrefix(dto.Links.WebUI, "/"), "/")
	}
	return page
}

func (x *Client) GetPage(ctx context.Context, pageID string) (*model.WikiPage, error) {
	if pageID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "page ID is empty")
	}

	path := fmt.Sprintf("%srest/api/content/%s?expand=body.storage,version,space", x.prefix, url.PathEscape(pageID))
	var dto contentDTO
	if err := x.call(ctx, path, &dto); err != nil {
		return nil, goerr.Wrap(err, "failed to get page", goerr.V("pageID", pageID))
	}

	return x.toPage(&dto), nil
}

func (x *Client) SearchPages(ctx context.Context, cql string, limit int) ([]*model.WikiPage, error) {
	if cql == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "CQL is empty")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	q := url.Values{}
	q.Set("cql", cql)
	q.Set("limit", fmt.Sprint(limit))
	q.Set("expand", "space,version")
	path := x.prefix + "rest/api/content/search?" + q.Encode()

	var resp struct {
		Results []*contentDTO `json:"results"`
	}
	if err := x.call(ctx, path, &resp); err != nil {
		return nil, goerr.Wrap(err, "failed to search pages", goerr.V("cql", cql))
	}

	pages := make([]*model.WikiPage, 0, len(resp.Results))
	for _, dto := range resp.Results {
		pages = append(pages, x.toPage(dto))
	}
	return pages, nil
}

func (x *Client) call(ctx context.Context, path string, v any) error {
	req, err := x.api.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create Confluence request", goerr.V("path", path))
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
