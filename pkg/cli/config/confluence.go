package config

import (
	"log/slog"

	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/infra/confluence"
	"github.com/urfave/cli/v3"
)

type Confluence struct {
	baseURL string
	email   string
	token   types.ConfluenceToken `masq:"secret"`
}

func (x *Confluence) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "confluence-url",
			Usage:       "Confluence base URL. Defaults to the Jira URL",
			Category:    "Confluence",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("RELSUM_CONFLUENCE_URL"),
		},
		&cli.StringFlag{
			Name:        "confluence-email",
			Usage:       "Confluence account email. Defaults to the Jira email",
			Category:    "Confluence",
			Destination: &x.email,
			Sources:     cli.EnvVars("RELSUM_CONFLUENCE_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "confluence-token",
			Usage:       "Confluence API token. Defaults to the Jira token",
			Category:    "Confluence",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RELSUM_CONFLUENCE_TOKEN"),
		},
	}
}

// New builds the wiki client. Unset values are taken from the Jira configuration since both
// are usually served by the same Atlassian site. It returns nil without error if no URL is known.
func (x *Confluence) New(fallback *Jira) (*confluence.Client, error) {
	baseURL, email, token := x.baseURL, x.email, x.token
	if fallback != nil {
		jiraEmail, jiraToken := fallback.Credentials()
		if baseURL == "" {
			baseURL = fallback.BaseURL()
		}
		if email == "" {
			email = jiraEmail
		}
		if token == "" {
			token = types.ConfluenceToken(jiraToken)
		}
	}

	if baseURL == "" || email == "" || token == "" {
		return nil, nil
	}
	return confluence.New(baseURL, email, token)
}

func (x Confluence) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.baseURL),
		slog.String("Email", x.email),
		slog.Int("Token.len", len(x.token)),
	)
}
