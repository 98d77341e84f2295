package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/infra/jira"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type Jira struct {
	baseURL    string
	email      string
	token      types.JiraToken `masq:"secret"`
	project    string
	fieldsFile string
}

func (x *Jira) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jira-url",
			Usage:       "Jira base URL, e.g. https://example.atlassian.net",
			Category:    "Jira",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("RELSUM_JIRA_URL"),
		},
		&cli.StringFlag{
			Name:        "jira-email",
			Usage:       "Jira account email",
			Category:    "Jira",
			Destination: &x.email,
			Sources:     cli.EnvVars("RELSUM_JIRA_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "jira-token",
			Usage:       "Jira API token",
			Category:    "Jira",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RELSUM_JIRA_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "jira-project",
			Usage:       "Default Jira project key",
			Category:    "Jira",
			Destination: &x.project,
			Sources:     cli.EnvVars("RELSUM_JIRA_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "jira-fields-file",
			Usage:       "YAML file mapping custom attributes to Jira custom field IDs",
			Category:    "Jira",
			Destination: &x.fieldsFile,
			Sources:     cli.EnvVars("RELSUM_JIRA_FIELDS_FILE"),
		},
	}
}

// New returns nil client without error if Jira is not configured.
func (x *Jira) New() (*jira.Client, error) {
	if x.baseURL == "" {
		return nil, nil
	}
	if x.email == "" || x.token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "jira-email and jira-token are required with jira-url")
	}

	var options []jira.Option
	if x.fieldsFile != "" {
		ids, err := LoadCustomFieldIDs(x.fieldsFile)
		if err != nil {
			return nil, err
		}
		options = append(options, jira.WithCustomFieldIDs(jira.DefaultCustomFieldIDs().Merge(*ids)))
	}

	return jira.New(x.baseURL, x.email, x.token, options...)
}

func (x *Jira) Project() types.ProjectKey {
	return types.ProjectKey(x.project)
}

func (x *Jira) BaseURL() string {
	return x.baseURL
}

// Credentials are shared with other Atlassian products.
func (x *Jira) Credentials() (string, types.JiraToken) {
	return x.email, x.token
}

func (x Jira) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("URL", x.baseURL),
		slog.String("Email", x.email),
		slog.Int("Token.len", len(x.token)),
		slog.String("Project", x.project),
		slog.String("FieldsFile", x.fieldsFile),
	)
}

// LoadCustomFieldIDs reads a YAML mapping such as:
//
//	story_points: customfield_10016
//	acceptance_criteria: customfield_10200
func LoadCustomFieldIDs(path string) (*jira.CustomFieldIDs, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read Jira fields file", goerr.V("path", path))
	}

	var ids jira.CustomFieldIDs
	if err := yaml.Unmarshal(raw, &ids); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse Jira fields file",
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	return &ids, nil
}
