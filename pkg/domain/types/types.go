package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	ProjectKey  string
	IssueKey    string
	VersionName string
	RepoName    string
	RunID       int64
	RequestID   string

	JiraToken           string
	ConfluenceToken     string
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x ProjectKey) String() string  { return string(x) }
func (x IssueKey) String() string    { return string(x) }
func (x VersionName) String() string { return string(x) }
func (x RepoName) String() string    { return string(x) }
func (x RequestID) String() string   { return string(x) }

// Split returns the project part and the sequence part of an issue key such as "PROJ-123".
// ok is false when the key has no hyphen.
func (x IssueKey) Split() (project, seq string, ok bool) {
	idx := strings.LastIndex(string(x), "-")
	if idx <= 0 || idx == len(x)-1 {
		return "", "", false
	}
	return string(x[:idx]), string(x[idx+1:]), true
}

const masked = "***********"

func (x JiraToken) LogValue() slog.Value { return slog.StringValue(masked) }
func (x JiraToken) String() string       { return masked }

func (x ConfluenceToken) LogValue() slog.Value { return slog.StringValue(masked) }
func (x ConfluenceToken) String() string       { return masked }

func (x GitHubToken) LogValue() slog.Value { return slog.StringValue(masked) }
func (x GitHubToken) String() string       { return masked }

func (x GitHubAppPrivateKey) LogValue() slog.Value { return slog.StringValue(masked) }
func (x GitHubAppPrivateKey) String() string       { return masked }
