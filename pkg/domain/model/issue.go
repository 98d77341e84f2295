package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/relsum/pkg/domain/types"
)

// Issue is a tracker issue as consumed by the release summary. Custom attributes are carried
// in Fields; any other custom field returned by the tracker is kept untouched in Extra.
type Issue struct {
	Key       types.IssueKey             `json:"key"`
	Summary   string                     `json:"summary"`
	IssueType string                     `json:"issueType"`
	Status    string                     `json:"status"`
	ParentKey types.IssueKey             `json:"parentKey,omitempty"`
	Created   time.Time                  `json:"created,omitzero"`
	Fields    IssueCustomFields          `json:"customFields"`
	Extra     map[string]json.RawMessage `json:"extra,omitempty"`
}

// HasParent reports whether the issue refers to a parent issue.
func (x *Issue) HasParent() bool {
	return x.ParentKey != ""
}

// IssueCustomFields holds the domain specific custom attributes. Values are passed through as
// the tracker returns them; option values are flattened to their display text.
type IssueCustomFields struct {
	AcceptanceCriteria string   `json:"acceptanceCriteria,omitempty"`
	TestDescription    string   `json:"testDescription,omitempty"`
	StoryPoints        *float64 `json:"storyPoints,omitempty"`
	ApplicationName    string   `json:"applicationName,omitempty"`
	Ready              string   `json:"ready,omitempty"`
	Blocked            string   `json:"blocked,omitempty"`
	SDLC               string   `json:"sdlc,omitempty"`
	SoftwareChangesIn  string   `json:"softwareChangesIn,omitempty"`
	TestTypes          []string `json:"testTypes,omitempty"`
	FeatureLink        string   `json:"featureLink,omitempty"`
}

// FixVersion is a tracker release version.
type FixVersion struct {
	ID          string            `json:"id,omitempty"`
	Name        types.VersionName `json:"name"`
	Released    bool              `json:"released"`
	ReleaseDate string            `json:"releaseDate,omitempty"`
	Explicit    bool              `json:"explicit"`
}

type IssueSearchQuery struct {
	Project         types.ProjectKey
	FixVersion      types.VersionName
	ExcludeSubtasks bool
	MaxResults      int
}

type IssueSearchResult struct {
	Issues []*Issue `json:"issues"`
	Total  int      `json:"total"`
}
