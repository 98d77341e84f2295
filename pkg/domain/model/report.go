package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

type StepName string

const (
	StepNameFixVersionResolution StepName = "fixVersionResolution"
	StepNameIssueSearch          StepName = "issueSearch"
	StepNameParentFeatures       StepName = "parentFeatures"
	StepNameBranchDiscovery      StepName = "branchDiscovery"
	StepNameLogDownload          StepName = "logDownload"
	StepNamePayloadExtraction    StepName = "payloadExtraction"
)

// ReleaseSummaryInput is the boundary input of the release summary pipeline. Zero values mean
// "not supplied".
type ReleaseSummaryInput struct {
	Version      types.VersionName `json:"version,omitempty"`
	Project      types.ProjectKey  `json:"project,omitempty"`
	ForceRefresh bool              `json:"forceRefresh,omitempty"`
	RunID        types.RunID       `json:"runId,omitempty"`
}

func (x *ReleaseSummaryInput) Validate() error {
	if x.RunID < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "run ID must be positive", goerr.V("runID", x.RunID))
	}
	return nil
}

type ParentFeatures struct {
	Keys   []types.IssueKey `json:"keys"`
	Issues []*Issue         `json:"issues"`
}

type BranchDiscovery struct {
	Repositories []*Repository  `json:"repositories"`
	Branches     []*RepoBranch  `json:"branches"`
	Matches      []*BranchMatch `json:"matches"`
}

type DeployLog struct {
	Repository types.RepoName `json:"repository"`
	RunID      types.RunID    `json:"runId"`
	FileName   string         `json:"fileName"`
	Size       int            `json:"size"`
	EntryCount int            `json:"entryCount"`
}

type DeployPayload struct {
	Repository types.RepoName `json:"repository"`
	RunID      types.RunID    `json:"runId"`
	FileName   string         `json:"fileName"`
	Payload    *PayloadObject `json:"payload"`
	RawExcerpt string         `json:"rawExcerpt"`
}

// ReleaseSummarySteps is the fixed step table of one pipeline invocation.
type ReleaseSummarySteps struct {
	FixVersionResolution StepResult[*FixVersion]        `json:"fixVersionResolution"`
	IssueSearch          StepResult[*IssueSearchResult] `json:"issueSearch"`
	ParentFeatures       StepResult[*ParentFeatures]    `json:"parentFeatures"`
	BranchDiscovery      StepResult[*BranchDiscovery]   `json:"branchDiscovery"`
	LogDownload          StepResult[*DeployLog]         `json:"logDownload"`
	PayloadExtraction    StepResult[*DeployPayload]     `json:"payloadExtraction"`
}

// NewReleaseSummarySteps returns a table with every step skipped.
func NewReleaseSummarySteps() *ReleaseSummarySteps {
	return &ReleaseSummarySteps{
		FixVersionResolution: StepSkippedResult[*FixVersion](),
		IssueSearch:          StepSkippedResult[*IssueSearchResult](),
		ParentFeatures:       StepSkippedResult[*ParentFeatures](),
		BranchDiscovery:      StepSkippedResult[*BranchDiscovery](),
		LogDownload:          StepSkippedResult[*DeployLog](),
		PayloadExtraction:    StepSkippedResult[*DeployPayload](),
	}
}

// Statuses returns the step statuses in execution order.
func (x *ReleaseSummarySteps) Statuses() []StepStatus {
	return []StepStatus{
		x.FixVersionResolution.Status(),
		x.IssueSearch.Status(),
		x.ParentFeatures.Status(),
		x.BranchDiscovery.Status(),
		x.LogDownload.Status(),
		x.PayloadExtraction.Status(),
	}
}

type OverallStatus string

const (
	OverallComplete OverallStatus = "complete"
	OverallPartial  OverallStatus = "partial"
	OverallFailed   OverallStatus = "failed"
)

// OverallStatus classifies the table: failed when version resolution or issue search failed,
// complete when every step succeeded, partial otherwise.
func (x *ReleaseSummarySteps) OverallStatus() OverallStatus {
	if x.FixVersionResolution.Failed() || x.IssueSearch.Failed() {
		return OverallFailed
	}
	for _, s := range x.Statuses() {
		if s != StepSuccess {
			return OverallPartial
		}
	}
	return OverallComplete
}

type FeatureGroup struct {
	Key     types.IssueKey `json:"key"`
	Summary string         `json:"summary"`
	Status  string         `json:"status"`
	Issues  []*Issue       `json:"issues"`
}

// ReleaseSummary is the assembled content, present only when the issue search succeeded.
type ReleaseSummary struct {
	Synopsis         string            `json:"synopsis"`
	TotalIssues      int               `json:"totalIssues"`
	Features         []*FeatureGroup   `json:"features"`
	UnparentedIssues []*Issue          `json:"unparentedIssues"`
	BranchMatches    []*BranchMatch    `json:"branchMatches"`
	DeployPayload    *PayloadObject    `json:"deployPayload"`
	FixVersion       types.VersionName `json:"fixVersion"`
}

type ReleaseSummaryReport struct {
	OverallStatus OverallStatus        `json:"overallStatus"`
	Project       types.ProjectKey     `json:"project"`
	FixVersion    types.VersionName    `json:"fixVersion,omitempty"`
	Steps         *ReleaseSummarySteps `json:"steps"`
	Report        *ReleaseSummary      `json:"report,omitempty"`
}
