package model

import (
	"time"

	"github.com/m-mizutani/relsum/pkg/domain/types"
)

// Repository is a source-control repository in the configured organization.
type Repository struct {
	Name          types.RepoName `json:"name"`
	FullName      string         `json:"fullName,omitempty"`
	DefaultBranch string         `json:"defaultBranch,omitempty"`
	Archived      bool           `json:"archived"`
}

type Branch struct {
	Name      string `json:"name"`
	CommitSHA string `json:"commitSha,omitempty"`
}

// RepoBranch is a branch tagged with its owning repository.
type RepoBranch struct {
	Repo   types.RepoName `json:"repo"`
	Branch string         `json:"branch"`
}

// BranchMatch correlates a tracker issue key with a branch whose name contains it.
type BranchMatch struct {
	IssueKey   types.IssueKey `json:"issueKey"`
	BranchName string         `json:"branchName"`
	RepoName   types.RepoName `json:"repoName"`
}

type WorkflowRun struct {
	ID         types.RunID `json:"id"`
	Name       string      `json:"name,omitempty"`
	Status     string      `json:"status,omitempty"`
	Conclusion string      `json:"conclusion,omitempty"`
	HeadBranch string      `json:"headBranch,omitempty"`
	CreatedAt  time.Time   `json:"createdAt,omitzero"`
}

type WorkflowRunFilter struct {
	Status  string
	PerPage int
}

const WorkflowRunStatusCompleted = "completed"
