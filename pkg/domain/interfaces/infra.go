package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . IssueTracker SourceControl Wiki

import (
	"context"

	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

// IssueTracker is the issue tracker (Jira) collaborator.
type IssueTracker interface {
	// ListUnreleasedVersions returns unreleased versions of the project in the tracker's order.
	ListUnreleasedVersions(ctx context.Context, project types.ProjectKey) ([]*model.FixVersion, error)
	SearchIssuesByVersion(ctx context.Context, query *model.IssueSearchQuery) (*model.IssueSearchResult, error)
	GetIssues(ctx context.Context, keys []types.IssueKey) ([]*model.Issue, error)
}

// SourceControl is the source-control platform (GitHub) collaborator including workflow runs.
type SourceControl interface {
	// ListRepositories returns repositories of org whose name starts with namePrefix
	// (case-insensitive). An empty prefix returns all repositories.
	ListRepositories(ctx context.Context, org, namePrefix string) ([]*model.Repository, error)
	ListBranches(ctx context.Context, org string, repo types.RepoName) ([]*model.Branch, error)
	ListWorkflowRuns(ctx context.Context, org string, repo types.RepoName, filter *model.WorkflowRunFilter) ([]*model.WorkflowRun, error)
	DownloadRunLogArchive(ctx context.Context, org string, repo types.RepoName, runID types.RunID) ([]byte, error)
}

// Wiki is the wiki (Confluence) collaborator.
type Wiki interface {
	GetPage(ctx context.Context, pageID string) (*model.WikiPage, error)
	SearchPages(ctx context.Context, cql string, limit int) ([]*model.WikiPage, error)
}
