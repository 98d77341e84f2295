package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

const (
	defaultWorkflowRunLimit = 10
	maxWorkflowRunLimit     = 100
)

func (x *UseCase) callGitHubListRepositories(ctx context.Context, args model.ToolArgs) (string, any, error) {
	prefix, err := args.String("prefix")
	if err != nil {
		return "", nil, err
	}
	if prefix == "" {
		prefix = x.repoPrefix
	}
	sc, err := x.sourceControl()
	if err != nil {
		return "", nil, err
	}

	repos, err := sc.ListRepositories(ctx, x.githubOrg, prefix)
	if err != nil {
		return "", nil, err
	}
	if repos == nil {
		repos = []*model.Repository{}
	}
	return fmt.Sprintf("%d repositories in %s", len(repos), x.githubOrg), repos, nil
}

func (x *UseCase) callGitHubListBranches(ctx context.Context, args model.ToolArgs) (string, any, error) {
	repo, err := args.RequireString("repo")
	if err != nil {
		return "", nil, err
	}
	sc, err := x.sourceControl()
	if err != nil {
		return "", nil, err
	}

	branches, err := sc.ListBranches(ctx, x.githubOrg, types.RepoName(repo))
	if err != nil {
		return "", nil, err
	}
	if branches == nil {
		branches = []*model.Branch{}
	}
	return fmt.Sprintf("%d branches in %s", len(branches), repo), branches, nil
}

func (x *UseCase) callGitHubListWorkflowRuns(ctx context.Context, args model.ToolArgs) (string, any, error) {
	repo, err := args.RequireString("repo")
	if err != nil {
		return "", nil, err
	}
	status, err := args.String("status")
	if err != nil {
		return "", nil, err
	}
	limit, err := positiveInt(args, "limit", defaultWorkflowRunLimit, maxWorkflowRunLimit)
	if err != nil {
		return "", nil, err
	}
	sc, err := x.sourceControl()
	if err != nil {
		return "", nil, err
	}

	runs, err := sc.ListWorkflowRuns(ctx, x.githubOrg, types.RepoName(repo), &model.WorkflowRunFilter{
		Status:  status,
		PerPage: int(limit),
	})
	if err != nil {
		return "", nil, err
	}
	if runs == nil {
		runs = []*model.WorkflowRun{}
	}
	return fmt.Sprintf("%d workflow runs in %s", len(runs), repo), runs, nil
}

func (x *UseCase) callGitHubDeployPayload(ctx context.Context, args model.ToolArgs) (string, any, error) {
	repoName, err := args.RequireString("repo")
	if err != nil {
		return "", nil, err
	}
	rawRunID, err := positiveInt(args, "run_id", 0, 1<<62)
	if err != nil {
		return "", nil, err
	}
	sc, err := x.sourceControl()
	if err != nil {
		return "", nil, err
	}

	repo := types.RepoName(repoName)
	runID := types.RunID(rawRunID)
	if runID == 0 {
		if runID, err = latestCompletedRun(ctx, sc, x.githubOrg, repo); err != nil {
			return "", nil, err
		}
	}

	_, entry, err := fetchDeployLog(ctx, sc, x.githubOrg, repo, runID)
	if err != nil {
		return "", nil, err
	}
	payload, err := deployPayloadFrom(repo, runID, entry)
	if err != nil {
		return "", nil, err
	}

	return fmt.Sprintf("payload with %d keys extracted from %q of run %d", payload.Payload.Len(), entry.FileName, runID), payload, nil
}
