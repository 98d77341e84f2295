package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

func (x *UseCase) callJiraListUnreleasedVersions(ctx context.Context, args model.ToolArgs) (string, any, error) {
	project, err := x.projectArg(args)
	if err != nil {
		return "", nil, err
	}
	tracker, err := x.issueTracker()
	if err != nil {
		return "", nil, err
	}

	versions, err := tracker.ListUnreleasedVersions(ctx, project)
	if err != nil {
		return "", nil, err
	}
	if versions == nil {
		versions = []*model.FixVersion{}
	}
	return fmt.Sprintf("%d unreleased versions in %s", len(versions), project), versions, nil
}

func (x *UseCase) callJiraSearchIssues(ctx context.Context, args model.ToolArgs) (string, any, error) {
	version, err := args.RequireString("version")
	if err != nil {
		return "", nil, err
	}
	project, err := x.projectArg(args)
	if err != nil {
		return "", nil, err
	}
	maxResults, err := positiveInt(args, "max_results", maxReleaseIssues, maxReleaseIssues)
	if err != nil {
		return "", nil, err
	}
	tracker, err := x.issueTracker()
	if err != nil {
		return "", nil, err
	}

	result, err := tracker.SearchIssuesByVersion(ctx, &model.IssueSearchQuery{
		Project:         project,
		FixVersion:      types.VersionName(version),
		ExcludeSubtasks: true,
		MaxResults:      int(maxResults),
	})
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%d of %d issues in %s %s", len(result.Issues), result.Total, project, version), result, nil
}

func (x *UseCase) callJiraGetIssues(ctx context.Context, args model.ToolArgs) (string, any, error) {
	raw, err := args.RequireString("keys")
	if err != nil {
		return "", nil, err
	}
	keys := splitIssueKeys(raw)
	if len(keys) == 0 {
		return "", nil, goerr.Wrap(types.ErrInvalidOption, "no issue key", goerr.V("keys", raw))
	}
	tracker, err := x.issueTracker()
	if err != nil {
		return "", nil, err
	}

	issues, err := tracker.GetIssues(ctx, keys)
	if err != nil {
		return "", nil, err
	}
	if issues == nil {
		issues = []*model.Issue{}
	}
	return fmt.Sprintf("%d of %d issues found", len(issues), len(keys)), issues, nil
}

// splitIssueKeys parses a comma separated key list, dropping blanks and duplicates.
func splitIssueKeys(raw string) []types.IssueKey {
	var keys []types.IssueKey
	seen := make(map[types.IssueKey]struct{})
	for _, s := range strings.Split(raw, ",") {
		key := types.IssueKey(strings.ToUpper(strings.TrimSpace(s)))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
