package usecase

import (
	"regexp"

	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

// issueKeyPattern matches an issue key as a delimited token of a branch name. The key must be
// bounded by start/end of string, '/', '_' or '-', and its inner hyphen may also be written as
// '_' or omitted ("PROJ-123", "PROJ_123", "PROJ123").
func issueKeyPattern(key types.IssueKey) *regexp.Regexp {
	body := regexp.QuoteMeta(key.String())
	if project, seq, ok := key.Split(); ok {
		body = regexp.QuoteMeta(project) + `[-_]?` + regexp.QuoteMeta(seq)
	}
	return regexp.MustCompile(`(?i)(?:^|[/_-])` + body + `(?:$|[/_-])`)
}

// matchBranches reports every (key, branch) pair where the branch name contains the key.
// No dedup is performed; results are ordered by key, then by branch input order.
func matchBranches(branches []*model.RepoBranch, keys []types.IssueKey) []*model.BranchMatch {
	matches := []*model.BranchMatch{}
	if len(branches) == 0 || len(keys) == 0 {
		return matches
	}

	for _, key := range keys {
		if key == "" {
			continue
		}
		ptn := issueKeyPattern(key)
		for _, b := range branches {
			if b == nil || !ptn.MatchString(b.Branch) {
				continue
			}
			matches = append(matches, &model.BranchMatch{
				IssueKey:   key,
				BranchName: b.Branch,
				RepoName:   b.Repo,
			})
		}
	}

	return matches
}
