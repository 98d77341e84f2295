package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

const (
	maxReleaseIssues      = 200
	branchListConcurrency = 8

	featureSummaryUnavailable = "(feature summary unavailable)"
	featureStatusUnavailable  = "unknown"
)

// ReleaseSummary runs the six pipeline steps in order and always returns a report. Only an
// invalid input is returned as an error; collaborator failures are recorded in the steps.
func (x *UseCase) ReleaseSummary(ctx context.Context, input *model.ReleaseSummaryInput) (*model.ReleaseSummaryReport, error) {
	if input == nil {
		input = &model.ReleaseSummaryInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	run := &releaseSummaryRun{
		uc:      x,
		input:   input,
		project: x.project,
		steps:   model.NewReleaseSummarySteps(),
	}
	if input.Project != "" {
		run.project = input.Project
	}

	ctx = logging.With(ctx, logging.From(ctx).With(
		slog.String("project", run.project.String()),
		slog.String("version", input.Version.String()),
	))
	run.execute(ctx)

	report := buildReleaseSummaryReport(run.project, run.steps)
	logging.From(ctx).Info("release summary finished",
		slog.String("overall_status", string(report.OverallStatus)),
		slog.String("fix_version", report.FixVersion.String()),
	)
	return report, nil
}

// releaseSummaryRun is the state of a single pipeline invocation.
type releaseSummaryRun struct {
	uc      *UseCase
	input   *model.ReleaseSummaryInput
	project types.ProjectKey
	steps   *model.ReleaseSummarySteps

	targetRepo types.RepoName
	runID      types.RunID
}

type releaseStage struct {
	name  model.StepName
	fatal bool
	run   func(ctx context.Context) model.StepStatus
}

func (r *releaseSummaryRun) stages() []releaseStage {
	return []releaseStage{
		{name: model.StepNameFixVersionResolution, fatal: true, run: r.resolveFixVersion},
		{name: model.StepNameIssueSearch, fatal: true, run: r.searchIssues},
		{name: model.StepNameParentFeatures, run: r.resolveParentFeatures},
		{name: model.StepNameBranchDiscovery, run: r.discoverBranches},
		{name: model.StepNameLogDownload, run: r.downloadDeployLog},
		{name: model.StepNamePayloadExtraction, run: r.extractDeployPayload},
	}
}

func (r *releaseSummaryRun) execute(ctx context.Context) {
	for _, stage := range r.stages() {
		status := stage.run(ctx)
		if stage.fatal && status != model.StepSuccess {
			logging.From(ctx).Warn("fatal step did not succeed, aborting pipeline",
				slog.String("step", string(stage.name)),
				slog.String("status", string(status)),
			)
			return
		}
	}
}

func (r *releaseSummaryRun) resolveFixVersion(ctx context.Context) model.StepStatus {
	r.steps.FixVersionResolution = runStep(ctx, model.StepNameFixVersionResolution, func(ctx context.Context) (*model.FixVersion, error) {
		if r.input.Version != "" {
			return &model.FixVersion{
				Name:     r.input.Version,
				Released: false,
				Explicit: true,
			}, nil
		}

		tracker, err := r.uc.issueTracker()
		if err != nil {
			return nil, err
		}
		if r.project == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "project is not specified")
		}

		versions, err := tracker.ListUnreleasedVersions(ctx, r.project)
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 || versions[0] == nil {
			return nil, goerr.Wrap(types.ErrNotFound, "no unreleased version", goerr.V("project", r.project))
		}
		return versions[0], nil
	})
	return r.steps.FixVersionResolution.Status()
}

func (r *releaseSummaryRun) searchIssues(ctx context.Context) model.StepStatus {
	version, _ := r.steps.FixVersionResolution.Data()

	r.steps.IssueSearch = runStep(ctx, model.StepNameIssueSearch, func(ctx context.Context) (*model.IssueSearchResult, error) {
		tracker, err := r.uc.issueTracker()
		if err != nil {
			return nil, err
		}
		if r.project == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "project is not specified")
		}

		return tracker.SearchIssuesByVersion(ctx, &model.IssueSearchQuery{
			Project:         r.project,
			FixVersion:      version.Name,
			ExcludeSubtasks: true,
			MaxResults:      maxReleaseIssues,
		})
	})
	return r.steps.IssueSearch.Status()
}

func (r *releaseSummaryRun) issues() []*model.Issue {
	result, ok := r.steps.IssueSearch.Data()
	if !ok || result == nil {
		return nil
	}
	return result.Issues
}

// parentKeys returns the distinct parent keys of issues in order of first appearance.
func parentKeys(issues []*model.Issue) []types.IssueKey {
	keys := []types.IssueKey{}
	seen := make(map[types.IssueKey]struct{})
	for _, issue := range issues {
		if issue == nil || !issue.HasParent() {
			continue
		}
		if _, ok := seen[issue.ParentKey]; ok {
			continue
		}
		seen[issue.ParentKey] = struct{}{}
		keys = append(keys, issue.ParentKey)
	}
	return keys
}

func (r *releaseSummaryRun) resolveParentFeatures(ctx context.Context) model.StepStatus {
	keys := parentKeys(r.issues())

	r.steps.ParentFeatures = runStep(ctx, model.StepNameParentFeatures, func(ctx context.Context) (*model.ParentFeatures, error) {
		if len(keys) == 0 {
			return &model.ParentFeatures{Keys: keys, Issues: []*model.Issue{}}, nil
		}

		tracker, err := r.uc.issueTracker()
		if err != nil {
			return nil, err
		}
		features, err := tracker.GetIssues(ctx, keys)
		if err != nil {
			return nil, err
		}
		return &model.ParentFeatures{Keys: keys, Issues: features}, nil
	})
	return r.steps.ParentFeatures.Status()
}

func (r *releaseSummaryRun) discoverBranches(ctx context.Context) model.StepStatus {
	var keys []types.IssueKey
	for _, issue := range r.issues() {
		if issue != nil {
			keys = append(keys, issue.Key)
		}
	}

	r.steps.BranchDiscovery = runStep(ctx, model.StepNameBranchDiscovery, func(ctx context.Context) (*model.BranchDiscovery, error) {
		sc, err := r.uc.sourceControl()
		if err != nil {
			return nil, err
		}

		repos, err := sc.ListRepositories(ctx, r.uc.githubOrg, r.uc.repoPrefix)
		if err != nil {
			return nil, err
		}

		branches := listAllBranches(ctx, sc, r.uc.githubOrg, repos)
		return &model.BranchDiscovery{
			Repositories: repos,
			Branches:     branches,
			Matches:      matchBranches(branches, keys),
		}, nil
	})
	return r.steps.BranchDiscovery.Status()
}

// listAllBranches lists branches of every repository concurrently. A repository whose listing
// fails contributes no branches. The result keeps repository order.
func listAllBranches(ctx context.Context, sc interfaces.SourceControl, org string, repos []*model.Repository) []*model.RepoBranch {
	perRepo := make([][]*model.RepoBranch, len(repos))

	var eg errgroup.Group
	eg.SetLimit(branchListConcurrency)
	for i, repo := range repos {
		if repo == nil {
			continue
		}
		eg.Go(func() error {
			branches, err := sc.ListBranches(ctx, org, repo.Name)
			if err != nil {
				logging.From(ctx).Warn("failed to list branches, skipped",
					slog.String("repo", repo.Name.String()),
					slog.Any("error", err),
				)
				return nil
			}

			tagged := make([]*model.RepoBranch, 0, len(branches))
			for _, b := range branches {
				if b == nil {
					continue
				}
				tagged = append(tagged, &model.RepoBranch{Repo: repo.Name, Branch: b.Name})
			}
			perRepo[i] = tagged
			return nil
		})
	}
	_ = eg.Wait()

	all := []*model.RepoBranch{}
	for _, branches := range perRepo {
		all = append(all, branches...)
	}
	return all
}

// candidateRepositories selects repositories for log retrieval: the distinct repositories of
// the branch matches, otherwise the first listed repository. Empty when discovery failed.
func candidateRepositories(discovery model.StepResult[*model.BranchDiscovery]) []types.RepoName {
	data, ok := discovery.Data()
	if !ok || data == nil {
		return nil
	}

	var repos []types.RepoName
	seen := make(map[types.RepoName]struct{})
	for _, m := range data.Matches {
		if _, ok := seen[m.RepoName]; ok {
			continue
		}
		seen[m.RepoName] = struct{}{}
		repos = append(repos, m.RepoName)
	}
	if len(repos) > 0 {
		return repos
	}

	// No match: fall back to the first listed repository.
	if len(data.Repositories) > 0 && data.Repositories[0] != nil {
		return []types.RepoName{data.Repositories[0].Name}
	}
	return nil
}

func (r *releaseSummaryRun) downloadDeployLog(ctx context.Context) model.StepStatus {
	candidates := candidateRepositories(r.steps.BranchDiscovery)
	if len(candidates) == 0 {
		r.steps.LogDownload = skipStep[*model.DeployLog](ctx, model.StepNameLogDownload, "no candidate repository")
		return r.steps.LogDownload.Status()
	}
	r.targetRepo = candidates[0]
	if len(candidates) > 1 {
		logging.From(ctx).Info("multiple candidate repositories, using the first",
			slog.Any("candidates", candidates),
		)
	}

	r.steps.LogDownload = runStep(ctx, model.StepNameLogDownload, func(ctx context.Context) (*model.DeployLog, error) {
		sc, err := r.uc.sourceControl()
		if err != nil {
			return nil, err
		}
		runID, err := r.resolveRunID(ctx, sc)
		if err != nil {
			return nil, err
		}

		entries, entry, err := fetchDeployLog(ctx, sc, r.uc.githubOrg, r.targetRepo, runID)
		if err != nil {
			return nil, err
		}
		return &model.DeployLog{
			Repository: r.targetRepo,
			RunID:      runID,
			FileName:   entry.FileName,
			Size:       len(entry.Content),
			EntryCount: len(entries),
		}, nil
	})
	return r.steps.LogDownload.Status()
}

// resolveRunID returns the run whose logs are inspected. The caller supplied ID is used
// unless absent or a refresh is forced. A resolved ID is reused by the payload step.
func (r *releaseSummaryRun) resolveRunID(ctx context.Context, sc interfaces.SourceControl) (types.RunID, error) {
	if r.runID != 0 {
		return r.runID, nil
	}
	if r.input.RunID != 0 && !r.input.ForceRefresh {
		r.runID = r.input.RunID
		return r.runID, nil
	}

	runID, err := latestCompletedRun(ctx, sc, r.uc.githubOrg, r.targetRepo)
	if err != nil {
		return 0, err
	}
	r.runID = runID
	return runID, nil
}

func (r *releaseSummaryRun) extractDeployPayload(ctx context.Context) model.StepStatus {
	if r.targetRepo == "" {
		r.steps.PayloadExtraction = skipStep[*model.DeployPayload](ctx, model.StepNamePayloadExtraction, "no candidate repository")
		return r.steps.PayloadExtraction.Status()
	}

	r.steps.PayloadExtraction = runStep(ctx, model.StepNamePayloadExtraction, func(ctx context.Context) (*model.DeployPayload, error) {
		sc, err := r.uc.sourceControl()
		if err != nil {
			return nil, err
		}
		runID, err := r.resolveRunID(ctx, sc)
		if err != nil {
			return nil, err
		}

		_, entry, err := fetchDeployLog(ctx, sc, r.uc.githubOrg, r.targetRepo, runID)
		if err != nil {
			return nil, err
		}
		return deployPayloadFrom(r.targetRepo, runID, entry)
	})
	return r.steps.PayloadExtraction.Status()
}

// deployPayloadFrom runs the payload extractor on a located deploy log. Both "marker not
// found" and "no object" outcomes are errors at this level.
func deployPayloadFrom(repo types.RepoName, runID types.RunID, entry *model.LogEntry) (*model.DeployPayload, error) {
	extraction, err := extractPayload(entry.Content)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract payload", goerr.V("file", entry.FileName))
	}

	switch extraction.Outcome {
	case PayloadMarkerNotFound:
		return nil, goerr.Wrap(types.ErrNotFound, "payload marker not found in deploy log",
			goerr.V("file", entry.FileName))
	case PayloadNoObject:
		return nil, goerr.Wrap(types.ErrNotFound, "payload marker found but no JSON object follows",
			goerr.V("file", entry.FileName))
	}

	return &model.DeployPayload{
		Repository: repo,
		RunID:      runID,
		FileName:   entry.FileName,
		Payload:    extraction.Payload,
		RawExcerpt: extraction.Excerpt,
	}, nil
}

// buildReleaseSummaryReport assembles the report from any combination of step outcomes.
func buildReleaseSummaryReport(project types.ProjectKey, steps *model.ReleaseSummarySteps) *model.ReleaseSummaryReport {
	report := &model.ReleaseSummaryReport{
		OverallStatus: steps.OverallStatus(),
		Project:       project,
		Steps:         steps,
	}
	if version, ok := steps.FixVersionResolution.Data(); ok && version != nil {
		report.FixVersion = version.Name
	}

	search, ok := steps.IssueSearch.Data()
	if !ok || search == nil {
		return report
	}

	summary := &model.ReleaseSummary{
		FixVersion:       report.FixVersion,
		Features:         []*model.FeatureGroup{},
		UnparentedIssues: []*model.Issue{},
		BranchMatches:    []*model.BranchMatch{},
		DeployPayload:    model.NewPayloadObject(),
	}

	featureInfo := make(map[types.IssueKey]*model.Issue)
	if features, ok := steps.ParentFeatures.Data(); ok && features != nil {
		for _, f := range features.Issues {
			if f != nil {
				featureInfo[f.Key] = f
			}
		}
	}

	groups := make(map[types.IssueKey]*model.FeatureGroup)
	for _, issue := range search.Issues {
		if issue == nil {
			continue
		}
		summary.TotalIssues++

		if !issue.HasParent() {
			summary.UnparentedIssues = append(summary.UnparentedIssues, issue)
			continue
		}

		group, ok := groups[issue.ParentKey]
		if !ok {
			group = &model.FeatureGroup{
				Key:     issue.ParentKey,
				Summary: featureSummaryUnavailable,
				Status:  featureStatusUnavailable,
				Issues:  []*model.Issue{},
			}
			if f, ok := featureInfo[issue.ParentKey]; ok {
				group.Summary = f.Summary
				group.Status = f.Status
			}
			groups[issue.ParentKey] = group
			summary.Features = append(summary.Features, group)
		}
		group.Issues = append(group.Issues, issue)
	}

	if discovery, ok := steps.BranchDiscovery.Data(); ok && discovery != nil && discovery.Matches != nil {
		summary.BranchMatches = discovery.Matches
	}

	payloadState := "unavailable"
	if payload, ok := steps.PayloadExtraction.Data(); ok && payload != nil && payload.Payload != nil {
		summary.DeployPayload = payload.Payload
		payloadState = "extracted"
	}

	summary.Synopsis = fmt.Sprintf("Release %s of %s: %d issues across %d features, %d unparented, %d branch matches, deploy payload %s (%s)",
		report.FixVersion, project, summary.TotalIssues, len(summary.Features),
		len(summary.UnparentedIssues), len(summary.BranchMatches), payloadState, report.OverallStatus)

	report.Report = summary
	return report
}
