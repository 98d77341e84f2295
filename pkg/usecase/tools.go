package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/errutil"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

// toolHandler returns a human readable summary and the data of a successful call.
type toolHandler func(ctx context.Context, args model.ToolArgs) (string, any, error)

type tool struct {
	spec    *model.ToolSpec
	handler toolHandler
}

func (x *UseCase) registerTools() {
	x.tools = make(map[string]*tool)
	x.toolOrder = nil

	add := func(spec *model.ToolSpec, handler toolHandler) {
		t := &tool{spec: spec, handler: handler}
		x.tools[spec.Name] = t
		x.toolOrder = append(x.toolOrder, t)
	}

	add(releaseSummarySpec, x.callReleaseSummary)
	add(jiraListUnreleasedVersionsSpec, x.callJiraListUnreleasedVersions)
	add(jiraSearchIssuesSpec, x.callJiraSearchIssues)
	add(jiraGetIssuesSpec, x.callJiraGetIssues)
	add(githubListRepositoriesSpec, x.callGitHubListRepositories)
	add(githubListBranchesSpec, x.callGitHubListBranches)
	add(githubListWorkflowRunsSpec, x.callGitHubListWorkflowRuns)
	add(githubDeployPayloadSpec, x.callGitHubDeployPayload)
	add(confluenceGetPageSpec, x.callConfluenceGetPage)
	add(confluenceSearchSpec, x.callConfluenceSearch)
}

// Tools returns the specs of all tools in registration order.
func (x *UseCase) Tools() []*model.ToolSpec {
	specs := make([]*model.ToolSpec, 0, len(x.toolOrder))
	for _, t := range x.toolOrder {
		specs = append(specs, t.spec)
	}
	return specs
}

// CallTool invokes the named tool. An unknown name is the only error returned; every other
// failure, including a panic inside the tool, is reported in the response envelope.
func (x *UseCase) CallTool(ctx context.Context, name string, args model.ToolArgs) (resp *model.ToolResponse, err error) {
	t, ok := x.tools[name]
	if !ok {
		return nil, goerr.Wrap(types.ErrNotFound, "unknown tool", goerr.V("name", name))
	}
	if args == nil {
		args = model.ToolArgs{}
	}

	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("tool", name)))

	defer func() {
		if r := recover(); r != nil {
			fault := goerr.New("panic in tool", goerr.V("tool", name), goerr.V("panic", r))
			errutil.HandleError(ctx, "unexpected fault in tool call", fault)
			resp = model.NewToolErrorResponse(fmt.Sprintf("internal error in %s", name), fault)
			err = nil
		}
	}()

	summary, data, callErr := t.handler(ctx, args)
	if callErr != nil {
		logging.From(ctx).Warn("tool call failed", slog.Any("error", callErr))
		return model.NewToolErrorResponse(fmt.Sprintf("%s failed", name), callErr), nil
	}

	logging.From(ctx).Info("tool call completed", slog.String("summary", summary))
	return model.NewToolResponse(summary, data), nil
}

func (x *UseCase) issueTracker() (interfaces.IssueTracker, error) {
	if x.clients == nil || x.clients.IssueTracker() == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "issue tracker is not configured")
	}
	return x.clients.IssueTracker(), nil
}

func (x *UseCase) sourceControl() (interfaces.SourceControl, error) {
	if x.clients == nil || x.clients.SourceControl() == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "source control is not configured")
	}
	if x.githubOrg == "" {
		return nil, goerr.Wrap(types.ErrNotConfigured, "GitHub organization is not configured")
	}
	return x.clients.SourceControl(), nil
}

func (x *UseCase) wiki() (interfaces.Wiki, error) {
	if x.clients == nil || x.clients.Wiki() == nil {
		return nil, goerr.Wrap(types.ErrNotConfigured, "wiki is not configured")
	}
	return x.clients.Wiki(), nil
}

func (x *UseCase) projectArg(args model.ToolArgs) (types.ProjectKey, error) {
	project, err := args.String("project")
	if err != nil {
		return "", err
	}
	if project != "" {
		return types.ProjectKey(project), nil
	}
	if x.project == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "project is not specified")
	}
	return x.project, nil
}

// positiveInt reads an optional integer argument bounded to [1, limit], using def when absent.
func positiveInt(args model.ToolArgs, key string, def, limit int64) (int64, error) {
	v, err := args.Int64(key)
	if err != nil {
		return 0, err
	}
	switch {
	case v == 0:
		return def, nil
	case v < 0:
		return 0, goerr.Wrap(types.ErrInvalidOption, "must be positive", goerr.V("key", key), goerr.V("value", v))
	case v > limit:
		return limit, nil
	}
	return v, nil
}
