package usecase

import "github.com/m-mizutani/relsum/pkg/domain/model"

var (
	releaseSummarySpec = &model.ToolSpec{
		Name:        "release_summary",
		Description: "Build a release summary: resolve the fix version, group its issues by parent feature, match issue keys to branches and extract the deploy payload from the latest deploy log.",
		Params: []model.ToolParam{
			{Name: "version", Type: model.ToolParamString, Description: "Fix version name. The first unreleased version is used when omitted."},
			{Name: "project", Type: model.ToolParamString, Description: "Tracker project key. Defaults to the configured project."},
			{Name: "force_refresh", Type: model.ToolParamBoolean, Description: "Ignore run_id and look up the latest completed workflow run."},
			{Name: "run_id", Type: model.ToolParamNumber, Description: "Workflow run ID whose logs are inspected."},
		},
	}

	jiraListUnreleasedVersionsSpec = &model.ToolSpec{
		Name:        "jira_list_unreleased_versions",
		Description: "List unreleased fix versions of a project in tracker order.",
		Params: []model.ToolParam{
			{Name: "project", Type: model.ToolParamString, Description: "Tracker project key. Defaults to the configured project."},
		},
	}

	jiraSearchIssuesSpec = &model.ToolSpec{
		Name:        "jira_search_issues",
		Description: "Search issues of a fix version, excluding sub-tasks, oldest first.",
		Params: []model.ToolParam{
			{Name: "version", Type: model.ToolParamString, Description: "Fix version name.", Required: true},
			{Name: "project", Type: model.ToolParamString, Description: "Tracker project key. Defaults to the configured project."},
			{Name: "max_results", Type: model.ToolParamNumber, Description: "Maximum number of issues (1-200, default 200)."},
		},
	}

	jiraGetIssuesSpec = &model.ToolSpec{
		Name:        "jira_get_issues",
		Description: "Fetch issues by key.",
		Params: []model.ToolParam{
			{Name: "keys", Type: model.ToolParamString, Description: "Comma separated issue keys, e.g. PROJ-1,PROJ-2.", Required: true},
		},
	}

	githubListRepositoriesSpec = &model.ToolSpec{
		Name:        "github_list_repositories",
		Description: "List repositories of the configured organization.",
		Params: []model.ToolParam{
			{Name: "prefix", Type: model.ToolParamString, Description: "Repository name prefix (case-insensitive). Defaults to the configured prefix."},
		},
	}

	githubListBranchesSpec = &model.ToolSpec{
		Name:        "github_list_branches",
		Description: "List branches of a repository.",
		Params: []model.ToolParam{
			{Name: "repo", Type: model.ToolParamString, Description: "Repository name.", Required: true},
		},
	}

	githubListWorkflowRunsSpec = &model.ToolSpec{
		Name:        "github_list_workflow_runs",
		Description: "List recent workflow runs of a repository, newest first.",
		Params: []model.ToolParam{
			{Name: "repo", Type: model.ToolParamString, Description: "Repository name.", Required: true},
			{Name: "status", Type: model.ToolParamString, Description: "Run status filter such as completed or in_progress."},
			{Name: "limit", Type: model.ToolParamNumber, Description: "Maximum number of runs (1-100, default 10)."},
		},
	}

	githubDeployPayloadSpec = &model.ToolSpec{
		Name:        "github_deploy_payload",
		Description: "Download the logs of a workflow run, locate the deploy trigger stage and extract its payload.",
		Params: []model.ToolParam{
			{Name: "repo", Type: model.ToolParamString, Description: "Repository name.", Required: true},
			{Name: "run_id", Type: model.ToolParamNumber, Description: "Workflow run ID. The latest completed run is used when omitted."},
		},
	}

	confluenceGetPageSpec = &model.ToolSpec{
		Name:        "confluence_get_page",
		Description: "Get a wiki page with its storage body.",
		Params: []model.ToolParam{
			{Name: "page_id", Type: model.ToolParamString, Description: "Page ID.", Required: true},
		},
	}

	confluenceSearchSpec = &model.ToolSpec{
		Name:        "confluence_search",
		Description: "Search wiki pages with CQL.",
		Params: []model.ToolParam{
			{Name: "cql", Type: model.ToolParamString, Description: "CQL query.", Required: true},
			{Name: "limit", Type: model.ToolParamNumber, Description: "Maximum number of pages (1-100, default 25)."},
		},
	}
)
