package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
)

func (x *UseCase) callReleaseSummary(ctx context.Context, args model.ToolArgs) (string, any, error) {
	version, err := args.String("version")
	if err != nil {
		return "", nil, err
	}
	project, err := args.String("project")
	if err != nil {
		return "", nil, err
	}
	forceRefresh, err := args.Bool("force_refresh")
	if err != nil {
		return "", nil, err
	}
	runID, err := args.Int64("run_id")
	if err != nil {
		return "", nil, err
	}

	report, err := x.ReleaseSummary(ctx, &model.ReleaseSummaryInput{
		Version:      types.VersionName(version),
		Project:      types.ProjectKey(project),
		ForceRefresh: forceRefresh,
		RunID:        types.RunID(runID),
	})
	if err != nil {
		return "", nil, err
	}

	summary := fmt.Sprintf("release summary is %s", report.OverallStatus)
	if report.Report != nil {
		summary = report.Report.Synopsis
	}
	return summary, report, nil
}
