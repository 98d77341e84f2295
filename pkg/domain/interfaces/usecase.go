package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/relsum/pkg/domain/model"
)

type UseCase interface {
	ReleaseSummary(ctx context.Context, input *model.ReleaseSummaryInput) (*model.ReleaseSummaryReport, error)
	Tools() []*model.ToolSpec
	CallTool(ctx context.Context, name string, args model.ToolArgs) (*model.ToolResponse, error)
}
