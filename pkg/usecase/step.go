package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

// runStep executes work and converts any error or panic into a failed result. It never
// propagates a failure to the caller.
func runStep[T any](ctx context.Context, name model.StepName, work func(ctx context.Context) (T, error)) (result model.StepResult[T]) {
	logger := logging.From(ctx).With(slog.String("step", string(name)))
	logger.Debug("step started")

	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			elapsed := time.Since(started)
			logger.Error("step panicked", slog.Any("panic", r), slog.Duration("elapsed", elapsed))
			result = model.StepFailedWith[T](fmt.Sprintf("panic: %v", r), elapsed)
		}
	}()

	data, err := work(ctx)
	elapsed := time.Since(started)
	if err != nil {
		logger.Warn("step failed", slog.Any("error", err), slog.Duration("elapsed", elapsed))
		return model.StepFailedWith[T](err.Error(), elapsed)
	}

	logger.Info("step completed", slog.Duration("elapsed", elapsed))
	return model.StepSucceeded(data, elapsed)
}

// skipStep records that a step was not attempted because its input is empty or absent.
func skipStep[T any](ctx context.Context, name model.StepName, reason string) model.StepResult[T] {
	logging.From(ctx).Info("step skipped", slog.String("step", string(name)), slog.String("reason", reason))
	return model.StepSkippedResult[T]()
}
