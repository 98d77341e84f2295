package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

// HandleError logs an unexpected fault and reports it to Sentry. The hub bound to ctx is
// used when present. Cancellation and deadline errors are logged but not reported.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn(msg, "error", err)
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetExtra("message", msg)
		if id, ok := logging.RequestIDFrom(ctx); ok {
			scope.SetTag("request_id", id.String())
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logger.Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
