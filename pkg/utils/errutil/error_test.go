package errutil_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/utils/errutil"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

// withCapturingHub binds a hub that records events instead of sending them.
func withCapturingHub(t *testing.T, ctx context.Context) (context.Context, *[]*sentry.Event) {
	t.Helper()
	var events []*sentry.Event
	client := gt.R1(sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			return nil
		},
	})).NoError(t)
	return sentry.SetHubOnContext(ctx, sentry.NewHub(client, sentry.NewScope())), &events
}

func TestHandleError(t *testing.T) {
	t.Run("reports with request id and error values", func(t *testing.T) {
		id, ctx := logging.CtxRequestID(context.Background())
		ctx, events := withCapturingHub(t, ctx)

		err := goerr.New("panic in tool", goerr.V("tool", "release_summary"))
		errutil.HandleError(ctx, "unexpected fault in tool call", err)

		gt.A(t, *events).Length(1)
		event := (*events)[0]
		gt.V(t, event.Tags["request_id"]).Equal(id.String())
		gt.V(t, event.Extra["tool"]).Equal("release_summary")
		gt.V(t, event.Extra["message"]).Equal("unexpected fault in tool call")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		ctx, events := withCapturingHub(t, context.Background())
		errutil.HandleError(ctx, "test message", nil)
		gt.A(t, *events).Length(0)
	})

	t.Run("cancellation is not reported", func(t *testing.T) {
		ctx, events := withCapturingHub(t, context.Background())
		errutil.HandleError(ctx, "test message", fmt.Errorf("tool aborted: %w", context.Canceled))
		errutil.HandleError(ctx, "test message", context.DeadlineExceeded)
		gt.A(t, *events).Length(0)
	})

	t.Run("without a bound hub", func(t *testing.T) {
		// Should not panic
		errutil.HandleError(context.Background(), "test message", goerr.New("test error"))
	})
}
