package server

import (
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/utils/errutil"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

const requestIDHeader = "X-Request-ID"

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", reqID.String()))
		ctx = logging.With(ctx, logger)

		w.Header().Set(requestIDHeader, reqID.String())
		lw := &statusCodeLogger{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		defer func() {
			if v := recover(); v != nil {
				err := goerr.New("panic in http handler", goerr.V("panic", fmt.Sprintf("%v", v)), goerr.V("path", r.URL.Path))
				errutil.HandleError(ctx, "unexpected fault in http handler", err)
				if !lw.written {
					safeWrite(lw, http.StatusInternalServerError, []byte(`{"success":false,"summary":"internal error"}`))
				}
			}

			logger.Info("http access",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status_code", lw.statusCode),
				slog.Int64("content_length", r.ContentLength),
				slog.String("user_agent", r.UserAgent()),
				slog.Duration("elapsed", time.Since(requestedAt)),
			)
		}()

		next.ServeHTTP(lw, r.WithContext(ctx))
	})
}

type statusCodeLogger struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (x *statusCodeLogger) WriteHeader(code int) {
	x.statusCode = code
	x.written = true
	x.ResponseWriter.WriteHeader(code)
}

func (x *statusCodeLogger) Write(b []byte) (int, error) {
	x.written = true
	return x.ResponseWriter.Write(b)
}
