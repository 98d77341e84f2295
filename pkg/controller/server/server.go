package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/domain/types"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
)

// DefaultToolTimeout is applied when WithToolTimeout is not given.
const DefaultToolTimeout = 30 * time.Second

const maxRequestBodySize = 1 << 20

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response is JSON encoded by the server
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.From(ctx).Error("fail to encode response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"success":false,"summary":"fail to encode response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type config struct {
	toolTimeout time.Duration
}

type Option func(*config)

// WithToolTimeout bounds the wall-clock time of a single tool call.
func WithToolTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.toolTimeout = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		toolTimeout: DefaultToolTimeout,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/tools", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(r.Context(), w, http.StatusOK, uc.Tools())
		})
		r.Post("/{name}", func(w http.ResponseWriter, r *http.Request) {
			handleToolCall(w, r, uc, cfg)
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleToolCall(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, cfg *config) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	args, err := decodeToolArgs(r.Body)
	if err != nil {
		logging.From(ctx).Warn("invalid tool arguments", slog.String("tool", name), slog.Any("error", err))
		writeJSON(ctx, w, http.StatusBadRequest, model.NewToolErrorResponse("invalid request body", err))
		return
	}

	if cfg.toolTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.toolTimeout)
		defer cancel()
	}

	resp, err := uc.CallTool(ctx, name, args)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, types.ErrNotFound) {
			code = http.StatusBadRequest
		}
		writeJSON(ctx, w, code, model.NewToolErrorResponse("tool call rejected", err))
		return
	}

	code := http.StatusOK
	if !resp.Success {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(ctx, w, code, resp)
}

// decodeToolArgs reads a JSON object of arguments. An empty body means no arguments.
func decodeToolArgs(body io.Reader) (model.ToolArgs, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxRequestBodySize+1))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read request body")
	}
	if len(raw) > maxRequestBodySize {
		return nil, goerr.Wrap(types.ErrInvalidOption, "request body is too large", goerr.V("limit", maxRequestBodySize))
	}
	if len(raw) == 0 {
		return model.ToolArgs{}, nil
	}

	var args model.ToolArgs
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&args); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "request body must be a JSON object", goerr.V("cause", err.Error()))
	}
	if args == nil {
		args = model.ToolArgs{}
	}
	return args, nil
}
