package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relsum/pkg/domain/interfaces"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/utils/logging"
	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "relsum"

const instructions = `relsum summarizes software releases. Call release_summary to get the issues of a fix version grouped by parent feature, the branches that mention them and the payload of the latest deploy. Inspect overallStatus and each step: "partial" still carries useful data.`

// Server exposes every use case tool over the Model Context Protocol.
type Server struct {
	uc  interfaces.UseCase
	mcp *mcpserver.MCPServer
}

type config struct {
	version string
}

type Option func(*config)

func WithVersion(version string) Option {
	return func(cfg *config) {
		cfg.version = version
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{version: "dev"}
	for _, opt := range options {
		opt(cfg)
	}

	x := &Server{
		uc: uc,
		mcp: mcpserver.NewMCPServer(serverName, cfg.version,
			mcpserver.WithToolCapabilities(false),
			mcpserver.WithRecovery(),
			mcpserver.WithInstructions(instructions),
		),
	}

	for _, spec := range uc.Tools() {
		x.mcp.AddTool(toolFromSpec(spec), x.toolHandler(spec.Name))
	}

	return x
}

func (x *Server) MCPServer() *mcpserver.MCPServer {
	return x.mcp
}

// Serve runs the stdio transport until ctx is cancelled or in is closed. Nothing but protocol
// messages may be written to out.
func (x *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := mcpserver.NewStdioServer(x.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(logging.From(ctx).Handler(), slog.LevelError))

	logging.From(ctx).Info("starting MCP stdio server", slog.String("name", serverName))
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return goerr.Wrap(err, "MCP stdio server stopped")
	}
	return nil
}

func toolFromSpec(spec *model.ToolSpec) mcpgo.Tool {
	opts := []mcpgo.ToolOption{
		mcpgo.WithDescription(spec.Description),
	}

	for _, p := range spec.Params {
		propOpts := []mcpgo.PropertyOption{
			mcpgo.Description(p.Description),
		}
		if p.Required {
			propOpts = append(propOpts, mcpgo.Required())
		}

		switch p.Type {
		case model.ToolParamBoolean:
			opts = append(opts, mcpgo.WithBoolean(p.Name, propOpts...))
		case model.ToolParamNumber:
			opts = append(opts, mcpgo.WithNumber(p.Name, propOpts...))
		default:
			opts = append(opts, mcpgo.WithString(p.Name, propOpts...))
		}
	}

	return mcpgo.NewTool(spec.Name, opts...)
}

// toolHandler returns the envelope JSON as text. A call that did not succeed is flagged as
// an error result so that clients can tell it apart without parsing.
func (x *Server) toolHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		reqID, ctx := logging.CtxRequestID(ctx)
		ctx = logging.With(ctx, logging.Default().With(slog.String("request_id", reqID.String())))

		resp, err := x.uc.CallTool(ctx, name, model.ToolArgs(req.GetArguments()))
		if err != nil {
			resp = model.NewToolErrorResponse("tool call rejected", err)
		}

		raw, err := json.Marshal(resp)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode tool response", goerr.V("tool", name))
		}

		if !resp.Success {
			return mcpgo.NewToolResultError(string(raw)), nil
		}
		return mcpgo.NewToolResultText(string(raw)), nil
	}
}
