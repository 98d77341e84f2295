package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/controller/mcp"
	"github.com/m-mizutani/relsum/pkg/domain/mock"
	"github.com/m-mizutani/relsum/pkg/domain/model"
	"github.com/m-mizutani/relsum/pkg/infra"
	"github.com/m-mizutani/relsum/pkg/usecase"
)

type rpcResult struct {
	Result struct {
		Tools []struct {
			Name        string `json:"name"`
			InputSchema struct {
				Properties map[string]struct {
					Type string `json:"type"`
				} `json:"properties"`
				Required []string `json:"required"`
			} `json:"inputSchema"`
		} `json:"tools"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

func call(t *testing.T, srv *mcp.Server, msg string) *rpcResult {
	t.Helper()
	out := srv.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))
	raw := gt.R1(json.Marshal(out)).NoError(t)

	var result rpcResult
	gt.NoError(t, json.Unmarshal(raw, &result))
	return &result
}

func TestListTools(t *testing.T) {
	srv := mcp.New(usecase.New(infra.New()))
	result := call(t, srv, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	gt.A(t, result.Result.Tools).Length(10)
	found := false
	for _, tool := range result.Result.Tools {
		if tool.Name != "github_deploy_payload" {
			continue
		}
		found = true
		gt.V(t, tool.InputSchema.Properties["repo"].Type).Equal("string")
		gt.V(t, tool.InputSchema.Properties["run_id"].Type).Equal("number")
		gt.V(t, tool.InputSchema.Required).Equal([]string{"repo"})
	}
	gt.True(t, found)
}

func TestCallTool(t *testing.T) {
	newUseCase := func(resp *model.ToolResponse, err error) *mock.UseCaseMock {
		return &mock.UseCaseMock{
			ToolsFunc: func() []*model.ToolSpec {
				return []*model.ToolSpec{{
					Name:   "jira_get_issues",
					Params: []model.ToolParam{{Name: "keys", Type: model.ToolParamString, Required: true}},
				}}
			},
			CallToolFunc: func(ctx context.Context, name string, args model.ToolArgs) (*model.ToolResponse, error) {
				return resp, err
			},
		}
	}
	const msg = `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"jira_get_issues","arguments":{"keys":"PROJ-1"}}}`

	t.Run("success", func(t *testing.T) {
		uc := newUseCase(model.NewToolResponse("1 issue", map[string]int{"n": 1}), nil)
		result := call(t, mcp.New(uc), msg)

		gt.False(t, result.Result.IsError)
		gt.A(t, result.Result.Content).Length(1)

		var resp model.ToolResponse
		gt.NoError(t, json.Unmarshal([]byte(result.Result.Content[0].Text), &resp))
		gt.True(t, resp.Success)
		gt.V(t, resp.Summary).Equal("1 issue")

		calls := uc.CallToolCalls()
		gt.A(t, calls).Length(1)
		gt.V(t, calls[0].Name).Equal("jira_get_issues")
		gt.V(t, calls[0].Args["keys"]).Equal(any("PROJ-1"))
	})

	t.Run("tool failure", func(t *testing.T) {
		uc := newUseCase(model.NewToolErrorResponse("failed", errors.New("boom")), nil)
		result := call(t, mcp.New(uc), msg)
		gt.True(t, result.Result.IsError)
	})

	t.Run("rejected call", func(t *testing.T) {
		uc := newUseCase(nil, errors.New("unknown tool"))
		result := call(t, mcp.New(uc), msg)
		gt.True(t, result.Result.IsError)
		gt.A(t, result.Result.Content).Length(1)
	})
}
