package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/gpt-bridge/internal/toolset"
)

type fakeAskService struct {
	gotTool  string
	gotInput string
	reply    string
	err      error
}

func (f *fakeAskService) Ask(_ context.Context, tool, input string) (string, error) {
	f.gotTool = tool
	f.gotInput = input
	return f.reply, f.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestAskHandler_ReturnsReplyText(t *testing.T) {
	svc := &fakeAskService{reply: "pong"}
	h := &AskHandler{Service: svc, Tool: "gpt_search"}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"input": "ping"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "pong", textOf(t, res))
	assert.Equal(t, "gpt_search", svc.gotTool)
	assert.Equal(t, "ping", svc.gotInput)
}

func TestAskHandler_RejectsMissingInput(t *testing.T) {
	h := &AskHandler{Service: &fakeAskService{}, Tool: "gpt_search"}
	for name, args := range map[string]map[string]any{
		"absent":     {},
		"blank":      {"input": "   "},
		"wrong type": {"input": 7},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := h.ToolAdapter(context.Background(), callRequest(args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestUpstreamAskService_UnknownTool(t *testing.T) {
	registry, err := toolset.New(toolset.Defaults{
		Model:       "gpt-5",
		Effort:      toolset.EffortMedium,
		ContextSize: toolset.ContextMedium,
	})
	require.NoError(t, err)

	svc := NewUpstreamAskService(registry, nil)
	_, err = svc.Ask(context.Background(), "no_such_tool", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_tool")
}

func TestAskHandler_ServiceErrorBecomesToolError(t *testing.T) {
	svc := &fakeAskService{err: errors.New("unknown tool \"nope\"")}
	h := &AskHandler{Service: svc, Tool: "nope"}

	res, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"input": "hi"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
