package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/gpt-bridge/internal/toolset"
	"github.com/roivaz/gpt-bridge/internal/upstream"
)

// AskService runs one invocation of a named tool. The reply is always text;
// terminal upstream failures arrive already rendered as user-facing messages.
type AskService interface {
	Ask(ctx context.Context, tool, input string) (string, error)
}

// AskHandler adapts one registered tool to the MCP call surface.
type AskHandler struct {
	Service AskService
	Tool    string
}

func (h *AskHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	input, _ := args["input"].(string)
	if strings.TrimSpace(input) == "" {
		return mcp.NewToolResultError("input parameter is required"), nil
	}
	reply, err := h.Service.Ask(ctx, h.Tool, input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reply), nil
}

type upstreamAskService struct {
	registry *toolset.Registry
	client   *upstream.Client
}

// NewUpstreamAskService wires the tool registry to the upstream pipeline.
func NewUpstreamAskService(registry *toolset.Registry, client *upstream.Client) AskService {
	return &upstreamAskService{registry: registry, client: client}
}

func (s *upstreamAskService) Ask(ctx context.Context, tool, input string) (string, error) {
	cfg, ok := s.registry.Lookup(tool)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", tool)
	}
	return s.client.Invoke(ctx, cfg, input), nil
}
