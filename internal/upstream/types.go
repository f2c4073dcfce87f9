// Package upstream fronts the remote completion endpoint: it builds outbound
// requests from tool configurations, retries transient failures, validates the
// response shape, and extracts the reply text. It is the only layer that talks
// to the vendor API.
package upstream

import "github.com/roivaz/gpt-bridge/internal/toolset"

// request is the outbound payload for the /responses completion endpoint.
type request struct {
	Model     string        `json:"model"`
	Input     string        `json:"input"`
	Reasoning *reasoning    `json:"reasoning,omitempty"`
	Tools     []requestTool `json:"tools,omitempty"`
}

type reasoning struct {
	Effort string `json:"effort"`
}

type requestTool struct {
	Type              string `json:"type"`
	SearchContextSize string `json:"search_context_size,omitempty"`
}

const webSearchToolType = "web_search_preview"

func buildRequest(cfg toolset.ToolConfig, input string) request {
	req := request{
		Model:     cfg.Model,
		Input:     input,
		Reasoning: &reasoning{Effort: cfg.Effort},
	}
	if cfg.WebSearch != nil {
		req.Tools = []requestTool{{
			Type:              webSearchToolType,
			SearchContextSize: cfg.WebSearch.ContextSize,
		}}
	}
	return req
}
