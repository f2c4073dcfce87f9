// Package toolset holds the fixed table of named tool configurations the
// bridge exposes. The table is built once at startup; there is no dynamic
// registration.
package toolset

import (
	"fmt"
	"sort"
)

// Effort and context-size dials are passed to the remote model verbatim and
// never interpreted locally.
const (
	EffortLow    = "low"
	EffortMedium = "medium"
	EffortHigh   = "high"
)

const (
	ContextLow    = "low"
	ContextMedium = "medium"
	ContextHigh   = "high"
)

// WebSearchConfig enables the remote web-search capability for a tool.
type WebSearchConfig struct {
	ContextSize string
}

// ToolConfig is the immutable per-tool configuration consumed by the
// invocation pipeline. WebSearch is nil for tools without search.
type ToolConfig struct {
	Model       string
	Effort      string
	Description string
	WebSearch   *WebSearchConfig
}

// Defaults carries the config-level settings every tool starts from.
type Defaults struct {
	Model       string
	Effort      string
	ContextSize string
}

// Registry maps tool names to their static configuration.
type Registry struct {
	tools map[string]ToolConfig
}

// New builds the registry from built-in entries plus the supplied defaults.
// Invalid defaults are a construction error: misconfiguration is fatal at
// startup, not at invocation time.
func New(d Defaults) (*Registry, error) {
	if d.Model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	if !validLevel(d.Effort) {
		return nil, fmt.Errorf("invalid reasoning effort %q", d.Effort)
	}
	if !validLevel(d.ContextSize) {
		return nil, fmt.Errorf("invalid search context size %q", d.ContextSize)
	}

	tools := map[string]ToolConfig{
		"gpt_search": {
			Model:       d.Model,
			Effort:      d.Effort,
			Description: fmt.Sprintf("Ask %s with live web search. Best for questions about current events or facts that need citations.", d.Model),
			WebSearch:   &WebSearchConfig{ContextSize: d.ContextSize},
		},
		"gpt_search_wide": {
			Model:       d.Model,
			Effort:      d.Effort,
			Description: fmt.Sprintf("Ask %s with web search and a large retrieved-context window. Slower, but better for broad research questions.", d.Model),
			WebSearch:   &WebSearchConfig{ContextSize: ContextHigh},
		},
		"gpt_reason": {
			Model:       d.Model,
			Effort:      EffortHigh,
			Description: fmt.Sprintf("Ask %s with high reasoning effort and no web search. Best for hard analytical problems over the given input.", d.Model),
		},
		"gpt_quick": {
			Model:       d.Model,
			Effort:      EffortLow,
			Description: fmt.Sprintf("Ask %s with low reasoning effort. Fast answers for simple questions.", d.Model),
		},
	}
	return &Registry{tools: tools}, nil
}

// Lookup returns the configuration for name, if registered.
func (r *Registry) Lookup(name string) (ToolConfig, bool) {
	cfg, ok := r.tools[name]
	return cfg, ok
}

// Names returns all registered tool names sorted for deterministic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validLevel(v string) bool {
	switch v {
	case EffortLow, EffortMedium, EffortHigh:
		return true
	}
	return false
}
