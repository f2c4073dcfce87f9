package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/gpt-bridge/internal/config"
	"github.com/roivaz/gpt-bridge/internal/logging"
	"github.com/roivaz/gpt-bridge/internal/mcp/tools"
	"github.com/roivaz/gpt-bridge/internal/toolset"
	"github.com/roivaz/gpt-bridge/internal/upstream"
)

type Config struct {
	Registry     *toolset.Registry
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	registry, err := toolset.New(toolset.Defaults{
		Model:       config.Model(),
		Effort:      config.ReasoningEffort(),
		ContextSize: config.SearchContextSize(),
	})
	if err != nil {
		log.Fatalf("failed to build tool registry: %v", err)
	}

	baseLogger := logging.DefaultLogger()
	client := upstream.NewClient(upstream.Config{
		BaseURL:     config.BaseURL(),
		APIKey:      config.APIKey(),
		CallTimeout: config.CallTimeout(),
		Retry: upstream.RetryPolicy{
			MaxRetries: config.MaxRetries(),
			BaseDelay:  config.RetryBaseDelay(),
		},
		Logger: logging.New(baseLogger.WithName("upstream")),
	})
	service := tools.NewUpstreamAskService(registry, client)

	adapters := make(map[string]ToolAdapter, len(registry.Names()))
	for _, name := range registry.Names() {
		adapters[name] = &tools.AskHandler{Service: service, Tool: name}
	}

	return Config{
		Registry:     registry,
		ToolAdapters: adapters,
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
