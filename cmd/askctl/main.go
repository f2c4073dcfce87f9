// askctl runs a single gpt-bridge tool invocation from the command line,
// bypassing the MCP transport. Useful for smoke-testing credentials and tool
// configuration.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/gpt-bridge/internal/config"
	"github.com/roivaz/gpt-bridge/internal/logging"
	"github.com/roivaz/gpt-bridge/internal/mcp/tools"
	"github.com/roivaz/gpt-bridge/internal/toolset"
	"github.com/roivaz/gpt-bridge/internal/upstream"
)

func main() {
	root := &cobra.Command{
		Use:   "askctl <tool> <input>",
		Short: "Run a single gpt-bridge tool invocation",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}

	root.PersistentFlags().String("openai-base-url", "", "Completion API base URL")
	root.PersistentFlags().String("model", "", "Model identifier")
	root.PersistentFlags().String("reasoning-effort", "", "Default reasoning effort (low|medium|high)")
	root.PersistentFlags().String("search-context-size", "", "Default web-search context size (low|medium|high)")
	root.PersistentFlags().Int("max-retries", 2, "Retries per upstream call")
	root.PersistentFlags().Int("retry-base-delay-ms", 300, "Base backoff delay in milliseconds")
	root.PersistentFlags().Duration("llm-call-timeout", 120*time.Second, "Per-invocation upstream timeout")
	root.PersistentFlags().String("log-level", "", "Log level")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	registry, err := toolset.New(toolset.Defaults{
		Model:       config.Model(),
		Effort:      config.ReasoningEffort(),
		ContextSize: config.SearchContextSize(),
	})
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	client := upstream.NewClient(upstream.Config{
		BaseURL:     config.BaseURL(),
		APIKey:      config.APIKey(),
		CallTimeout: config.CallTimeout(),
		Retry: upstream.RetryPolicy{
			MaxRetries: config.MaxRetries(),
			BaseDelay:  config.RetryBaseDelay(),
		},
		Logger: logging.New(logging.DefaultLogger().WithName("upstream")),
	})

	service := tools.NewUpstreamAskService(registry, client)
	reply, err := service.Ask(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}
