package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/gpt-bridge/internal/config"
	"github.com/roivaz/gpt-bridge/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "mcp-server",
		Short: "gpt-bridge MCP server",
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
	root.PersistentFlags().String("transport", "stdio", "MCP transport (stdio|http)")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	srv := mcp.New(mcp.DefaultConfig())

	transport, _ := cmd.Flags().GetString("transport")
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "http":
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("MCP server listening on %s", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
