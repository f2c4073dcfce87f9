package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roivaz/gpt-bridge/internal/logging"
	"github.com/roivaz/gpt-bridge/internal/toolset"
)

// Config carries the client construction parameters, read once at startup.
type Config struct {
	BaseURL     string
	APIKey      string
	CallTimeout time.Duration
	Retry       RetryPolicy
	HTTPClient  *http.Client
	Logger      logging.Logger
}

// Client fronts the remote completion endpoint. A missing API key is not a
// construction error: every invocation then fails at the remote step with an
// authentication classification instead of taking the process down.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
	retry  RetryPolicy
	to     time.Duration
	log    logging.Logger
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.APIKey == "" {
		cfg.Logger.Info("no API key configured, invocations will fail with an authentication error")
	}
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		http:   httpClient,
		retry:  cfg.Retry,
		to:     cfg.CallTimeout,
		log:    cfg.Logger,
	}
}

// Invoke runs the full pipeline for one tool invocation: build the outbound
// request, call through the retry engine, validate the response shape, and
// extract the reply text. Terminal failures come back as rendered user-facing
// text rather than an error, so the caller always has a reply to return over
// the protocol.
func (c *Client) Invoke(ctx context.Context, cfg toolset.ToolConfig, input string) string {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req := buildRequest(cfg, input)
	start := time.Now()
	raw, err := doWithRetry(ctx, c.log, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.createResponse(ctx, req)
	})
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			apiErr = classifyTransport(err)
		}
		c.log.Error(err, "upstream call failed",
			"model", cfg.Model, "elapsed", time.Since(start).String())
		return apiErr.UserMessage()
	}

	resp, err := ValidateResponse(raw)
	if err != nil {
		// Upstream shape drift must not take the tool offline; recover
		// whatever text is structurally present.
		c.log.Error(err, "response failed validation, extracting from raw payload")
		return ExtractRaw(raw)
	}

	c.log.Debug("upstream call succeeded",
		"model", cfg.Model, "items", len(resp.Output), "elapsed", time.Since(start).String())
	return ExtractText(resp.Output)
}

// createResponse performs one attempt against the completion endpoint. Non-2xx
// statuses and transport failures come back classified.
func (c *Client) createResponse(ctx context.Context, req request) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/responses", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, classifyHTTP(resp.StatusCode, resp.Header, body)
	}
	return body, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.to)
}
