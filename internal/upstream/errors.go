package upstream

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// errInsufficientQuota is the vendor marker for billing shortfalls; such
// failures are terminal regardless of status code.
const errInsufficientQuota = "insufficient_quota"

// maxErrorBodyLen bounds how much of an unstructured error body is carried
// into the classified message.
const maxErrorBodyLen = 512

// APIError is the classified form of a failed remote call. It is built once
// at the failure site and consumed by both the retry engine and the
// user-facing message renderer, so the two can never re-derive classification
// differently.
type APIError struct {
	Status     int           // 0 when the failure carried no HTTP status
	Type       string        // vendor error type, if any
	Code       string        // vendor error code, if any
	RetryAfter time.Duration // 0 when the server gave no hint
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream call failed (status %d): %s", e.StatusOrDefault(), e.Message)
}

// StatusOrDefault maps a missing status to 500: a transport-level failure is
// treated as a transient server problem for both retry and rendering.
func (e *APIError) StatusOrDefault() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

func (e *APIError) quotaExhausted() bool {
	return e.Type == errInsufficientQuota || e.Code == errInsufficientQuota
}

// Retriable reports whether the retry engine may attempt this failure again:
// never for quota exhaustion, otherwise only for 429 and 5xx.
func (e *APIError) Retriable() bool {
	if e.quotaExhausted() {
		return false
	}
	s := e.StatusOrDefault()
	return s == http.StatusTooManyRequests || (s >= 500 && s <= 599)
}

// UserMessage renders the reply text shown to the caller when the failure is
// terminal or retries are exhausted.
func (e *APIError) UserMessage() string {
	switch {
	case e.quotaExhausted():
		return "Model API quota exceeded. Check your plan and billing details."
	case e.StatusOrDefault() == http.StatusTooManyRequests:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("Rate limited by the model API. Retry in %d seconds.", int(e.RetryAfter/time.Second))
		}
		return "Rate limited by the model API. Retry shortly."
	case e.StatusOrDefault() == http.StatusUnauthorized:
		return "Authentication with the model API failed. Check the configured API key."
	case e.StatusOrDefault() >= 500:
		return "The model API is temporarily unavailable. Try again later."
	default:
		return fmt.Sprintf("Model API request failed (status %d): %s", e.StatusOrDefault(), e.Message)
	}
}

// classifyHTTP builds an APIError from a non-2xx response. The structured
// vendor envelope ({"error": {"message", "type", "code"}}) takes precedence
// over top-level fields; Retry-After is parsed from seconds.
func classifyHTTP(status int, header http.Header, body []byte) *APIError {
	e := &APIError{Status: status}
	for _, path := range []string{"error.type", "type"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			e.Type = v.String()
			break
		}
	}
	for _, path := range []string{"error.code", "code"} {
		if v := gjson.GetBytes(body, path); v.Exists() {
			e.Code = v.String()
			break
		}
	}
	if v := gjson.GetBytes(body, "error.message"); v.Exists() {
		e.Message = v.String()
	} else {
		e.Message = truncate(strings.TrimSpace(string(body)), maxErrorBodyLen)
	}
	if ra := header.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs >= 0 {
			e.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return e
}

// classifyTransport wraps a failure that produced no HTTP response at all
// (dial error, timeout, cancelled context). Status stays 0 and defaults to
// 500 downstream.
func classifyTransport(err error) *APIError {
	return &APIError{Message: err.Error()}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
