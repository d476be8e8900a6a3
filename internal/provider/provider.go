// Package provider holds helpers shared by the SDK backends.
package provider

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	ai "github.com/spetersoncode/switchboard"
)

// ParseRetryAfter extracts the Retry-After duration from an HTTP response.
// Returns 0 if the header is not present or cannot be parsed.
func ParseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	header := resp.Header.Get("Retry-After")
	if header == "" {
		return 0
	}

	// Try parsing as seconds (most common)
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}

	// Try parsing as HTTP-date (RFC 7231)
	if t, err := http.ParseTime(header); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}

// finishReasons maps provider stop reasons onto the normalized set.
var finishReasons = map[string]ai.FinishReason{
	// openai / openrouter
	"stop":           ai.FinishStop,
	"length":         ai.FinishLength,
	"content_filter": ai.FinishContentFilter,
	"tool_calls":     ai.FinishToolCalls,
	"function_call":  ai.FinishToolCalls,
	// anthropic
	"end_turn":      ai.FinishStop,
	"stop_sequence": ai.FinishStop,
	"max_tokens":    ai.FinishLength,
	"tool_use":      ai.FinishToolCalls,
	"refusal":       ai.FinishContentFilter,
	// google
	"STOP":               ai.FinishStop,
	"MAX_TOKENS":         ai.FinishLength,
	"SAFETY":             ai.FinishContentFilter,
	"RECITATION":         ai.FinishContentFilter,
	"BLOCKLIST":          ai.FinishContentFilter,
	"PROHIBITED_CONTENT": ai.FinishContentFilter,
	"SPII":               ai.FinishContentFilter,
}

// FinishReason normalizes a provider stop reason. Empty input stays empty;
// unrecognized reasons become FinishOther.
func FinishReason(raw string) ai.FinishReason {
	if raw == "" {
		return ""
	}
	if r, ok := finishReasons[raw]; ok {
		return r
	}
	return ai.FinishOther
}

// Usage builds a usage record, or nil when the provider reported nothing.
func Usage(input, output, total int64) *ai.Usage {
	if input == 0 && output == 0 && total == 0 {
		return nil
	}
	if total == 0 {
		total = input + output
	}
	return &ai.Usage{
		InputTokens:  int(input),
		OutputTokens: int(output),
		TotalTokens:  int(total),
	}
}

// APIMessage returns the human-readable message of an API error body. Both the
// full body ({"error":{"message":...}}) and the bare error object are accepted.
// It falls back to the status text when the body carries no message.
func APIMessage(raw string, statusCode int) string {
	for _, path := range []string{"error.message", "message"} {
		if m := gjson.Get(raw, path); m.Type == gjson.String && strings.TrimSpace(m.Str) != "" {
			return strings.TrimSpace(m.Str)
		}
	}
	return http.StatusText(statusCode)
}

// TransportError wraps a failure that produced no API response: connection
// errors, timeouts, cancellation. The message drops the request URL and the
// dial address; the original error stays reachable through errors.Is and errors.As.
func TransportError(p ai.Provider, err error) error {
	if err == nil {
		return nil
	}
	return ai.NewProviderError(p, 0, 0, transportDetail(err), err)
}

func transportDetail(err error) string {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Err != nil {
		return opErr.Op + ": " + opErr.Err.Error()
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
