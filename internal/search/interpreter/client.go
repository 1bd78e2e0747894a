// internal/search/interpreter/client.go
package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"trimly-search/internal/common/logger"
)

var (
	ErrInterpreterFailed  = errors.New("INTERPRETER_FAILED")
	ErrInterpreterTimeout = errors.New("INTERPRETER_TIMEOUT")
)

// Config holds the GenAI endpoint settings for the interpreter client.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
}

// Client calls the platform GenAI service to turn free-text shop queries
// into structured filters. The call is non-deterministic and best-effort;
// callers must treat its output as untrusted and tolerate outright failure.
type Client struct {
	config Config
	client *http.Client
	logger logger.Logger
}

func NewClient(config Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: log.WithFields(map[string]interface{}{"component": "interpreter"}),
	}
}

// Interpret sends the raw query text and returns the validated structured
// result. It fails with ErrInterpreterTimeout when the context deadline is
// hit and ErrInterpreterFailed for anything else unusable.
func (c *Client) Interpret(ctx context.Context, query string) (*Result, error) {
	requestBody := map[string]interface{}{
		"query": query,
	}
	body, _ := json.Marshal(requestBody)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ErrInterpreterTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, "POST", c.config.BaseURL+"/api/ai/interpret-search", bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInterpreterFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
		}

		resp, lastErr = c.client.Do(req)

		// If the context expired during the request, report timeout immediately.
		if ctx.Err() != nil ||
			errors.Is(lastErr, context.DeadlineExceeded) ||
			errors.Is(lastErr, context.Canceled) {
			return nil, ErrInterpreterTimeout
		}

		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, ErrInterpreterTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrInterpreterFailed, lastErr)
	}

	if resp == nil {
		return nil, fmt.Errorf("%w: no successful response after retries", ErrInterpreterFailed)
	}
	defer resp.Body.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrInterpreterFailed, err)
	}

	result, err := coerceResult(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInterpreterFailed, err)
	}

	c.logger.Info("query interpreted", map[string]interface{}{
		"clarificationNeeded": result.NeedsClarification(),
		"serviceKeywords":     len(result.ParsedFilters.ServiceKeywords),
		"locationKeywords":    len(result.ParsedFilters.LocationKeywords),
	})

	return result, nil
}
