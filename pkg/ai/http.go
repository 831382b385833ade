package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPCompleter calls a plain HTTP completion endpoint. The endpoint may
// answer with a bare JSON string, an object carrying a string "result"
// field, or raw text; any other shape is an unsupported-format error.
type HTTPCompleter struct {
	client *resty.Client
	url    string
}

func NewHTTPCompleter(url string) *HTTPCompleter {
	return &HTTPCompleter{
		client: resty.New().SetTimeout(60 * time.Second),
		url:    url,
	}
}

func (c *HTTPCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("prompt", prompt).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("completion request failed: HTTP %d", resp.StatusCode())
	}

	return decodeResult(resp.Body())
}

func decodeResult(body []byte) (string, error) {
	var value interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		// Not JSON at all: treat the body as the raw string answer.
		text := strings.TrimSpace(string(body))
		if text == "" {
			return "", ErrUnsupportedFormat
		}
		return text, nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]interface{}:
		if result, ok := v["result"].(string); ok {
			return result, nil
		}
	}
	return "", ErrUnsupportedFormat
}
