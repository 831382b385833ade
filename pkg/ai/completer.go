package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelandrean/wabot/pkg/config"
)

// ErrUnsupportedFormat marks a collaborator response that is neither a raw
// string nor an object carrying a string result field.
var ErrUnsupportedFormat = errors.New("unsupported response format")

// Completer answers a prompt with completion text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// New builds the configured completer.
func New(cfg *config.Config) (Completer, error) {
	switch cfg.AIProvider {
	case "", "http":
		if cfg.AIURL == "" {
			return nil, fmt.Errorf("http completer requires WABOT_AI_URL")
		}
		return NewHTTPCompleter(cfg.AIURL), nil
	case "openai":
		return NewOpenAICompleter(cfg.AIKey, cfg.AIModel), nil
	case "anthropic":
		return NewAnthropicCompleter(cfg.AIKey, cfg.AIModel), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.AIProvider)
	}
}
