// Package assistant wraps the external chat-completion provider behind a
// small interface so the service layer and tests never touch the SDK.
package assistant

import (
	"context"
	"errors"
	"fmt"
)

// Turn is one prior exchange in the widget conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ErrNotConfigured is returned when no API credential is available.
var ErrNotConfigured = errors.New("completion provider not configured")

// Completer produces a model reply for a system prompt, recent turns and the
// current user message. Implementations must honor ctx cancellation.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []Turn, userMessage string) (string, error)
}

// Config selects the provider model and bounds each call.
type Config struct {
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// NewCompleter builds the OpenAI-backed completer, or a disabled one when no
// credential is configured. The disabled completer fails every call, which
// the service layer converts into the canned contact-channel reply.
func NewCompleter(cfg Config) Completer {
	if cfg.APIKey == "" {
		return disabledCompleter{}
	}
	return newOpenAICompleter(cfg)
}

type disabledCompleter struct{}

func (disabledCompleter) Complete(context.Context, string, []Turn, string) (string, error) {
	return "", fmt.Errorf("complete: %w", ErrNotConfigured)
}
