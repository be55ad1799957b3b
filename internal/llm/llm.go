// Package llm talks to chat-style completion providers.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/proposalcraft/proposalcraft-go/internal/config"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

var ErrUnknownProvider = errors.New("unknown llm provider")

// Message is one role-tagged entry of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Choice is a candidate completion. Content is nil when the provider
// returned no textual content for it.
type Choice struct {
	Content *string
}

// Completion is the provider response.
type Completion struct {
	Model   string
	Choices []Choice
}

// Client sends a conversation to a completion provider. Implementations
// make exactly one request per call.
type Client interface {
	Complete(ctx context.Context, messages []Message) (*Completion, error)
}

// New builds the client selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm api key is required for provider %q", cfg.Provider)
	}

	// The provider timeout is the only deadline on a generation call.
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Model, &http.Client{Timeout: cfg.Timeout}), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func text(s string) *string { return &s }
