package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// LangChainClient adapts a langchaingo model to Client.
type LangChainClient struct {
	model      llms.Model
	modelName  string
	httpClient *http.Client
}

// NewLangChainClient wraps an already constructed langchaingo model.
func NewLangChainClient(model llms.Model, modelName string) *LangChainClient {
	return &LangChainClient{model: model, modelName: modelName}
}

// NewGeminiClient creates a Gemini-backed client whose requests are bounded
// by timeout.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*LangChainClient, error) {
	hc := &http.Client{
		Timeout:   timeout,
		Transport: &apiKeyTransport{key: apiKey, base: http.DefaultTransport},
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
		googleai.WithHTTPClient(hc),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c := NewLangChainClient(m, model)
	c.httpClient = hc
	return c, nil
}

// apiKeyTransport adds the Gemini API key header. A caller-supplied HTTP
// client replaces the transport that would otherwise carry the key.
type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("x-goog-api-key") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("x-goog-api-key", t.key)
	return t.base.RoundTrip(r)
}

func (c *LangChainClient) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(messageType(m.Role), m.Content))
	}

	resp, err := c.model.GenerateContent(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("llm request: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("llm returned no response")
	}

	completion := &Completion{Model: c.modelName, Choices: make([]Choice, 0, len(resp.Choices))}
	for _, ch := range resp.Choices {
		if ch == nil {
			completion.Choices = append(completion.Choices, Choice{})
			continue
		}
		completion.Choices = append(completion.Choices, Choice{Content: text(ch.Content)})
	}
	return completion, nil
}

func messageType(r Role) llms.ChatMessageType {
	if r == RoleSystem {
		return llms.ChatMessageTypeSystem
	}
	return llms.ChatMessageTypeHuman
}

var _ Client = (*LangChainClient)(nil)
