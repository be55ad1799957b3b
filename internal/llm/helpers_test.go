package llm

import (
	"time"

	"github.com/proposalcraft/proposalcraft-go/internal/config"
)

func configFor(provider, key string) config.LLMConfig {
	return config.LLMConfig{
		Provider: provider,
		Model:    "test-model",
		APIKey:   key,
		BaseURL:  "http://127.0.0.1:0",
		Timeout:  time.Second,
	}
}
