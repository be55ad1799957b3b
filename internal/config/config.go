package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSessionSecret = "dev-secret-change-in-production"

type Config struct {
	Port     string
	Env      string
	LogLevel slog.Level

	SessionSecret string
	SessionTTL    time.Duration
	SessionCookie string

	OwnerEmail        string
	OwnerName         string
	OwnerPasswordHash string
	LoginRate         float64
	LoginBurst        int

	LLM LLMConfig
}

// LLMConfig selects and configures the completion provider.
type LLMConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoginEnabled reports whether an owner password hash is configured.
func (c Config) LoginEnabled() bool {
	return c.OwnerPasswordHash != ""
}

func Load() Config {
	cfg := Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: parseLevel(getEnv("LOG_LEVEL", "info")),

		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		SessionTTL:    getDuration("SESSION_TTL", 7*24*time.Hour),
		SessionCookie: getEnv("SESSION_COOKIE", "proposalcraft_session"),

		OwnerEmail:        strings.ToLower(strings.TrimSpace(os.Getenv("OWNER_EMAIL"))),
		OwnerName:         getEnv("OWNER_NAME", "Owner"),
		OwnerPasswordHash: os.Getenv("OWNER_PASSWORD_HASH"),
		LoginRate:         getFloat("LOGIN_RATE_PER_SECOND", 5),
		LoginBurst:        getInt("LOGIN_BURST", 10),

		LLM: loadLLM(),
	}

	if cfg.IsProduction() && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func loadLLM() LLMConfig {
	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))

	llm := LLMConfig{
		Provider: provider,
		Model:    os.Getenv("LLM_MODEL"),
		APIKey:   os.Getenv("LLM_API_KEY"),
		BaseURL:  getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		Timeout:  time.Duration(getInt("LLM_TIMEOUT_SECONDS", 120)) * time.Second,
	}

	switch provider {
	case "gemini":
		if llm.Model == "" {
			llm.Model = "gemini-2.5-flash"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	default:
		if llm.Model == "" {
			llm.Model = "gpt-4o-mini"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	}

	llm.BaseURL = strings.TrimRight(llm.BaseURL, "/")
	return llm
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", raw)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		slog.Warn("ignoring invalid number setting", "key", key, "value", raw)
		return fallback
	}
	return f
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", raw)
		return fallback
	}
	return d
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
