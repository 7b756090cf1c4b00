package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            int
	LogLevel        string
	LLMProvider     string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	LanguageRetries int
	DatabaseURL     string
	NatsURL         string
	NatsToken       string
	APIToken        string
}

func Load() Config {
	return Config{
		Port:            envInt("WISDOM_PORT", 8760),
		LogLevel:        envStr("LOG_LEVEL", "info"),
		LLMProvider:     envStr("LLM_PROVIDER", "openai"),
		OpenAIAPIKey:    envStr("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   envStr("OPENAI_BASE_URL", ""),
		OpenAIModel:     envStr("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("WISDOM_MODEL", "claude-sonnet-4-20250514"),
		LanguageRetries: envInt("LANGUAGE_RETRIES", 1),
		DatabaseURL:     envStr("DATABASE_URL", ""),
		NatsURL:         envStr("NATS_URL", "nats://hermes:4222"),
		NatsToken:       envStr("NATS_TOKEN", ""),
		APIToken:        envStr("WISDOM_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
