package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ProviderEndpoint = "endpoint"
	ProviderGemini   = "gemini"
)

type ReasoningConfig struct {
	Provider      string
	Endpoint      string
	CustomerID    string
	Authorization string
	Model         string
	Temperature   float64
	MaxTokens     int
	Timeout       time.Duration
	MaxRetries    int
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
}

var (
	reasoningConfig *ReasoningConfig
	reasoningOnce   sync.Once
)

func LoadReasoningConfig() *ReasoningConfig {
	reasoningOnce.Do(func() {
		reasoningConfig = &ReasoningConfig{
			Provider:      strings.ToLower(envOr("AI_PROVIDER", ProviderEndpoint)),
			Endpoint:      os.Getenv("AI_ENDPOINT"),
			CustomerID:    os.Getenv("AI_CUSTOMER_ID"),
			Authorization: os.Getenv("AI_AUTHORIZATION"),
			Model:         envOr("AI_MODEL", "openrouter/anthropic/claude-sonnet-4"),
			Temperature:   envFloat("AI_TEMPERATURE", 0.3),
			MaxTokens:     envInt("AI_MAX_TOKENS", 2000),
			Timeout:       envDuration("AI_TIMEOUT", 60*time.Second),
			MaxRetries:    envInt("AI_MAX_RETRIES", 0),
			GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   envOr("GEMINI_MODEL", "gemini-2.5-flash"),
			GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		}
	})
	return reasoningConfig
}

// Validate reports missing settings. It is meant to run once at startup so a
// misconfigured process never accepts requests.
func (c *ReasoningConfig) Validate() error {
	switch c.Provider {
	case ProviderEndpoint:
		var missing []string
		if strings.TrimSpace(c.Endpoint) == "" {
			missing = append(missing, "AI_ENDPOINT")
		}
		if strings.TrimSpace(c.CustomerID) == "" {
			missing = append(missing, "AI_CUSTOMER_ID")
		}
		if strings.TrimSpace(c.Authorization) == "" {
			missing = append(missing, "AI_AUTHORIZATION")
		}
		if len(missing) > 0 {
			return fmt.Errorf("reasoning service not configured: missing %s", strings.Join(missing, ", "))
		}
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return errors.New("reasoning service not configured: missing GEMINI_API_KEY")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.Provider)
	}
	return nil
}
