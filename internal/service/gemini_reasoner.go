package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/talent-fit/internal/config"
	"google.golang.org/genai"
)

// GeminiReasoner is the alternative backend selected with AI_PROVIDER=gemini.
type GeminiReasoner struct {
	Client      *genai.Client
	Model       string
	Temperature float32
	MaxTokens   int32
	Timeout     time.Duration
}

func NewGeminiReasoner(ctx context.Context, cfg *config.ReasoningConfig) (*GeminiReasoner, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.GeminiAPIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.GeminiBaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiReasoner{
		Client:      client,
		Model:       cfg.GeminiModel,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   int32(cfg.MaxTokens),
		Timeout:     cfg.Timeout,
	}, nil
}

func (g *GeminiReasoner) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(g.Temperature),
		MaxOutputTokens:   g.MaxTokens,
		CandidateCount:    1,
	}

	result, err := g.Client.Models.GenerateContent(timeoutCtx, g.Model, genai.Text(userPrompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	return completionText(result)
}

// completionText returns the text of the first candidate.
func completionText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
