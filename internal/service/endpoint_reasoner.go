package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/talent-fit/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// EndpointReasoner talks to an OpenAI-style chat completions endpoint behind
// a tenant gateway (CustomerId header plus an Authorization credential).
type EndpointReasoner struct {
	client        *resty.Client
	endpoint      string
	customerID    string
	authorization string
	model         string
	temperature   float64
	maxTokens     int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	N           int           `json:"n"`
}

func NewEndpointReasoner(cfg *config.ReasoningConfig) *EndpointReasoner {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(time.Second).
		SetRetryMaxWaitTime(10 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == 429 || r.StatusCode() >= 500
		})

	return &EndpointReasoner{
		client:        client,
		endpoint:      cfg.Endpoint,
		customerID:    cfg.CustomerID,
		authorization: bearer(cfg.Authorization),
		model:         cfg.Model,
		temperature:   cfg.Temperature,
		maxTokens:     cfg.MaxTokens,
	}
}

func (r *EndpointReasoner) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("CustomerId", r.customerID).
		SetHeader("Authorization", r.authorization).
		SetBody(chatRequest{
			Model: r.model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
			Temperature: r.temperature,
			MaxTokens:   r.maxTokens,
			N:           1,
		}).
		Post(r.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: status %s", ErrServiceUnavailable, resp.Status())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// bearer adds the Bearer scheme unless the credential already names one.
func bearer(credential string) string {
	credential = strings.TrimSpace(credential)
	if credential == "" || strings.Contains(credential, " ") {
		return credential
	}
	return "Bearer " + credential
}
