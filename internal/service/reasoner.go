package service

import (
	"context"
	"errors"
)

// Failure subtypes of a reasoning call. Each one is terminal for the
// assessment request.
var (
	ErrServiceUnavailable    = errors.New("reasoning service unavailable")
	ErrEmptyResponse         = errors.New("reasoning service returned empty content")
	ErrInvalidResponseFormat = errors.New("no JSON object in reasoning response")
	ErrInvalidAnalysisData   = errors.New("invalid analysis data")
)

// Reasoner sends one system/user prompt pair to a language model and returns
// the text of the first completion.
type Reasoner interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
