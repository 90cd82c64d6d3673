// Package apperror carries the failure taxonomy of an assessment request
// from the usecases to the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindReasoning   Kind = "reasoning_service"
	KindPersistence Kind = "persistence"
	KindInternal    Kind = "internal"
)

type Error struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Stage: "validating", Message: message}
}

func NotFound(stage string, err error) *Error {
	return &Error{Kind: KindNotFound, Stage: stage, Message: "not found", Err: err}
}

func Reasoning(err error) *Error {
	return &Error{Kind: KindReasoning, Stage: "assessing", Message: "assessment failed", Err: err}
}

func Persistence(stage string, err error) *Error {
	return &Error{Kind: KindPersistence, Stage: stage, Message: "persistence failed", Err: err}
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
