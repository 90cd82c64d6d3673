package util

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/fadilmartias/talent-fit/internal/apperror"
	"github.com/fadilmartias/talent-fit/internal/config"
	"github.com/fadilmartias/talent-fit/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Kind       string
	Stage      string
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Kind       string `json:"kind,omitempty"`
	Stage      string `json:"stage,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

type FormError struct {
	Errors  map[string]string
	Message string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("form error: %s", e.Message)
}

func NewFormError(message string, errors map[string]string) *FormError {
	return &FormError{
		Message: message,
		Errors:  errors,
	}
}

// SuccessResponse writes the standard success envelope. Code defaults to 200.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	body := OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse writes the standard error envelope. Debug fields are only
// filled outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	body := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
		Kind:    params.Kind,
		Stage:   params.Stage,
		Details: params.Details,
	}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
			body.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			body.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			body.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(body)
}

// AppErrorResponse maps the usecase error taxonomy onto HTTP statuses.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	var form *FormError
	if errors.As(err, &form) {
		return ErrorResponse(c, ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Kind:    string(apperror.KindValidation),
			Message: form.Message,
			Details: form.Errors,
		}, err)
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return ErrorResponse(c, ErrorResponseFormat{
			Kind:    string(apperror.KindInternal),
			Message: "internal server error",
		}, err)
	}

	params := ErrorResponseFormat{
		Kind:    string(appErr.Kind),
		Stage:   appErr.Stage,
		Message: appErr.Message,
	}
	switch appErr.Kind {
	case apperror.KindValidation:
		params.Code = fiber.StatusBadRequest
	case apperror.KindNotFound:
		params.Code = fiber.StatusNotFound
	case apperror.KindReasoning:
		params.Code = fiber.StatusBadGateway
		if appErr.Err != nil {
			params.Message = fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
	default:
		params.Code = fiber.StatusInternalServerError
	}
	return ErrorResponse(c, params, err)
}
