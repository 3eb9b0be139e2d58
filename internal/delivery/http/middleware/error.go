package middleware

import (
	"errors"
	"log"

	"hirehub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the one error shape handlers return. The error middleware
// turns it into the response envelope; anything else is reported as a
// generic 500 so internals never leak.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, code, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m != nil && m.logger != nil {
					m.logger.Printf("panic recovered: %v", r)
				}
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, response.CodeInternal)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, code := normalizeError(err)
		if status >= 500 && m != nil && m.logger != nil {
			m.logger.Printf("request failed: %v", err)
		}
		return response.Error(c, status, msg, code)
	}
}

func normalizeError(err error) (int, string, string) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, response.CodeInternal
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, response.CodeInternal
		}

		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		code := appErr.Code
		if code == "" {
			code = response.DefaultCodeForStatus(status)
		}
		return status, msg, code
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, response.CodeInternal
		}

		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, response.DefaultCodeForStatus(status)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, response.CodeInternal
}
