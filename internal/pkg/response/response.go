package response

import "github.com/gofiber/fiber/v3"

// Envelope is the wire shape of every response: {success, data} on the
// happy path, {success, error:{message, code}} otherwise.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUploadFailed    = "UPLOAD_FAILED"
	CodeInternal        = "INTERNAL_ERROR"
)

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageInternalServerError = "internal server error"
)

func Success(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data})
}

func SuccessWithMessage(c fiber.Ctx, status int, message string, data any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data, Message: message})
}

func Error(c fiber.Ctx, status int, message, code string) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{
		Success: false,
		Error: &ErrorBody{
			Message: normalizeMessage(message, st),
			Code:    normalizeCode(code, st),
		},
	})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func normalizeCode(code string, status int) string {
	if code != "" {
		return code
	}
	return DefaultCodeForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}

func DefaultCodeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return CodeValidation
	case fiber.StatusUnauthorized:
		return CodeUnauthenticated
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeConflict
	default:
		if status >= 500 {
			return CodeInternal
		}
		return CodeValidation
	}
}
