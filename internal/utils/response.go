package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/services"
)

// WriteResult maps a service Result to the HTTP response verbatim. The
// transport never re-derives status or error-ness.
func WriteResult(c *fiber.Ctx, res services.Result) error {
	if res.IsError {
		return ErrorResponse(c, res.Message, res.Status, typeForStatus(res.Status))
	}

	body := fiber.Map{
		"status":    res.Status,
		"message":   res.Message,
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if res.Data != nil {
		body["data"] = res.Data
	}
	return c.Status(res.Status).JSON(body)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// ValidationErrorResponse sends a 400 with one message per offending field
func ValidationErrorResponse(c *fiber.Ctx, details map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":    fiber.StatusBadRequest,
		"message":   "Validation failed. Please check your input.",
		"ok":        false,
		"details":   details,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "validation",
	})
}

// typeForStatus labels error responses by kind, one mapping for every
// operation.
func typeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "validation"
	case fiber.StatusUnauthorized:
		return "auth"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusConflict:
		return "conflict"
	default:
		return "server"
	}
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Ok        bool              `json:"ok"`
	Timestamp string            `json:"timestamp"`
	URL       string            `json:"url"`
	Type      string            `json:"type,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// SuccessResponseStruct defines the schema for success responses
type SuccessResponseStruct struct {
	Status    int         `json:"status"`
	Message   string      `json:"message"`
	Ok        bool        `json:"ok"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}
