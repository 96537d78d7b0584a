// Package services holds the business rules between transport and storage.
// Every operation returns a Result; the transport shell maps its status and
// isError to the response verbatim and never re-derives them.
package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jobtrackd/jobtrackd/internal/repository"
)

// Result is the uniform outcome of every service operation.
type Result struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	IsError bool        `json:"isError"`
	Data    interface{} `json:"data,omitempty"`
}

func success(message string, status int, data interface{}) Result {
	return Result{Message: message, Status: status, Data: data}
}

func failure(message string, status int) Result {
	return Result{Message: message, Status: status, IsError: true}
}

// persistenceFailure is the single error-kind-to-status mapping used by
// every operation. Conflicts are always 409, missing rows 404, anything
// else from the store 500; no operation invents its own mapping.
func persistenceFailure(err error, conflictMessage, notFoundMessage, fallbackMessage string) Result {
	switch {
	case errors.Is(err, repository.ErrConflict):
		return failure(conflictMessage, fiber.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		return failure(notFoundMessage, fiber.StatusNotFound)
	default:
		return failure(fallbackMessage, fiber.StatusInternalServerError)
	}
}
