package types

import "fmt"

// CustomError is a transport-facing error carrying the HTTP status to report.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// Unauthorized builds the error returned when a protected operation is
// invoked without an authenticated session.
func Unauthorized(errorType string) *CustomError {
	return &CustomError{
		Code:    401,
		Message: "Unauthorized. Please login.",
		Type:    errorType,
	}
}
