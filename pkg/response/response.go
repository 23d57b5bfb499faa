// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagination/pkg/apperror"
)

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string       `json:"error"`
	Message     string       `json:"message,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
} //	@name	ErrorPayload

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Unclassified errors never leak their text to the client.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	ae, ok := apperror.As(err)
	if !ok {
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}

	switch ae.Kind {
	case apperror.KindValidationField:
		return ae.StatusCode(), ErrorPayload{
			Error:       "invalid_input",
			Message:     ae.Message,
			FieldErrors: []FieldError{{Field: ae.Field, Message: ae.Message}},
		}
	case apperror.KindNotFound:
		return ae.StatusCode(), ErrorPayload{Error: "not_found", Message: ae.Message}
	default:
		return ae.StatusCode(), ErrorPayload{Error: "internal_error", Message: ae.Message}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
