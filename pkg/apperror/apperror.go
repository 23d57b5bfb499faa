// Package apperror is the generic application error shared by domain packages and the HTTP layer.
// Domain errors convert into it; the HTTP layer only ever inspects this type.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error as client or server fault.
type Kind int

const (
	KindInternal Kind = iota
	KindValidationField
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidationField:
		return "validation_field"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error carries the classification plus a message that is safe to show to clients.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

// ValidationField reports a client fault tied to a single request field.
func ValidationField(field, message string) *Error {
	return &Error{Kind: KindValidationField, Field: field, Message: message}
}

// Internal reports a server fault.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// NotFound reports a missing resource.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return e.Message
}

// StatusCode maps the kind onto an HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidationField:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Converter is implemented by domain errors that know their application error form.
type Converter interface {
	AppError() *Error
}

// As finds an application error in err's chain, converting domain errors on the way.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	var conv Converter
	if errors.As(err, &conv) {
		return conv.AppError(), true
	}
	return nil, false
}
