package pagination

import (
	"fmt"
	"net/http"

	"github.com/maxviazov/pagination/pkg/apperror"
)

// ErrorField is the request field reported for every client-side pagination fault.
const ErrorField = "pagination"

// Kind enumerates pagination failures.
type Kind int

const (
	KindInvalidPage Kind = iota + 1
	KindInvalidLimit
	KindInvalidParams
	KindOverflow
)

// Error is returned by Strict when the input can't be turned into a descriptor.
type Error struct {
	Kind   Kind
	Value  int64  // offending page or limit
	Detail string // InvalidParams only
}

// Sentinels for errors.Is; they match any *Error of the same Kind.
var (
	ErrInvalidPage   = &Error{Kind: KindInvalidPage}
	ErrInvalidLimit  = &Error{Kind: KindInvalidLimit}
	ErrInvalidParams = &Error{Kind: KindInvalidParams}
	ErrOverflow      = &Error{Kind: KindOverflow}
)

func invalidPage(n int64) *Error  { return &Error{Kind: KindInvalidPage, Value: n} }
func invalidLimit(n int64) *Error { return &Error{Kind: KindInvalidLimit, Value: n} }

func invalidParams(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParams, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidPage:
		return fmt.Sprintf("Invalid page number: %d. Must be greater than 0.", e.Value)
	case KindInvalidLimit:
		return fmt.Sprintf("Invalid limit: %d. Must be between %d and %d.", e.Value, MinLimit, MaxLimit)
	case KindOverflow:
		return "Calculation overflow"
	default:
		return fmt.Sprintf("Invalid pagination parameters: %s", e.Detail)
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsClientFault reports whether the caller's input is to blame.
func (e *Error) IsClientFault() bool {
	return e.Kind != KindOverflow
}

// StatusCode is 400 for bad input and 500 for arithmetic overflow.
func (e *Error) StatusCode() int {
	if e.IsClientFault() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// AppError translates the error for the HTTP layer, keeping the message verbatim.
func (e *Error) AppError() *apperror.Error {
	if e.IsClientFault() {
		return apperror.ValidationField(ErrorField, e.Error())
	}
	return apperror.Internal(e.Error())
}
