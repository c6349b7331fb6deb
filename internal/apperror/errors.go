package apperror

import (
	"errors"
	"net/http"
)

// Sentinels for errors.Is checks across layers.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("resource not found")
	ErrReferential = errors.New("referenced resource does not exist")
	ErrStorage     = errors.New("storage failure")
)

// Error is a classified application error. Message is what clients see.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Validation creates an error for bad or missing input.
func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

// NotFound creates an error for a missing entity.
func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Referential wraps a failed foreign reference, e.g. a cart row pointing at
// a product that does not exist.
func Referential(err error) *Error {
	return &Error{Kind: ErrReferential, Message: err.Error(), Err: err}
}

// Storage wraps a connectivity or query failure. The driver message is kept
// verbatim.
func Storage(err error) *Error {
	return &Error{Kind: ErrStorage, Message: err.Error(), Err: err}
}

// HTTPStatus returns the status code a handler should answer with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		// ErrReferential and ErrStorage have no dedicated status.
		return http.StatusInternalServerError
	}
}
