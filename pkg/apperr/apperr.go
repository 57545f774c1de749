package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Kind tags a business failure so handlers can map it to a status code
// without inspecting error text.
type Kind int

const (
	Validation Kind = iota + 1 // malformed input, rejected before storage
	Conflict                   // uniqueness violation on create
	BadRequest                 // missing or incorrect login credentials
	Forbidden                  // attempt to change an immutable field
	NotFound                   // unknown user
	Auth                       // invalid or expired token
	Internal                   // unexpected storage/runtime failure
)

// Error is the single error type crossing the application boundary.
// Details carries per-field validation messages; Messages carries everything else.
type Error struct {
	Kind     Kind
	Messages []string
	Details  []string
}

func (e *Error) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return strings.Join(e.Details, "; ")
}

func New(kind Kind, msgs ...string) *Error {
	return &Error{Kind: kind, Messages: msgs}
}

// NewValidation builds a Validation error from per-field messages.
func NewValidation(details []string) *Error {
	return &Error{Kind: Validation, Details: details}
}

// Wrap degrades an arbitrary error to the given kind, keeping the raw message.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Messages: []string{err.Error()}}
}

// As extracts an *Error from err, or nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// statusByKind is the one exhaustive kind -> HTTP status table.
var statusByKind = map[Kind]int{
	Validation: http.StatusBadRequest,
	Conflict:   http.StatusConflict,
	BadRequest: http.StatusBadRequest,
	Forbidden:  http.StatusUnauthorized,
	NotFound:   http.StatusNotFound,
	Auth:       http.StatusUnauthorized,
	Internal:   http.StatusInternalServerError,
}

// StatusCode maps any error to its response status. Untagged errors
// fall through to 500.
func StatusCode(err error) int {
	if e := As(err); e != nil {
		if s, ok := statusByKind[e.Kind]; ok {
			return s
		}
	}
	return http.StatusInternalServerError
}
