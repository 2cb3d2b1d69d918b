package errs

import (
	"errors"
	"net/http"
)

// Kind classifies a business error so the HTTP boundary can pick a status
// code without string matching.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindConflict               // duplicate unique key
	KindAuth                   // missing/invalid credentials or token
	KindNotFound               // missing or unauthorized resource
)

// Error carries a kind and the exact message shown to the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }

// IsKind reports whether err is a business error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// StatusCode maps a business error to its HTTP status. Anything that is not
// one of the enumerated kinds is an internal fault.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
