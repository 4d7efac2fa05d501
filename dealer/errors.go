package dealer

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies dealing failures so callers can pick a response
// without inspecting messages.
type ErrorKind string

const (
	KindInvalidFormat         ErrorKind = "invalid_format"
	KindOutOfRange            ErrorKind = "out_of_range"
	KindOutOfBoundsRank       ErrorKind = "out_of_bounds_rank"
	KindOutOfBoundsSuit       ErrorKind = "out_of_bounds_suit"
	KindInternalInconsistency ErrorKind = "internal_inconsistency"
)

const (
	MsgInvalidFormat = "Invalid number format"
	MsgOutOfRange    = "Number out of range"
)

// Error wraps an underlying error with operation context, a kind and the
// message reported to clients.
type Error struct {
	Op   string
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Message returns the client-facing message of err.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Msg != "" {
		return de.Msg
	}
	return err.Error()
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

// IsClientError reports whether err was caused by bad input rather than
// a broken deck.
func IsClientError(err error) bool {
	return IsKind(err, KindInvalidFormat) || IsKind(err, KindOutOfRange)
}

// StatusCode maps err to an HTTP status: 400 for client errors, 500 otherwise.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
