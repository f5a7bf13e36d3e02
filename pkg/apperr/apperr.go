package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	Invalid         Kind = "invalid"
	NotFound        Kind = "not_found"
	Unauthenticated Kind = "unauthenticated"
	Forbidden       Kind = "forbidden"
	Conflict        Kind = "conflict"
	Internal        Kind = "internal"
)

const (
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const internalMessage = "Internal server error"

// Error is a domain failure with a machine readable code and a message that
// is safe to show to the client. Err keeps the cause for logs only.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Extensions is picked up by the GraphQL executor and rendered as
// `extensions` of the response error.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func InvalidErr(msg string) *Error {
	return &Error{Kind: Invalid, Code: CodeBadUserInput, Message: msg}
}

func NotFoundErr(code, msg string) *Error {
	return &Error{Kind: NotFound, Code: code, Message: msg}
}

func UnauthenticatedErr(msg string) *Error {
	return &Error{Kind: Unauthenticated, Code: CodeUnauthenticated, Message: msg}
}

func ForbiddenErr(msg string) *Error {
	return &Error{Kind: Forbidden, Code: CodeForbidden, Message: msg}
}

func ConflictErr(code, msg string) *Error {
	return &Error{Kind: Conflict, Code: code, Message: msg}
}

// Wrap hides err behind a generic internal error. Domain errors pass through.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	return &Error{Kind: Internal, Code: CodeInternal, Message: internalMessage, Err: err}
}

func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return Internal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func PublicMessage(err error) string {
	if ae, ok := As(err); ok && ae.Kind != Internal {
		return ae.Message
	}
	return internalMessage
}

func CodeOf(err error) string {
	if ae, ok := As(err); ok {
		return ae.Code
	}
	return CodeInternal
}
