package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error leaving this package matches exactly one of them
// with errors.Is, and the HTTP layer maps the kind to a status code.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrBadRequest      = errors.New("bad request")
	ErrStorage         = errors.New("storage error")
	ErrInternal        = errors.New("internal error")
)

var (
	ErrInvalidCredentials      = newError(ErrUnauthenticated, "Invalid username or password")
	ErrUserAlreadyExists       = newError(ErrConflict, "Username or email already exists")
	ErrTokenIsExpiredOrInvalid = newError(ErrUnauthenticated, "Invalid or expired token")
	ErrTokenCreationFailed     = newError(ErrInternal, "token creation failed")
	ErrInvalidDataProvided     = newError(ErrBadRequest, "invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error carries a client-facing message together with its kind and the
// underlying cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Is lets a dynamically built error match the static sentinel with the same
// kind and message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// notFound reports a missing entity by name and id.
func notFound(entity string, id int64, cause error) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s with id %d not found", entity, id), Err: cause}
}

// badRequest wraps a validation failure so its text reaches the client. The
// cause stays in the chain but is not repeated by Error.
func badRequest(cause error) error {
	return &Error{Kind: ErrBadRequest, Message: cause.Error(), Err: cause}
}

// storageError hides the database failure behind the storage kind.
func storageError(cause error) error {
	return &Error{Kind: ErrStorage, Message: "Database error", Err: cause}
}

// PublicMessage returns the text safe to send to a client: the specific
// message for 4xx kinds and only the kind's text otherwise.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrStorage):
		return "Database error"
	case errors.Is(err, ErrInternal):
		return "Internal server error"
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	for _, kind := range clientKinds {
		if errors.Is(err, kind) {
			return err.Error()
		}
	}
	return "Internal server error"
}

var clientKinds = []error{ErrUnauthenticated, ErrForbidden, ErrNotFound, ErrConflict, ErrBadRequest}
