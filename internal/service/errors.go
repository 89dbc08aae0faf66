package service

import "errors"

// ErrorKind classifies domain-rule violations so the transport layer can map
// them to protocol responses without parsing message strings.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindNotFound means the referenced id does not resolve to a visible entity.
	KindNotFound
	// KindConflict means a requested order value collides with an existing
	// non-deleted lesson of the same course.
	KindConflict
	// KindInvalidState means a precondition on the entity's current state is
	// violated (publish with no lessons, reorder count/membership mismatch).
	KindInvalidState
	// KindInvalidInput means the payload itself is malformed.
	KindInvalidInput
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func InvalidState(message string) error {
	return &Error{Kind: KindInvalidState, Message: message}
}

func InvalidInput(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// KindOf returns the domain kind of err, or KindUnknown for storage and other
// unclassified failures, which propagate to the caller as-is.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}

func IsInvalidState(err error) bool {
	return KindOf(err) == KindInvalidState
}
