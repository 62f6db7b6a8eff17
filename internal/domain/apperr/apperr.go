// Package apperr defines the closed set of business error kinds raised by the
// domain services. Boundaries decide how each kind is presented.
package apperr

import "errors"

// Kind identifies a business error variant.
type Kind int

const (
	KindUnknown Kind = iota
	// KindParentNotFound: the owning Client or Project does not exist.
	KindParentNotFound
	// KindDuplicateDescription: the description is already used under the same parent.
	KindDuplicateDescription
	// KindInvalidStatusCode: a persisted status code does not map to a known status.
	KindInvalidStatusCode
)

func (k Kind) String() string {
	switch k {
	case KindParentNotFound:
		return "parent_not_found"
	case KindDuplicateDescription:
		return "duplicate_description"
	case KindInvalidStatusCode:
		return "invalid_status_code"
	default:
		return "unknown"
	}
}

// Error is a tagged business error.
type Error struct {
	Kind    Kind
	Message string
}

// New returns an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is reports whether target is a bare kind marker (no message) of the same
// kind, or the very same error value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == e {
		return true
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Kind markers, usable with errors.Is against any error of the kind.
var (
	ErrParentNotFound       = &Error{Kind: KindParentNotFound}
	ErrDuplicateDescription = &Error{Kind: KindDuplicateDescription}
	ErrInvalidStatusCode    = &Error{Kind: KindInvalidStatusCode}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the message of the first *Error in err's chain, without
// any wrapping context, or err.Error() when there is none.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
