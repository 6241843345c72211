package auth

import "errors"

// Kind classifies an authentication/authorization failure.
type Kind int

const (
	// Unauthorized means the caller's identity could not be established:
	// missing or malformed header, bad credentials, bad signature, expiry.
	Unauthorized Kind = iota + 1

	// Forbidden means the identity was established but the specific action
	// is disallowed: missing filter data or a failed authorization check.
	Forbidden
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Error is the normalized authentication/authorization failure. The cause
// chain accumulates context as the error crosses layers and renders as
// "outer -> inner -> ...", outermost message first.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + " -> " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

// NewUnauthorized wraps a pipeline failure into an Unauthorized error.
func NewUnauthorized(cause error) *Error {
	return &Error{Kind: Unauthorized, Message: "Unauthorized", Cause: cause}
}

// NewForbidden builds a fresh Forbidden error. Guards never wrap a prior
// auth error; the reason stands on its own.
func NewForbidden(reason string) *Error {
	return &Error{Kind: Forbidden, Message: "Unauthorized", Cause: errors.New(reason)}
}
