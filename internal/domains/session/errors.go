package session

import "errors"

var (
	// ErrUnauthenticated is returned when a gated action is attempted with
	// no session. Callers redirect to login instead of surfacing a message.
	ErrUnauthenticated = errors.New("no active session")

	// ErrForbidden is returned when a non-admin reaches an admin-only
	// action. The UI never offers the action to non-admins, so hitting
	// this means the call bypassed the view layer.
	ErrForbidden = errors.New("forbidden: admin role required")

	// ErrUsernameTaken is the user-facing duplicate-username error.
	ErrUsernameTaken = errors.New("el nombre de usuario ya existe")
)

// Kind classifies auth service failures structurally, so callers never
// have to pattern-match error messages.
type Kind string

const (
	KindAlreadyExists      Kind = "already_exists"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindUnknown            Kind = "unknown"
)

// AuthError is a classified failure from the remote auth service.
type AuthError struct {
	Kind    Kind
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
