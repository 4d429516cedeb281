package shared

import "fmt"

// RemoteError carries a remote service failure across the client boundary.
// The message is surfaced to the user verbatim; no retry is attempted.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// NewRemoteError wraps a service error payload.
func NewRemoteError(code, message string) *RemoteError {
	if message == "" {
		message = fmt.Sprintf("remote service error (%s)", code)
	}
	return &RemoteError{Code: code, Message: message}
}

// Outcome signals a navigation the caller must perform. Controllers never
// navigate themselves; they report the outcome alongside the error.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeRedirectLogin: a gated action was attempted anonymously.
	OutcomeRedirectLogin
	// OutcomeNavigateCatalog: the current view is gone (book deleted or
	// not found); return to the catalog root.
	OutcomeNavigateCatalog
)

// Path maps an outcome to the storefront route the view layer should
// navigate to.
func (o Outcome) Path() string {
	switch o {
	case OutcomeRedirectLogin:
		return "/login"
	case OutcomeNavigateCatalog:
		return "/"
	default:
		return ""
	}
}
