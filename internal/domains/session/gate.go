package session

import (
	"context"

	"libreria-storefront/pkg/token"
)

// Gate resolves the current session for consumers. It is read-only: the
// Store is mutated only through the sign-in/sign-out service.
//
// The gate runs on the client side of the trust boundary. Hiding admin
// actions behind IsAdmin is presentation, not enforcement; the gateway
// re-checks the role on mutating routes and the remote book service
// remains the final authority.
type Gate struct {
	store  Store
	tokens *token.Manager
}

func NewGate(store Store, tokens *token.Manager) *Gate {
	return &Gate{store: store, tokens: tokens}
}

// Current returns the active session, or false for anonymous. A missing,
// expired or malformed token is treated identically to "absent".
func (g *Gate) Current(ctx context.Context) (Session, bool) {
	raw, ok := g.store.Token(ctx)
	if !ok || raw == "" {
		return Session{}, false
	}

	claims, err := g.tokens.Parse(raw)
	if err != nil {
		return Session{}, false
	}

	role := Role(claims.Role)
	if !role.IsValid() {
		return Session{}, false
	}

	return Session{Name: claims.Name, Role: role, City: claims.City}, true
}

// IsAdmin reports whether a session is present and carries the admin role.
func (g *Gate) IsAdmin(ctx context.Context) bool {
	s, ok := g.Current(ctx)
	return ok && s.IsAdmin()
}

// Require returns the current session or ErrUnauthenticated. Callers map
// the error to a redirect-to-login instead of performing the gated action.
func (g *Gate) Require(ctx context.Context) (Session, error) {
	s, ok := g.Current(ctx)
	if !ok {
		return Session{}, ErrUnauthenticated
	}
	return s, nil
}
