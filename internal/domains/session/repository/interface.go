package repository

import (
	"context"

	"libreria-storefront/internal/domains/session"
)

// RepositoryInterface is the remote auth service contract.
type RepositoryInterface interface {
	// SignUp creates an account. A duplicate username comes back as an
	// *session.AuthError with KindAlreadyExists.
	SignUp(ctx context.Context, req session.SignUpRequest) (*session.Account, error)

	// SignIn exchanges credentials for the account identity.
	SignIn(ctx context.Context, username, password string) (*session.Account, error)
}
