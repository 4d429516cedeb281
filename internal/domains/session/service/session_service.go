package service

import (
	"context"
	"errors"
	"fmt"

	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/domains/session/repository"
	"libreria-storefront/pkg/logger"
	"libreria-storefront/pkg/token"
)

// Service owns the session lifecycle: sign-up, sign-in, sign-out. It is
// the only writer of the session store.
type Service struct {
	repo   repository.RepositoryInterface
	store  session.Store
	tokens *token.Manager
}

func NewService(repo repository.RepositoryInterface, store session.Store, tokens *token.Manager) *Service {
	return &Service{repo: repo, store: store, tokens: tokens}
}

// SignUp validates the form and creates the account. A duplicate username
// is remapped to the user-facing session.ErrUsernameTaken.
func (s *Service) SignUp(ctx context.Context, req session.SignUpRequest) (*session.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.repo.SignUp(ctx, req)
	if err != nil {
		var authErr *session.AuthError
		if errors.As(err, &authErr) && authErr.Kind == session.KindAlreadyExists {
			return nil, session.ErrUsernameTaken
		}
		return nil, err
	}

	logger.Info("account created", map[string]interface{}{
		"usuario": account.Name,
		"ciudad":  account.City,
	})
	return account, nil
}

// SignIn exchanges credentials for a session token, stores it, and
// returns it so transport layers can hand it to the client.
func (s *Service) SignIn(ctx context.Context, req session.SignInRequest) (session.Session, string, error) {
	if err := req.Validate(); err != nil {
		return session.Session{}, "", err
	}

	account, err := s.repo.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		return session.Session{}, "", err
	}

	signed, err := s.tokens.Generate(account.Name, account.Role.String(), account.City)
	if err != nil {
		return session.Session{}, "", fmt.Errorf("failed to mint session token: %w", err)
	}

	if err := s.store.Save(ctx, signed); err != nil {
		return session.Session{}, "", fmt.Errorf("failed to persist session: %w", err)
	}

	current := session.Session{Name: account.Name, Role: account.Role, City: account.City}
	return current, signed, nil
}

// SignOut destroys the stored session. Signing out while anonymous is a
// no-op.
func (s *Service) SignOut(ctx context.Context) error {
	return s.store.Clear(ctx)
}
