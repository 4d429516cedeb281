package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/response"
)

// HTTPRepository talks to the remote auth service.
type HTTPRepository struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPRepository(baseURL string, timeout time.Duration) RepositoryInterface {
	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *HTTPRepository) SignUp(ctx context.Context, req session.SignUpRequest) (*session.Account, error) {
	return r.post(ctx, "/auth/signup", map[string]string{
		"usuario":    req.Username,
		"contrasena": req.Password,
		"ciudad":     req.City,
	})
}

func (r *HTTPRepository) SignIn(ctx context.Context, username, password string) (*session.Account, error) {
	return r.post(ctx, "/auth/signin", map[string]string{
		"usuario":    username,
		"contrasena": password,
	})
}

func (r *HTTPRepository) post(ctx context.Context, path string, payload interface{}) (*session.Account, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	if !envelope.Success {
		return nil, classify(envelope.Error)
	}

	var account session.Account
	if err := json.Unmarshal(envelope.Data, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account: %w", err)
	}
	return &account, nil
}

// classify maps the service's structured error code to an auth error kind.
// The message match on "ya existe" is kept only as a fallback for auth
// service deployments that predate error codes.
func classify(e *response.Error) error {
	if e == nil {
		return shared.NewRemoteError("UNKNOWN", "")
	}

	switch e.Code {
	case "CONFLICT", "ALREADY_EXISTS":
		return &session.AuthError{Kind: session.KindAlreadyExists, Message: e.Message}
	case "UNAUTHORIZED", "INVALID_CREDENTIALS":
		return &session.AuthError{Kind: session.KindInvalidCredentials, Message: e.Message}
	}

	if strings.Contains(e.Message, "ya existe") {
		return &session.AuthError{Kind: session.KindAlreadyExists, Message: e.Message}
	}

	return shared.NewRemoteError(e.Code, e.Message)
}
