package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"libreria-storefront/internal/domains/cart/model"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/response"
)

// HTTPRepository talks to the remote cart service.
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

func (r *HTTPRepository) AddItem(ctx context.Context, item model.CartItem) error {
	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode cart item: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/carrito/items", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build cart request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cart service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var envelope response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode cart response: %w", err)
	}

	if !envelope.Success {
		if envelope.Error != nil {
			return shared.NewRemoteError(envelope.Error.Code, envelope.Error.Message)
		}
		return shared.NewRemoteError("UNKNOWN", "")
	}
	return nil
}
