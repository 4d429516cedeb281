package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/response"
)

// HTTPRepository talks to the remote book service.
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

func (r *HTTPRepository) FetchAll(ctx context.Context) ([]model.Book, error) {
	envelope, err := r.do(ctx, http.MethodGet, "/libros", nil)
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := json.Unmarshal(envelope.Data, &books); err != nil {
		return nil, fmt.Errorf("failed to decode book list: %w", err)
	}
	return books, nil
}

func (r *HTTPRepository) FetchByID(ctx context.Context, id string) (*model.Book, error) {
	envelope, err := r.do(ctx, http.MethodGet, "/libros/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeBook(envelope.Data)
}

func (r *HTTPRepository) Update(ctx context.Context, id string, req model.UpdateRequest) (*model.Book, error) {
	envelope, err := r.do(ctx, http.MethodPut, "/libros/"+id, req)
	if err != nil {
		return nil, err
	}
	return decodeBook(envelope.Data)
}

func (r *HTTPRepository) Delete(ctx context.Context, id string) error {
	_, err := r.do(ctx, http.MethodDelete, "/libros/"+id, nil)
	return err
}

func (r *HTTPRepository) do(ctx context.Context, method, path string, payload interface{}) (*response.Envelope, error) {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("book service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, model.ErrBookNotFound
	}

	var envelope response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode book service response: %w", err)
	}

	if !envelope.Success {
		if envelope.Error != nil && envelope.Error.Code == "NOT_FOUND" {
			return nil, model.ErrBookNotFound
		}
		if envelope.Error != nil {
			return nil, shared.NewRemoteError(envelope.Error.Code, envelope.Error.Message)
		}
		return nil, shared.NewRemoteError("UNKNOWN", "")
	}

	return &envelope, nil
}

func decodeBook(data json.RawMessage) (*model.Book, error) {
	if len(data) == 0 {
		return nil, model.ErrBookNotFound
	}

	var b model.Book
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to decode book: %w", err)
	}
	return &b, nil
}
