package repository

import (
	"context"

	"libreria-storefront/internal/domains/book/model"
)

// RepositoryInterface is the remote book service contract. List order is
// service-defined; the storefront never re-sorts the catalog implicitly.
type RepositoryInterface interface {
	FetchAll(ctx context.Context) ([]model.Book, error)

	// FetchByID returns model.ErrBookNotFound when the id is unknown.
	FetchByID(ctx context.Context, id string) (*model.Book, error)

	// Update returns the service's representation of the updated book,
	// which replaces the local one.
	Update(ctx context.Context, id string, req model.UpdateRequest) (*model.Book, error)

	Delete(ctx context.Context, id string) error
}
