package repository

import (
	"context"

	"libreria-storefront/internal/domains/cart/model"
)

// RepositoryInterface is the remote cart service contract.
type RepositoryInterface interface {
	// AddItem puts (bookId, quantity) into the user's cart.
	AddItem(ctx context.Context, item model.CartItem) error
}
