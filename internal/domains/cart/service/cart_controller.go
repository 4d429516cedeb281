package service

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	bookmodel "libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/cart/model"
	"libreria-storefront/internal/domains/cart/repository"
	"libreria-storefront/internal/domains/session"
)

// Controller manages the quantity selector and the add-to-cart
// submission for one book detail view.
//
// Quantity is clamped to [1, +inf): decrementing below 1 is a no-op, not
// an error. While a submission is in flight the controller is busy and a
// second submit is rejected, never fired twice.
type Controller struct {
	repo repository.RepositoryInterface
	gate *session.Gate

	mu       sync.Mutex
	quantity int
	busy     bool
	closed   bool
}

func NewController(repo repository.RepositoryInterface, gate *session.Gate) *Controller {
	return &Controller{repo: repo, gate: gate, quantity: 1}
}

func (c *Controller) Quantity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantity
}

// SetQuantity clamps to the minimum of 1.
func (c *Controller) SetQuantity(q int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q < 1 {
		q = 1
	}
	c.quantity = q
}

func (c *Controller) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantity++
}

func (c *Controller) Decrement() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quantity > 1 {
		c.quantity--
	}
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Submit sends the current quantity of the given book to the cart
// service.
//
// Anonymous sessions fail fast with session.ErrUnauthenticated before any
// network call; the caller redirects to login. On success the quantity
// resets to 1 and the confirmation carries the values actually submitted.
// On failure the quantity is left unchanged and the service's message is
// surfaced verbatim; there is no retry.
func (c *Controller) Submit(ctx context.Context, book bookmodel.Book) (*model.Confirmation, error) {
	if _, err := c.gate.Require(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, bookmodel.ErrControllerClosed
	}
	if c.busy {
		c.mu.Unlock()
		return nil, model.ErrSubmissionInFlight
	}
	c.busy = true
	quantity := c.quantity
	c.mu.Unlock()

	err := c.repo.AddItem(ctx, model.CartItem{BookID: book.ID, Quantity: quantity})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if c.closed {
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	c.quantity = 1
	return &model.Confirmation{
		Title:    book.Title,
		Quantity: quantity,
		Total:    book.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Close tears the controller down; a submission completing afterwards is
// discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
