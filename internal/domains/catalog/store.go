package catalog

import (
	"context"
	"sync"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/book/repository"
	"libreria-storefront/pkg/logger"
)

// State is the catalog fetch state. The three states are mutually
// exclusive.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// Store holds the fetched catalog and the active category selection. It
// issues exactly one fetch-all per activation and never retries on its
// own; after a failure the error state is terminal until the consumer
// re-activates.
//
// The ready list keeps the service's order; the Store never sorts it.
type Store struct {
	repo repository.RepositoryInterface

	mu         sync.Mutex
	state      State
	books      []model.Book
	errMessage string
	selection  Selection
	activating bool
	closed     bool
}

func NewStore(repo repository.RepositoryInterface) *Store {
	return &Store{
		repo:      repo,
		state:     StateLoading,
		selection: DefaultSelection,
	}
}

// Activate fetches the catalog. A second activation while one is in
// flight is rejected; a completed activation (ready or error) may be
// re-triggered by calling Activate again.
func (s *Store) Activate(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.ErrControllerClosed
	}
	if s.activating {
		s.mu.Unlock()
		return model.ErrBusy
	}
	s.activating = true
	s.state = StateLoading
	s.mu.Unlock()

	books, err := s.repo.FetchAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activating = false
	if s.closed {
		// View torn down mid-fetch; discard the result.
		return err
	}
	if err != nil {
		s.state = StateError
		s.errMessage = err.Error()
		logger.Error("failed to fetch catalog", err)
		return err
	}

	s.books = books
	s.state = StateReady
	return nil
}

// Snapshot returns the current state, the books (when ready) and the
// error message (when failed).
func (s *Store) Snapshot() (State, []model.Book, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.booksCopy(), s.errMessage
}

// Books returns the fetched catalog; ok is false unless the store is
// ready.
func (s *Store) Books() ([]model.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return nil, false
	}
	return s.booksCopy(), true
}

// Select changes the active category. The derived shelf is recomputed on
// the next Filtered call; there is no debounce.
func (s *Store) Select(sel Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = sel
}

// Selection returns the active category.
func (s *Store) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// ResetSelection returns the store to the home shelf, as navigation to
// the home view does.
func (s *Store) ResetSelection() {
	s.Select(DefaultSelection)
}

// Filtered derives the shelf for the active selection from the fetched
// books. Before the catalog is ready it derives from an empty list.
func (s *Store) Filtered() []model.Book {
	s.mu.Lock()
	books := s.books
	sel := s.selection
	s.mu.Unlock()

	return DeriveFiltered(books, sel)
}

// Close tears the store down; a fetch completing afterwards is discarded.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Store) booksCopy() []model.Book {
	if s.books == nil {
		return nil
	}
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}
