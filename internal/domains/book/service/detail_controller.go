package service

import (
	"context"
	"sync"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/book/repository"
	"libreria-storefront/internal/domains/session"
	"libreria-storefront/pkg/logger"
)

// Mode is the detail view state.
type Mode string

const (
	ModeViewing   Mode = "viewing"
	ModeEditing   Mode = "editing"
	ModeSaving    Mode = "saving"
	ModeDeleting  Mode = "deleting"
	ModeLoadError Mode = "load-error"
)

// DetailController coordinates the book detail workflow: load, edit, save,
// delete. One instance per mounted view.
//
// While a save or delete is in flight the controller is inert: no new
// transition is accepted until the remote call completes. A call that
// completes after Close never writes back into the controller.
type DetailController struct {
	repo repository.RepositoryInterface
	gate *session.Gate

	mu      sync.Mutex
	mode    Mode
	book    *model.Book
	draft   model.EditDraft
	loading bool
	deleted bool
	closed  bool
}

// NewDetailController builds a controller with no book yet; call Load.
func NewDetailController(repo repository.RepositoryInterface, gate *session.Gate) *DetailController {
	return &DetailController{repo: repo, gate: gate, mode: ModeViewing}
}

// NewDetailControllerWith reuses a book passed from navigation, skipping
// the initial fetch.
func NewDetailControllerWith(repo repository.RepositoryInterface, gate *session.Gate, b model.Book) *DetailController {
	return &DetailController{repo: repo, gate: gate, mode: ModeViewing, book: &b}
}

// Load fetches the book by id. model.ErrBookNotFound tells the caller to
// navigate back to the catalog root.
func (c *DetailController) Load(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ErrControllerClosed
	}
	if c.loading || c.mode == ModeSaving || c.mode == ModeDeleting {
		c.mu.Unlock()
		return model.ErrBusy
	}
	c.loading = true
	c.mu.Unlock()

	b, err := c.repo.FetchByID(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if c.closed {
		return err
	}
	if err != nil {
		c.mode = ModeLoadError
		logger.Error("failed to load book", err)
		return err
	}

	c.book = b
	c.mode = ModeViewing
	return nil
}

// Book returns the canonical book, if loaded.
func (c *DetailController) Book() (model.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.book == nil {
		return model.Book{}, false
	}
	return *c.book, true
}

func (c *DetailController) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Draft returns the working draft while edit mode is active.
func (c *DetailController) Draft() (model.EditDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeEditing && c.mode != ModeSaving {
		return model.EditDraft{}, false
	}
	return c.draft, true
}

// Deleted reports that the book was removed; the caller navigates to the
// catalog root.
func (c *DetailController) Deleted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleted
}

// CanEdit reports whether edit and delete actions may be offered at all.
// Non-admins never see them; this is presentation, the remote service is
// the final authority.
func (c *DetailController) CanEdit(ctx context.Context) bool {
	return c.gate.IsAdmin(ctx)
}

// StartEdit enters edit mode, seeding the draft from the canonical book.
func (c *DetailController) StartEdit(ctx context.Context) error {
	if !c.gate.IsAdmin(ctx) {
		return session.ErrForbidden
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return model.ErrControllerClosed
	}
	if c.mode == ModeSaving || c.mode == ModeDeleting {
		return model.ErrBusy
	}
	if c.mode != ModeViewing || c.book == nil {
		return model.ErrNotEditing
	}

	c.draft = model.DraftOf(*c.book)
	c.mode = ModeEditing
	return nil
}

// SetDraft replaces the working draft with the latest form values.
func (c *DetailController) SetDraft(d model.EditDraft) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return model.ErrControllerClosed
	}
	if c.mode == ModeSaving || c.mode == ModeDeleting {
		return model.ErrBusy
	}
	if c.mode != ModeEditing {
		return model.ErrNotEditing
	}

	c.draft = d
	return nil
}

// Save sends the draft to the book service. On success the canonical book
// is replaced with the service's returned representation, never the local
// draft. On failure the draft is retained and edit mode resumes.
func (c *DetailController) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ErrControllerClosed
	}
	if c.mode == ModeSaving || c.mode == ModeDeleting {
		c.mu.Unlock()
		return model.ErrBusy
	}
	if c.mode != ModeEditing || c.book == nil {
		c.mu.Unlock()
		return model.ErrNotEditing
	}

	id := c.book.ID
	req := c.draft.UpdateRequest()
	c.mode = ModeSaving
	c.mu.Unlock()

	updated, err := c.repo.Update(ctx, id, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// The view is gone; drop the result.
		return err
	}
	if err != nil {
		c.mode = ModeEditing
		return err
	}

	c.book = updated
	c.mode = ModeViewing
	return nil
}

// Cancel discards the draft unconditionally and returns to viewing.
func (c *DetailController) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return model.ErrControllerClosed
	}
	if c.mode == ModeSaving || c.mode == ModeDeleting {
		return model.ErrBusy
	}
	if c.mode != ModeEditing {
		return model.ErrNotEditing
	}

	c.draft = model.EditDraft{}
	c.mode = ModeViewing
	return nil
}

// Delete removes the book after an explicit confirmation gesture. An
// unconfirmed call does nothing. On success Deleted() turns true and the
// caller navigates away; on failure the book is unchanged and viewing
// resumes.
func (c *DetailController) Delete(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if !c.gate.IsAdmin(ctx) {
		return session.ErrForbidden
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.ErrControllerClosed
	}
	if c.mode == ModeSaving || c.mode == ModeDeleting {
		c.mu.Unlock()
		return model.ErrBusy
	}
	if c.book == nil {
		c.mu.Unlock()
		return model.ErrBookNotFound
	}

	id := c.book.ID
	c.mode = ModeDeleting
	c.mu.Unlock()

	err := c.repo.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return err
	}
	if err != nil {
		c.mode = ModeViewing
		return err
	}

	c.deleted = true
	c.mode = ModeViewing
	return nil
}

// Close tears the controller down. In-flight calls may still complete but
// their results are discarded.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
