package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/shared"
	"libreria-storefront/pkg/token"
)

type fakeRepo struct {
	mu          sync.Mutex
	byID        map[string]model.Book
	updated     *model.Book
	updateErr   error
	deleteErr   error
	lastUpdate  model.UpdateRequest
	updateCalls int
	deleteCalls int
	blockCh     chan struct{}
}

func (f *fakeRepo) FetchAll(ctx context.Context) ([]model.Book, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) FetchByID(ctx context.Context, id string) (*model.Book, error) {
	f.mu.Lock()
	b, ok := f.byID[id]
	f.mu.Unlock()
	if !ok {
		return nil, model.ErrBookNotFound
	}
	return &b, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, req model.UpdateRequest) (*model.Book, error) {
	f.mu.Lock()
	f.updateCalls++
	f.lastUpdate = req
	blockCh := f.blockCh
	f.mu.Unlock()

	if blockCh != nil {
		<-blockCh
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b := *f.updated
	return &b, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	f.mu.Unlock()
	return f.deleteErr
}

func gateWithRole(t *testing.T, role string) *session.Gate {
	t.Helper()
	tokens := token.NewManager("test-secret", time.Hour)
	store := session.NewMemoryStore()
	signed, err := tokens.Generate("pier", role, "Madrid")
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), signed))
	return session.NewGate(store, tokens)
}

func adminGate(t *testing.T) *session.Gate {
	return gateWithRole(t, "admin")
}

func anonGate() *session.Gate {
	tokens := token.NewManager("test-secret", time.Hour)
	return session.NewGate(session.NewMemoryStore(), tokens)
}

func testBook() model.Book {
	return model.Book{
		ID:          "42",
		Title:       "El Quijote",
		Author:      "Cervantes",
		Description: "Clásico",
		Price:       decimal.NewFromFloat(19.90),
		Genre:       "Fantasía",
	}
}

func editingController(t *testing.T, repo *fakeRepo) *DetailController {
	t.Helper()
	ctrl := NewDetailControllerWith(repo, adminGate(t), testBook())
	require.NoError(t, ctrl.StartEdit(context.Background()))
	return ctrl
}

func TestLoadNotFoundSignalsCatalogRedirect(t *testing.T) {
	repo := &fakeRepo{byID: map[string]model.Book{}}
	ctrl := NewDetailController(repo, anonGate())

	err := ctrl.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrBookNotFound)
	assert.Equal(t, ModeLoadError, ctrl.Mode())
	assert.Equal(t, "/", shared.OutcomeNavigateCatalog.Path())
}

func TestLoadSuccess(t *testing.T) {
	repo := &fakeRepo{byID: map[string]model.Book{"42": testBook()}}
	ctrl := NewDetailController(repo, anonGate())

	require.NoError(t, ctrl.Load(context.Background(), "42"))

	b, ok := ctrl.Book()
	require.True(t, ok)
	assert.Equal(t, "El Quijote", b.Title)
	assert.Equal(t, ModeViewing, ctrl.Mode())
}

func TestStartEditRequiresAdmin(t *testing.T) {
	repo := &fakeRepo{}

	ctrl := NewDetailControllerWith(repo, anonGate(), testBook())
	assert.ErrorIs(t, ctrl.StartEdit(context.Background()), session.ErrForbidden)

	ctrl = NewDetailControllerWith(repo, gateWithRole(t, "user"), testBook())
	assert.ErrorIs(t, ctrl.StartEdit(context.Background()), session.ErrForbidden)
	assert.False(t, ctrl.CanEdit(context.Background()))

	ctrl = NewDetailControllerWith(repo, adminGate(t), testBook())
	assert.True(t, ctrl.CanEdit(context.Background()))
	require.NoError(t, ctrl.StartEdit(context.Background()))
	assert.Equal(t, ModeEditing, ctrl.Mode())

	draft, ok := ctrl.Draft()
	require.True(t, ok)
	assert.Equal(t, "El Quijote", draft.Title)
	assert.Equal(t, "19.9", draft.PriceText)
}

func TestSaveReplacesBookWithServiceRepresentation(t *testing.T) {
	// The service normalizes the title; the canonical book must carry the
	// service's version, not the local draft.
	serviceBook := testBook()
	serviceBook.Title = "EL QUIJOTE (ed. 2024)"
	serviceBook.Price = decimal.NewFromFloat(21.00)

	repo := &fakeRepo{updated: &serviceBook}
	ctrl := editingController(t, repo)

	require.NoError(t, ctrl.SetDraft(model.EditDraft{
		Title: "El Quijote ed 2024", Author: "Cervantes", PriceText: "21.00",
	}))
	require.NoError(t, ctrl.Save(context.Background()))

	assert.Equal(t, ModeViewing, ctrl.Mode())
	b, _ := ctrl.Book()
	assert.Equal(t, "EL QUIJOTE (ed. 2024)", b.Title)
	assert.True(t, decimal.NewFromFloat(21.00).Equal(b.Price))

	_, ok := ctrl.Draft()
	assert.False(t, ok, "draft is discarded after a successful save")
}

func TestSaveFailureRetainsDraftAndBook(t *testing.T) {
	repo := &fakeRepo{updateErr: shared.NewRemoteError("REMOTE", "update rejected")}
	ctrl := editingController(t, repo)

	edited := model.EditDraft{Title: "Cambiado", Author: "Otro", PriceText: "abc"}
	require.NoError(t, ctrl.SetDraft(edited))

	err := ctrl.Save(context.Background())
	require.Error(t, err)
	assert.Equal(t, "update rejected", err.Error())

	// No partial commit: edit mode resumes, draft retained, book unchanged.
	assert.Equal(t, ModeEditing, ctrl.Mode())
	draft, ok := ctrl.Draft()
	require.True(t, ok)
	assert.Equal(t, edited, draft)

	b, _ := ctrl.Book()
	assert.Equal(t, testBook().Title, b.Title)
	assert.True(t, testBook().Price.Equal(b.Price))
}

func TestSaveParsesUnparsablePriceAsZero(t *testing.T) {
	saved := testBook()
	repo := &fakeRepo{updated: &saved}
	ctrl := editingController(t, repo)

	require.NoError(t, ctrl.SetDraft(model.EditDraft{Title: "t", Author: "a", PriceText: "abc"}))
	require.NoError(t, ctrl.Save(context.Background()))

	// The request that reached the service carried a zero price.
	assert.Equal(t, 1, repo.updateCalls)
	assert.True(t, decimal.Zero.Equal(repo.lastUpdate.Price), "committed price is %s", repo.lastUpdate.Price)
}

func TestCancelRestoresCanonicalBook(t *testing.T) {
	repo := &fakeRepo{}
	ctrl := editingController(t, repo)

	require.NoError(t, ctrl.SetDraft(model.EditDraft{Title: "Descartado", PriceText: "1"}))
	require.NoError(t, ctrl.Cancel())

	assert.Equal(t, ModeViewing, ctrl.Mode())
	b, _ := ctrl.Book()
	assert.Equal(t, testBook(), b)

	_, ok := ctrl.Draft()
	assert.False(t, ok)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	repo := &fakeRepo{}
	ctrl := NewDetailControllerWith(repo, adminGate(t), testBook())

	require.NoError(t, ctrl.Delete(context.Background(), false))

	assert.Equal(t, 0, repo.deleteCalls, "unconfirmed delete never reaches the service")
	assert.False(t, ctrl.Deleted())
}

func TestDeleteSuccessSignalsNavigation(t *testing.T) {
	repo := &fakeRepo{}
	ctrl := NewDetailControllerWith(repo, adminGate(t), testBook())

	require.NoError(t, ctrl.Delete(context.Background(), true))

	assert.Equal(t, 1, repo.deleteCalls)
	assert.True(t, ctrl.Deleted())
}

func TestDeleteFailureReturnsToViewing(t *testing.T) {
	repo := &fakeRepo{deleteErr: shared.NewRemoteError("REMOTE", "delete rejected")}
	ctrl := NewDetailControllerWith(repo, adminGate(t), testBook())

	err := ctrl.Delete(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, "delete rejected", err.Error())

	assert.Equal(t, ModeViewing, ctrl.Mode())
	assert.False(t, ctrl.Deleted())
	b, _ := ctrl.Book()
	assert.Equal(t, testBook(), b)
}

func TestActionsInertWhileSaving(t *testing.T) {
	blockCh := make(chan struct{})
	saved := testBook()
	repo := &fakeRepo{updated: &saved, blockCh: blockCh}
	ctrl := editingController(t, repo)

	done := make(chan error, 1)
	go func() { done <- ctrl.Save(context.Background()) }()

	for {
		repo.mu.Lock()
		calls := repo.updateCalls
		repo.mu.Unlock()
		if calls > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	assert.ErrorIs(t, ctrl.Save(context.Background()), model.ErrBusy)
	assert.ErrorIs(t, ctrl.Cancel(), model.ErrBusy)
	assert.ErrorIs(t, ctrl.Delete(context.Background(), true), model.ErrBusy)
	assert.ErrorIs(t, ctrl.SetDraft(model.EditDraft{}), model.ErrBusy)

	close(blockCh)
	require.NoError(t, <-done)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestCloseDiscardsLateSave(t *testing.T) {
	blockCh := make(chan struct{})
	serviceBook := testBook()
	serviceBook.Title = "Tarde"
	repo := &fakeRepo{updated: &serviceBook, blockCh: blockCh}
	ctrl := editingController(t, repo)

	done := make(chan error, 1)
	go func() { done <- ctrl.Save(context.Background()) }()

	for {
		repo.mu.Lock()
		calls := repo.updateCalls
		repo.mu.Unlock()
		if calls > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}

	ctrl.Close()
	close(blockCh)
	<-done

	// The late completion must not have written into the controller.
	b, _ := ctrl.Book()
	assert.Equal(t, testBook().Title, b.Title)

	assert.ErrorIs(t, ctrl.StartEdit(context.Background()), model.ErrControllerClosed)
}
