package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/cart/model"
	"libreria-storefront/internal/shared/middleware"
	"libreria-storefront/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookRepo struct {
	mu    sync.Mutex
	book  *bookmodel.Book
	calls int
}

func (f *fakeBookRepo) FetchAll(ctx context.Context) ([]bookmodel.Book, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookRepo) FetchByID(ctx context.Context, id string) (*bookmodel.Book, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.book == nil {
		return nil, bookmodel.ErrBookNotFound
	}
	b := *f.book
	return &b, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, id string, req bookmodel.UpdateRequest) (*bookmodel.Book, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type fakeCartRepo struct {
	mu    sync.Mutex
	items []model.CartItem
}

func (f *fakeCartRepo) AddItem(ctx context.Context, item model.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, item)
	return nil
}

func cartRouter(tokens *token.Manager, h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Session(tokens))
	r.POST("/carrito/items", h.AddItem)
	return r
}

func postItem(t *testing.T, r *gin.Engine, payload, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/carrito/items", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAddItemAnonymousMakesNoRemoteCalls(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	bookRepo := &fakeBookRepo{book: &bookmodel.Book{ID: "7", Title: "Dune"}}
	cartRepo := &fakeCartRepo{}
	r := cartRouter(tokens, NewHandler(cartRepo, bookRepo, tokens))

	w := postItem(t, r, `{"libroId": "7", "cantidad": 2}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"/login"`)
	assert.Equal(t, 0, bookRepo.calls, "anonymous add must not reach the book service")
	assert.Empty(t, cartRepo.items)
}

func TestAddItemAuthenticated(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	bookRepo := &fakeBookRepo{book: &bookmodel.Book{ID: "7", Title: "Dune", Price: decimal.NewFromFloat(15.50)}}
	cartRepo := &fakeCartRepo{}
	r := cartRouter(tokens, NewHandler(cartRepo, bookRepo, tokens))

	signed, err := tokens.Generate("ana", "user", "Valencia")
	require.NoError(t, err)

	w := postItem(t, r, `{"libroId": "7", "cantidad": 2}`, signed)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
	require.Len(t, cartRepo.items, 1)
	assert.Equal(t, model.CartItem{BookID: "7", Quantity: 2}, cartRepo.items[0])
}

func TestAddItemQuantityClampedAtGateway(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	bookRepo := &fakeBookRepo{book: &bookmodel.Book{ID: "7", Title: "Dune"}}
	cartRepo := &fakeCartRepo{}
	r := cartRouter(tokens, NewHandler(cartRepo, bookRepo, tokens))

	signed, err := tokens.Generate("ana", "user", "Valencia")
	require.NoError(t, err)

	w := postItem(t, r, `{"libroId": "7", "cantidad": 0}`, signed)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, cartRepo.items, 1)
	assert.Equal(t, 1, cartRepo.items[0].Quantity)
}
