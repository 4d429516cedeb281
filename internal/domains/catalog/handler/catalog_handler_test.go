package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libreria-storefront/internal/domains/book/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBookRepo struct {
	books []model.Book
	err   error
}

func (f *fakeBookRepo) FetchAll(ctx context.Context) ([]model.Book, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func (f *fakeBookRepo) FetchByID(ctx context.Context, id string) (*model.Book, error) {
	return nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) Update(ctx context.Context, id string, req model.UpdateRequest) (*model.Book, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func catalogRouter(repo *fakeBookRepo) *gin.Engine {
	r := gin.New()
	h := NewHandler(repo)
	r.GET("/catalogo", h.List)
	r.GET("/catalogo/categorias", h.Categories)
	return r
}

type listBody struct {
	Success bool `json:"success"`
	Data    struct {
		Categoria string       `json:"categoria"`
		Libros    []model.Book `json:"libros"`
	} `json:"data"`
}

func TestListFiltersByCategory(t *testing.T) {
	repo := &fakeBookRepo{books: []model.Book{
		{ID: "1", Genre: "Fantasía", OnSale: true},
		{ID: "2", Genre: "Terror"},
	}}

	w := httptest.NewRecorder()
	catalogRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo?categoria=Terror", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Terror", body.Data.Categoria)
	require.Len(t, body.Data.Libros, 1)
	assert.Equal(t, "2", body.Data.Libros[0].ID)
}

func TestListDefaultsToOfertas(t *testing.T) {
	repo := &fakeBookRepo{books: []model.Book{
		{ID: "1", OnSale: true},
		{ID: "2", OnSale: false},
	}}

	w := httptest.NewRecorder()
	catalogRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Ofertas", body.Data.Categoria)
	require.Len(t, body.Data.Libros, 1)
	assert.Equal(t, "1", body.Data.Libros[0].ID)
}

func TestListServiceFailure(t *testing.T) {
	repo := &fakeBookRepo{err: errors.New("connection refused")}

	w := httptest.NewRecorder()
	catalogRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestCategories(t *testing.T) {
	w := httptest.NewRecorder()
	catalogRouter(&fakeBookRepo{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogo/categorias", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Más populares")
	assert.Contains(t, w.Body.String(), "Fantasía")
}
