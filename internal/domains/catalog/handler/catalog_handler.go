package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-storefront/internal/domains/book/repository"
	"libreria-storefront/internal/domains/catalog"
	"libreria-storefront/internal/shared/response"
)

// Handler serves the catalog views. Each listing request drives a fresh
// catalog store, the same state machine the embedded client runs per view
// mount; caching lives in the repository decorator underneath it.
type Handler struct {
	repo repository.RepositoryInterface
}

func NewHandler(repo repository.RepositoryInterface) *Handler {
	return &Handler{repo: repo}
}

// List - GET /catalogo?categoria=
func (h *Handler) List(c *gin.Context) {
	store := catalog.NewStore(h.repo)
	defer store.Close()

	if err := store.Activate(c.Request.Context()); err != nil {
		response.BadGateway(c, err.Error())
		return
	}
	store.Select(catalog.ParseSelection(c.Query("categoria")))

	response.Success(c, http.StatusOK, gin.H{
		"categoria": store.Selection(),
		"libros":    store.Filtered(),
	})
}

// Categories - GET /catalogo/categorias
func (h *Handler) Categories(c *gin.Context) {
	shelves := []catalog.Selection{catalog.SelectionOfertas, catalog.SelectionTodas, catalog.SelectionMasPopulares}
	response.Success(c, http.StatusOK, gin.H{
		"estanterias": shelves,
		"generos":     catalog.Genres,
	})
}
