package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bookmodel "libreria-storefront/internal/domains/book/model"
	bookrepo "libreria-storefront/internal/domains/book/repository"
	"libreria-storefront/internal/domains/cart/repository"
	"libreria-storefront/internal/domains/cart/service"
	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/middleware"
	"libreria-storefront/internal/shared/response"
	"libreria-storefront/pkg/token"
)

// Handler serves add-to-cart. Each request drives a fresh cart
// controller bound to the caller's session.
type Handler struct {
	repo     repository.RepositoryInterface
	bookRepo bookrepo.RepositoryInterface
	tokens   *token.Manager
}

func NewHandler(repo repository.RepositoryInterface, bookRepo bookrepo.RepositoryInterface, tokens *token.Manager) *Handler {
	return &Handler{repo: repo, bookRepo: bookRepo, tokens: tokens}
}

type addItemRequest struct {
	BookID   string `json:"libroId" binding:"required"`
	Quantity int    `json:"cantidad"`
}

// AddItem - POST /carrito/items
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	// Anonymous callers fail before any remote service is contacted.
	gate := middleware.GateFor(c, h.tokens)
	if _, err := gate.Require(ctx); err != nil {
		h.renderError(c, err)
		return
	}

	book, err := h.bookRepo.FetchByID(ctx, req.BookID)
	if err != nil {
		if errors.Is(err, bookmodel.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.BadGateway(c, err.Error())
		return
	}

	ctrl := service.NewController(h.repo, gate)
	defer ctrl.Close()
	ctrl.SetQuantity(req.Quantity)

	confirmation, err := ctrl.Submit(ctx, *book)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, confirmation)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var remoteErr *shared.RemoteError

	switch {
	case errors.Is(err, session.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"error":    gin.H{"code": "UNAUTHENTICATED", "message": err.Error()},
			"redirect": shared.OutcomeRedirectLogin.Path(),
		})
	case errors.As(err, &remoteErr):
		response.BadGateway(c, remoteErr.Message)
	default:
		response.InternalServerError(c, err.Error())
	}
}
