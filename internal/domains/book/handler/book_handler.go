package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/internal/domains/book/repository"
	"libreria-storefront/internal/domains/book/service"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/middleware"
	"libreria-storefront/internal/shared/response"
	"libreria-storefront/pkg/token"
)

// Handler serves the book detail view and its admin mutations. Each
// mutating request drives a fresh detail controller, the same state
// machine the embedded client runs per view mount.
type Handler struct {
	repo   repository.RepositoryInterface
	tokens *token.Manager
}

func NewHandler(repo repository.RepositoryInterface, tokens *token.Manager) *Handler {
	return &Handler{repo: repo, tokens: tokens}
}

// updateRequest mirrors the edit form: precio arrives as typed text and
// commits as zero when unparsable.
type updateRequest struct {
	Title       string `json:"titulo" binding:"required"`
	Author      string `json:"autor" binding:"required"`
	Description string `json:"descripcion"`
	PriceText   string `json:"precio"`
}

// GetByID - GET /libros/:id
func (h *Handler) GetByID(c *gin.Context) {
	gate := middleware.GateFor(c, h.tokens)
	ctrl := service.NewDetailController(h.repo, gate)
	defer ctrl.Close()

	if err := ctrl.Load(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}

	book, _ := ctrl.Book()
	response.Success(c, http.StatusOK, gin.H{
		"libro":  book,
		"imagen": book.ImagePath(),
	})
}

// Update - PUT /libros/:id (admin)
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	gate := middleware.GateFor(c, h.tokens)
	ctrl := service.NewDetailController(h.repo, gate)
	defer ctrl.Close()

	ctx := c.Request.Context()
	if err := ctrl.Load(ctx, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	if err := ctrl.StartEdit(ctx); err != nil {
		h.renderError(c, err)
		return
	}
	if err := ctrl.SetDraft(model.EditDraft{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		PriceText:   req.PriceText,
	}); err != nil {
		h.renderError(c, err)
		return
	}
	if err := ctrl.Save(ctx); err != nil {
		h.renderError(c, err)
		return
	}

	book, _ := ctrl.Book()
	response.Success(c, http.StatusOK, book)
}

// Delete - DELETE /libros/:id?confirmado=true (admin)
func (h *Handler) Delete(c *gin.Context) {
	if c.Query("confirmado") != "true" {
		response.BadRequest(c, "explicit confirmation required")
		return
	}

	gate := middleware.GateFor(c, h.tokens)
	ctrl := service.NewDetailController(h.repo, gate)
	defer ctrl.Close()

	ctx := c.Request.Context()
	if err := ctrl.Load(ctx, c.Param("id")); err != nil {
		h.renderError(c, err)
		return
	}
	if err := ctrl.Delete(ctx, true); err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"eliminado": true,
		"redirect":  shared.OutcomeNavigateCatalog.Path(),
	})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var remoteErr *shared.RemoteError

	switch {
	case errors.Is(err, model.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success":  false,
			"error":    gin.H{"code": "NOT_FOUND", "message": err.Error()},
			"redirect": shared.OutcomeNavigateCatalog.Path(),
		})
	case errors.As(err, &remoteErr):
		// Remote failures pass through verbatim; no retry.
		response.BadGateway(c, remoteErr.Message)
	default:
		response.InternalServerError(c, err.Error())
	}
}
