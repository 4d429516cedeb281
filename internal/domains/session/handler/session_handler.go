package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/domains/session/repository"
	"libreria-storefront/internal/domains/session/service"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/middleware"
	"libreria-storefront/internal/shared/response"
	"libreria-storefront/pkg/cache"
	"libreria-storefront/pkg/token"
)

// clientIDHeader identifies the device holding the session. Sign-in mints
// one when the client sends none.
const clientIDHeader = "X-Client-ID"

// Handler serves account creation and the session lifecycle. Requests
// authenticate with the signed token they hold; the token is also kept in
// a Redis-backed store keyed per client, so sign-out revokes the stored
// copy server-side.
type Handler struct {
	repo   repository.RepositoryInterface
	tokens *token.Manager
	cache  cache.Cache
	ttl    time.Duration
}

func NewHandler(repo repository.RepositoryInterface, tokens *token.Manager, c cache.Cache, ttl time.Duration) *Handler {
	return &Handler{repo: repo, tokens: tokens, cache: c, ttl: ttl}
}

func (h *Handler) storeFor(c *gin.Context) (session.Store, string) {
	clientID := c.GetHeader(clientIDHeader)
	if clientID == "" {
		clientID = uuid.New().String()
	}
	return session.NewRedisStore(h.cache, clientID, h.ttl), clientID
}

// SignUp - POST /auth/signup
func (h *Handler) SignUp(c *gin.Context) {
	var req session.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	store, _ := h.storeFor(c)
	svc := service.NewService(h.repo, store, h.tokens)

	account, err := svc.SignUp(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, account)
}

// SignIn - POST /auth/login
func (h *Handler) SignIn(c *gin.Context) {
	var req session.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	store, clientID := h.storeFor(c)
	svc := service.NewService(h.repo, store, h.tokens)

	current, signed, err := svc.SignIn(c.Request.Context(), req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token":     signed,
		"usuario":   current,
		"clienteId": clientID,
	})
}

// SignOut - POST /auth/logout
// The client discards its token; the stored copy is cleared so the
// session is also gone server-side.
func (h *Handler) SignOut(c *gin.Context) {
	store, _ := h.storeFor(c)
	svc := service.NewService(h.repo, store, h.tokens)

	if err := svc.SignOut(c.Request.Context()); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sesionCerrada": true})
}

// Current - GET /auth/session
func (h *Handler) Current(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"error":    gin.H{"code": "UNAUTHENTICATED", "message": session.ErrUnauthenticated.Error()},
			"redirect": shared.OutcomeRedirectLogin.Path(),
		})
		return
	}

	response.Success(c, http.StatusOK, s)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var (
		validationErrs validation.Errors
		authErr        *session.AuthError
		remoteErr      *shared.RemoteError
	)

	switch {
	case errors.Is(err, session.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.As(err, &validationErrs):
		response.BadRequest(c, validationErrs.Error())
	case errors.As(err, &authErr):
		if authErr.Kind == session.KindInvalidCredentials {
			response.Unauthorized(c, authErr.Message)
			return
		}
		response.BadRequest(c, authErr.Message)
	case errors.As(err, &remoteErr):
		response.BadGateway(c, remoteErr.Message)
	default:
		response.InternalServerError(c, err.Error())
	}
}
