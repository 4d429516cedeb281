package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"libreria-storefront/internal/domains/session"
	"libreria-storefront/internal/shared"
	"libreria-storefront/internal/shared/response"
	"libreria-storefront/pkg/token"
)

const (
	sessionKey      = "session"
	sessionTokenKey = "session_token"
)

// Session resolves the caller's session from the Authorization header and
// stores it in the gin context. A missing or malformed token leaves the
// request anonymous; it never aborts.
func Session(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			// Fail-safe: treat as anonymous.
			c.Next()
			return
		}

		role := session.Role(claims.Role)
		if !role.IsValid() {
			c.Next()
			return
		}

		c.Set(sessionKey, session.Session{Name: claims.Name, Role: role, City: claims.City})
		c.Set(sessionTokenKey, parts[1])
		c.Next()
	}
}

// GateFor builds a session gate bound to the caller's token, so the
// per-request controllers resolve the same session the middleware did.
func GateFor(c *gin.Context, tokens *token.Manager) *session.Gate {
	store := session.NewMemoryStore()
	if raw := c.GetString(sessionTokenKey); raw != "" {
		_ = store.Save(c.Request.Context(), raw)
	}
	return session.NewGate(store, tokens)
}

// CurrentSession reads the session placed by the Session middleware.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// RequireSession aborts anonymous requests with a redirect-to-login hint.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"error":    gin.H{"code": "UNAUTHENTICATED", "message": session.ErrUnauthenticated.Error()},
				"redirect": shared.OutcomeRedirectLogin.Path(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests whose session does not carry the admin
// role. The UI hides admin actions client-side; this is the server-side
// check behind it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok || !s.IsAdmin() {
			response.Forbidden(c, session.ErrForbidden.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
