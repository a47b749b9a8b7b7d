package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/testdrivenio/flask-spa-auth/internal/middleware"
	"github.com/testdrivenio/flask-spa-auth/internal/session"
	"github.com/testdrivenio/flask-spa-auth/internal/users"
)

type Handler struct {
	users      users.Store
	sessions   *session.Manager
	cookieOpts session.CookieOptions
}

func NewHandler(
	store users.Store,
	sessions *session.Manager,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		users:      store,
		sessions:   sessions,
		cookieOpts: cookieOpts,
	}
}

// RegisterRoutes wires the public endpoints. The protected ones are
// grouped behind the auth middleware in app wiring.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/getsession", h.GetSession)
	r.POST("/api/login", h.Login)
}

// GetSession reports whether the request carries a live session. It never
// errors: no or invalid cookie simply means not logged in.
func (h *Handler) GetSession(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		c.JSON(http.StatusOK, gin.H{"login": false})
		return
	}

	_, err = h.sessions.Resolve(
		c.Request.Context(),
		cookie.Value,
		session.Fingerprint(c.Request),
	)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"login": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"login": true})
}

// Data returns the authenticated user's name.
func (h *Handler) Data(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"login": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": identity.Username})
}

// Logout destroys the server-side session and clears the cookie.
func (h *Handler) Logout(c *gin.Context) {
	// Destroy is idempotent; a best-effort delete is enough here.
	if cookie, err := c.Request.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request.Context(), cookie.Value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
			return
		}
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{"logout": true})
}

func (h *Handler) expiry() time.Time {
	return time.Now().Add(h.sessions.TTL())
}
