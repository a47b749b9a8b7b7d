package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/testdrivenio/flask-spa-auth/internal/session"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.FindByCredentials(req.Username, req.Password)
	if err != nil {
		// Wrong credentials are a normal outcome for the SPA login form,
		// not an error status. No cookie is issued.
		c.JSON(http.StatusOK, gin.H{"login": false})
		return
	}

	sessionID, err := h.sessions.Issue(
		c.Request.Context(),
		user.ID,
		session.Fingerprint(c.Request),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	session.SetCookie(c.Writer, sessionID, h.expiry(), h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{"login": true})
}
