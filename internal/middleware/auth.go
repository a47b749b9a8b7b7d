package middleware

import (
	"context"
	"net/http"

	"github.com/testdrivenio/flask-spa-auth/internal/session"
	"github.com/testdrivenio/flask-spa-auth/internal/users"
)

// Identity is the resolved caller for one request. Constructed by the
// auth middleware, never mutated afterwards.
type Identity struct {
	UserID   int
	Username string
}

// unexported, collision-proof context key
type identityContextKeyType struct{}

var identityKey = identityContextKeyType{}

// IdentityFromContext extracts the authenticated identity from context.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

type AuthMiddleware struct {
	Sessions *session.Manager
	Users    users.Store
}

func NewAuthMiddleware(sessions *session.Manager, store users.Store) *AuthMiddleware {
	return &AuthMiddleware{
		Sessions: sessions,
		Users:    store,
	}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			unauthenticated(w)
			return
		}

		// 2. Resolve session (expiry and strong protection apply here)
		userID, err := a.Sessions.Resolve(
			r.Context(),
			cookie.Value,
			session.Fingerprint(r),
		)
		if err != nil {
			unauthenticated(w)
			return
		}

		// 3. The session must still point at a live user record
		user, err := a.Users.FindByID(userID)
		if err != nil {
			unauthenticated(w)
			return
		}

		// 4. Attach identity to context
		ctx := context.WithValue(r.Context(), identityKey, Identity{
			UserID:   user.ID,
			Username: user.Username,
		})

		// 5. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"login":false}`))
}
