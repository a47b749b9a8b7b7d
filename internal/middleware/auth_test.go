package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testdrivenio/flask-spa-auth/internal/session"
	"github.com/testdrivenio/flask-spa-auth/internal/users"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *session.Manager) {
	t.Helper()

	manager := session.NewManager(session.NewMemoryStore(), time.Hour, true)
	store := users.NewInMemory(
		users.Record{ID: 1, Username: "test", Password: "test"},
	)

	return NewAuthMiddleware(manager, store), manager
}

func echoIdentity(t *testing.T, called *bool) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true

		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok, "identity missing from context")
		assert.Equal(t, 1, identity.UserID)
		assert.Equal(t, "test", identity.Username)

		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthNoCookie(t *testing.T) {
	auth, _ := newAuthFixture(t)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/data", nil)

	auth.RequireAuth(echoIdentity(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"login":false}`, rec.Body.String())
	assert.False(t, called, "wrapped handler must not run")
}

func TestRequireAuthUnknownSession(t *testing.T) {
	auth, _ := newAuthFixture(t)

	called := false
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/data", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "forged"})

	auth.RequireAuth(echoIdentity(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthValidSession(t *testing.T) {
	auth, manager := newAuthFixture(t)

	req := httptest.NewRequest("GET", "/api/data", nil)
	req.Header.Set("User-Agent", "test-client")

	sid, err := manager.Issue(context.Background(), 1, session.Fingerprint(req))
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})

	called := false
	rec := httptest.NewRecorder()
	auth.RequireAuth(echoIdentity(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireAuthFingerprintMismatch(t *testing.T) {
	auth, manager := newAuthFixture(t)

	login := httptest.NewRequest("POST", "/api/login", nil)
	login.Header.Set("User-Agent", "browser-a")

	sid, err := manager.Issue(context.Background(), 1, session.Fingerprint(login))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/data", nil)
	req.Header.Set("User-Agent", "browser-b")
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})

	called := false
	rec := httptest.NewRecorder()
	auth.RequireAuth(echoIdentity(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuthDanglingUser(t *testing.T) {
	// A session whose user id no longer resolves is rejected, not served.
	manager := session.NewManager(session.NewMemoryStore(), time.Hour, false)
	auth := NewAuthMiddleware(manager, users.NewInMemory())

	sid, err := manager.Issue(context.Background(), 99, "")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/data", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sid})

	rec := httptest.NewRecorder()
	auth.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("wrapped handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIdentityFromContextMissing(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
}
