package session

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStable(t *testing.T) {
	a := httptest.NewRequest("GET", "/", nil)
	a.Header.Set("User-Agent", "Mozilla/5.0")
	a.Header.Set("Accept-Language", "en-US")

	b := httptest.NewRequest("GET", "/", nil)
	b.Header.Set("User-Agent", "Mozilla/5.0")
	b.Header.Set("Accept-Language", "en-US")

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.True(t, strings.HasPrefix(Fingerprint(a), "v1:"))
}

func TestFingerprintChangesWithClient(t *testing.T) {
	a := httptest.NewRequest("GET", "/", nil)
	a.Header.Set("User-Agent", "Mozilla/5.0")

	b := httptest.NewRequest("GET", "/", nil)
	b.Header.Set("User-Agent", "curl/8.0")

	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintHeaderless(t *testing.T) {
	a := httptest.NewRequest("GET", "/", nil)
	b := httptest.NewRequest("GET", "/other", nil)

	// No headers at all still fingerprints consistently.
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
}
