package session

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

const fingerprintVersion = "v1:"

// Fingerprint derives a stable client marker from request headers. It is
// the binding context for strong session protection: if it changes
// between requests for the same session, the session is dropped.
//
// The client IP is deliberately excluded; mobile networks and VPNs rotate
// it mid-session and would log users out spuriously.
func Fingerprint(r *http.Request) string {
	components := []string{
		r.UserAgent(),
		r.Header.Get("Accept-Language"),
		r.Header.Get("Accept-Encoding"),
	}

	filtered := make([]string, 0, len(components))
	for _, c := range components {
		if c != "" {
			filtered = append(filtered, c)
		}
	}

	// Pipe delimiter keeps ["ab","c"] and ["a","bc"] distinct.
	sum := sha256.Sum256([]byte(strings.Join(filtered, "|")))

	return fingerprintVersion + hex.EncodeToString(sum[:16])
}
