package middlewarex

import (
	"context"
	"net/http"
	"strings"

	"bidhub/pkg/contextx"
)

const (
	SessionAnonymous = "anonymous"
	SessionSignedIn  = "signed-in"
)

// Session copies a bearer token from the Authorization header into the
// request context. The token is not verified.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := contextx.WithSessionToken(r.Context(), contextx.SessionToken(strings.TrimSpace(token)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionKind labels a request for logs and metrics without exposing the
// token itself.
func SessionKind(ctx context.Context) string {
	if _, err := contextx.SessionTokenFromContext(ctx); err != nil {
		return SessionAnonymous
	}

	return SessionSignedIn
}
