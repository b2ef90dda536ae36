package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// AdminSubjectKey is the context key for the authenticated admin subject
	AdminSubjectKey ContextKey = "admin_subject"

	// SessionCookie carries the signed admin session
	SessionCookie = "admin_session"
)

// TokenVerifier validates a session token and returns its subject
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// sessionToken reads the session from the cookie, falling back to a bearer header
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// RequireAdmin rejects requests without a valid admin session
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				response.Unauthorized(w, "Admin session required")
				return
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), AdminSubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminSubject extracts the admin subject from the request context
func GetAdminSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(AdminSubjectKey).(string)
	return subject, ok
}
