package middleware

import (
	"context"
	"net/http"
	"strings"

	"product-api/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (model.Identity, bool)
}

type contextKey string

const identityContextKey contextKey = "auth_identity"

// AuthMiddleware gates protected routes on a bearer token. It holds no state
// across requests; each request is judged purely on its Authorization header.
type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeUnauthorized(w, "No token provided")
			return
		}

		identity, ok := m.verifier.Verify(token)
		if !ok {
			writeUnauthorized(w, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}

// extractBearerToken returns "" for a missing header or a malformed scheme;
// both cases are treated the same as no token at all.
func extractBearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}

	return strings.TrimSpace(header[7:])
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, model.ErrorResponse{Error: message})
}
