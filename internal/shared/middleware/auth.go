package middleware

import (
	"context"
	"net/http"
	"strings"

	"spendwise/internal/domain/policy"
)

const principalKey contextKey = "principal"

// TokenVerifier validates a bearer token and resolves the principal it
// identifies. Implemented by the Firebase client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*policy.Principal, error)
}

// Auth requires a valid bearer token and stores the resolved principal in
// the request context.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			principal, err := verifier.VerifyIDToken(r.Context(), token)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the authenticated principal, or nil when the request
// did not pass the Auth middleware.
func PrincipalFrom(ctx context.Context) *policy.Principal {
	p, _ := ctx.Value(principalKey).(*policy.Principal)
	return p
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
