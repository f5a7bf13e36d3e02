package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/coursehub/pkg/utils"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type ContextKey string

const PrincipalKey ContextKey = "principal"

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// PrincipalFromContext returns nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, ok := ctx.Value(PrincipalKey).(Principal)
	if !ok {
		return nil
	}
	return &p
}

func principalFromRequest(v TokenValidator, r *http.Request) (Principal, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Principal{}, false
	}
	claims, err := v.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return Principal{}, false
	}
	p, err := claims.Principal()
	if err != nil {
		return Principal{}, false
	}
	return p, true
}

// Authenticate rejects requests without a valid bearer token.
func Authenticate(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principalFromRequest(v, r)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// Identify attaches the principal when a valid token is present and lets
// anonymous requests through.
func Identify(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p, ok := principalFromRequest(v, r); ok {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}
