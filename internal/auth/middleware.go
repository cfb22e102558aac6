package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

type contextKey string

const (
	claimsKey  contextKey = "auth_claims"
	subjectKey contextKey = "auth_subject"
)

// ClaimsFromContext extracts JWT claims from request context.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// SubjectFromContext extracts the subject ID string from request context.
func SubjectFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey).(string)
	return sub
}

// AuthenticateCustomer returns middleware that validates customer bearer
// tokens. Mutating operations sit behind this so an unresolved identity is
// rejected before the balance engine is ever reached.
func AuthenticateCustomer(jwtMgr *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := extractAndValidate(r, jwtMgr)
			if err != nil {
				http.Error(w, `{"code":"UNAUTHORIZED","message":"`+err.Error()+`"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractAndValidate(r *http.Request, jwtMgr *JWTManager) (*Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, fmt.Errorf("invalid Authorization format")
	}

	return jwtMgr.ValidateToken(parts[1])
}
