package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ghuser/listkeeper/pkg/httpx"
	"github.com/ghuser/listkeeper/pkg/logger"
)

// claimsKey holds the verified token claims so logout can revoke the exact token.
const claimsKey contextKey = "token_claims"

// RequireAuth is a chi middleware that enforces bearer-token authentication.
// It reads the Authorization header, verifies the token (signature, expiry,
// revocation), and injects the UserID into the request context.
// Returns 401 Unauthorized if the token is missing, invalid, or revoked.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireAuth(tokens *TokenManager, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, ok := bearerToken(r)
			if !ok {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			claims, err := tokens.Verify(r.Context(), tokenStr)
			if err != nil {
				log.WarnContext(r.Context(), "rejected bearer token", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = withClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromCtx returns the verified token claims set by RequireAuth.
func ClaimsFromCtx(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrUserIDNotFound
	}
	return claims, nil
}

func withClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
