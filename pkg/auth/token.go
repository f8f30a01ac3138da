// Package auth provides bearer-token authentication: HS256 access tokens,
// a Redis-backed revocation list for logout, and the RequireAuth middleware.
//
// The signing key must be at least 32 random bytes in production:
//
//	openssl rand -base64 32
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sentinel errors for token verification. Use errors.Is() to check these.
var (
	// ErrTokenInvalid indicates the token failed signature, format, or expiry checks.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenRevoked indicates the token's jti is on the revocation list.
	ErrTokenRevoked = errors.New("token revoked")
)

// Claims is the verified content of an access token.
type Claims struct {
	UserID    uuid.UUID
	TokenID   string
	ExpiresAt time.Time
}

// TokenManager issues and verifies HS256 access tokens. Each token carries a
// unique jti so individual tokens can be revoked on logout.
type TokenManager struct {
	signingKey []byte
	accessTTL  time.Duration
	revocation RevocationList // nil disables revocation checks
}

// NewTokenManager returns a TokenManager signing with signingKey.
// Tokens expire after accessTTL. revocation may be nil (no logout support).
func NewTokenManager(signingKey []byte, accessTTL time.Duration, revocation RevocationList) *TokenManager {
	return &TokenManager{
		signingKey: signingKey,
		accessTTL:  accessTTL,
		revocation: revocation,
	}
}

// Issue creates a signed access token for userID.
// Returns the compact token string and its expiry time.
func (m *TokenManager) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// AccessTTL returns the configured token lifetime.
func (m *TokenManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// Verify parses and validates tokenStr, returning its claims.
// Returns ErrTokenInvalid for malformed/expired/forged tokens and
// ErrTokenRevoked for tokens revoked via Revoke.
func (m *TokenManager) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	var rc jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &rc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.signingKey, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(rc.Subject)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if m.revocation != nil {
		revoked, err := m.revocation.IsRevoked(ctx, rc.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	var exp time.Time
	if rc.ExpiresAt != nil {
		exp = rc.ExpiresAt.Time
	}
	return &Claims{UserID: userID, TokenID: rc.ID, ExpiresAt: exp}, nil
}

// Revoke puts the token's jti on the revocation list until the token would
// have expired anyway. No-op when no revocation list is configured.
func (m *TokenManager) Revoke(ctx context.Context, claims *Claims) error {
	if m.revocation == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return m.revocation.Revoke(ctx, claims.TokenID, ttl)
}
