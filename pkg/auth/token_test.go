package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeRevocationList is an in-memory RevocationList (no Redis required).
type fakeRevocationList struct {
	revoked map[string]bool
}

func newFakeRevocationList() *fakeRevocationList {
	return &fakeRevocationList{revoked: make(map[string]bool)}
}

func (l *fakeRevocationList) Revoke(_ context.Context, jti string, _ time.Duration) error {
	l.revoked[jti] = true
	return nil
}

func (l *fakeRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	return l.revoked[jti], nil
}

var testSigningKey = []byte("test-signing-key-must-be-32-bytes")

func TestTokenManager_IssueVerify(t *testing.T) {
	ctx := context.Background()
	m := NewTokenManager(testSigningKey, time.Hour, newFakeRevocationList())
	userID := uuid.New()

	token, exp, err := m.Issue(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if remaining := time.Until(exp); remaining < 59*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", remaining)
	}

	claims, err := m.Verify(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected UserID %v, got %v", userID, claims.UserID)
	}
	if claims.TokenID == "" {
		t.Fatal("expected a jti on the claims")
	}
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	ctx := context.Background()
	m := NewTokenManager(testSigningKey, time.Hour, nil)
	userID := uuid.New()

	t1, _, _ := m.Issue(userID)
	t2, _, _ := m.Issue(userID)

	c1, err := m.Verify(ctx, t1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := m.Verify(ctx, t2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatal("expected unique jti per issued token")
	}
}

func TestTokenManager_Verify_Rejections(t *testing.T) {
	ctx := context.Background()
	m := NewTokenManager(testSigningKey, time.Hour, nil)

	t.Run("malformed token", func(t *testing.T) {
		if _, err := m.Verify(ctx, "not-a-token"); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		forged := NewTokenManager([]byte("another-signing-key-32-bytes!!!!"), time.Hour, nil)
		token, _, _ := forged.Issue(uuid.New())
		if _, err := m.Verify(ctx, token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewTokenManager(testSigningKey, -time.Minute, nil)
		token, _, _ := short.Issue(uuid.New())
		if _, err := m.Verify(ctx, token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid, got %v", err)
		}
	})
}

func TestTokenManager_Revoke(t *testing.T) {
	ctx := context.Background()
	revocation := newFakeRevocationList()
	m := NewTokenManager(testSigningKey, time.Hour, revocation)
	userID := uuid.New()

	token, _, err := m.Issue(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := m.Verify(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.Revoke(ctx, claims); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Verify(ctx, token); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked after revoke, got %v", err)
	}

	// Other tokens of the same user stay valid; revocation is per-jti.
	other, _, _ := m.Issue(userID)
	if _, err := m.Verify(ctx, other); err != nil {
		t.Fatalf("unexpected error for unrevoked token: %v", err)
	}
}

func TestTokenManager_Revoke_ExpiredTokenIsNoop(t *testing.T) {
	ctx := context.Background()
	revocation := newFakeRevocationList()
	m := NewTokenManager(testSigningKey, time.Hour, revocation)

	claims := &Claims{UserID: uuid.New(), TokenID: "stale", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := m.Revoke(ctx, claims); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if revocation.revoked["stale"] {
		t.Fatal("expected no revocation entry for an already-expired token")
	}
}
