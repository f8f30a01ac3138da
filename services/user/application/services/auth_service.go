package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/listkeeper/pkg/auth"
	userdomain "github.com/ghuser/listkeeper/services/user/domain"
	"github.com/ghuser/listkeeper/services/user/domain/models"
	"github.com/ghuser/listkeeper/services/user/domain/repositories"
)

// AuthService handles account registration and credential authentication.
// Token issuance is delegated to the shared TokenManager.
type AuthService struct {
	repo   repositories.UserRepository
	tokens *auth.TokenManager
}

// NewAuthService returns an AuthService wired with the given repository and
// token manager.
func NewAuthService(repo repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new account with an Argon2id-hashed password.
// Returns ErrEmailTaken when the email is already registered.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	salt, err := auth.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash := auth.HashPassword([]byte(password), salt)

	user := models.NewUser(name, email, hash, salt)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Login verifies the email/password pair and issues an access token.
// Returns ErrInvalidCredentials on any mismatch; unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, time.Time, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("find user: %w", err)
	}

	if !auth.VerifyPassword([]byte(password), user.PasswordSalt, user.PasswordHash) {
		return nil, "", time.Time{}, userdomain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("issue token: %w", err)
	}
	return user, token, expiresAt, nil
}

// Logout revokes the presented token so it can no longer authenticate
// requests, even before its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
