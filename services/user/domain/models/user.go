package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account aggregate. Passwords are stored as an Argon2id hash
// plus the per-user random salt; the plaintext never leaves the auth service.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
}

// NewUser constructs a User aggregate with generated ID and current timestamp.
// Credential material must already be hashed by the caller.
func NewUser(name, email string, passwordHash, passwordSalt []byte) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		PasswordSalt: passwordSalt,
		CreatedAt:    time.Now().UTC(),
	}
}
