package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrEmailTaken indicates another account already uses the email address.
	ErrEmailTaken = errors.New("email is already taken")

	// ErrInvalidCredentials indicates an email/password pair that does not
	// match any account. Deliberately does not reveal which part was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
