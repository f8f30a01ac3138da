package models

import (
	"fmt"
	"unicode/utf8"
)

// ListName is a value object representing a valid shopping-list name.
// Length is measured in characters, not bytes, so the limit agrees with the
// boundary's max=255 validation for multibyte names.
type ListName string

const (
	minListNameLength = 1
	maxListNameLength = 255
)

// NewListName constructs a valid ListName or returns an error if constraints are violated.
func NewListName(s string) (ListName, error) {
	length := utf8.RuneCountInString(s)
	if length < minListNameLength {
		return "", fmt.Errorf("shopping list name must be at least %d character", minListNameLength)
	}
	if length > maxListNameLength {
		return "", fmt.Errorf("shopping list name must not exceed %d characters", maxListNameLength)
	}
	return ListName(s), nil
}

// String returns the underlying string value.
func (n ListName) String() string {
	return string(n)
}
