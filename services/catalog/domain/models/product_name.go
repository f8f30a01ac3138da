package models

import (
	"fmt"
	"unicode/utf8"
)

// ProductName is a value object representing a valid product name.
// Length is measured in characters, not bytes, so the limit agrees with the
// boundary's max=255 validation for multibyte names.
type ProductName string

const (
	minProductNameLength = 1
	maxProductNameLength = 255
)

// NewProductName constructs a valid ProductName or returns an error if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	length := utf8.RuneCountInString(s)
	if length < minProductNameLength {
		return "", fmt.Errorf("product name must be at least %d character", minProductNameLength)
	}
	if length > maxProductNameLength {
		return "", fmt.Errorf("product name must not exceed %d characters", maxProductNameLength)
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}
