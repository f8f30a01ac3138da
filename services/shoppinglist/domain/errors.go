package domain

import "errors"

// Sentinel errors for the shopping-list domain. Use errors.Is() to check these.
//
// The lifecycle, ownership, and membership sentinels carry the exact sentence
// shown to API clients; callers assert on the message, so these deliberately
// keep their capitalised, user-facing form.
var (
	// ErrListNotFound indicates the requested shopping list does not exist.
	ErrListNotFound = errors.New("shopping list not found")

	// ErrInvalidListName indicates the list name violates domain constraints.
	ErrInvalidListName = errors.New("invalid shopping list name")

	// ErrNotOwner indicates the authenticated user does not own the list.
	// Ownership is rejected before any lifecycle or membership check so a
	// non-owner learns nothing about the list's state from the error.
	ErrNotOwner = errors.New("You do not have permission to access this shopping list")

	// ErrListClosed indicates a membership mutation was attempted on a closed list.
	ErrListClosed = errors.New("This shopping list is closed")

	// ErrListAlreadyClosed indicates checkout was called on an already-closed list.
	ErrListAlreadyClosed = errors.New("This shopping list is already closed")

	// ErrProductAlreadyOnList indicates the product is already a member of the list.
	ErrProductAlreadyOnList = errors.New("This product is already on the shopping list")

	// ErrProductNotOnList indicates the product is not a member of the list.
	ErrProductNotOnList = errors.New("This product isn't on the shopping list")
)
