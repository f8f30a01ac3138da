package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/shoppinglist/domain"
)

// Status is the lifecycle state of a shopping list.
// The only legal transition is StatusOpen → StatusClosed, exactly once.
type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

// ListProduct is the read model for a product that is a member of a list.
// It is a snapshot of the catalog row at read time; the association itself
// carries no attributes beyond the two foreign keys.
type ListProduct struct {
	ID          uuid.UUID
	Name        string
	Price       int64 // minor currency units
	Quantity    int
	Description string
}

// ShoppingList is the core aggregate for this bounded context.
// OwnerID is set at creation and never changes; Products holds the current
// membership set (loaded eagerly on reads that need it).
type ShoppingList struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID // tenant scope — always filter by this in queries
	Name      ListName
	Status    Status
	ClosedAt  *time.Time // set iff Status == StatusClosed
	CreatedAt time.Time
	Products  []ListProduct
}

// NewShoppingList constructs an open, empty list owned by ownerID with a
// generated ID and current timestamp.
func NewShoppingList(ownerID uuid.UUID, name ListName) (*ShoppingList, error) {
	return &ShoppingList{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Status:    StatusOpen,
		CreatedAt: time.Now().UTC(),
		Products:  []ListProduct{},
	}, nil
}

// OwnedBy reports whether userID is the list's owner.
func (l *ShoppingList) OwnedBy(userID uuid.UUID) bool {
	return l.OwnerID == userID
}

// Closed reports whether the list has been checked out.
func (l *ShoppingList) Closed() bool {
	return l.Status == StatusClosed
}

// Contains reports whether productID is currently a member of the list.
func (l *ShoppingList) Contains(productID uuid.UUID) bool {
	for _, p := range l.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Close transitions the list OPEN → CLOSED, stamping closedAt.
// Returns ErrListAlreadyClosed when the list is already closed; the
// transition happens at most once and is never reversed.
func (l *ShoppingList) Close(closedAt time.Time) error {
	if l.Closed() {
		return domain.ErrListAlreadyClosed
	}
	l.Status = StatusClosed
	at := closedAt.UTC()
	l.ClosedAt = &at
	return nil
}
