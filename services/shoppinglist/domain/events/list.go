package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the shopping-list context.
const (
	TopicListCreated    = "shopping_list.created"
	TopicListCheckedOut = "shopping_list.checked_out"
)

// ListCreatedEvent is published after a new ShoppingList is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicListCreated).
type ListCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ListID     uuid.UUID `json:"list_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ListCheckedOutEvent is published after a ShoppingList transitions to CLOSED.
type ListCheckedOutEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ListID     uuid.UUID `json:"list_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
