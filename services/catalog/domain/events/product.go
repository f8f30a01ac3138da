package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicProductCreated is the message topic for product creation events.
const TopicProductCreated = "product.created"

// ProductCreatedEvent is published when a new product enters the catalog.
type ProductCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ProductID  uuid.UUID `json:"product_id"`
	Name       string    `json:"name"`
	Price      int64     `json:"price"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}
