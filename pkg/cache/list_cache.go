package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ListCacheTTL is the time-to-live for cached shopping lists.
	ListCacheTTL = 24 * time.Hour

	listCacheKeyPrefix = "shopping_list"
)

// CachedList is the denormalized shopping-list read model stored in Redis.
// Membership is not cached — the product set is re-evaluated on every read
// from Postgres; this entry only covers the list header.
type CachedList struct {
	ID        uuid.UUID  `json:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ListCache provides structured read/write operations for shopping-list
// cache entries. Keys are scoped by the owner's user ID to prevent
// cross-tenant data leakage. Key format: "shopping_list:{ownerID}:{listID}"
type ListCache struct {
	client *RedisClient
}

// NewListCache creates a new ListCache backed by the given RedisClient.
func NewListCache(r *RedisClient) *ListCache {
	return &ListCache{client: r}
}

// Get retrieves a cached list by owner + list ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListCache) Get(ctx context.Context, ownerID, listID uuid.UUID) (*CachedList, error) {
	key := c.key(ownerID, listID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	oid, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	cl := &CachedList{
		ID:        id,
		OwnerID:   oid,
		Name:      vals["name"],
		Status:    vals["status"],
		CreatedAt: createdAt,
	}
	if v := vals["closed_at"]; v != "" {
		closedAt, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("cache parse closed_at: %w", err)
		}
		cl.ClosedAt = &closedAt
	}
	return cl, nil
}

// Set writes a cached list as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListCache) Set(ctx context.Context, list *CachedList) error {
	closedAt := ""
	if list.ClosedAt != nil {
		closedAt = list.ClosedAt.UTC().Format(time.RFC3339Nano)
	}

	key := c.key(list.OwnerID, list.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", list.ID.String(),
		"owner_id", list.OwnerID.String(),
		"name", list.Name,
		"status", list.Status,
		"closed_at", closedAt,
		"created_at", list.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ListCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached list.
func (c *ListCache) Delete(ctx context.Context, ownerID, listID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(ownerID, listID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "shopping_list:{ownerID}:{listID}"
func (c *ListCache) key(ownerID, listID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", listCacheKeyPrefix, ownerID, listID)
}
