package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/listkeeper/pkg/app"
	"github.com/ghuser/listkeeper/pkg/cache"
	"github.com/ghuser/listkeeper/pkg/config"
	"github.com/ghuser/listkeeper/pkg/database"
	"github.com/ghuser/listkeeper/pkg/events"
	"github.com/ghuser/listkeeper/pkg/logger"
	"github.com/ghuser/listkeeper/pkg/telemetry"
	productEvents "github.com/ghuser/listkeeper/services/catalog/domain/events"
	listEvents "github.com/ghuser/listkeeper/services/shoppinglist/domain/events"
	listModels "github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	subscriptions := []struct {
		topic   string
		handler func(context.Context, *message.Message) error
	}{
		{listEvents.TopicListCreated, handleListCreated(a)},
		{listEvents.TopicListCheckedOut, handleListCheckedOut(a)},
		{productEvents.TopicProductCreated, handleProductCreated(a)},
	}

	topics := make([]string, 0, len(subscriptions))
	for _, sub := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, sub.topic, sub.handler)
		if err != nil {
			return err
		}
		topics = append(topics, sub.topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string, errCh <-chan error) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(sub.topic, errCh)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleListCreated returns a handler for shopping_list.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent reads are served from cache.
func handleListCreated(a *app.Application) func(context.Context, *message.Message) error {
	listCache := cache.NewListCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ListCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listCache.Set(ctx, &cache.CachedList{
			ID:        evt.ListID,
			OwnerID:   evt.OwnerID,
			Name:      evt.Name,
			Status:    string(listModels.StatusOpen),
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for shopping_list.created",
				"list_id", evt.ListID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"list_id", evt.ListID, "owner_id", evt.OwnerID)
		}

		return nil
	}
}

// handleListCheckedOut returns a handler for shopping_list.checked_out events.
// Drops the cached read model; the next read repopulates it with CLOSED state.
func handleListCheckedOut(a *app.Application) func(context.Context, *message.Message) error {
	listCache := cache.NewListCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listEvents.ListCheckedOutEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := listCache.Delete(ctx, evt.OwnerID, evt.ListID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for shopping_list.checked_out",
				"list_id", evt.ListID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache invalidated",
				"list_id", evt.ListID, "owner_id", evt.OwnerID)
		}

		return nil
	}
}

// handleProductCreated returns a handler for product.created events.
// Warms the catalog read-model cache.
func handleProductCreated(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt productEvents.ProductCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := productCache.Set(ctx, &cache.CachedProduct{
			ID:        evt.ProductID,
			Name:      evt.Name,
			Price:     evt.Price,
			Quantity:  evt.Quantity,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			a.Logger.WarnContext(ctx, "cache warm failed for product.created",
				"product_id", evt.ProductID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "product_id", evt.ProductID)
		}

		return nil
	}
}
