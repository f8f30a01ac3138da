package app

import (
	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/pkg/cache"
	"github.com/ghuser/listkeeper/pkg/database"
	"github.com/ghuser/listkeeper/pkg/events"
	"github.com/ghuser/listkeeper/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route-registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "adding product", "list_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
	Tokens   *auth.TokenManager // nil in worker process (no HTTP surface)
}
