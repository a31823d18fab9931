// Package context carries request-scoped values (request id, logger, caller
// identity) between the HTTP layer and the services.
package context

import (
	"context"
	"log/slog"

	"staffhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyIdentity is the key for the authenticated caller identity.
	KeyIdentity ContextKey = "identity"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity stores the caller identity on the echo context and on the
// request context.
func SetIdentity(c echo.Context, identity service.Identity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(c echo.Context) (service.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(service.Identity)

	return identity, ok
}

// WithIdentity returns a new context with the caller identity.
func WithIdentity(ctx context.Context, identity service.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext returns the caller identity stored on ctx.
func GetIdentityFromContext(ctx context.Context) (service.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(service.Identity)

	return identity, ok
}
