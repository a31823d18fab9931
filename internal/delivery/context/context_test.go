package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffhub/internal/domain/entity"
	"staffhub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestSetIdentity_VisibleOnBothContexts(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	identity := service.Identity{EmployeeID: 7, Name: "A", Role: entity.RoleHR, Email: "a@x.io"}

	_, ok := GetIdentity(c)
	require.False(t, ok)

	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Equal(t, identity, got)

	got, ok = GetIdentityFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetRequestIDFromContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", GetRequestIDFromContext(WithRequestID(context.Background(), "abc")))
}
