package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "staffhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/employee", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := m.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return nil
	})(c)
	require.NoError(t, err)

	return rec, seen, &buf
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	rec, seen, buf := runRequestID(t, "client-id")

	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, buf.String(), "request_id=client-id")
	assert.Contains(t, buf.String(), "path=/employee")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	rec, seen, _ := runRequestID(t, "")

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_RejectsOversizedID(t *testing.T) {
	long := strings.Repeat("x", maxRequestIDLength+1)

	_, seen, _ := runRequestID(t, long)

	assert.NotEqual(t, long, seen)
	assert.NotEmpty(t, seen)
}
