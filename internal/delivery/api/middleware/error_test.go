package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handleError(err error) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(discardLogger()).HandleHTTPError(err, c)

	return rec
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		notInBody  string
	}{
		{
			name:       "wrapped app error",
			err:        errors.Wrap(domainerrors.ErrEmployeeNotFound, "lookup"),
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"EMPLOYEE_NOT_FOUND"`,
		},
		{
			name:       "validation details kept",
			err:        domainerrors.ErrValidationFailed.WithDetails([]string{"email"}),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"details":["email"]`,
		},
		{
			name:       "auth error drops details",
			err:        domainerrors.ErrInvalidToken.WithDetails("token is expired"),
			wantStatus: http.StatusUnauthorized,
			notInBody:  "token is expired",
		},
		{
			name:       "echo route error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `"code":"HTTP_ERROR"`,
		},
		{
			name:       "echo wrapped internal error",
			err:        echo.NewHTTPError(http.StatusInternalServerError).SetInternal(errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
			notInBody:  "db down",
		},
		{
			name:       "unknown error",
			err:        errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"code":"INTERNAL_ERROR"`,
			notInBody:  "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.notInBody != "" {
				assert.NotContains(t, rec.Body.String(), tt.notInBody)
			}
		})
	}
}
