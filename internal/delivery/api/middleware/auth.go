package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/service"
	"staffhub/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates session tokens and gates routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate verifies the bearer token and attaches the caller identity.
// A missing header is treated as an empty token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix)

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected session token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetIdentity(c, claims.Identity())

		return next(c)
	}
}

// RequireRole rejects callers whose role differs from role. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok || identity.Role != role {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			return next(c)
		}
	}
}
