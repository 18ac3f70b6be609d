package middleware

import (
	"net/http"
	"strings"

	"dayboard/core/cache"
	"dayboard/core/controller"
	"dayboard/core/errors"
	"dayboard/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(c cache.Cache) *Middleware {
	return &Middleware{cache: c}
}

// AuthMiddleware verifies the Bearer token and stores the authenticated
// user id in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "authorization header required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "bearer token required")
			}

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), tokenString)
				if err == nil && blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "token is blacklisted")
				}
			}

			tokenData, err := utils.ValidateAndParseToken(tokenString)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "invalid or expired token")
			}

			c.Set(userIDContextKey, tokenData.UserID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id stored by AuthMiddleware.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(userIDContextKey).(uuid.UUID)
	return id, ok
}

// SetUserIDForTesting injects an authenticated user id; tests only.
func SetUserIDForTesting(c echo.Context, id uuid.UUID) {
	c.Set(userIDContextKey, id)
}

// ResolveUserID returns the authenticated user id, cross-checking any
// client-supplied id against the token subject. Client ids are never
// trusted on their own.
func ResolveUserID(c echo.Context, claimed string) (uuid.UUID, *errors.AppError) {
	tokenUserID, ok := UserID(c)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "not authenticated", nil)
	}
	if claimed == "" {
		return tokenUserID, nil
	}
	claimedID, err := uuid.Parse(claimed)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.ErrInvalidInput, "invalid userId", err)
	}
	if claimedID != tokenUserID {
		return uuid.Nil, errors.NewAppError(errors.ErrForbidden, "userId does not match session", nil)
	}
	return tokenUserID, nil
}
