package middleware

import (
	"finpulse/internal/errors"
	"finpulse/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDHeader carries the caller's identity. Authentication itself is
	// handled upstream (gateway or reverse proxy); this service only scopes
	// data by the ID it is handed.
	UserIDHeader = "X-User-ID"
	// UserIDContextKey is the context key for storing the caller's user ID
	UserIDContextKey = "user_id"
)

// UserContext extracts and validates the X-User-ID header and stores the
// parsed UUID in the request context. Requests without a valid user ID are
// rejected before reaching handlers.
func UserContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(UserIDHeader)
			if header == "" {
				return handlers.SendError(c, errors.ValidationInvalidUserID,
					errors.WithDetails("X-User-ID header is required"))
			}

			userID, err := uuid.Parse(header)
			if err != nil || userID == uuid.Nil {
				return handlers.SendError(c, errors.ValidationInvalidUserID,
					errors.WithDetails("X-User-ID must be a valid UUID"))
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}
