package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lessonforge/lessonforge/pkg/jwt"
)

// DeviceIDKey is the echo context key holding the authenticated device ID.
const DeviceIDKey = "device_id"

// DeviceAuth returns an Echo middleware that validates the bearer device
// session token and sets the device ID into the request context.
func DeviceAuth(manager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}

			claims, err := manager.ValidateDeviceToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(DeviceIDKey, claims.DeviceID)
			return next(c)
		}
	}
}

// DeviceIDFromContext retrieves the authenticated device ID set by
// DeviceAuth. The empty string means the request was not authenticated.
func DeviceIDFromContext(c echo.Context) string {
	deviceID, _ := c.Get(DeviceIDKey).(string)
	return deviceID
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
	}

	// Cookie fallback for web clients
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie.Value
	}

	return ""
}
