package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims for a device session
type Claims struct {
	DeviceID string `json:"device_id"`
	Platform string `json:"platform,omitempty"`
	jwt.RegisteredClaims
}
