package auth

// SessionResponse carries the issued device session token.
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"` // seconds
	DeviceID  string `json:"device_id"`
}
