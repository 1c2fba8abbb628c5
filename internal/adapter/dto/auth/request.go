package auth

// RegisterDeviceRequest registers an app installation and requests a
// session token. DeviceID is a client-generated stable identifier.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,min=8,max=255"`
	Platform string `json:"platform,omitempty" validate:"omitempty,oneof=ios android web"`
}
