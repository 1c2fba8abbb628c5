package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	authdto "github.com/lessonforge/lessonforge/internal/adapter/dto/auth"
	"github.com/lessonforge/lessonforge/pkg/jwt"
)

// Auth issues device session tokens. The app has no user accounts; each
// installation registers its stable device ID once and holds a long-lived
// bearer token for everything else.
type Auth struct {
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(jwtManager *jwt.Manager, logger *zap.Logger) *Auth {
	return &Auth{jwtManager: jwtManager, logger: logger}
}

// RegisterDevice issues a session token for a device ID. Re-registering an
// existing device simply issues a fresh token.
// POST /v1/auth/device
func (h *Auth) RegisterDevice(c echo.Context) error {
	var req authdto.RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	token, err := h.jwtManager.GenerateDeviceToken(req.DeviceID, req.Platform)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}

	if h.logger != nil {
		h.logger.Info("✅ Device session issued",
			zap.String("device_id", req.DeviceID),
			zap.String("platform", req.Platform))
	}

	return HandleSuccess(h.logger, c, authdto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.jwtManager.GetAccessExpiry().Seconds()),
		DeviceID:  req.DeviceID,
	})
}
