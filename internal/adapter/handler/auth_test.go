package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lessonforge/lessonforge/pkg/jwt"
	pkgvalidator "github.com/lessonforge/lessonforge/pkg/validator"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func TestRegisterDevice_IssuesToken(t *testing.T) {
	e := newEcho()
	manager := jwt.NewManager("test-secret", time.Hour)
	h := NewAuthHandler(manager, nil)

	body := `{"device_id":"device-1234567890","platform":"ios"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/device", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.RegisterDevice(c); err != nil {
		t.Fatalf("RegisterDevice returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Token     string `json:"token"`
			TokenType string `json:"token_type"`
			ExpiresIn int64  `json:"expires_in"`
			DeviceID  string `json:"device_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Data.DeviceID != "device-1234567890" {
		t.Errorf("unexpected device_id %q", resp.Data.DeviceID)
	}
	if resp.Data.TokenType != "Bearer" {
		t.Errorf("unexpected token_type %q", resp.Data.TokenType)
	}
	if resp.Data.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600 got %d", resp.Data.ExpiresIn)
	}

	claims, err := manager.ValidateDeviceToken(resp.Data.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.DeviceID != "device-1234567890" {
		t.Errorf("claims carry wrong device id %q", claims.DeviceID)
	}
	if claims.Platform != "ios" {
		t.Errorf("claims carry wrong platform %q", claims.Platform)
	}
}

func TestRegisterDevice_RejectsShortDeviceID(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(jwt.NewManager("test-secret", time.Hour), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/device", strings.NewReader(`{"device_id":"short"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.RegisterDevice(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRegisterDevice_RejectsUnknownPlatform(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(jwt.NewManager("test-secret", time.Hour), nil)

	body := `{"device_id":"device-1234567890","platform":"windows"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/device", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.RegisterDevice(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
