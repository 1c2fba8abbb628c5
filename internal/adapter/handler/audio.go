package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	lessondto "github.com/lessonforge/lessonforge/internal/adapter/dto/lesson"
	"github.com/lessonforge/lessonforge/internal/infrastructure/storage"
	"github.com/lessonforge/lessonforge/internal/usecase/audiocache"
)

// Audio exposes the shared section audio cache and storage inspection.
type Audio struct {
	cache   *audiocache.Service
	storage *storage.MinIOClient
	logger  *zap.Logger
}

// NewAudioHandler creates an audio handler. storage may be nil; the info
// endpoints then report unavailable.
func NewAudioHandler(cache *audiocache.Service, store *storage.MinIOClient, logger *zap.Logger) *Audio {
	return &Audio{cache: cache, storage: store, logger: logger}
}

// GetSection returns the audio for one lesson section, synthesizing and
// caching on a miss. The same section requested by any device resolves to
// the same cached file.
// POST /v1/audio/section
func (h *Audio) GetSection(c echo.Context) error {
	req, err := h.bindSectionRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.cache.GetSectionAudio(c.Request().Context(), req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// LookupSection checks the cache tiers without generating. 404 with the
// audio-not-cached code on a miss.
// POST /v1/audio/section/lookup
func (h *Audio) LookupSection(c echo.Context) error {
	req, err := h.bindSectionRequest(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.cache.Lookup(c.Request().Context(), req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// ListFiles lists cached audio objects under a prefix.
// GET /v1/audio/files?prefix=audio-cache/es/
func (h *Audio) ListFiles(c echo.Context) error {
	if h.storage == nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list files", errors.ErrNotFound("storage backend")))
	}

	files, err := h.storage.ListFiles(c.Request().Context(), c.QueryParam("prefix"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list files", err))
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}

// StorageInfo reports bucket connectivity and object counts.
// GET /v1/audio/storage
func (h *Audio) StorageInfo(c echo.Context) error {
	if h.storage == nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("bucket info", errors.ErrNotFound("storage backend")))
	}

	info, err := h.storage.GetBucketInfo(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("bucket info", err))
	}
	return HandleSuccess(h.logger, c, info)
}

func (h *Audio) bindSectionRequest(c echo.Context) (*audiocache.SectionRequest, error) {
	var req lessondto.SectionAudioRequest
	if err := c.Bind(&req); err != nil {
		return nil, errors.ErrInvalidPayload()
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.ErrInvalidArgument(err.Error())
	}

	return &audiocache.SectionRequest{
		Language: req.Language,
		Section:  req.Section,
		Location: req.Location,
		SpeakerA: req.SpeakerA,
		SpeakerB: req.SpeakerB,
		Lines:    req.ToLines(),
	}, nil
}
