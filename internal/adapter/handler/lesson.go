package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	lessondto "github.com/lessonforge/lessonforge/internal/adapter/dto/lesson"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/internal/infrastructure/http/middleware"
	"github.com/lessonforge/lessonforge/internal/usecase/lesson"
)

// Lesson exposes lesson generation and retrieval endpoints.
type Lesson struct {
	service lesson.Service
	logger  *zap.Logger
}

// NewLessonHandler creates a lesson handler.
func NewLessonHandler(service lesson.Service, logger *zap.Logger) *Lesson {
	return &Lesson{service: service, logger: logger}
}

// Create queues an asynchronous lesson generation job.
// POST /v1/lessons
func (h *Lesson) Create(c echo.Context) error {
	deviceID := middleware.DeviceIDFromContext(c)

	var req lessondto.CreateLessonRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	cfg, err := req.ToConfig()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	job, err := h.service.RequestLesson(c.Request().Context(), deviceID, cfg)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, lessondto.FromJob(job))
}

// CreateInstant generates a lesson synchronously without audio. Used for
// offline preview and development builds.
// POST /v1/lessons/instant
func (h *Lesson) CreateInstant(c echo.Context) error {
	deviceID := middleware.DeviceIDFromContext(c)

	var req lessondto.CreateLessonRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	cfg, err := req.ToConfig()
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.service.GenerateInstant(c.Request().Context(), deviceID, cfg)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, lessondto.FromLesson(result))
}

// List returns the device's stored lessons, newest first.
// GET /v1/lessons?limit=20
func (h *Lesson) List(c echo.Context) error {
	deviceID := middleware.DeviceIDFromContext(c)

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("limit must be a non-negative integer"))
		}
		limit = parsed
	}

	lessons, err := h.service.ListLessons(c.Request().Context(), deviceID, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summaries := make([]lessondto.SummaryResponse, 0, len(lessons))
	for i := range lessons {
		summaries = append(summaries, lessondto.FromLessonSummary(&lessons[i]))
	}
	return HandleSuccess(h.logger, c, summaries)
}

// Get returns one stored lesson with its full line list.
// GET /v1/lessons/:id
func (h *Lesson) Get(c echo.Context) error {
	result, err := h.ownedLesson(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, lessondto.FromLesson(result))
}

// Delete removes a stored lesson.
// DELETE /v1/lessons/:id
func (h *Lesson) Delete(c echo.Context) error {
	result, err := h.ownedLesson(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.DeleteLesson(c.Request().Context(), result.ID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": result.ID.String()})
}

// GetJob reports the progress of a generation job.
// GET /v1/lessons/jobs/:id
func (h *Lesson) GetJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid job id"))
	}

	job, err := h.service.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if job.DeviceID != middleware.DeviceIDFromContext(c) {
		return HandleError(h.logger, c, errors.ErrLessonJobNotFound(jobID.String()))
	}

	return HandleSuccess(h.logger, c, lessondto.FromJob(job))
}

// GetLatestJob reports the device's most recent generation job, so a
// reopened app can resume polling.
// GET /v1/lessons/jobs/latest
func (h *Lesson) GetLatestJob(c echo.Context) error {
	deviceID := middleware.DeviceIDFromContext(c)

	job, err := h.service.GetLatestJob(c.Request().Context(), deviceID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, lessondto.FromJob(job))
}

// CancelJob cancels a pending or running generation job.
// POST /v1/lessons/jobs/:id/cancel
func (h *Lesson) CancelJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid job id"))
	}

	job, err := h.service.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if job.DeviceID != middleware.DeviceIDFromContext(c) {
		return HandleError(h.logger, c, errors.ErrLessonJobNotFound(jobID.String()))
	}

	if err := h.service.CancelJob(c.Request().Context(), jobID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"id": jobID.String(), "status": "cancelled"})
}

// ownedLesson loads the lesson from the path parameter and verifies it
// belongs to the requesting device. Foreign lessons read as not found.
func (h *Lesson) ownedLesson(c echo.Context) (*entities.Lesson, error) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, errors.ErrInvalidArgument("invalid lesson id")
	}

	result, err := h.service.GetLesson(c.Request().Context(), lessonID)
	if err != nil {
		return nil, err
	}
	if result.DeviceID != middleware.DeviceIDFromContext(c) {
		return nil, errors.ErrLessonNotFound(lessonID.String())
	}
	return result, nil
}
