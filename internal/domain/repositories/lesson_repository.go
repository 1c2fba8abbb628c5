package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// LessonRepository defines persistence operations for generated lessons
type LessonRepository interface {
	CreateLesson(ctx context.Context, lesson *entities.Lesson) error
	GetLessonByID(ctx context.Context, lessonID uuid.UUID) (*entities.Lesson, error)
	ListLessonsByDevice(ctx context.Context, deviceID string, limit int) ([]entities.Lesson, error)
	// GetLatestLessonByDevice returns the most recent lesson for instant
	// replay, nil when the device has none.
	GetLatestLessonByDevice(ctx context.Context, deviceID string) (*entities.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error
}
