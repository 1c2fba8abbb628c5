package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// LessonRepository handles lesson data operations
type LessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// CreateLesson persists a generated lesson
func (r *LessonRepository) CreateLesson(ctx context.Context, lesson *entities.Lesson) error {
	if lesson == nil {
		return errors.New("lesson cannot be nil")
	}
	return r.db.WithContext(ctx).Create(lesson).Error
}

// GetLessonByID retrieves a lesson by ID
func (r *LessonRepository) GetLessonByID(ctx context.Context, lessonID uuid.UUID) (*entities.Lesson, error) {
	var lesson entities.Lesson
	if err := r.db.WithContext(ctx).Where("id = ?", lessonID).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lesson, nil
}

// ListLessonsByDevice retrieves lessons for a device, newest first
func (r *LessonRepository) ListLessonsByDevice(ctx context.Context, deviceID string, limit int) ([]entities.Lesson, error) {
	var lessons []entities.Lesson
	if limit == 0 {
		limit = 50
	}
	if err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// GetLatestLessonByDevice retrieves the most recent lesson for a device
func (r *LessonRepository) GetLatestLessonByDevice(ctx context.Context, deviceID string) (*entities.Lesson, error) {
	var lesson entities.Lesson
	if err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lesson, nil
}

// DeleteLesson deletes a lesson
func (r *LessonRepository) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Lesson{}, lessonID).Error
}
