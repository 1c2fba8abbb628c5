package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// LessonJobRepository handles lesson generation job data operations
type LessonJobRepository struct {
	db *gorm.DB
}

// NewLessonJobRepository creates a new lesson job repository
func NewLessonJobRepository(db *gorm.DB) *LessonJobRepository {
	return &LessonJobRepository{db: db}
}

// GetDB returns the underlying database handle for atomic claim updates
func (r *LessonJobRepository) GetDB() *gorm.DB {
	return r.db
}

// CreateJob creates a new lesson job
func (r *LessonJobRepository) CreateJob(ctx context.Context, job *entities.LessonJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJobByID retrieves a lesson job by ID
func (r *LessonJobRepository) GetJobByID(ctx context.Context, jobID uuid.UUID) (*entities.LessonJob, error) {
	var job entities.LessonJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetLatestJobByDevice retrieves the latest job for a device
func (r *LessonJobRepository) GetLatestJobByDevice(ctx context.Context, deviceID string) (*entities.LessonJob, error) {
	var job entities.LessonJob
	if err := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetJobsForProcessing retrieves jobs that are ready to be picked up
func (r *LessonJobRepository) GetJobsForProcessing(ctx context.Context, limit int) ([]entities.LessonJob, error) {
	var jobs []entities.LessonJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []entities.LessonJobStatus{entities.LessonJobStatusPending, entities.LessonJobStatusRetrying}).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClaimJob atomically transitions a job from its current status to
// generating. Returns false when another worker already claimed it.
func (r *LessonJobRepository) ClaimJob(ctx context.Context, jobID uuid.UUID, fromStatus entities.LessonJobStatus) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ? AND status = ?", jobID, fromStatus).
		Updates(map[string]interface{}{
			"status":     entities.LessonJobStatusGenerating,
			"started_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateProgress records generation progress for a job
func (r *LessonJobRepository) UpdateProgress(ctx context.Context, jobID uuid.UUID, progress float64, statusText string) error {
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ? AND progress <= ?", jobID, progress).
		Updates(map[string]interface{}{
			"progress":    progress,
			"status_text": statusText,
			"updated_at":  time.Now(),
		}).Error
}

// MarkJobAsCompleted marks a job as completed with the produced lesson ID.
// A job cancelled while generating stays cancelled.
func (r *LessonJobRepository) MarkJobAsCompleted(ctx context.Context, jobID uuid.UUID, lessonID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ? AND status <> ?", jobID, entities.LessonJobStatusCancelled).
		Updates(map[string]interface{}{
			"status":       entities.LessonJobStatusCompleted,
			"lesson_id":    lessonID,
			"progress":     1.0,
			"status_text":  "Complete!",
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

// MarkJobAsFailed marks a job as failed with error message
func (r *LessonJobRepository) MarkJobAsFailed(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":     entities.LessonJobStatusFailed,
			"last_error": errMsg,
			"updated_at": time.Now(),
		}).Error
}

// IncrementRetryCount increments the retry count and marks for retry
func (r *LessonJobRepository) IncrementRetryCount(ctx context.Context, jobID uuid.UUID, errMsg string) error {
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"retry_count": gorm.Expr("retry_count + 1"),
			"status":      entities.LessonJobStatusRetrying,
			"last_error":  errMsg,
			"updated_at":  time.Now(),
		}).Error
}

// MarkJobAsCancelled marks a job as cancelled
func (r *LessonJobRepository) MarkJobAsCancelled(ctx context.Context, jobID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ? AND status IN ?", jobID, []entities.LessonJobStatus{
			entities.LessonJobStatusPending,
			entities.LessonJobStatusGenerating,
			entities.LessonJobStatusRetrying,
		}).
		Updates(map[string]interface{}{
			"status":       entities.LessonJobStatusCancelled,
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

// GetStuckJobs retrieves generating jobs whose worker stopped reporting
// progress before the cutoff
func (r *LessonJobRepository) GetStuckJobs(ctx context.Context, cutoff time.Time, limit int) ([]entities.LessonJob, error) {
	var jobs []entities.LessonJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", entities.LessonJobStatusGenerating, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ResetStuckJob returns a stuck generating job to pending so another
// worker can claim it
func (r *LessonJobRepository) ResetStuckJob(ctx context.Context, jobID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.LessonJob{}).
		Where("id = ? AND status = ?", jobID, entities.LessonJobStatusGenerating).
		Updates(map[string]interface{}{
			"status":      entities.LessonJobStatusPending,
			"status_text": "Requeued",
			"updated_at":  time.Now(),
		}).Error
}
