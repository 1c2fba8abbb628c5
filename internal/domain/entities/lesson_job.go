package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LessonJobStatus represents the status of a lesson generation job
type LessonJobStatus string

const (
	LessonJobStatusPending    LessonJobStatus = "pending"    // Waiting to be picked up by a worker
	LessonJobStatusGenerating LessonJobStatus = "generating" // Dialogue and audio generation in progress
	LessonJobStatusCompleted  LessonJobStatus = "completed"  // Lesson ready for playback
	LessonJobStatusFailed     LessonJobStatus = "failed"     // Generation failed
	LessonJobStatusRetrying   LessonJobStatus = "retrying"   // Retrying after failure
	LessonJobStatusCancelled  LessonJobStatus = "cancelled"  // Job was cancelled
)

// LessonJob represents an asynchronous lesson generation job
type LessonJob struct {
	ID       uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID string          `json:"device_id" gorm:"type:varchar(255);not null;index"`
	LessonID *uuid.UUID      `json:"lesson_id,omitempty" gorm:"type:uuid;index"`
	Status   LessonJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`

	// Generation input
	Config datatypes.JSONType[ConversationConfig] `json:"config" gorm:"type:jsonb"`

	// Progress reporting: monotonically increasing fraction in [0,1]
	// with a human status string
	Progress   float64 `json:"progress" gorm:"type:double precision;default:0"`
	StatusText string  `json:"status_text" gorm:"type:varchar(255)"`

	// Processing details
	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewLessonJob creates a new lesson generation job
func NewLessonJob(deviceID string, config ConversationConfig) *LessonJob {
	return &LessonJob{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		Status:     LessonJobStatusPending,
		Config:     datatypes.NewJSONType(config),
		Progress:   0,
		StatusText: "Queued",
		RetryCount: 0,
		MaxRetries: 3,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// IsRetryable checks if job can be retried
func (j *LessonJob) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries && j.Status == LessonJobStatusFailed
}

// CanBeClaimed checks if job is ready to be picked up by a worker
func (j *LessonJob) CanBeClaimed() bool {
	return j.Status == LessonJobStatusPending || (j.Status == LessonJobStatusFailed && j.IsRetryable())
}

// MarkAsGenerating marks job as claimed by a worker
func (j *LessonJob) MarkAsGenerating() {
	j.Status = LessonJobStatusGenerating
	now := time.Now()
	j.StartedAt = &now
	j.UpdatedAt = now
}

// SetProgress records generation progress. Progress never moves backwards.
func (j *LessonJob) SetProgress(fraction float64, statusText string) {
	if fraction > j.Progress {
		j.Progress = fraction
	}
	j.StatusText = statusText
	j.UpdatedAt = time.Now()
}

// MarkAsCompleted marks job as completed with the produced lesson
func (j *LessonJob) MarkAsCompleted(lessonID uuid.UUID) {
	j.Status = LessonJobStatusCompleted
	j.LessonID = &lessonID
	j.Progress = 1
	j.StatusText = "Complete!"
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks job as failed with error message
func (j *LessonJob) MarkAsFailed(errMsg string) {
	j.Status = LessonJobStatusFailed
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// IncrementRetry increments retry count and marks for retry
func (j *LessonJob) IncrementRetry(errMsg string) {
	j.RetryCount++
	j.Status = LessonJobStatusRetrying
	j.LastError = &errMsg
	j.UpdatedAt = time.Now()
}

// MarkAsCancelled marks job as cancelled
func (j *LessonJob) MarkAsCancelled() {
	j.Status = LessonJobStatusCancelled
	now := time.Now()
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// TableName specifies the table name for GORM
func (LessonJob) TableName() string {
	return "lesson_jobs"
}
