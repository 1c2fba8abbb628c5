package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LessonSource records how a lesson's content was produced
type LessonSource string

const (
	LessonSourceGenerated LessonSource = "generated" // Remote dialogue + TTS generation
	LessonSourceMock      LessonSource = "mock"      // Deterministic local script
	LessonSourceBundled   LessonSource = "bundled"   // Pre-authored offline lesson
)

// Lesson is a fully generated lesson persisted for replay
type Lesson struct {
	ID       uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID string       `json:"device_id" gorm:"type:varchar(255);not null;index"`
	Source   LessonSource `json:"source" gorm:"type:varchar(50);not null;default:'generated'"`

	Language   string `json:"language" gorm:"type:varchar(10);not null;index"`
	Location   string `json:"location" gorm:"type:varchar(50);not null;index"`
	Difficulty string `json:"difficulty" gorm:"type:varchar(50);not null"`
	Format     string `json:"format" gorm:"type:varchar(50);not null"`

	Config datatypes.JSONType[ConversationConfig] `json:"config" gorm:"type:jsonb"`
	Lines  datatypes.JSONType[[]DialogueLine]     `json:"lines" gorm:"type:jsonb"`

	// TotalDuration is milliseconds across the whole timeline
	TotalDuration int64 `json:"total_duration" gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// NewLesson creates a lesson record from a generation result
func NewLesson(deviceID string, source LessonSource, dialogue *GeneratedDialogue) *Lesson {
	lesson := &Lesson{
		ID:            uuid.New(),
		DeviceID:      deviceID,
		Source:        source,
		Lines:         datatypes.NewJSONType(dialogue.Lines),
		TotalDuration: dialogue.TotalDuration,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if dialogue.Config != nil {
		lesson.Language = dialogue.Config.Language
		lesson.Location = dialogue.Config.Location
		lesson.Difficulty = string(dialogue.Config.Difficulty)
		lesson.Format = string(dialogue.Config.Format)
		lesson.Config = datatypes.NewJSONType(*dialogue.Config)
	}
	return lesson
}

// Dialogue reconstructs the in-memory lesson artifact from the stored row
func (l *Lesson) Dialogue() *GeneratedDialogue {
	config := l.Config.Data()
	return &GeneratedDialogue{
		Config:        &config,
		Lines:         l.Lines.Data(),
		TotalDuration: l.TotalDuration,
	}
}

// TableName specifies the table name for GORM
func (Lesson) TableName() string {
	return "lessons"
}
