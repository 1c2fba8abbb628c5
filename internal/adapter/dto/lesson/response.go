package lesson

import (
	"time"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// JobResponse reports the state of an asynchronous generation job.
type JobResponse struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Progress   float64    `json:"progress"`
	StatusText string     `json:"status_text"`
	LessonID   *string    `json:"lesson_id,omitempty"`
	LastError  *string    `json:"last_error,omitempty"`
	RetryCount int        `json:"retry_count"`
	CreatedAt  time.Time  `json:"created_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
}

// FromJob maps a job entity to its wire shape.
func FromJob(job *entities.LessonJob) *JobResponse {
	resp := &JobResponse{
		ID:         job.ID.String(),
		Status:     string(job.Status),
		Progress:   job.Progress,
		StatusText: job.StatusText,
		LastError:  job.LastError,
		RetryCount: job.RetryCount,
		CreatedAt:  job.CreatedAt,
		StartedAt:  job.StartedAt,
	}
	if job.LessonID != nil {
		id := job.LessonID.String()
		resp.LessonID = &id
	}
	return resp
}

// SegmentResponse is one segment run of a lesson's line list.
type SegmentResponse struct {
	Type       string `json:"type"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Label      string `json:"label"`
	Color      string `json:"color"`
}

// LessonResponse is the full playable lesson.
type LessonResponse struct {
	ID            string                      `json:"id"`
	Source        string                      `json:"source"`
	Language      string                      `json:"language"`
	Location      string                      `json:"location"`
	Difficulty    string                      `json:"difficulty"`
	Format        string                      `json:"format"`
	Config        entities.ConversationConfig `json:"config"`
	Lines         []entities.DialogueLine     `json:"lines"`
	Segments      []SegmentResponse           `json:"segments"`
	TotalDuration int64                       `json:"total_duration"`
	CreatedAt     time.Time                   `json:"created_at"`
}

// FromLesson maps a lesson row to its wire shape, deriving the segment runs
// from the stored lines.
func FromLesson(l *entities.Lesson) *LessonResponse {
	lines := l.Lines.Data()

	runs := entities.SegmentRuns(lines)
	segments := make([]SegmentResponse, 0, len(runs))
	for _, run := range runs {
		segments = append(segments, SegmentResponse{
			Type:       run.Type,
			StartIndex: run.StartIndex,
			EndIndex:   run.EndIndex,
			Label:      run.Label,
			Color:      run.Color,
		})
	}

	return &LessonResponse{
		ID:            l.ID.String(),
		Source:        string(l.Source),
		Language:      l.Language,
		Location:      l.Location,
		Difficulty:    l.Difficulty,
		Format:        l.Format,
		Config:        l.Config.Data(),
		Lines:         lines,
		Segments:      segments,
		TotalDuration: l.TotalDuration,
		CreatedAt:     l.CreatedAt,
	}
}

// SummaryResponse is the list view of a stored lesson.
type SummaryResponse struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Language      string    `json:"language"`
	Location      string    `json:"location"`
	Difficulty    string    `json:"difficulty"`
	Format        string    `json:"format"`
	LineCount     int       `json:"line_count"`
	TotalDuration int64     `json:"total_duration"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromLessonSummary maps a lesson row to its list-view shape.
func FromLessonSummary(l *entities.Lesson) SummaryResponse {
	return SummaryResponse{
		ID:            l.ID.String(),
		Source:        string(l.Source),
		Language:      l.Language,
		Location:      l.Location,
		Difficulty:    l.Difficulty,
		Format:        l.Format,
		LineCount:     len(l.Lines.Data()),
		TotalDuration: l.TotalDuration,
		CreatedAt:     l.CreatedAt,
	}
}
