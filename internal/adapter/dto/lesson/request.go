package lesson

import (
	"github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// SpeakerRequest selects one lesson voice.
type SpeakerRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// QuizConfigRequest toggles quiz card archetypes. A nil pointer on the
// parent request keeps every type enabled.
type QuizConfigRequest struct {
	VocabL2ToL1   bool `json:"vocab_l2_to_l1"`
	VocabL1ToL2   bool `json:"vocab_l1_to_l2"`
	PhraseMeaning bool `json:"phrase_meaning"`
	Comprehension bool `json:"comprehension"`
}

// CreateLessonRequest is the payload for queueing a lesson generation job
// and for the synchronous instant preview endpoint.
type CreateLessonRequest struct {
	Language   string             `json:"language" validate:"required"`
	Location   string             `json:"location" validate:"required"`
	Situation  string             `json:"situation" validate:"required"`
	Difficulty string             `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Format     string             `json:"format" validate:"required"`
	Speaker1   SpeakerRequest     `json:"speaker1" validate:"required"`
	Speaker2   SpeakerRequest     `json:"speaker2" validate:"required"`
	Segments   []string           `json:"segments,omitempty"`
	QuizConfig *QuizConfigRequest `json:"quiz_config,omitempty"`
}

// ToConfig converts the request into a domain conversation config. A custom
// segment list replaces the format preset through the position-lock aware
// editing methods.
func (r *CreateLessonRequest) ToConfig() (*entities.ConversationConfig, error) {
	cfg := entities.NewConversationConfig(
		r.Language,
		r.Location,
		r.Situation,
		entities.Difficulty(r.Difficulty),
		entities.LessonFormat(r.Format),
		entities.SpeakerConfig{Name: r.Speaker1.Name, Role: r.Speaker1.Role},
		entities.SpeakerConfig{Name: r.Speaker2.Name, Role: r.Speaker2.Role},
	)

	if len(r.Segments) > 0 {
		cfg.Segments = nil
		for _, seg := range r.Segments {
			segmentType := entities.SegmentType(seg)
			if !entities.IsValidSegmentType(segmentType) {
				return nil, errors.ErrInvalidArgument("unknown segment type: " + seg)
			}
			if err := cfg.AddSegment(segmentType); err != nil {
				return nil, err
			}
		}
	}

	if r.QuizConfig != nil {
		cfg.QuizConfig = entities.QuizConfig{
			VocabL2ToL1:   r.QuizConfig.VocabL2ToL1,
			VocabL1ToL2:   r.QuizConfig.VocabL1ToL2,
			PhraseMeaning: r.QuizConfig.PhraseMeaning,
			Comprehension: r.QuizConfig.Comprehension,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SyncStateRequest carries the playback position for effective index and
// card dispatch computation.
type SyncStateRequest struct {
	AudioIndex     int      `json:"audio_index"`
	TranscriptTags []string `json:"transcript_tags,omitempty"`
}

// SectionAudioRequest asks for the shared audio of one lesson section.
type SectionAudioRequest struct {
	Language string        `json:"language" validate:"required"`
	Section  string        `json:"section" validate:"required"`
	Location string        `json:"location" validate:"required"`
	SpeakerA string        `json:"speaker_a" validate:"required"`
	SpeakerB string        `json:"speaker_b" validate:"required"`
	Lines    []SectionLine `json:"lines" validate:"required,min=1,dive"`
}

// SectionLine is one dialogue line inside a section audio request.
type SectionLine struct {
	Text       string `json:"text" validate:"required"`
	SpokenText string `json:"spoken_text,omitempty"`
	SpeakerID  int    `json:"speaker_id" validate:"required,oneof=1 2"`
	Emotion    string `json:"emotion,omitempty"`
}

// ToLines converts the wire lines into domain dialogue lines.
func (r *SectionAudioRequest) ToLines() []entities.DialogueLine {
	lines := make([]entities.DialogueLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entities.DialogueLine{
			Text:        l.Text,
			SpokenText:  l.SpokenText,
			SpeakerID:   l.SpeakerID,
			Emotion:     l.Emotion,
			SegmentType: r.Section,
		})
	}
	return lines
}
