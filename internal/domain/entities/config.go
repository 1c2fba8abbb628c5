package entities

import (
	"github.com/google/uuid"

	"github.com/lessonforge/lessonforge/errors"
)

// LessonSegment is one entry in a lesson's ordered structure. The ID keeps
// duplicate segment types distinguishable when the user reorders them.
type LessonSegment struct {
	ID   string      `json:"id"`
	Type SegmentType `json:"type"`
}

// NewLessonSegment creates a segment entry with a fresh ID.
func NewLessonSegment(segmentType SegmentType) LessonSegment {
	return LessonSegment{
		ID:   uuid.New().String(),
		Type: segmentType,
	}
}

// SpeakerConfig identifies one of the two lesson voices.
type SpeakerConfig struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
}

// QuizConfig toggles the quiz question archetypes included in a lesson.
type QuizConfig struct {
	VocabL2ToL1   bool `json:"vocab_l2_to_l1"`
	VocabL1ToL2   bool `json:"vocab_l1_to_l2"`
	PhraseMeaning bool `json:"phrase_meaning"`
	Comprehension bool `json:"comprehension"`
}

// AnyEnabled reports whether at least one quiz archetype is switched on.
// With everything off, the lesson carries no quiz section at all.
func (q QuizConfig) AnyEnabled() bool {
	return q.VocabL2ToL1 || q.VocabL1ToL2 || q.PhraseMeaning || q.Comprehension
}

// DefaultQuizConfig enables every quiz card type.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		VocabL2ToL1:   true,
		VocabL1ToL2:   true,
		PhraseMeaning: true,
		Comprehension: true,
	}
}

// ConversationConfig is the full user-editable lesson setup. It is read-only
// input to generation; the segment list is edited only through the methods
// below so the position locks hold.
type ConversationConfig struct {
	Language   string          `json:"language" validate:"required"`
	Location   string          `json:"location" validate:"required"`
	Situation  string          `json:"situation" validate:"required"`
	Difficulty Difficulty      `json:"difficulty" validate:"required"`
	Format     LessonFormat    `json:"format" validate:"required"`
	Segments   []LessonSegment `json:"lesson_segments"`
	Speaker1   SpeakerConfig   `json:"speaker1"` // you
	Speaker2   SpeakerConfig   `json:"speaker2"` // them
	QuizConfig QuizConfig      `json:"quiz_config"`
}

// NewConversationConfig builds a config with the format's preset segments.
func NewConversationConfig(language, location, situation string, difficulty Difficulty, format LessonFormat, speaker1, speaker2 SpeakerConfig) *ConversationConfig {
	cfg := &ConversationConfig{
		Language:   language,
		Location:   location,
		Situation:  situation,
		Difficulty: difficulty,
		Speaker1:   speaker1,
		Speaker2:   speaker2,
		QuizConfig: DefaultQuizConfig(),
	}
	cfg.SetFormat(format)
	return cfg
}

// SetFormat switches the lesson format and resets the segment list to the
// format's preset sequence.
func (c *ConversationConfig) SetFormat(format LessonFormat) {
	if !IsValidFormat(format) {
		format = FormatQuickDialogue
	}
	c.Format = format
	types := FormatSegments(format)
	segments := make([]LessonSegment, 0, len(types))
	for _, t := range types {
		segments = append(segments, NewLessonSegment(t))
	}
	c.Segments = segments
}

// hasSegment reports whether any segment of the given type is present.
func (c *ConversationConfig) hasSegment(segmentType SegmentType) bool {
	for _, seg := range c.Segments {
		if seg.Type == segmentType {
			return true
		}
	}
	return false
}

// isSingleton reports whether a segment type may appear at most once.
// Welcome is locked to the front and quiz to the back; every other type
// may be duplicated freely.
func isSingleton(segmentType SegmentType) bool {
	return segmentType == SegmentWelcome || segmentType == SegmentQuiz
}

// AddSegment appends a segment of the given type, honoring position locks:
// welcome always lands at index 0, quiz always at the end, and both are
// singletons. Other types are inserted before any trailing quiz.
func (c *ConversationConfig) AddSegment(segmentType SegmentType) error {
	if isSingleton(segmentType) && c.hasSegment(segmentType) {
		return errors.ErrSegmentAlreadyPresent(string(segmentType))
	}

	segment := NewLessonSegment(segmentType)
	switch segmentType {
	case SegmentWelcome:
		c.Segments = append([]LessonSegment{segment}, c.Segments...)
	case SegmentQuiz:
		c.Segments = append(c.Segments, segment)
	default:
		insertAt := len(c.Segments)
		if insertAt > 0 && c.Segments[insertAt-1].Type == SegmentQuiz {
			insertAt--
		}
		c.Segments = append(c.Segments, LessonSegment{})
		copy(c.Segments[insertAt+1:], c.Segments[insertAt:])
		c.Segments[insertAt] = segment
	}
	return nil
}

// RemoveSegment deletes the segment with the given ID. Removing position
// locked segments is allowed; they just cannot be moved while present.
func (c *ConversationConfig) RemoveSegment(segmentID string) bool {
	for i, seg := range c.Segments {
		if seg.ID == segmentID {
			c.Segments = append(c.Segments[:i], c.Segments[i+1:]...)
			return true
		}
	}
	return false
}

// MoveSegment moves the segment with the given ID to the target index.
// Welcome and quiz are position-locked and cannot be moved, nor can another
// segment displace them from their pinned slots.
func (c *ConversationConfig) MoveSegment(segmentID string, toIndex int) error {
	fromIndex := -1
	for i, seg := range c.Segments {
		if seg.ID == segmentID {
			fromIndex = i
			break
		}
	}
	if fromIndex == -1 {
		return errors.ErrInvalidArgument("segment not found")
	}

	segment := c.Segments[fromIndex]
	if segment.Type == SegmentWelcome || segment.Type == SegmentQuiz {
		return errors.ErrSegmentLocked(string(segment.Type))
	}

	min := 0
	if len(c.Segments) > 0 && c.Segments[0].Type == SegmentWelcome {
		min = 1
	}
	max := len(c.Segments) - 1
	if max >= 0 && c.Segments[max].Type == SegmentQuiz {
		max--
	}
	if toIndex < min {
		toIndex = min
	}
	if toIndex > max {
		toIndex = max
	}
	if toIndex == fromIndex {
		return nil
	}

	c.Segments = append(c.Segments[:fromIndex], c.Segments[fromIndex+1:]...)
	c.Segments = append(c.Segments, LessonSegment{})
	copy(c.Segments[toIndex+1:], c.Segments[toIndex:])
	c.Segments[toIndex] = segment
	return nil
}

// SegmentTypes returns the ordered segment types of the lesson structure.
func (c *ConversationConfig) SegmentTypes() []SegmentType {
	types := make([]SegmentType, 0, len(c.Segments))
	for _, seg := range c.Segments {
		types = append(types, seg.Type)
	}
	return types
}

// Validate checks the catalog-bound fields of the config.
func (c *ConversationConfig) Validate() error {
	if !IsValidLanguage(c.Language) {
		return errors.ErrUnknownLanguage(c.Language)
	}
	if !IsValidLocation(c.Location) {
		return errors.ErrUnknownLocation(c.Location)
	}
	if !IsValidDifficulty(c.Difficulty) {
		return errors.ErrInvalidArgument("unknown difficulty level")
	}
	if !IsValidFormat(c.Format) {
		return errors.ErrInvalidArgument("unknown lesson format")
	}
	return nil
}
