package entities

import (
	stdErrors "errors"
	"testing"

	appErrors "github.com/lessonforge/lessonforge/errors"
)

func newCustomConfig() *ConversationConfig {
	return NewConversationConfig(
		"es", "coffee_shop", "Ordering a drink",
		DifficultyBeginner, FormatCustom,
		SpeakerConfig{Name: "Maria", Role: "Customer"},
		SpeakerConfig{Name: "Jordan", Role: "Barista"},
	)
}

func TestSetFormat_ResetsSegments(t *testing.T) {
	cfg := newCustomConfig()
	cfg.SetFormat(FormatQuickDialogue)
	types := cfg.SegmentTypes()
	if len(types) != 2 || types[0] != SegmentWelcome || types[1] != SegmentNaturalSpeed {
		t.Fatalf("quick_dialogue segments = %v", types)
	}
}

func TestAddSegment_QuizIsSingleton(t *testing.T) {
	cfg := newCustomConfig()
	err := cfg.AddSegment(SegmentQuiz)
	if err == nil {
		t.Fatalf("adding a second quiz should be rejected")
	}
	var appErr appErrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != appErrors.CodeSegmentAlreadyPresent {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAddSegment_VocabularyMayRepeat(t *testing.T) {
	cfg := newCustomConfig()
	if err := cfg.AddSegment(SegmentVocabulary); err != nil {
		t.Fatalf("adding a second vocabulary segment: %v", err)
	}

	count := 0
	for _, seg := range cfg.Segments {
		if seg.Type == SegmentVocabulary {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 vocabulary segments, got %d", count)
	}

	// Both instances must sit between welcome and quiz.
	if cfg.Segments[0].Type != SegmentWelcome {
		t.Errorf("welcome must stay at index 0")
	}
	last := cfg.Segments[len(cfg.Segments)-1]
	if last.Type == SegmentVocabulary {
		t.Errorf("new vocabulary segment must not land after quiz")
	}
}

func TestAddSegment_QuizLandsAtEnd(t *testing.T) {
	cfg := newCustomConfig()
	for _, seg := range cfg.Segments {
		if seg.Type == SegmentQuiz {
			cfg.RemoveSegment(seg.ID)
			break
		}
	}
	if err := cfg.AddSegment(SegmentCulturalNote); err != nil {
		t.Fatalf("add cultural note: %v", err)
	}
	if err := cfg.AddSegment(SegmentQuiz); err != nil {
		t.Fatalf("re-add quiz: %v", err)
	}
	if cfg.Segments[len(cfg.Segments)-1].Type != SegmentQuiz {
		t.Errorf("quiz must occupy the last index")
	}
}

func TestAddSegment_WelcomeLandsAtFront(t *testing.T) {
	cfg := newCustomConfig()
	welcomeID := cfg.Segments[0].ID
	cfg.RemoveSegment(welcomeID)
	if err := cfg.AddSegment(SegmentWelcome); err != nil {
		t.Fatalf("re-add welcome: %v", err)
	}
	if cfg.Segments[0].Type != SegmentWelcome {
		t.Errorf("welcome must occupy index 0")
	}
}

func TestMoveSegment_LockedTypesRejected(t *testing.T) {
	cfg := newCustomConfig()
	err := cfg.MoveSegment(cfg.Segments[0].ID, 3)
	if err == nil {
		t.Fatalf("moving welcome should be rejected")
	}
	var appErr appErrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != appErrors.CodeSegmentLocked {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMoveSegment_ClampsIntoUnlockedRange(t *testing.T) {
	cfg := newCustomConfig()

	var vocabID string
	for _, seg := range cfg.Segments {
		if seg.Type == SegmentVocabulary {
			vocabID = seg.ID
			break
		}
	}

	// Target index 0 is pinned to welcome; the move clamps to index 1.
	if err := cfg.MoveSegment(vocabID, 0); err != nil {
		t.Fatalf("move vocabulary: %v", err)
	}
	if cfg.Segments[0].Type != SegmentWelcome {
		t.Errorf("welcome displaced from index 0")
	}
	if cfg.Segments[1].ID != vocabID {
		t.Errorf("vocabulary should clamp to index 1, segments: %v", cfg.SegmentTypes())
	}

	// Target past the end clamps to just before quiz.
	if err := cfg.MoveSegment(vocabID, 99); err != nil {
		t.Fatalf("move vocabulary to end: %v", err)
	}
	last := len(cfg.Segments) - 1
	if cfg.Segments[last].Type != SegmentQuiz {
		t.Errorf("quiz displaced from last index")
	}
	if cfg.Segments[last-1].ID != vocabID {
		t.Errorf("vocabulary should clamp to just before quiz, segments: %v", cfg.SegmentTypes())
	}
}

func TestMoveSegment_ReordersMiddle(t *testing.T) {
	cfg := newCustomConfig()
	// custom preset: welcome, vocabulary, slow_dialogue, breakdown, natural_speed, quiz, cultural_note
	slowID := cfg.Segments[2].ID
	if err := cfg.MoveSegment(slowID, 4); err != nil {
		t.Fatalf("move slow dialogue: %v", err)
	}
	if cfg.Segments[4].ID != slowID {
		t.Errorf("slow dialogue should be at index 4, segments: %v", cfg.SegmentTypes())
	}
}

func TestRemoveSegment(t *testing.T) {
	cfg := newCustomConfig()
	before := len(cfg.Segments)
	if !cfg.RemoveSegment(cfg.Segments[1].ID) {
		t.Fatalf("remove should succeed")
	}
	if len(cfg.Segments) != before-1 {
		t.Errorf("segment count = %d, want %d", len(cfg.Segments), before-1)
	}
	if cfg.RemoveSegment("missing-id") {
		t.Errorf("removing an unknown id should report false")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := newCustomConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cfg.Language = "xx"
	var appErr appErrors.AppError
	if err := cfg.Validate(); !stdErrors.As(err, &appErr) || appErr.Code != appErrors.CodeUnknownLanguage {
		t.Errorf("expected unknown language error, got %v", err)
	}

	cfg.Language = "es"
	cfg.Location = "space_station"
	if err := cfg.Validate(); !stdErrors.As(err, &appErr) || appErr.Code != appErrors.CodeUnknownLocation {
		t.Errorf("expected unknown location error, got %v", err)
	}
}
