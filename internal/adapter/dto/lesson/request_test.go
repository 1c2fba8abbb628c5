package lesson

import (
	"errors"
	"testing"

	apperrors "github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func createRequest() *CreateLessonRequest {
	return &CreateLessonRequest{
		Language:   "es",
		Location:   "coffee_shop",
		Situation:  "Ordering a drink",
		Difficulty: "beginner",
		Format:     "custom",
		Speaker1:   SpeakerRequest{Name: "Maria", Role: "Customer"},
		Speaker2:   SpeakerRequest{Name: "Jordan", Role: "Barista"},
	}
}

func TestToConfig_CustomSegments(t *testing.T) {
	req := createRequest()
	req.Segments = []string{"welcome", "vocabulary", "natural_speed", "quiz"}

	cfg, err := req.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}

	types := cfg.SegmentTypes()
	want := []entities.SegmentType{
		entities.SegmentWelcome,
		entities.SegmentVocabulary,
		entities.SegmentNaturalSpeed,
		entities.SegmentQuiz,
	}
	if len(types) != len(want) {
		t.Fatalf("segments = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("segment %d = %s, want %s", i, types[i], want[i])
		}
	}
}

func TestToConfig_RejectsUnknownSegmentType(t *testing.T) {
	req := createRequest()
	req.Segments = []string{"welcome", "karaoke", "quiz"}

	if _, err := req.ToConfig(); err == nil {
		t.Fatal("unknown segment type must be rejected")
	} else {
		var appErr apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeInvalidArgument {
			t.Errorf("error = %v, want invalid-argument", err)
		}
	}
}

func TestToConfig_QuizTogglesAndDefault(t *testing.T) {
	req := createRequest()
	cfg, err := req.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	if !cfg.QuizConfig.AnyEnabled() {
		t.Error("omitted quiz config should keep every archetype enabled")
	}

	req.QuizConfig = &QuizConfigRequest{Comprehension: true}
	cfg, err = req.ToConfig()
	if err != nil {
		t.Fatalf("ToConfig: %v", err)
	}
	if cfg.QuizConfig.VocabL2ToL1 || cfg.QuizConfig.VocabL1ToL2 || cfg.QuizConfig.PhraseMeaning {
		t.Errorf("quiz config = %+v, want only comprehension", cfg.QuizConfig)
	}
	if !cfg.QuizConfig.Comprehension {
		t.Error("comprehension toggle lost in conversion")
	}
}
