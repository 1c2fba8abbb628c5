package lesson

import (
	"testing"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func TestNewBundledRegistry_SeededWithShippedLessons(t *testing.T) {
	registry := NewBundledRegistry()
	if registry.Len() == 0 {
		t.Fatal("registry starts empty; shipped lessons must be registered")
	}

	cfg := entities.NewConversationConfig(
		"en", "coffee_shop", "Ordering a drink",
		entities.DifficultyIntermediate, entities.FormatClassroomStyle,
		entities.SpeakerConfig{Name: "Anyone", Role: "Customer"},
		entities.SpeakerConfig{Name: "Anybody", Role: "Barista"},
	)

	dialogue, ok := registry.Lookup(cfg)
	if !ok {
		t.Fatal("english coffee shop lesson not found")
	}
	if len(dialogue.Lines) != 31 {
		t.Errorf("bundled lesson has %d lines, want 31", len(dialogue.Lines))
	}
	if dialogue.TotalDuration != 146000 {
		t.Errorf("total duration = %d, want 146000", dialogue.TotalDuration)
	}

	first := dialogue.Lines[0]
	if first.SegmentType != "WELCOME" || first.StartTime != 0 {
		t.Errorf("first line = %s starting at %d, want WELCOME at 0", first.SegmentType, first.StartTime)
	}
	if first.AudioURI != "bundled/en_coffee_shop/line_0.mp3" {
		t.Errorf("first line audio uri = %q", first.AudioURI)
	}

	// Pre-timed lines must already carry a consistent timeline.
	for i, line := range dialogue.Lines {
		if line.EndTime != line.StartTime+line.Duration {
			t.Errorf("line %d end time inconsistent", i)
		}
		if i > 0 && line.StartTime < dialogue.Lines[i-1].EndTime {
			t.Errorf("line %d overlaps the previous line", i)
		}
	}
}

func TestBundledRegistry_LookupMatchesScenarioNotSpeakers(t *testing.T) {
	registry := NewBundledRegistry()

	// The key is scenario coordinates; case differences still match.
	cfg := entities.NewConversationConfig(
		"en", "coffee_shop", "ORDERING A DRINK",
		entities.DifficultyIntermediate, entities.FormatClassroomStyle,
		entities.SpeakerConfig{Name: "A", Role: "Customer"},
		entities.SpeakerConfig{Name: "B", Role: "Barista"},
	)
	if _, ok := registry.Lookup(cfg); !ok {
		t.Error("lookup should be case-insensitive on scenario fields")
	}

	cfg.Language = "es"
	if _, ok := registry.Lookup(cfg); ok {
		t.Error("no spanish coffee shop lesson is bundled")
	}

	if _, ok := registry.Lookup(nil); ok {
		t.Error("nil config must not match")
	}
}
