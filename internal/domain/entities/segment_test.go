package entities

import "testing"

func TestDisplayInfoOf_KnownTags(t *testing.T) {
	info := DisplayInfoOf("VOCAB")
	if info.Label != "Vocabulary" || info.Color != "#8B5CF6" || !info.HasAlternateView {
		t.Fatalf("unexpected vocab display info: %+v", info)
	}

	info = DisplayInfoOf("NATURAL")
	if info.Label != "Conversation" || info.HasAlternateView {
		t.Fatalf("unexpected natural display info: %+v", info)
	}
}

func TestDisplayInfoOf_NaturalSpeedAlias(t *testing.T) {
	alias := DisplayInfoOf("NATURAL_SPEED")
	canonical := DisplayInfoOf("NATURAL")
	if alias != canonical {
		t.Fatalf("NATURAL_SPEED should resolve like NATURAL, got %+v vs %+v", alias, canonical)
	}
}

func TestDisplayInfoOf_UnknownTagFallback(t *testing.T) {
	info := DisplayInfoOf("FUTURE_SEGMENT")
	if info.Color != "#64748B" {
		t.Errorf("unknown tag should use neutral color, got %s", info.Color)
	}
	if info.HasAlternateView {
		t.Errorf("unknown tag should not have an alternate view")
	}
}

func TestDisplayInfoOf_CaseInsensitive(t *testing.T) {
	if DisplayInfoOf("quiz") != DisplayInfoOf("QUIZ") {
		t.Errorf("tag lookup should be case insensitive")
	}
}

func TestFormatSegments_Presets(t *testing.T) {
	quick := FormatSegments(FormatQuickDialogue)
	if len(quick) != 2 || quick[0] != SegmentWelcome || quick[1] != SegmentNaturalSpeed {
		t.Fatalf("unexpected quick_dialogue preset: %v", quick)
	}

	classroom := FormatSegments(FormatClassroomStyle)
	want := []SegmentType{SegmentWelcome, SegmentVocabulary, SegmentSlowDialogue, SegmentBreakdown, SegmentNaturalSpeed, SegmentQuiz}
	if len(classroom) != len(want) {
		t.Fatalf("unexpected classroom_style length: %v", classroom)
	}
	for i := range want {
		if classroom[i] != want[i] {
			t.Errorf("classroom_style[%d] = %s, want %s", i, classroom[i], want[i])
		}
	}

	custom := FormatSegments(FormatCustom)
	if len(custom) != 7 {
		t.Errorf("custom preset should contain all 7 segment types, got %d", len(custom))
	}
}

func TestFormatSegments_UnknownFormatFallsBack(t *testing.T) {
	got := FormatSegments(LessonFormat("bogus"))
	if len(got) != 2 || got[0] != SegmentWelcome {
		t.Fatalf("unknown format should fall back to quick dialogue, got %v", got)
	}
}

func TestFormatSegments_ReturnsCopy(t *testing.T) {
	first := FormatSegments(FormatQuickDialogue)
	first[0] = SegmentQuiz
	second := FormatSegments(FormatQuickDialogue)
	if second[0] != SegmentWelcome {
		t.Fatalf("preset was mutated through returned slice")
	}
}

func TestSegmentTag(t *testing.T) {
	if SegmentNaturalSpeed.Tag() != "NATURAL" {
		t.Errorf("natural_speed tag = %s, want NATURAL", SegmentNaturalSpeed.Tag())
	}
	if SegmentVocabulary.Tag() != "VOCAB" {
		t.Errorf("vocabulary tag = %s, want VOCAB", SegmentVocabulary.Tag())
	}
}
