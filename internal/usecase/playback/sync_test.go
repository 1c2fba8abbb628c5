package playback

import (
	"testing"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func vocabLesson() []entities.DialogueLine {
	return []entities.DialogueLine{
		tagged(entities.TagWelcome, "Welcome to the lesson!"),
		tagged(entities.TagVocab, "Let's learn some words!"),
		tagged(entities.TagVocab, `"coffee" - a hot drink`),
		tagged(entities.TagVocab, "Repeat after me."),
		tagged(entities.TagVocab, `"milk" - leche`),
		tagged(entities.TagNatural, "Hola, un cafe por favor."),
	}
}

func TestEffectiveActiveIndex_SnapsForwardToNextCard(t *testing.T) {
	lines := vocabLesson()
	ts := NewTranscriptSet()

	// Narration at index 1 introduces the card at index 2.
	if got := EffectiveActiveIndex(lines, 1, ts); got != 2 {
		t.Errorf("effective index = %d, want 2", got)
	}
	// Rendering lines map to themselves.
	if got := EffectiveActiveIndex(lines, 2, ts); got != 2 {
		t.Errorf("effective index = %d, want 2", got)
	}
}

func TestEffectiveActiveIndex_FallsBackToPreviousCard(t *testing.T) {
	lines := []entities.DialogueLine{
		tagged(entities.TagVocab, `"coffee" - a hot drink`),
		tagged(entities.TagVocab, "Well done."),
		tagged(entities.TagVocab, "Let's keep that word in mind."),
		tagged(entities.TagVocab, "Moving on soon."),
		tagged(entities.TagNatural, "Hola."),
	}
	ts := NewTranscriptSet()

	// Three trailing narration lines all highlight the last card behind.
	for _, idx := range []int{1, 2, 3} {
		if got := EffectiveActiveIndex(lines, idx, ts); got != 0 {
			t.Errorf("effective index at %d = %d, want 0", idx, got)
		}
	}
}

func TestEffectiveActiveIndex_StaysWithinSegmentRun(t *testing.T) {
	lines := []entities.DialogueLine{
		tagged(entities.TagWelcome, "Welcome!"),
		tagged(entities.TagVocab, "Listen up."),
		tagged(entities.TagNatural, "Hola."),
	}
	ts := NewTranscriptSet()

	// The vocab narration has no card in its own run; neither neighbor run
	// may be borrowed from, so the index maps to itself.
	if got := EffectiveActiveIndex(lines, 1, ts); got != 1 {
		t.Errorf("effective index = %d, want 1", got)
	}
}

func TestEffectiveActiveIndex_TranscriptViewIsIdentity(t *testing.T) {
	lines := vocabLesson()
	ts := NewTranscriptSet()
	if !ts.Toggle(entities.TagVocab) {
		t.Fatal("vocab should be toggleable")
	}

	for idx := 1; idx <= 4; idx++ {
		if got := EffectiveActiveIndex(lines, idx, ts); got != idx {
			t.Errorf("transcript view index at %d = %d, want identity", idx, got)
		}
	}
}

func TestEffectiveActiveIndex_Idempotent(t *testing.T) {
	lines := vocabLesson()
	ts := NewTranscriptSet()

	for idx := range lines {
		first := EffectiveActiveIndex(lines, idx, ts)
		if first < 0 || first >= len(lines) {
			t.Fatalf("effective index %d out of range", first)
		}
		// Re-applying to its own result is a fixed point.
		if second := EffectiveActiveIndex(lines, first, ts); second != first {
			t.Errorf("index %d: effective(%d) = %d, not idempotent", idx, first, second)
		}
	}
}

func TestEffectiveActiveIndex_ClampsAndHandlesEmpty(t *testing.T) {
	lines := vocabLesson()
	ts := NewTranscriptSet()

	if got := EffectiveActiveIndex(lines, -5, ts); got < 0 || got >= len(lines) {
		t.Errorf("negative index mapped to %d, want in range", got)
	}
	if got := EffectiveActiveIndex(lines, 99, ts); got < 0 || got >= len(lines) {
		t.Errorf("overflowing index mapped to %d, want in range", got)
	}
	if got := EffectiveActiveIndex(nil, 0, ts); got != -1 {
		t.Errorf("empty lines = %d, want -1", got)
	}
}

func TestTranscriptSet_Toggle(t *testing.T) {
	ts := NewTranscriptSet()

	if ts.Toggle(entities.TagNatural) {
		t.Error("natural dialogue has no alternate view")
	}
	if !ts.Toggle("vocab") {
		t.Error("toggle should accept lowercase tags")
	}
	if !ts.Has(entities.TagVocab) {
		t.Error("vocab should be in transcript view")
	}
	// Toggling twice restores content view.
	if !ts.Toggle(entities.TagVocab) {
		t.Error("second toggle should succeed")
	}
	if ts.Has(entities.TagVocab) {
		t.Error("vocab should be back in content view")
	}
}

func TestSegmentAt(t *testing.T) {
	lines := vocabLesson()

	runs := entities.SegmentRuns(lines)
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}

	// Runs partition the index space exactly once.
	next := 0
	for _, run := range runs {
		if run.StartIndex != next {
			t.Errorf("run %s starts at %d, want %d", run.Type, run.StartIndex, next)
		}
		next = run.EndIndex + 1
	}
	if next != len(lines) {
		t.Errorf("runs cover %d lines, want %d", next, len(lines))
	}

	seg, ok := SegmentAt(lines, 3)
	if !ok || seg.Type != entities.TagVocab {
		t.Errorf("segment at 3 = %+v, ok=%v", seg, ok)
	}
	if _, ok := SegmentAt(lines, 99); ok {
		t.Error("out of range index should not resolve a segment")
	}
}
