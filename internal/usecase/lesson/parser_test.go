package lesson

import (
	"testing"
)

func TestParseDialogue_FullLine(t *testing.T) {
	raw := "1|WELCOME|[warm]|Hello everyone! I'm Alex."
	lines := ParseDialogue(raw)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.SpeakerID != 1 {
		t.Errorf("speaker = %d, want 1", l.SpeakerID)
	}
	if l.SegmentType != "WELCOME" {
		t.Errorf("segment = %s, want WELCOME", l.SegmentType)
	}
	if l.Emotion != "warm" {
		t.Errorf("emotion = %s, want warm", l.Emotion)
	}
	if l.Text != "Hello everyone! I'm Alex." {
		t.Errorf("text = %q", l.Text)
	}
}

func TestParseDialogue_PipeInContent(t *testing.T) {
	raw := `1|VOCAB||Key word: "menu" - a list | of dishes`
	lines := ParseDialogue(raw)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != `Key word: "menu" - a list | of dishes` {
		t.Errorf("pipe in content not preserved: %q", lines[0].Text)
	}
	if lines[0].Emotion != "" {
		t.Errorf("emotion should be empty, got %q", lines[0].Emotion)
	}
}

func TestParseDialogue_ShortForms(t *testing.T) {
	raw := "2|[friendly]|Buenos días\n1|Un café, por favor"
	lines := ParseDialogue(raw)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].SpeakerID != 2 || lines[0].Emotion != "friendly" || lines[0].Text != "Buenos días" {
		t.Errorf("three-part line parsed wrong: %+v", lines[0])
	}
	if lines[0].SegmentType != "" {
		t.Errorf("three-part line should have no segment, got %q", lines[0].SegmentType)
	}
	if lines[1].SpeakerID != 1 || lines[1].Text != "Un café, por favor" {
		t.Errorf("two-part line parsed wrong: %+v", lines[1])
	}
}

func TestParseDialogue_SkipsEmptyAndBare(t *testing.T) {
	raw := "\n\n1|WELCOME||   \nno pipes here\n2|Hello\n"
	lines := ParseDialogue(raw)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Hello" {
		t.Errorf("text = %q, want Hello", lines[0].Text)
	}
}

func TestParseDialogue_NonOneSpeakerIsTwo(t *testing.T) {
	lines := ParseDialogue("3|WELCOME||Hi there")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].SpeakerID != 2 {
		t.Errorf("unrecognized speaker should map to 2, got %d", lines[0].SpeakerID)
	}
}
