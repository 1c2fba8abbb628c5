package playback

import (
	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// TranscriptSet tracks which segments the user flipped to literal-transcript
// view. Membership is per segment tag and never auto-reverts.
type TranscriptSet map[string]struct{}

func NewTranscriptSet() TranscriptSet {
	return make(TranscriptSet)
}

// Has reports whether the segment is in transcript view.
func (t TranscriptSet) Has(tag string) bool {
	_, ok := t[entities.NormalizeTag(tag)]
	return ok
}

// Toggle flips a segment between content and transcript view. Segments
// without an alternate pedagogical view have nothing to toggle; the call is
// a no-op and reports false.
func (t TranscriptSet) Toggle(tag string) bool {
	normalized := entities.NormalizeTag(tag)
	if !entities.DisplayInfoOf(normalized).HasAlternateView {
		return false
	}
	if _, ok := t[normalized]; ok {
		delete(t, normalized)
	} else {
		t[normalized] = struct{}{}
	}
	return true
}

// EffectiveActiveIndex computes which visible card should highlight for the
// line at audioIndex. Narration lines in alternate-view segments play audio
// without rendering their own card, so the highlight snaps to the nearest
// rendering line in the same segment run: ahead first (the card being
// introduced), then behind, then the audio index itself.
//
// Pure in (lines, audioIndex, transcripts); recomputed on every index
// change, never incrementally maintained.
func EffectiveActiveIndex(lines []entities.DialogueLine, audioIndex int, transcripts TranscriptSet) int {
	if len(lines) == 0 {
		return -1
	}
	if audioIndex < 0 {
		audioIndex = 0
	}
	if audioIndex >= len(lines) {
		audioIndex = len(lines) - 1
	}

	current := &lines[audioIndex]
	currentTag := normalizedTag(current)

	// Transcript view renders every line 1:1.
	if transcripts.Has(currentTag) {
		return audioIndex
	}

	if RendersInContentMode(current) {
		return audioIndex
	}

	// Look ahead within the same segment run for the card the narration is
	// introducing.
	for i := audioIndex + 1; i < len(lines); i++ {
		if normalizedTag(&lines[i]) != currentTag {
			break
		}
		if RendersInContentMode(&lines[i]) {
			return i
		}
	}

	// No card ahead; fall back to the most recent one behind.
	for i := audioIndex - 1; i >= 0; i-- {
		if normalizedTag(&lines[i]) != currentTag {
			break
		}
		if RendersInContentMode(&lines[i]) {
			return i
		}
	}

	// Pure narration run with no cards at all: keep the audio index.
	return audioIndex
}

// SegmentAt returns the segment run containing the given line index, using
// the partition computed from the line list.
func SegmentAt(lines []entities.DialogueLine, index int) (entities.SegmentInfo, bool) {
	for _, run := range entities.SegmentRuns(lines) {
		if index >= run.StartIndex && index <= run.EndIndex {
			return run, true
		}
	}
	return entities.SegmentInfo{}, false
}
