package entities

import "strings"

// ParsedLine is one dialogue record parsed from the generation backend,
// before any timing or audio is attached.
type ParsedLine struct {
	SpeakerID   int    `json:"speaker_id"`
	Text        string `json:"text"`
	SpokenText  string `json:"spoken_text,omitempty"`
	Emotion     string `json:"emotion,omitempty"`
	SegmentType string `json:"segment_type"`
}

// DialogueLine is the atomic unit of both script and audio. Times are
// milliseconds relative to the lesson's single continuous timeline.
// Lines are immutable once generated; a new generation replaces the list.
type DialogueLine struct {
	ID          string  `json:"id"`
	SpeakerID   int     `json:"speaker_id"`
	Text        string  `json:"text"`
	SpokenText  string  `json:"spoken_text,omitempty"`
	Emotion     string  `json:"emotion,omitempty"`
	SegmentType string  `json:"segment_type"`
	AudioURI    string  `json:"audio_uri,omitempty"`
	StartTime   int64   `json:"start_time"`
	EndTime     int64   `json:"end_time"`
	Duration    int64   `json:"duration"`
	// SectionAudioStart is the offset in seconds within a shared section
	// audio file, when section-based audio is in use.
	SectionAudioStart float64 `json:"section_audio_start,omitempty"`
}

// Spoken returns the text that is actually vocalized for this line.
func (l DialogueLine) Spoken() string {
	if l.SpokenText != "" {
		return l.SpokenText
	}
	return l.Text
}

// WordCount counts whitespace-separated words in the spoken text.
func (l DialogueLine) WordCount() int {
	return len(strings.Fields(l.Spoken()))
}

// GeneratedDialogue is the full lesson artifact produced by one generation
// call. TotalDuration is milliseconds.
type GeneratedDialogue struct {
	Config        *ConversationConfig `json:"config"`
	Lines         []DialogueLine      `json:"lines"`
	TotalDuration int64               `json:"total_duration"`
}

// SegmentInfo describes one contiguous run of lines sharing a segment tag.
// Derived from the line list, never stored.
type SegmentInfo struct {
	Type       string `json:"type"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Label      string `json:"label"`
	Color      string `json:"color"`
}

// SegmentRuns partitions the line list into contiguous runs of the same
// normalized segment tag, ordered by start index. The runs cover every
// index exactly once.
func SegmentRuns(lines []DialogueLine) []SegmentInfo {
	var runs []SegmentInfo
	for i := 0; i < len(lines); {
		tag := NormalizeTag(lines[i].SegmentType)
		j := i + 1
		for j < len(lines) && NormalizeTag(lines[j].SegmentType) == tag {
			j++
		}
		info := DisplayInfoOf(tag)
		runs = append(runs, SegmentInfo{
			Type:       tag,
			StartIndex: i,
			EndIndex:   j - 1,
			Label:      info.Label,
			Color:      info.Color,
		})
		i = j
	}
	return runs
}
