package audiocache

import (
	"fmt"
	"strings"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// CacheKey builds the deterministic identity of one section's audio. Two
// requests for the same language, section, location and speaker pair always
// produce the same key, so synthesized audio is shared across devices.
func CacheKey(language, section, location, speakerA, speakerB string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	sec := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(section)), "_", "")
	loc := strings.ToLower(strings.TrimSpace(location))
	loc = strings.ReplaceAll(loc, "_", "")
	loc = strings.ReplaceAll(loc, " ", "")
	spkA := strings.ToLower(strings.TrimSpace(speakerA))
	spkB := strings.ToLower(strings.TrimSpace(speakerB))

	return fmt.Sprintf("%s_%s_%s_%s_%s", lang, sec, loc, spkA, spkB)
}

// ObjectPath returns the storage object name for a section's audio file.
func ObjectPath(language, location, cacheKey string) string {
	return fmt.Sprintf("audio-cache/%s/%s/%s.mp3", language, location, cacheKey)
}

// LineTimestamp places one dialogue line on the shared section audio
// timeline. Start and End are seconds from the beginning of the file.
type LineTimestamp struct {
	Text      string  `json:"text"`
	SpeakerID int     `json:"speaker_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
	Emotion   string  `json:"emotion,omitempty"`
}

const (
	wordsPerMinute       = 150.0
	minLineSeconds       = 1.5
	pauseBetweenSpeakers = 0.3
)

// ComputeTimestamps estimates per-line positions within a concatenated
// section audio file from spoken word counts at a 150 words-per-minute
// reading rate.
func ComputeTimestamps(lines []entities.DialogueLine) []LineTimestamp {
	timestamps := make([]LineTimestamp, 0, len(lines))
	var currentTime float64

	for _, line := range lines {
		duration := float64(line.WordCount()) / wordsPerMinute * 60
		if duration < minLineSeconds {
			duration = minLineSeconds
		}

		timestamps = append(timestamps, LineTimestamp{
			Text:      line.Text,
			SpeakerID: line.SpeakerID,
			Start:     currentTime,
			End:       currentTime + duration,
			Emotion:   line.Emotion,
		})
		currentTime += duration + pauseBetweenSpeakers
	}

	return timestamps
}

// TotalDurationMs returns the playable length implied by the timestamps.
func TotalDurationMs(timestamps []LineTimestamp) int64 {
	if len(timestamps) == 0 {
		return 0
	}
	return int64(timestamps[len(timestamps)-1].End * 1000)
}
