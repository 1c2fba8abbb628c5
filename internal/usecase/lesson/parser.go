package lesson

import (
	"regexp"
	"strings"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

var emotionPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// ParseDialogue converts the model's pipe-delimited output into parsed lines.
// Supported line shapes:
//
//	speaker|SEGMENT|[emotion]|text
//	speaker|[emotion]|text
//	speaker|text
//
// Lines with no usable text are dropped.
func ParseDialogue(raw string) []entities.ParsedLine {
	var lines []entities.ParsedLine

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		var parsed entities.ParsedLine

		switch {
		case len(parts) >= 4:
			parsed.SpeakerID = parseSpeakerID(parts[0])
			parsed.SegmentType = strings.TrimSpace(parts[1])
			parsed.Emotion = parseEmotion(parts[2])
			// Content may itself contain pipes; rejoin the remainder.
			parsed.Text = strings.TrimSpace(strings.Join(parts[3:], "|"))
		case len(parts) == 3:
			parsed.SpeakerID = parseSpeakerID(parts[0])
			parsed.Emotion = parseEmotion(parts[1])
			parsed.Text = strings.TrimSpace(parts[2])
		case len(parts) == 2:
			parsed.SpeakerID = parseSpeakerID(parts[0])
			parsed.Text = strings.TrimSpace(parts[1])
		default:
			continue
		}

		if parsed.Text == "" {
			continue
		}
		lines = append(lines, parsed)
	}

	return lines
}

func parseSpeakerID(s string) int {
	if strings.TrimSpace(s) == "1" {
		return 1
	}
	return 2
}

func parseEmotion(s string) string {
	if m := emotionPattern.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
