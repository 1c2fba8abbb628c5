package tts

import (
	"context"
	"strings"
)

// Provider selects the speech synthesis backend
type Provider string

const (
	ProviderOpenAI     Provider = "openai"
	ProviderElevenLabs Provider = "elevenlabs"
)

// Label returns the provider name shown in progress messages
func (p Provider) Label() string {
	if p == ProviderElevenLabs {
		return "ElevenLabs"
	}
	return "OpenAI"
}

// Result is one synthesized utterance. Audio holds the encoded payload and
// DurationMs the playable length; DurationMs may be an estimate when the
// provider does not report one.
type Result struct {
	Audio      []byte
	MimeType   string
	DurationMs int64
}

// Synthesizer converts text to speech with a provider voice identifier
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) (*Result, error)
	Provider() Provider
}

// EstimateDurationMs estimates spoken duration from word count at a reading
// rate of 150 words per minute, minimum 1.5 seconds.
func EstimateDurationMs(text string) int64 {
	wordCount := len(strings.Fields(text))
	estimated := int64(float64(wordCount) / 150 * 60 * 1000)
	if estimated < 1500 {
		return 1500
	}
	return estimated
}
