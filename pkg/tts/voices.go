package tts

// OpenAI TTS voices mapped by speaker name.
// Available voices: alloy, echo, fable, onyx, nova, shimmer
var openAISpeaker1Voices = map[string]string{
	"Alex":   "echo",    // male
	"Maria":  "nova",    // female
	"James":  "onyx",    // male deep
	"Sarah":  "shimmer", // female
	"David":  "echo",    // male
	"Emma":   "nova",    // female
	"Carlos": "onyx",    // male
	"Yuki":   "shimmer", // female
	"Priya":  "nova",    // female
	"Omar":   "onyx",    // male
}

var openAISpeaker2Voices = map[string]string{
	"Jordan":  "alloy",   // neutral
	"Lisa":    "shimmer", // female
	"Michael": "onyx",    // male deep
	"Ana":     "nova",    // female
	"Kevin":   "echo",    // male
	"Nina":    "shimmer", // female
	"Hassan":  "alloy",   // neutral
	"Mei":     "nova",    // female
	"Ben":     "echo",    // male
	"Sofia":   "shimmer", // female
}

// ElevenLabs voice IDs, pre-made multilingual voices
var elevenLabsSpeaker1Voices = map[string]string{
	"Alex":   "pNInz6obpgDQGcFmaJgB", // Adam - male, deep
	"Maria":  "EXAVITQu4vr4xnSDxMaL", // Bella - female, warm
	"James":  "VR6AewLTigWG4xSOukaG", // Arnold - male, authoritative
	"Sarah":  "jsCqWAovK2LkecY7zXl4", // Freya - female, expressive
	"David":  "pNInz6obpgDQGcFmaJgB", // Adam
	"Emma":   "EXAVITQu4vr4xnSDxMaL", // Bella
	"Carlos": "VR6AewLTigWG4xSOukaG", // Arnold
	"Yuki":   "jsCqWAovK2LkecY7zXl4", // Freya
	"Priya":  "EXAVITQu4vr4xnSDxMaL", // Bella
	"Omar":   "pNInz6obpgDQGcFmaJgB", // Adam
}

var elevenLabsSpeaker2Voices = map[string]string{
	"Jordan":  "onwK4e9ZLuTAKqWW03F9", // Daniel - male, calm
	"Lisa":    "XB0fDUnXU5powFXDhCwa", // Charlotte - female, sophisticated
	"Michael": "TxGEqnHWrfWFTfGW9XjX", // Josh - male, young
	"Ana":     "XB0fDUnXU5powFXDhCwa", // Charlotte
	"Kevin":   "onwK4e9ZLuTAKqWW03F9", // Daniel
	"Nina":    "jsCqWAovK2LkecY7zXl4", // Freya
	"Hassan":  "TxGEqnHWrfWFTfGW9XjX", // Josh
	"Mei":     "XB0fDUnXU5powFXDhCwa", // Charlotte
	"Ben":     "onwK4e9ZLuTAKqWW03F9", // Daniel
	"Sofia":   "jsCqWAovK2LkecY7zXl4", // Freya
}

// Fallback voices if name not found
const (
	openAIFallbackSpeaker1 = "nova"
	openAIFallbackSpeaker2 = "alloy"

	elevenLabsFallbackSpeaker1 = "EXAVITQu4vr4xnSDxMaL" // Bella
	elevenLabsFallbackSpeaker2 = "onwK4e9ZLuTAKqWW03F9" // Daniel
)

// VoiceByName resolves a speaker name to a provider voice identifier,
// falling back to a per-speaker default when the name isn't mapped.
func VoiceByName(name string, speakerNumber int, provider Provider) string {
	if provider == ProviderElevenLabs {
		if speakerNumber == 1 {
			if v, ok := elevenLabsSpeaker1Voices[name]; ok {
				return v
			}
			return elevenLabsFallbackSpeaker1
		}
		if v, ok := elevenLabsSpeaker2Voices[name]; ok {
			return v
		}
		return elevenLabsFallbackSpeaker2
	}

	// OpenAI
	if speakerNumber == 1 {
		if v, ok := openAISpeaker1Voices[name]; ok {
			return v
		}
		return openAIFallbackSpeaker1
	}
	if v, ok := openAISpeaker2Voices[name]; ok {
		return v
	}
	return openAIFallbackSpeaker2
}

// ResolveVoices picks voices for both speakers and guarantees they differ.
// On a collision speaker 2 takes the provider's fallback voice; if speaker 1
// already holds that fallback, speaker 2 takes a third distinct voice.
func ResolveVoices(speaker1Name, speaker2Name string, provider Provider) (string, string) {
	voice1 := VoiceByName(speaker1Name, 1, provider)
	voice2 := VoiceByName(speaker2Name, 2, provider)

	if voice1 == voice2 {
		if provider == ProviderElevenLabs {
			voice2 = elevenLabsFallbackSpeaker2
			if voice1 == voice2 {
				voice2 = "TxGEqnHWrfWFTfGW9XjX" // Josh
			}
		} else {
			voice2 = openAIFallbackSpeaker2
			if voice1 == voice2 {
				voice2 = "echo"
			}
		}
	}

	return voice1, voice2
}
