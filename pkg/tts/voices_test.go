package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lessonforge/lessonforge/pkg/config"
)

func TestVoiceByName_KnownAndFallback(t *testing.T) {
	if got := VoiceByName("Maria", 1, ProviderOpenAI); got != "nova" {
		t.Errorf("Maria voice = %s, want nova", got)
	}
	if got := VoiceByName("Jordan", 2, ProviderOpenAI); got != "alloy" {
		t.Errorf("Jordan voice = %s, want alloy", got)
	}
	if got := VoiceByName("Unknown", 1, ProviderOpenAI); got != "nova" {
		t.Errorf("unknown speaker 1 should fall back to nova, got %s", got)
	}
	if got := VoiceByName("Unknown", 2, ProviderOpenAI); got != "alloy" {
		t.Errorf("unknown speaker 2 should fall back to alloy, got %s", got)
	}
	if got := VoiceByName("Maria", 1, ProviderElevenLabs); got != "EXAVITQu4vr4xnSDxMaL" {
		t.Errorf("Maria elevenlabs voice = %s, want Bella", got)
	}
	if got := VoiceByName("Unknown", 2, ProviderElevenLabs); got != "onwK4e9ZLuTAKqWW03F9" {
		t.Errorf("unknown speaker 2 should fall back to Daniel, got %s", got)
	}
}

func TestResolveVoices_CollisionGetsFallback(t *testing.T) {
	// Kevin (speaker 2) maps to echo, Alex (speaker 1) maps to echo too.
	v1, v2 := ResolveVoices("Alex", "Kevin", ProviderOpenAI)
	if v1 != "echo" {
		t.Fatalf("speaker 1 voice = %s, want echo", v1)
	}
	if v2 != "alloy" {
		t.Errorf("collision should move speaker 2 to alloy, got %s", v2)
	}
}

func TestResolveVoices_ElevenLabsCollision(t *testing.T) {
	// Sarah and Nina both map to Freya; speaker 2 moves to Daniel.
	v1, v2 := ResolveVoices("Sarah", "Nina", ProviderElevenLabs)
	if v1 != "jsCqWAovK2LkecY7zXl4" {
		t.Fatalf("speaker 1 voice = %s, want Freya", v1)
	}
	if v2 != "onwK4e9ZLuTAKqWW03F9" {
		t.Errorf("collision should move speaker 2 to Daniel, got %s", v2)
	}
	if v1 == v2 {
		t.Errorf("resolved voices must differ")
	}
}

func TestResolveVoices_NoCollisionKeepsVoices(t *testing.T) {
	v1, v2 := ResolveVoices("Maria", "Jordan", ProviderOpenAI)
	if v1 != "nova" || v2 != "alloy" {
		t.Errorf("voices = %s/%s, want nova/alloy", v1, v2)
	}
}

func TestEstimateDurationMs(t *testing.T) {
	// 150 words at 150 wpm is exactly one minute.
	words := ""
	for i := 0; i < 150; i++ {
		words += "word "
	}
	if got := EstimateDurationMs(words); got != 60000 {
		t.Errorf("150 words = %dms, want 60000", got)
	}

	// Short text clamps to the 1.5s floor.
	if got := EstimateDurationMs("Hi there"); got != 1500 {
		t.Errorf("short text = %dms, want 1500", got)
	}
}

func TestOpenAISynthesize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["voice"] != "nova" {
			t.Errorf("voice = %s, want nova", payload["voice"])
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	result, err := client.Synthesize(context.Background(), "Hello, can I get a latte please today?", "nova")
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if string(result.Audio) != "mp3-bytes" {
		t.Errorf("unexpected audio payload %q", result.Audio)
	}
	if result.DurationMs < 1500 {
		t.Errorf("duration = %d, want at least 1500", result.DurationMs)
	}
}

func TestElevenLabsSynthesize(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/text-to-speech/voice-123" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer ts.Close()

	client := NewElevenLabsClient(&config.ElevenLabsConfig{APIKey: "test-key", BaseURL: ts.URL})
	result, err := client.Synthesize(context.Background(), "Hola", "voice-123")
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if string(result.Audio) != "mp3-bytes" {
		t.Errorf("unexpected audio payload %q", result.Audio)
	}
}
