package audiocache

import (
	"testing"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func TestCacheKey_Normalization(t *testing.T) {
	key := CacheKey("Spanish", "SLOW_DIALOGUE", "Coffee Shop", " Maria ", "Jordan")
	want := "spanish_slowdialogue_coffeeshop_maria_jordan"
	if key != want {
		t.Errorf("key = %q, want %q", key, want)
	}

	// Same inputs in different casing and spacing collapse to one key.
	other := CacheKey("spanish", "slow_dialogue", "coffee_shop", "maria", "JORDAN")
	if other != key {
		t.Errorf("equivalent inputs produced different keys: %q vs %q", other, key)
	}
}

func TestCacheKey_DifferentSpeakersDiffer(t *testing.T) {
	a := CacheKey("es", "vocab", "market", "Maria", "Jordan")
	b := CacheKey("es", "vocab", "market", "Sarah", "Jordan")
	if a == b {
		t.Error("speaker change must change the key")
	}
}

func TestObjectPath(t *testing.T) {
	key := CacheKey("es", "vocab", "market", "maria", "jordan")
	path := ObjectPath("es", "market", key)
	want := "audio-cache/es/market/" + key + ".mp3"
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestComputeTimestamps(t *testing.T) {
	lines := []entities.DialogueLine{
		{Text: "Hola.", SpeakerID: 1},
		{Text: "Muy bien, gracias. Y tu, como estas hoy, amigo mio? Todo bien por aqui.", SpeakerID: 2},
	}
	ts := ComputeTimestamps(lines)
	if len(ts) != 2 {
		t.Fatalf("timestamps = %d, want 2", len(ts))
	}

	close := func(got, want float64) bool {
		diff := got - want
		return diff > -0.001 && diff < 0.001
	}

	// One word clamps to the 1.5s floor.
	if ts[0].Start != 0 || !close(ts[0].End, 1.5) {
		t.Errorf("first line = [%v, %v], want [0, 1.5]", ts[0].Start, ts[0].End)
	}
	// Next line starts after the 300ms speaker pause.
	if !close(ts[1].Start, 1.8) {
		t.Errorf("second line starts at %v, want 1.8", ts[1].Start)
	}
	// 14 words at 150 wpm is 5.6 seconds.
	if !close(ts[1].End-ts[1].Start, 5.6) {
		t.Errorf("second line duration = %v, want 5.6", ts[1].End-ts[1].Start)
	}

	if got := TotalDurationMs(ts); got < 7399 || got > 7401 {
		t.Errorf("total duration = %d ms, want about 7400", got)
	}
}

func TestComputeTimestamps_UsesSpokenText(t *testing.T) {
	lines := []entities.DialogueLine{
		{Text: "cafe", SpokenText: "cafe. cafe means coffee in this language", SpeakerID: 1},
	}
	ts := ComputeTimestamps(lines)
	// Seven spoken words, not the single display word.
	want := 7.0 / 150 * 60
	if diff := ts[0].End - want; diff < -0.001 || diff > 0.001 {
		t.Errorf("duration = %v, want %v", ts[0].End, want)
	}
	if ts[0].Text != "cafe" {
		t.Errorf("timestamp text should be the display text, got %q", ts[0].Text)
	}
}

func TestComputeTimestamps_Empty(t *testing.T) {
	if ts := ComputeTimestamps(nil); len(ts) != 0 {
		t.Errorf("timestamps = %d, want 0", len(ts))
	}
	if TotalDurationMs(nil) != 0 {
		t.Error("empty timestamps should total 0")
	}
}
