package audiocache

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/internal/infrastructure/cache"
	"github.com/lessonforge/lessonforge/pkg/tts"
)

type fakeSharedCache struct {
	data map[string][]byte
	sets int
}

func newFakeSharedCache() *fakeSharedCache {
	return &fakeSharedCache{data: make(map[string][]byte)}
}

func (f *fakeSharedCache) Set(ctx context.Context, key string, data []byte, expiration time.Duration) error {
	f.data[key] = data
	f.sets++
	return nil
}

func (f *fakeSharedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := f.data[key]
	return data, ok, nil
}

type fakeObjectStore struct {
	objects   map[string][]byte
	uploads   int
	downloads int
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) UploadAudio(ctx context.Context, objectName string, data []byte) error {
	f.objects[objectName] = data
	f.uploads++
	return nil
}

func (f *fakeObjectStore) DownloadAudio(ctx context.Context, objectName string) ([]byte, error) {
	data, ok := f.objects[objectName]
	if !ok {
		return nil, errors.New("no such object")
	}
	f.downloads++
	return data, nil
}

func (f *fakeObjectStore) ObjectExists(ctx context.Context, objectName string) (bool, error) {
	_, ok := f.objects[objectName]
	return ok, nil
}

func (f *fakeObjectStore) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}

type fakeSynth struct {
	calls  int
	voices []string
}

func (f *fakeSynth) Synthesize(ctx context.Context, text, voice string) (*tts.Result, error) {
	f.calls++
	f.voices = append(f.voices, voice)
	return &tts.Result{Audio: []byte(text + "|"), MimeType: "audio/mpeg", DurationMs: 1500}, nil
}

func (f *fakeSynth) Provider() tts.Provider {
	return tts.ProviderOpenAI
}

func sectionRequest() *SectionRequest {
	return &SectionRequest{
		Language: "es",
		Section:  "SLOW",
		Location: "coffee_shop",
		SpeakerA: "Maria",
		SpeakerB: "Jordan",
		Lines: []entities.DialogueLine{
			{Text: "Hola.", SpeakerID: 1},
			{Text: "Buenos dias.", SpeakerID: 2},
		},
	}
}

func TestGetSectionAudio_GeneratesOnTotalMiss(t *testing.T) {
	shared := newFakeSharedCache()
	store := newFakeObjectStore()
	synth := &fakeSynth{}
	svc := NewService(cache.NewMemoryStore(), shared, store, synth, time.Hour, nil)

	result, err := svc.GetSectionAudio(context.Background(), sectionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Cached {
		t.Error("fresh synthesis should not report cached")
	}
	if synth.calls != 2 {
		t.Errorf("synth calls = %d, want one per line", synth.calls)
	}
	// Speakers get distinct voices.
	if synth.voices[0] == synth.voices[1] {
		t.Errorf("both lines used voice %s", synth.voices[0])
	}
	if string(result.Audio) != "Hola.|Buenos dias.|" {
		t.Errorf("concatenated audio = %q", result.Audio)
	}
	if store.uploads != 1 {
		t.Errorf("uploads = %d, want 1", store.uploads)
	}
	if shared.sets != 1 {
		t.Errorf("shared cache writes = %d, want 1", shared.sets)
	}
	if len(result.Timestamps) != 2 {
		t.Errorf("timestamps = %d, want 2", len(result.Timestamps))
	}
	if result.AudioURL == "" {
		t.Error("expected a presigned URL")
	}
}

func TestGetSectionAudio_LinesCarrySectionOffsets(t *testing.T) {
	svc := NewService(cache.NewMemoryStore(), nil, newFakeObjectStore(), &fakeSynth{}, time.Hour, nil)

	req := sectionRequest()
	ctx := context.Background()
	result, err := svc.GetSectionAudio(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Lines) != len(req.Lines) {
		t.Fatalf("result lines = %d, want %d", len(result.Lines), len(req.Lines))
	}
	for i, line := range result.Lines {
		if line.SectionAudioStart != result.Timestamps[i].Start {
			t.Errorf("line %d offset = %v, want %v", i, line.SectionAudioStart, result.Timestamps[i].Start)
		}
	}
	if result.Lines[0].SectionAudioStart != 0 {
		t.Errorf("first line offset = %v, want 0", result.Lines[0].SectionAudioStart)
	}
	if result.Lines[1].SectionAudioStart <= result.Lines[0].SectionAudioStart {
		t.Error("offsets must increase along the section")
	}
	// The caller's lines stay untouched.
	if req.Lines[1].SectionAudioStart != 0 {
		t.Error("request lines must not be mutated")
	}

	// A cache hit stamps offsets the same way.
	hit, err := svc.GetSectionAudio(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit.Cached {
		t.Fatal("second call should hit the cache")
	}
	if hit.Lines[1].SectionAudioStart != result.Lines[1].SectionAudioStart {
		t.Error("cache hit offsets differ from the generated ones")
	}
}

func TestGetSectionAudio_MemoryHitSkipsLowerTiers(t *testing.T) {
	shared := newFakeSharedCache()
	store := newFakeObjectStore()
	synth := &fakeSynth{}
	svc := NewService(cache.NewMemoryStore(), shared, store, synth, time.Hour, nil)

	req := sectionRequest()
	ctx := context.Background()
	if _, err := svc.GetSectionAudio(ctx, req); err != nil {
		t.Fatalf("warmup failed: %v", err)
	}

	result, err := svc.GetSectionAudio(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Cached {
		t.Error("second call should hit the cache")
	}
	if synth.calls != 2 {
		t.Errorf("synth calls = %d, cache hit must not re-synthesize", synth.calls)
	}
	if store.downloads != 0 {
		t.Errorf("downloads = %d, memory hit must not touch storage", store.downloads)
	}
}

func TestGetSectionAudio_StorageHitBackfillsFastTiers(t *testing.T) {
	shared := newFakeSharedCache()
	store := newFakeObjectStore()
	synth := &fakeSynth{}

	req := sectionRequest()
	key := CacheKey(req.Language, req.Section, req.Location, req.SpeakerA, req.SpeakerB)
	store.objects[ObjectPath(req.Language, req.Location, key)] = []byte("existing-audio")

	svc := NewService(cache.NewMemoryStore(), shared, store, synth, time.Hour, nil)

	result, err := svc.GetSectionAudio(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Cached || string(result.Audio) != "existing-audio" {
		t.Errorf("result = cached %v audio %q", result.Cached, result.Audio)
	}
	if synth.calls != 0 {
		t.Error("storage hit must not synthesize")
	}
	if _, ok := shared.data[key]; !ok {
		t.Error("storage hit should backfill the shared cache")
	}
}

func TestLookup_MissReturnsAudioNotCached(t *testing.T) {
	svc := NewService(cache.NewMemoryStore(), newFakeSharedCache(), newFakeObjectStore(), &fakeSynth{}, time.Hour, nil)

	_, err := svc.Lookup(context.Background(), sectionRequest())
	if err == nil {
		t.Fatal("expected an error on a cold lookup")
	}
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.CodeAudioNotCached {
		t.Errorf("error = %v, want audio-not-cached", err)
	}
}

func TestGetSectionAudio_EmptyLines(t *testing.T) {
	svc := NewService(cache.NewMemoryStore(), nil, newFakeObjectStore(), &fakeSynth{}, time.Hour, nil)

	req := sectionRequest()
	req.Lines = nil
	if _, err := svc.GetSectionAudio(context.Background(), req); err == nil {
		t.Fatal("expected an error for a section with no lines")
	}
}
