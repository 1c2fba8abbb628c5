package audiocache

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/internal/infrastructure/cache"
	"github.com/lessonforge/lessonforge/pkg/tts"
)

// SharedCache is the network-shared byte cache tier.
type SharedCache interface {
	Set(ctx context.Context, key string, data []byte, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

// ObjectStore is the durable audio tier.
type ObjectStore interface {
	UploadAudio(ctx context.Context, objectName string, data []byte) error
	DownloadAudio(ctx context.Context, objectName string) ([]byte, error)
	ObjectExists(ctx context.Context, objectName string) (bool, error)
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// SectionRequest identifies one lesson section and carries the lines to
// synthesize on a total cache miss.
type SectionRequest struct {
	Language string
	Section  string
	Location string
	SpeakerA string
	SpeakerB string
	Lines    []entities.DialogueLine
}

// SectionAudio is the cache lookup result. Lines are the request's lines
// with SectionAudioStart stamped so the player can seek inside the single
// shared section file.
type SectionAudio struct {
	CacheKey   string                  `json:"cache_key"`
	Audio      []byte                  `json:"-"`
	AudioURL   string                  `json:"audio_url,omitempty"`
	Lines      []entities.DialogueLine `json:"lines"`
	Timestamps []LineTimestamp         `json:"timestamps"`
	DurationMs int64                   `json:"duration_ms"`
	Cached     bool                    `json:"is_cached"`
}

// annotateLines copies the request lines and stamps each with its offset
// within the section file.
func annotateLines(lines []entities.DialogueLine, timestamps []LineTimestamp) []entities.DialogueLine {
	out := make([]entities.DialogueLine, len(lines))
	copy(out, lines)
	for i := range out {
		if i < len(timestamps) {
			out[i].SectionAudioStart = timestamps[i].Start
		}
	}
	return out
}

const presignedURLExpiry = 24 * time.Hour

// Service layers the three section audio tiers: process memory, shared
// Redis, durable object storage. GetSectionAudio falls through the tiers
// and synthesizes on a total miss; lower tiers are backfilled on the way
// out so the next device hits a warmer one.
type Service struct {
	memory  *cache.MemoryStore
	shared  SharedCache
	storage ObjectStore
	synth   tts.Synthesizer
	ttl     time.Duration
	logger  *zap.Logger
}

// NewService creates a section audio cache. shared may be nil when Redis is
// unavailable; the service then runs on memory and object storage alone.
func NewService(memory *cache.MemoryStore, shared SharedCache, store ObjectStore, synth tts.Synthesizer, ttl time.Duration, logger *zap.Logger) *Service {
	if memory == nil {
		memory = cache.NewMemoryStore()
	}
	return &Service{
		memory:  memory,
		shared:  shared,
		storage: store,
		synth:   synth,
		ttl:     ttl,
		logger:  logger,
	}
}

// Lookup checks the cache tiers without generating. Returns ErrAudioNotCached
// when no tier holds the section.
func (s *Service) Lookup(ctx context.Context, req *SectionRequest) (*SectionAudio, error) {
	key := CacheKey(req.Language, req.Section, req.Location, req.SpeakerA, req.SpeakerB)

	result, err := s.fromTiers(ctx, key, req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.ErrAudioNotCached(key)
	}
	return result, nil
}

// GetSectionAudio returns the section's audio, synthesizing and caching it
// when no tier holds it yet.
func (s *Service) GetSectionAudio(ctx context.Context, req *SectionRequest) (*SectionAudio, error) {
	key := CacheKey(req.Language, req.Section, req.Location, req.SpeakerA, req.SpeakerB)

	result, err := s.fromTiers(ctx, key, req)
	if err != nil {
		return nil, err
	}
	if result != nil {
		return result, nil
	}

	if s.logger != nil {
		s.logger.Info("🔄 Section audio cache miss, synthesizing",
			zap.String("cache_key", key),
			zap.Int("lines", len(req.Lines)))
	}
	return s.generate(ctx, key, req)
}

// fromTiers walks memory, shared cache and object storage in order. A nil
// result with nil error means a clean miss on every tier.
func (s *Service) fromTiers(ctx context.Context, key string, req *SectionRequest) (*SectionAudio, error) {
	if data, ok := s.memory.Get(key); ok {
		return s.hit(ctx, key, req, data, "memory"), nil
	}

	if s.shared != nil {
		data, ok, err := s.shared.Get(ctx, key)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Shared audio cache read failed", zap.String("cache_key", key), zap.Error(err))
			}
		} else if ok {
			s.memory.Set(key, data, s.ttl)
			return s.hit(ctx, key, req, data, "redis"), nil
		}
	}

	if s.storage != nil {
		objectName := ObjectPath(req.Language, req.Location, key)
		exists, err := s.storage.ObjectExists(ctx, objectName)
		if err != nil {
			return nil, errors.ErrStorageFailed("stat section audio", err)
		}
		if exists {
			data, err := s.storage.DownloadAudio(ctx, objectName)
			if err != nil {
				return nil, errors.ErrStorageFailed("download section audio", err)
			}
			s.backfill(ctx, key, data)
			return s.hit(ctx, key, req, data, "storage"), nil
		}
	}

	return nil, nil
}

func (s *Service) hit(ctx context.Context, key string, req *SectionRequest, data []byte, tier string) *SectionAudio {
	if s.logger != nil {
		s.logger.Info("✅ Section audio cache hit",
			zap.String("cache_key", key),
			zap.String("tier", tier))
	}

	timestamps := ComputeTimestamps(req.Lines)
	return &SectionAudio{
		CacheKey:   key,
		Audio:      data,
		AudioURL:   s.presign(ctx, req, key),
		Lines:      annotateLines(req.Lines, timestamps),
		Timestamps: timestamps,
		DurationMs: TotalDurationMs(timestamps),
		Cached:     true,
	}
}

// generate synthesizes each line with its speaker's voice and concatenates
// the MP3 payloads into one section file.
func (s *Service) generate(ctx context.Context, key string, req *SectionRequest) (*SectionAudio, error) {
	if len(req.Lines) == 0 {
		return nil, errors.ErrInvalidArgument("section has no dialogue lines")
	}
	if s.synth == nil {
		return nil, errors.ErrAudioNotCached(key)
	}

	voice1, voice2 := tts.ResolveVoices(req.SpeakerA, req.SpeakerB, s.synth.Provider())

	var audio []byte
	for i := range req.Lines {
		line := &req.Lines[i]

		voice := voice1
		if line.SpeakerID != 1 {
			voice = voice2
		}

		result, err := s.synth.Synthesize(ctx, line.Spoken(), voice)
		if err != nil {
			return nil, errors.ErrSynthesisFailed(string(s.synth.Provider()), err)
		}
		audio = append(audio, result.Audio...)
	}

	if s.storage != nil {
		objectName := ObjectPath(req.Language, req.Location, key)
		if err := s.storage.UploadAudio(ctx, objectName, audio); err != nil {
			return nil, errors.ErrStorageFailed("upload section audio", err)
		}
	}
	s.backfill(ctx, key, audio)

	if s.logger != nil {
		s.logger.Info("✅ Section audio generated",
			zap.String("cache_key", key),
			zap.Int("bytes", len(audio)))
	}

	timestamps := ComputeTimestamps(req.Lines)
	return &SectionAudio{
		CacheKey:   key,
		Audio:      audio,
		AudioURL:   s.presign(ctx, req, key),
		Lines:      annotateLines(req.Lines, timestamps),
		Timestamps: timestamps,
		DurationMs: TotalDurationMs(timestamps),
		Cached:     false,
	}, nil
}

// backfill writes audio into the fast tiers. Failures are logged, not
// returned; the audio itself is already safe.
func (s *Service) backfill(ctx context.Context, key string, data []byte) {
	s.memory.Set(key, data, s.ttl)
	if s.shared != nil {
		if err := s.shared.Set(ctx, key, data, s.ttl); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Shared audio cache write failed", zap.String("cache_key", key), zap.Error(err))
		}
	}
}

func (s *Service) presign(ctx context.Context, req *SectionRequest, key string) string {
	if s.storage == nil {
		return ""
	}
	url, err := s.storage.GetFileURL(ctx, ObjectPath(req.Language, req.Location, key), presignedURLExpiry)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Presigned URL generation failed", zap.String("cache_key", key), zap.Error(err))
		}
		return ""
	}
	return url
}
