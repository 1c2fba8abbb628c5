package lesson

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/adapter/repository"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/pkg/config"
	"github.com/lessonforge/lessonforge/pkg/tts"
)

// DialogueGenerator produces the raw pipe-delimited lesson script
type DialogueGenerator interface {
	GenerateDialogue(ctx context.Context, prompt string) (string, error)
}

// AudioStore persists synthesized line audio
type AudioStore interface {
	UploadAudio(ctx context.Context, objectName string, data []byte) error
}

// Service defines lesson generation orchestration methods
type Service interface {
	RequestLesson(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.LessonJob, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (*entities.LessonJob, error)
	GetLatestJob(ctx context.Context, deviceID string) (*entities.LessonJob, error)
	CancelJob(ctx context.Context, jobID uuid.UUID) error
	GetLesson(ctx context.Context, lessonID uuid.UUID) (*entities.Lesson, error)
	ListLessons(ctx context.Context, deviceID string, limit int) ([]entities.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID uuid.UUID) error
	GenerateInstant(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.Lesson, error)
	StartWorkerPool(ctx context.Context, workerCount int) error
	StopWorkerPool() error
}

type lessonService struct {
	lessonRepo          *repository.LessonRepository
	jobRepo             *repository.LessonJobRepository
	dialogueClient      DialogueGenerator
	synth               tts.Synthesizer
	audioStore          AudioStore
	bundled             *BundledRegistry
	cfg                 *config.Config
	logger              *zap.Logger
	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewLessonService constructs the lesson generation service
func NewLessonService(
	lessonRepo *repository.LessonRepository,
	jobRepo *repository.LessonJobRepository,
	dialogueClient DialogueGenerator,
	synth tts.Synthesizer,
	audioStore AudioStore,
	bundled *BundledRegistry,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	if bundled == nil {
		bundled = NewBundledRegistry()
	}
	return &lessonService{
		lessonRepo:     lessonRepo,
		jobRepo:        jobRepo,
		dialogueClient: dialogueClient,
		synth:          synth,
		audioStore:     audioStore,
		bundled:        bundled,
		cfg:            cfg,
		logger:         logger,
		workerStopChan: make(chan struct{}),
	}
}

// RequestLesson validates the config and enqueues a generation job
func (s *lessonService) RequestLesson(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.LessonJob, error) {
	if cfg == nil {
		return nil, errors.ErrInvalidArgument("conversation config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	job := entities.NewLessonJob(deviceID, *cfg)
	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create lesson job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📋 Lesson job queued",
			zap.String("job_id", job.ID.String()),
			zap.String("device_id", deviceID),
			zap.String("language", cfg.Language),
			zap.String("location", cfg.Location),
			zap.String("difficulty", string(cfg.Difficulty)),
		)
	}

	return job, nil
}

func (s *lessonService) GetJob(ctx context.Context, jobID uuid.UUID) (*entities.LessonJob, error) {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrLessonJobNotFound(jobID.String())
	}
	return job, nil
}

func (s *lessonService) GetLatestJob(ctx context.Context, deviceID string) (*entities.LessonJob, error) {
	job, err := s.jobRepo.GetLatestJobByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrLessonJobNotFound("latest")
	}
	return job, nil
}

func (s *lessonService) CancelJob(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobRepo.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return errors.ErrLessonJobNotFound(jobID.String())
	}
	return s.jobRepo.MarkJobAsCancelled(ctx, jobID)
}

func (s *lessonService) GetLesson(ctx context.Context, lessonID uuid.UUID) (*entities.Lesson, error) {
	lesson, err := s.lessonRepo.GetLessonByID(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, errors.ErrLessonNotFound(lessonID.String())
	}
	return lesson, nil
}

func (s *lessonService) ListLessons(ctx context.Context, deviceID string, limit int) ([]entities.Lesson, error) {
	return s.lessonRepo.ListLessonsByDevice(ctx, deviceID, limit)
}

func (s *lessonService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	return s.lessonRepo.DeleteLesson(ctx, lessonID)
}

// GenerateInstant builds a scripted lesson synchronously without audio and
// stores it. Intended for first-run and offline experiences.
func (s *lessonService) GenerateInstant(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.Lesson, error) {
	if cfg == nil {
		return nil, errors.ErrInvalidArgument("conversation config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialogue := GenerateInstantMockDialogue(cfg)
	lesson := entities.NewLesson(deviceID, entities.LessonSourceMock, dialogue)
	if err := s.lessonRepo.CreateLesson(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to store lesson: %w", err)
	}
	return lesson, nil
}

// generateLesson runs the full generation pipeline for a claimed job and
// stores the resulting lesson.
func (s *lessonService) generateLesson(ctx context.Context, job *entities.LessonJob) error {
	cfg := job.Config.Data()

	onProgress := func(progress float64, status string) {
		if err := s.jobRepo.UpdateProgress(ctx, job.ID, progress, status); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to update job progress",
					zap.String("job_id", job.ID.String()),
					zap.Error(err),
				)
			}
		}
	}

	var dialogue *entities.GeneratedDialogue
	var source entities.LessonSource
	var err error

	switch s.cfg.Lesson.Mode {
	case "mock":
		source = entities.LessonSourceMock
		dialogue, err = GenerateMockDialogue(ctx, &cfg, onProgress)
	case "development":
		if bundled, ok := s.bundled.Lookup(&cfg); ok {
			onProgress(0.3, "Loading bundled lesson...")
			source = entities.LessonSourceBundled
			dialogue = bundled
			onProgress(1, "Complete!")
		} else {
			source = entities.LessonSourceMock
			dialogue, err = GenerateMockDialogue(ctx, &cfg, onProgress)
		}
	default:
		source = entities.LessonSourceGenerated
		dialogue, err = s.generateWithProviders(ctx, job.ID, &cfg, onProgress)
		if err != nil && ctx.Err() == nil {
			// A dead or rambling dialogue model should not strand the
			// device without a lesson.
			if s.logger != nil {
				s.logger.Warn("⚠️ Dialogue generation failed, falling back to scripted lesson",
					zap.String("job_id", job.ID.String()),
					zap.Error(err),
				)
			}
			source = entities.LessonSourceMock
			dialogue, err = GenerateMockDialogue(ctx, &cfg, onProgress)
		}
	}
	if err != nil {
		return err
	}

	lesson := entities.NewLesson(job.DeviceID, source, dialogue)
	if err := s.lessonRepo.CreateLesson(ctx, lesson); err != nil {
		return fmt.Errorf("failed to store lesson: %w", err)
	}

	if err := s.jobRepo.MarkJobAsCompleted(ctx, job.ID, lesson.ID); err != nil {
		return fmt.Errorf("failed to mark job as completed: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Lesson generated",
			zap.String("job_id", job.ID.String()),
			zap.String("lesson_id", lesson.ID.String()),
			zap.String("source", string(source)),
			zap.Int("line_count", len(dialogue.Lines)),
			zap.Int64("total_duration_ms", dialogue.TotalDuration),
		)
	}

	return nil
}

// generateWithProviders calls the dialogue model, then synthesizes audio for
// every line sequentially. A line whose synthesis fails keeps an estimated
// duration and no audio so playback can still advance past it.
func (s *lessonService) generateWithProviders(ctx context.Context, jobID uuid.UUID, cfg *entities.ConversationConfig, onProgress ProgressFunc) (*entities.GeneratedDialogue, error) {
	onProgress(0.1, "Generating dialogue...")

	prompt := BuildPrompt(cfg)
	raw, err := s.dialogueClient.GenerateDialogue(ctx, prompt)
	if err != nil {
		return nil, errors.ErrExternalAPIFailed("dialogue model", err)
	}

	parsed := ParseDialogue(raw)
	if len(parsed) == 0 {
		return nil, errors.ErrDialogueEmpty()
	}

	provider := s.synth.Provider()
	onProgress(0.3, fmt.Sprintf("Creating audio (%s)...", provider.Label()))

	voice1, voice2 := tts.ResolveVoices(cfg.Speaker1.Name, cfg.Speaker2.Name, provider)

	var currentTime int64
	lines := make([]entities.DialogueLine, 0, len(parsed))

	for i, line := range parsed {
		onProgress(0.3+0.6*float64(i)/float64(len(parsed)), fmt.Sprintf("Creating audio (%d/%d)...", i+1, len(parsed)))

		// Space out provider requests to stay under rate limits.
		if i > 0 {
			select {
			case <-time.After(150 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		voice := voice1
		if line.SpeakerID == 2 {
			voice = voice2
		}

		textForAudio := line.SpokenText
		if textForAudio == "" {
			textForAudio = line.Text
		}

		var audioURI string
		var duration int64

		result, synthErr := s.synth.Synthesize(ctx, textForAudio, voice)
		if synthErr != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Synthesis failed for line, using estimated duration",
					zap.String("job_id", jobID.String()),
					zap.Int("line", i),
					zap.Error(synthErr),
				)
			}
			duration = tts.EstimateDurationMs(textForAudio)
		} else {
			objectName := fmt.Sprintf("lessons/%s/line_%d.mp3", jobID.String(), i)
			if err := s.audioStore.UploadAudio(ctx, objectName, result.Audio); err != nil {
				if s.logger != nil {
					s.logger.Warn("⚠️ Failed to store line audio",
						zap.String("object", objectName),
						zap.Error(err),
					)
				}
				duration = tts.EstimateDurationMs(textForAudio)
			} else {
				audioURI = objectName
				duration = result.DurationMs
			}
		}

		lines = append(lines, entities.DialogueLine{
			ID:          fmt.Sprintf("line_%d", i),
			SpeakerID:   line.SpeakerID,
			Text:        line.Text,
			SpokenText:  line.SpokenText,
			Emotion:     line.Emotion,
			SegmentType: line.SegmentType,
			AudioURI:    audioURI,
			StartTime:   currentTime,
			EndTime:     currentTime + duration,
			Duration:    duration,
		})
		currentTime += duration + pauseBetweenLinesMs
	}

	onProgress(1, "Complete!")

	return &entities.GeneratedDialogue{
		Config:        cfg,
		Lines:         lines,
		TotalDuration: currentTime,
	}, nil
}
