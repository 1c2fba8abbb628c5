package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/internal/infrastructure/http/middleware"
)

// fakeLessonService serves canned lessons for handler tests.
type fakeLessonService struct {
	lessons map[uuid.UUID]*entities.Lesson
}

func (f *fakeLessonService) RequestLesson(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.LessonJob, error) {
	return nil, errors.ErrInternal(nil)
}

func (f *fakeLessonService) GetJob(ctx context.Context, jobID uuid.UUID) (*entities.LessonJob, error) {
	return nil, errors.ErrLessonJobNotFound(jobID.String())
}

func (f *fakeLessonService) GetLatestJob(ctx context.Context, deviceID string) (*entities.LessonJob, error) {
	return nil, errors.ErrLessonJobNotFound("")
}

func (f *fakeLessonService) CancelJob(ctx context.Context, jobID uuid.UUID) error {
	return errors.ErrLessonJobNotFound(jobID.String())
}

func (f *fakeLessonService) GetLesson(ctx context.Context, lessonID uuid.UUID) (*entities.Lesson, error) {
	lesson, ok := f.lessons[lessonID]
	if !ok {
		return nil, errors.ErrLessonNotFound(lessonID.String())
	}
	return lesson, nil
}

func (f *fakeLessonService) ListLessons(ctx context.Context, deviceID string, limit int) ([]entities.Lesson, error) {
	return nil, nil
}

func (f *fakeLessonService) DeleteLesson(ctx context.Context, lessonID uuid.UUID) error {
	return nil
}

func (f *fakeLessonService) GenerateInstant(ctx context.Context, deviceID string, cfg *entities.ConversationConfig) (*entities.Lesson, error) {
	return nil, errors.ErrInternal(nil)
}

func (f *fakeLessonService) StartWorkerPool(ctx context.Context, workerCount int) error { return nil }
func (f *fakeLessonService) StopWorkerPool() error                                      { return nil }

func storedLesson(deviceID string, lines []entities.DialogueLine) *entities.Lesson {
	return entities.NewLesson(deviceID, entities.LessonSourceMock, &entities.GeneratedDialogue{
		Lines: lines,
	})
}

func playbackFixture(t *testing.T) (*Playback, uuid.UUID) {
	t.Helper()

	lines := []entities.DialogueLine{
		{SpeakerID: 0, SegmentType: entities.TagWelcome, Text: "Welcome to your lesson."},
		{SpeakerID: 0, SegmentType: entities.TagVocab, Text: "Here are some useful words."},
		{SpeakerID: 0, SegmentType: entities.TagVocab, Text: `"cafe" - coffee`},
		{SpeakerID: 0, SegmentType: entities.TagQuiz, Text: "How do you say coffee?"},
		{SpeakerID: 1, SegmentType: entities.TagQuiz, Text: "Cafe."},
	}
	lesson := storedLesson("device-1", lines)

	svc := &fakeLessonService{lessons: map[uuid.UUID]*entities.Lesson{lesson.ID: lesson}}
	return NewPlaybackHandler(svc, nil), lesson.ID
}

func playbackContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, lessonID uuid.UUID, deviceID string) echo.Context {
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(lessonID.String())
	c.Set(middleware.DeviceIDKey, deviceID)
	return c
}

func TestSync_SnapsNarrationToNextCard(t *testing.T) {
	e := newEcho()
	h, lessonID := playbackFixture(t)

	body := `{"audio_index":1}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := playbackContext(e, req, rec, lessonID, "device-1")
	if err := h.Sync(c); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			AudioIndex     int `json:"audio_index"`
			EffectiveIndex int `json:"effective_index"`
			Card           struct {
				Kind string `json:"kind"`
			} `json:"card"`
			Segment *struct {
				Type string `json:"type"`
			} `json:"segment"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Data.EffectiveIndex != 2 {
		t.Errorf("expected narration to snap to card index 2, got %d", resp.Data.EffectiveIndex)
	}
	if resp.Data.Card.Kind != "vocab" {
		t.Errorf("expected vocab card, got %q", resp.Data.Card.Kind)
	}
	if resp.Data.Segment == nil || resp.Data.Segment.Type != entities.TagVocab {
		t.Errorf("expected VOCAB segment, got %+v", resp.Data.Segment)
	}
}

func TestSync_TranscriptViewKeepsNarration(t *testing.T) {
	e := newEcho()
	h, lessonID := playbackFixture(t)

	body := `{"audio_index":1,"transcript_tags":["VOCAB"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := playbackContext(e, req, rec, lessonID, "device-1")
	if err := h.Sync(c); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}

	var resp struct {
		Data struct {
			EffectiveIndex int `json:"effective_index"`
			Card           struct {
				Kind string `json:"kind"`
			} `json:"card"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if resp.Data.EffectiveIndex != 1 {
		t.Errorf("expected identity index 1 in transcript view, got %d", resp.Data.EffectiveIndex)
	}
	if resp.Data.Card.Kind != "bubble" {
		t.Errorf("expected bubble card in transcript view, got %q", resp.Data.Card.Kind)
	}
}

func TestCards_PairsQuizRun(t *testing.T) {
	e := newEcho()
	h, lessonID := playbackFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	c := playbackContext(e, req, rec, lessonID, "device-1")
	if err := h.Cards(c); err != nil {
		t.Fatalf("Cards returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Cards []struct {
				Index int `json:"index"`
				Card  struct {
					Kind string `json:"kind"`
				} `json:"card"`
			} `json:"cards"`
			QuizPairs []struct {
				QuestionIndex int `json:"question_index"`
				AnswerIndex   int `json:"answer_index"`
			} `json:"quiz_pairs"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Data.Cards) != 5 {
		t.Fatalf("expected 5 cards got %d", len(resp.Data.Cards))
	}
	if resp.Data.Cards[3].Card.Kind != "quiz_flip" {
		t.Errorf("expected quiz_flip at index 3, got %q", resp.Data.Cards[3].Card.Kind)
	}
	if resp.Data.Cards[4].Card.Kind != "none" {
		t.Errorf("expected answer line to render nothing, got %q", resp.Data.Cards[4].Card.Kind)
	}
	if len(resp.Data.QuizPairs) != 1 {
		t.Fatalf("expected 1 quiz pair got %d", len(resp.Data.QuizPairs))
	}
	if resp.Data.QuizPairs[0].QuestionIndex != 3 || resp.Data.QuizPairs[0].AnswerIndex != 4 {
		t.Errorf("unexpected pair %+v", resp.Data.QuizPairs[0])
	}
}

func TestSegments_ForeignDeviceReadsAsNotFound(t *testing.T) {
	e := newEcho()
	h, lessonID := playbackFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	c := playbackContext(e, req, rec, lessonID, "device-2")
	if err := h.Segments(c); err != nil {
		t.Fatalf("Segments returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign device, got %d", rec.Code)
	}
}

func TestSegments_ReturnsContiguousRuns(t *testing.T) {
	e := newEcho()
	h, lessonID := playbackFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	c := playbackContext(e, req, rec, lessonID, "device-1")
	if err := h.Segments(c); err != nil {
		t.Fatalf("Segments returned error: %v", err)
	}

	var resp struct {
		Data []struct {
			Type       string `json:"type"`
			StartIndex int    `json:"start_index"`
			EndIndex   int    `json:"end_index"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(resp.Data) != 3 {
		t.Fatalf("expected 3 segment runs got %d", len(resp.Data))
	}
	if resp.Data[1].Type != entities.TagVocab || resp.Data[1].StartIndex != 1 || resp.Data[1].EndIndex != 2 {
		t.Errorf("unexpected vocab run %+v", resp.Data[1])
	}
}
