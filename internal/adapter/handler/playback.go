package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	lessondto "github.com/lessonforge/lessonforge/internal/adapter/dto/lesson"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
	"github.com/lessonforge/lessonforge/internal/infrastructure/http/middleware"
	"github.com/lessonforge/lessonforge/internal/usecase/lesson"
	"github.com/lessonforge/lessonforge/internal/usecase/playback"
)

// Playback exposes the render-state computations for a stored lesson: card
// dispatch, quiz pairing and the effective highlight index. All endpoints
// are pure functions of the lesson lines and the posted position.
type Playback struct {
	service lesson.Service
	logger  *zap.Logger
}

// NewPlaybackHandler creates a playback handler.
func NewPlaybackHandler(service lesson.Service, logger *zap.Logger) *Playback {
	return &Playback{service: service, logger: logger}
}

type cardResponse struct {
	Index int           `json:"index"`
	Card  playback.Card `json:"card"`
}

type quizPairResponse struct {
	QuestionIndex int    `json:"question_index"`
	AnswerIndex   int    `json:"answer_index"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
}

type cardsResponse struct {
	Cards     []cardResponse     `json:"cards"`
	QuizPairs []quizPairResponse `json:"quiz_pairs"`
}

type syncResponse struct {
	AudioIndex     int                        `json:"audio_index"`
	EffectiveIndex int                        `json:"effective_index"`
	Card           playback.Card              `json:"card"`
	Segment        *lessondto.SegmentResponse `json:"segment,omitempty"`
}

// Cards returns the render decision for every line plus the quiz pairing.
// Transcript tags passed in the query flip those segments to literal view.
// GET /v1/lessons/:id/cards?transcript=VOCAB&transcript=QUIZ
func (h *Playback) Cards(c echo.Context) error {
	lines, err := h.ownedLines(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	transcripts := transcriptSetFromTags(c.QueryParams()["transcript"])
	pairs := playback.BuildQuizPairing(lines)

	cards := make([]cardResponse, 0, len(lines))
	for i := range lines {
		inTranscript := transcripts.Has(lines[i].SegmentType)
		cards = append(cards, cardResponse{
			Index: i,
			Card:  playback.DispatchCard(lines, i, inTranscript, pairs),
		})
	}

	resp := cardsResponse{Cards: cards, QuizPairs: make([]quizPairResponse, 0, pairs.Len())}
	for i := range lines {
		if pair, ok := pairs.ByQuestionIndex(i); ok {
			resp.QuizPairs = append(resp.QuizPairs, quizPairResponse{
				QuestionIndex: pair.QuestionIndex,
				AnswerIndex:   pair.AnswerIndex,
				Question:      pair.Question,
				Answer:        pair.Answer,
			})
		}
	}

	return HandleSuccess(h.logger, c, resp)
}

// Sync computes the highlight state for an audio position.
// POST /v1/lessons/:id/sync
func (h *Playback) Sync(c echo.Context) error {
	lines, err := h.ownedLines(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req lessondto.SyncStateRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	transcripts := transcriptSetFromTags(req.TranscriptTags)
	pairs := playback.BuildQuizPairing(lines)
	effective := playback.EffectiveActiveIndex(lines, req.AudioIndex, transcripts)

	resp := syncResponse{
		AudioIndex:     req.AudioIndex,
		EffectiveIndex: effective,
	}
	if effective >= 0 {
		inTranscript := transcripts.Has(lines[effective].SegmentType)
		resp.Card = playback.DispatchCard(lines, effective, inTranscript, pairs)
		if seg, ok := playback.SegmentAt(lines, effective); ok {
			resp.Segment = &lessondto.SegmentResponse{
				Type:       seg.Type,
				StartIndex: seg.StartIndex,
				EndIndex:   seg.EndIndex,
				Label:      seg.Label,
				Color:      seg.Color,
			}
		}
	} else {
		resp.Card = playback.Card{Kind: playback.CardNone}
	}

	return HandleSuccess(h.logger, c, resp)
}

// Segments returns the lesson's contiguous segment runs.
// GET /v1/lessons/:id/segments
func (h *Playback) Segments(c echo.Context) error {
	lines, err := h.ownedLines(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	runs := entities.SegmentRuns(lines)
	segments := make([]lessondto.SegmentResponse, 0, len(runs))
	for _, run := range runs {
		segments = append(segments, lessondto.SegmentResponse{
			Type:       run.Type,
			StartIndex: run.StartIndex,
			EndIndex:   run.EndIndex,
			Label:      run.Label,
			Color:      run.Color,
		})
	}
	return HandleSuccess(h.logger, c, segments)
}

func (h *Playback) ownedLines(c echo.Context) ([]entities.DialogueLine, error) {
	lessonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, errors.ErrInvalidArgument("invalid lesson id")
	}

	result, err := h.service.GetLesson(c.Request().Context(), lessonID)
	if err != nil {
		return nil, err
	}
	if result.DeviceID != middleware.DeviceIDFromContext(c) {
		return nil, errors.ErrLessonNotFound(lessonID.String())
	}
	return result.Lines.Data(), nil
}

func transcriptSetFromTags(tags []string) playback.TranscriptSet {
	set := playback.NewTranscriptSet()
	for _, tag := range tags {
		set.Toggle(tag)
	}
	return set
}
