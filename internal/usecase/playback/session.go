package playback

import (
	"sync"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// PlayState is the lifecycle of the single active audio handle.
type PlayState string

const (
	StateIdle     PlayState = "idle"
	StateLoading  PlayState = "loading"
	StatePlaying  PlayState = "playing"
	StateFinished PlayState = "finished"
)

// Speeds are the selectable playback rates, cycled in order.
var Speeds = []float64{1.0, 0.75, 0.5}

// Session owns the playback position for one lesson. It is the single
// writer of the audio index and play state; renderers read derived values.
//
// Every transition that replaces the active audio (seek, replay, advance)
// bumps a generation token. A completion callback from a superseded handle
// carries a stale token and is ignored, so a late "finished" event can
// never advance playback past a seek target.
type Session struct {
	mu          sync.Mutex
	lines       []entities.DialogueLine
	pairs       QuizPairing
	state       PlayState
	index       int
	generation  uint64
	speedIdx    int
	transcripts TranscriptSet

	autoFollow    bool
	lastEffective int
}

// NewSession creates a playback session positioned at the first line.
func NewSession(dialogue *entities.GeneratedDialogue) *Session {
	var lines []entities.DialogueLine
	if dialogue != nil {
		lines = dialogue.Lines
	}
	return &Session{
		lines:         lines,
		pairs:         BuildQuizPairing(lines),
		state:         StateIdle,
		transcripts:   NewTranscriptSet(),
		autoFollow:    true,
		lastEffective: -1,
	}
}

// Lines returns the session's line list.
func (s *Session) Lines() []entities.DialogueLine {
	return s.lines
}

// QuizPairs returns the quiz pairing for the session's lines.
func (s *Session) QuizPairs() QuizPairing {
	return s.pairs
}

// State returns the current play state.
func (s *Session) State() PlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Index returns the current audio line index.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Play starts (or resumes) playback at the current index and returns the
// line to load plus the generation token the caller must hand back in
// LineFinished.
func (s *Session) Play() (lineIndex int, token uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return 0, 0, false
	}
	s.generation++
	s.state = StateLoading
	return s.index, s.generation, true
}

// Started marks the handle for the given token as actually playing. Stale
// tokens are ignored.
func (s *Session) Started(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return
	}
	s.state = StatePlaying
}

// Pause halts playback. The current handle is invalidated so its completion
// callback cannot advance the session.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = StateIdle
}

// SeekTo jumps to the given line, tearing down the active handle. Returns
// the new generation token to start audio with.
func (s *Session) SeekTo(lineIndex int) (token uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lineIndex < 0 || lineIndex >= len(s.lines) {
		return 0, false
	}
	s.generation++
	s.index = lineIndex
	s.state = StateLoading
	return s.generation, true
}

// Replay restarts the lesson from the first line, re-enabling auto-follow.
func (s *Session) Replay() (token uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return 0, false
	}
	s.generation++
	s.index = 0
	s.state = StateLoading
	s.autoFollow = true
	s.lastEffective = -1
	return s.generation, true
}

// LineFinished handles an audio completion callback. It advances to the
// next line unless the token is stale or the lesson is over. When it
// advances, it returns the next index and a fresh token for the caller to
// start the next line's audio with.
func (s *Session) LineFinished(token uint64) (next int, nextToken uint64, advanced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.state != StatePlaying {
		return 0, 0, false
	}

	if s.index+1 >= len(s.lines) {
		s.state = StateFinished
		return 0, 0, false
	}

	s.generation++
	s.index++
	s.state = StateLoading
	return s.index, s.generation, true
}

// Speed returns the current playback rate.
func (s *Session) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Speeds[s.speedIdx]
}

// CycleSpeed advances to the next playback rate and returns it.
func (s *Session) CycleSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speedIdx = (s.speedIdx + 1) % len(Speeds)
	return Speeds[s.speedIdx]
}

// ToggleTranscript flips the view mode for a segment. Reports false when
// the segment has no alternate view.
func (s *Session) ToggleTranscript(tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcripts.Toggle(tag)
}

// InTranscriptView reports whether a segment shows the literal script.
func (s *Session) InTranscriptView(tag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcripts.Has(tag)
}

// EffectiveIndex computes the highlighted card for the current position.
func (s *Session) EffectiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EffectiveActiveIndex(s.lines, s.index, s.transcripts)
}

// ShouldScroll reports whether the view should scroll to the highlighted
// card, which happens only when the effective index changed since the last
// check and auto-follow is on. Playing through narration lines that do not
// render keeps the effective index stable, so no scroll fires.
func (s *Session) ShouldScroll() (target int, scroll bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	effective := EffectiveActiveIndex(s.lines, s.index, s.transcripts)
	if !s.autoFollow || effective == s.lastEffective {
		return effective, false
	}
	s.lastEffective = effective
	return effective, true
}

// ManualScroll records a user-initiated scroll, suspending auto-follow
// until Recenter or Replay.
func (s *Session) ManualScroll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFollow = false
}

// Recenter re-enables auto-follow at the user's request.
func (s *Session) Recenter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFollow = true
	s.lastEffective = -1
}
