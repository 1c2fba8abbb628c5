package playback

import (
	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// QuizPair joins a question line with its answer line. Pairing is positional
// within a contiguous quiz run: line 2k asks, line 2k+1 answers.
type QuizPair struct {
	QuestionIndex int    `json:"question_index"`
	AnswerIndex   int    `json:"answer_index"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
}

// QuizPairing indexes quiz pairs by their question line.
type QuizPairing struct {
	byQuestion map[int]QuizPair
	answers    map[int]struct{}
	standalone map[int]struct{}
}

// ByQuestionIndex returns the pair whose question sits at the given line.
func (p QuizPairing) ByQuestionIndex(index int) (QuizPair, bool) {
	pair, ok := p.byQuestion[index]
	return pair, ok
}

// IsAnswerIndex reports whether the line is the answer half of a pair.
func (p QuizPairing) IsAnswerIndex(index int) bool {
	_, ok := p.answers[index]
	return ok
}

// IsStandalone reports whether a quiz line has no positional partner. A
// trailing unpaired line in an odd-length run renders as a plain quiz card
// instead of a flip card.
func (p QuizPairing) IsStandalone(index int) bool {
	_, ok := p.standalone[index]
	return ok
}

// Len reports the number of question/answer pairs.
func (p QuizPairing) Len() int {
	return len(p.byQuestion)
}

// PairActive reports whether the flip card for a question should highlight.
// The card is active when either its question or its answer line is the
// effective active index; flipping the card never changes the audio line.
func (p QuizPairing) PairActive(questionIndex, effectiveIndex int) bool {
	pair, ok := p.byQuestion[questionIndex]
	if !ok {
		return false
	}
	return effectiveIndex == pair.QuestionIndex || effectiveIndex == pair.AnswerIndex
}

// BuildQuizPairing groups quiz lines two at a time within each contiguous
// quiz run. Pairing never crosses a run boundary, so a lesson with two quiz
// sections pairs each section independently.
func BuildQuizPairing(lines []entities.DialogueLine) QuizPairing {
	pairing := QuizPairing{
		byQuestion: make(map[int]QuizPair),
		answers:    make(map[int]struct{}),
		standalone: make(map[int]struct{}),
	}

	var run []int
	flush := func() {
		for i := 0; i+1 < len(run); i += 2 {
			q, a := run[i], run[i+1]
			pairing.byQuestion[q] = QuizPair{
				QuestionIndex: q,
				AnswerIndex:   a,
				Question:      lines[q].Text,
				Answer:        lines[a].Text,
			}
			pairing.answers[a] = struct{}{}
		}
		if len(run)%2 == 1 {
			pairing.standalone[run[len(run)-1]] = struct{}{}
		}
		run = run[:0]
	}

	for i := range lines {
		if normalizedTag(&lines[i]) == entities.TagQuiz {
			run = append(run, i)
			continue
		}
		if len(run) > 0 {
			flush()
		}
	}
	if len(run) > 0 {
		flush()
	}

	return pairing
}
