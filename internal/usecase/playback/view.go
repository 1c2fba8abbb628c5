package playback

import (
	"regexp"
	"strings"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// CardKind selects how a dialogue line is drawn in content mode.
type CardKind string

const (
	CardNone      CardKind = "none"       // line renders nothing
	CardBubble    CardKind = "bubble"     // literal dialogue bubble
	CardVocab     CardKind = "vocab"      // word + definition flashcard
	CardBreakdown CardKind = "breakdown"  // phrase + explanation card
	CardQuizFlip  CardKind = "quiz_flip"  // paired question/answer flip card
	CardQuizPlain CardKind = "quiz_plain" // unpaired quiz line
	CardCultural  CardKind = "cultural"   // cultural note card
)

// Card is the render decision for one line.
type Card struct {
	Kind CardKind `json:"kind"`

	// Vocabulary fields
	Word       string `json:"word,omitempty"`
	Definition string `json:"definition,omitempty"`

	// Breakdown fields
	Phrase      string `json:"phrase,omitempty"`
	Explanation string `json:"explanation,omitempty"`

	// Quiz flip card fields
	Question    string `json:"question,omitempty"`
	Answer      string `json:"answer,omitempty"`
	AnswerIndex int    `json:"answer_index,omitempty"`

	// Bubble / quiz / cultural display text
	Text string `json:"text,omitempty"`
}

var (
	punctuationOnlyPattern = regexp.MustCompile(`^[.\s]+$`)

	// Accepts `Key word: "phrase" - definition`, `"phrase" - definition`
	// and the unquoted `word - definition` fallback. The unquoted word may
	// not contain a dash.
	vocabQuotedPattern   = regexp.MustCompile(`(?i)(?:Key word:\s*)?["']([^"']+)["']\s*[-–]\s*(.+)`)
	vocabUnquotedPattern = regexp.MustCompile(`(?i)(?:Key word:\s*)?([^-–]+)\s*[-–]\s*(.+)`)

	breakdownPattern = regexp.MustCompile(`["']([^"']+)["']\s*[-–]?\s*(.+)`)

	culturalPrefixPattern = regexp.MustCompile(`(?i)^Cultural Tip:\s*`)

	wordEdgePunctuation = regexp.MustCompile(`^[.?!,;:]+|[.?!,;:]+$`)
)

// IsBlank reports whether a line's text is empty or punctuation-only. Such
// lines render nothing in any view.
func IsBlank(text string) bool {
	trimmed := strings.TrimSpace(text)
	return trimmed == "" || punctuationOnlyPattern.MatchString(text)
}

func cleanWord(w string) string {
	return wordEdgePunctuation.ReplaceAllString(strings.TrimSpace(w), "")
}

// ParseVocab extracts a word and definition from a vocabulary line. ok is
// false for narration lines that carry no dash-separated definition.
func ParseVocab(text string) (word, definition string, ok bool) {
	if m := vocabQuotedPattern.FindStringSubmatch(text); m != nil {
		def := strings.TrimSpace(m[2])
		if def != "" {
			return cleanWord(m[1]), def, true
		}
	}
	if m := vocabUnquotedPattern.FindStringSubmatch(text); m != nil {
		def := strings.TrimSpace(m[2])
		if def != "" {
			return cleanWord(m[1]), def, true
		}
	}
	return cleanWord(text), "", false
}

// ParseBreakdown extracts a quoted phrase and its explanation. ok is false
// for lines without a quoted phrase.
func ParseBreakdown(text string) (phrase, explanation string, ok bool) {
	if m := breakdownPattern.FindStringSubmatch(text); m != nil {
		return m[1], m[2], true
	}
	return "", text, false
}

// CulturalText strips the "Cultural Tip:" display prefix.
func CulturalText(text string) string {
	return culturalPrefixPattern.ReplaceAllString(text, "")
}

// RendersInContentMode reports whether a line shows up as its own card in
// the pedagogical view. Narration-only lines in alternate-view segments do
// not; their audio still plays.
func RendersInContentMode(line *entities.DialogueLine) bool {
	if IsBlank(line.Text) {
		return false
	}

	switch normalizedTag(line) {
	case entities.TagVocab:
		_, _, ok := ParseVocab(line.Text)
		return ok
	case entities.TagBreakdown:
		_, _, ok := ParseBreakdown(line.Text)
		return ok
	default:
		// QUIZ, CULTURAL, WELCOME, SLOW, NATURAL and unknown tags always
		// render; quiz pairing is resolved at dispatch time.
		return true
	}
}

// normalizedTag canonicalizes a line's segment tag, defaulting blank tags to
// NATURAL so legacy 2/3-field script lines render as plain dialogue.
func normalizedTag(line *entities.DialogueLine) string {
	if line.SegmentType == "" {
		return entities.TagNatural
	}
	return entities.NormalizeTag(line.SegmentType)
}

// DispatchCard decides how one line is drawn. transcriptView applies the
// per-segment literal-script toggle; pairs is the quiz pairing for the
// current line list.
func DispatchCard(lines []entities.DialogueLine, index int, transcriptView bool, pairs QuizPairing) Card {
	if index < 0 || index >= len(lines) {
		return Card{Kind: CardNone}
	}
	line := &lines[index]

	if IsBlank(line.Text) {
		return Card{Kind: CardNone}
	}

	// Transcript view renders every line as a literal bubble of what is
	// actually said aloud.
	if transcriptView {
		return Card{Kind: CardBubble, Text: line.Spoken()}
	}

	switch normalizedTag(line) {
	case entities.TagVocab:
		word, definition, ok := ParseVocab(line.Text)
		if !ok {
			return Card{Kind: CardNone}
		}
		return Card{Kind: CardVocab, Word: word, Definition: definition}

	case entities.TagBreakdown:
		phrase, explanation, ok := ParseBreakdown(line.Text)
		if !ok {
			return Card{Kind: CardNone}
		}
		return Card{Kind: CardBreakdown, Phrase: phrase, Explanation: explanation}

	case entities.TagQuiz:
		if pair, ok := pairs.ByQuestionIndex(index); ok {
			return Card{
				Kind:        CardQuizFlip,
				Question:    pair.Question,
				Answer:      pair.Answer,
				AnswerIndex: pair.AnswerIndex,
			}
		}
		if pairs.IsAnswerIndex(index) {
			// Answers live on the back of their question's flip card.
			return Card{Kind: CardNone}
		}
		return Card{Kind: CardQuizPlain, Text: line.Text}

	case entities.TagCultural:
		return Card{Kind: CardCultural, Text: CulturalText(line.Text)}

	default:
		return Card{Kind: CardBubble, Text: line.Text}
	}
}
