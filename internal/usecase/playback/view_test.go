package playback

import (
	"testing"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func tagged(tag, text string) entities.DialogueLine {
	return entities.DialogueLine{SegmentType: tag, Text: text}
}

func TestIsBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "...", ". . .", ".\n."} {
		if !IsBlank(text) {
			t.Errorf("IsBlank(%q) = false, want true", text)
		}
	}
	if IsBlank("Hola.") {
		t.Error("text with letters should not be blank")
	}
}

func TestParseVocab(t *testing.T) {
	word, def, ok := ParseVocab(`"coffee" - a hot drink`)
	if !ok || word != "coffee" || def != "a hot drink" {
		t.Errorf("quoted vocab = (%q, %q, %v)", word, def, ok)
	}

	word, def, ok = ParseVocab(`Key word: 'gracias' – thank you`)
	if !ok || word != "gracias" || def != "thank you" {
		t.Errorf("prefixed vocab = (%q, %q, %v)", word, def, ok)
	}

	word, def, ok = ParseVocab("cerveza - beer")
	if !ok || word != "cerveza" || def != "beer" {
		t.Errorf("unquoted vocab = (%q, %q, %v)", word, def, ok)
	}

	// Narration inside the vocab segment carries no definition.
	if _, _, ok := ParseVocab("Let's begin!"); ok {
		t.Error("narration without a dash should not parse as vocab")
	}

	// Trailing punctuation is stripped from the word.
	word, _, ok = ParseVocab("hola. - hello")
	if !ok || word != "hola" {
		t.Errorf("word = %q, want punctuation stripped", word)
	}
}

func TestParseBreakdown(t *testing.T) {
	phrase, expl, ok := ParseBreakdown(`"Como esta?" - How are you?`)
	if !ok || phrase != "Como esta?" || expl != "How are you?" {
		t.Errorf("breakdown = (%q, %q, %v)", phrase, expl, ok)
	}

	if _, _, ok := ParseBreakdown("Now listen closely to each phrase."); ok {
		t.Error("unquoted narration should not parse as breakdown")
	}
}

func TestCulturalText(t *testing.T) {
	if got := CulturalText("Cultural Tip: Tipping is uncommon."); got != "Tipping is uncommon." {
		t.Errorf("got %q", got)
	}
	if got := CulturalText("No prefix here."); got != "No prefix here." {
		t.Errorf("text without prefix changed to %q", got)
	}
}

func TestRendersInContentMode(t *testing.T) {
	cases := []struct {
		line entities.DialogueLine
		want bool
	}{
		{tagged(entities.TagVocab, `"coffee" - a hot drink`), true},
		{tagged(entities.TagVocab, "Let's begin!"), false},
		{tagged(entities.TagBreakdown, `"Un cafe" - a coffee`), true},
		{tagged(entities.TagBreakdown, "Listen to this phrase."), false},
		{tagged(entities.TagQuiz, "What does 'hola' mean?"), true},
		{tagged(entities.TagNatural, "Hola, buenos dias."), true},
		{tagged(entities.TagNatural, "..."), false},
		// Blank tag defaults to plain dialogue.
		{tagged("", "Hi there."), true},
	}
	for _, tc := range cases {
		if got := RendersInContentMode(&tc.line); got != tc.want {
			t.Errorf("RendersInContentMode(%s %q) = %v, want %v", tc.line.SegmentType, tc.line.Text, got, tc.want)
		}
	}
}

func TestDispatchCard(t *testing.T) {
	lines := []entities.DialogueLine{
		tagged(entities.TagVocab, "Let's learn some words!"),
		tagged(entities.TagVocab, `"coffee" - a hot drink`),
		tagged(entities.TagQuiz, "What does 'cafe' mean?"),
		tagged(entities.TagQuiz, "Coffee!"),
		tagged(entities.TagQuiz, "Great job today."),
		tagged(entities.TagCultural, "Cultural Tip: Greet the barista."),
		tagged(entities.TagNatural, "..."),
	}
	pairs := BuildQuizPairing(lines)

	if card := DispatchCard(lines, 0, false, pairs); card.Kind != CardNone {
		t.Errorf("vocab narration kind = %s, want none", card.Kind)
	}
	if card := DispatchCard(lines, 1, false, pairs); card.Kind != CardVocab || card.Word != "coffee" {
		t.Errorf("vocab card = %+v", card)
	}
	card := DispatchCard(lines, 2, false, pairs)
	if card.Kind != CardQuizFlip || card.Answer != "Coffee!" || card.AnswerIndex != 3 {
		t.Errorf("quiz question card = %+v", card)
	}
	if card := DispatchCard(lines, 3, false, pairs); card.Kind != CardNone {
		t.Errorf("quiz answer kind = %s, want none", card.Kind)
	}
	if card := DispatchCard(lines, 4, false, pairs); card.Kind != CardQuizPlain {
		t.Errorf("trailing quiz line kind = %s, want quiz_plain", card.Kind)
	}
	card = DispatchCard(lines, 5, false, pairs)
	if card.Kind != CardCultural || card.Text != "Greet the barista." {
		t.Errorf("cultural card = %+v", card)
	}
	if card := DispatchCard(lines, 6, false, pairs); card.Kind != CardNone {
		t.Errorf("punctuation-only line kind = %s, want none", card.Kind)
	}

	// Transcript view renders everything non-blank as a literal bubble.
	if card := DispatchCard(lines, 0, true, pairs); card.Kind != CardBubble {
		t.Errorf("transcript view kind = %s, want bubble", card.Kind)
	}
	if card := DispatchCard(lines, 6, true, pairs); card.Kind != CardNone {
		t.Error("blank line should render nothing even in transcript view")
	}

	if card := DispatchCard(lines, -1, false, pairs); card.Kind != CardNone {
		t.Error("out of range index should render nothing")
	}
	if card := DispatchCard(lines, len(lines), false, pairs); card.Kind != CardNone {
		t.Error("out of range index should render nothing")
	}
}

func TestDispatchCardTranscriptUsesSpokenText(t *testing.T) {
	lines := []entities.DialogueLine{
		{
			SegmentType: entities.TagVocab,
			Text:        `"coffee" - a hot drink`,
			SpokenText:  "Coffee. A hot drink.",
		},
		{
			SegmentType: entities.TagQuiz,
			Text:        "QUESTION: What does 'cafe' mean?",
			SpokenText:  "Question one. What does 'cafe' mean?",
		},
	}
	pairs := BuildQuizPairing(lines)

	// The transcript bubble must carry what is actually said aloud, not
	// the card-formatted display text.
	for i := range lines {
		card := DispatchCard(lines, i, true, pairs)
		if card.Kind != CardBubble {
			t.Fatalf("line %d transcript kind = %s, want bubble", i, card.Kind)
		}
		if card.Text != lines[i].SpokenText {
			t.Errorf("line %d transcript text = %q, want %q", i, card.Text, lines[i].SpokenText)
		}
	}

	// Lines without spoken text fall back to display text.
	plain := []entities.DialogueLine{tagged(entities.TagNatural, "Hola, buenos dias.")}
	card := DispatchCard(plain, 0, true, BuildQuizPairing(plain))
	if card.Text != "Hola, buenos dias." {
		t.Errorf("fallback transcript text = %q", card.Text)
	}
}
