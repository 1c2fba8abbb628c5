package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// ProgressFunc receives generation progress updates in [0, 1] with a
// human-readable status line.
type ProgressFunc func(progress float64, status string)

const pauseBetweenLinesMs = 500

// mockDurationMs estimates speech duration at 150 words per minute with a
// 2 second floor.
func mockDurationMs(text string) int64 {
	d := int64(len(strings.Fields(text))) * 400
	if d < 2000 {
		return 2000
	}
	return d
}

// mockTransitionOpening returns the scripted bridge INTO a section. The line
// is tagged with the current section's type since it introduces it.
func mockTransitionOpening(current, prev entities.SegmentType, speaker2Name string) *entities.ParsedLine {
	transitions := map[entities.SegmentType]map[entities.SegmentType]string{
		entities.SegmentVocabulary: {
			entities.SegmentWelcome: fmt.Sprintf("Now, before we jump into the conversation, let's go over some key words you'll need. %s, want to help me with these?", speaker2Name),
		},
		entities.SegmentSlowDialogue: {
			entities.SegmentWelcome:    "Alright, let's ease into it with a slow-paced version of this conversation.",
			entities.SegmentVocabulary: "Now that you know those words, let's hear them in action. We'll take it nice and slow at first so you can follow along.",
		},
		entities.SegmentBreakdown: {
			entities.SegmentSlowDialogue: "Great job following that! Now let me break down some of the key phrases you just heard.",
			entities.SegmentVocabulary:   "Now let's look at how these words come together in useful phrases.",
		},
		entities.SegmentNaturalSpeed: {
			entities.SegmentWelcome:      "Let's dive right into a natural conversation—just like you'd hear in real life.",
			entities.SegmentVocabulary:   "Time to put those words into action! Here's how a real conversation sounds at natural speed.",
			entities.SegmentSlowDialogue: "Great! Now let's hear that same type of conversation at natural, everyday speed.",
			entities.SegmentBreakdown:    "Now that you understand those phrases, let's hear a full conversation at natural speed.",
		},
		entities.SegmentQuiz: {
			entities.SegmentVocabulary:   "Time to test yourself! Let's see how well you remember those words.",
			entities.SegmentSlowDialogue: "Now let's check your understanding with a quick quiz.",
			entities.SegmentBreakdown:    "Let's make sure you've got those phrases down—time for a quick quiz.",
			entities.SegmentNaturalSpeed: "Alright, let's test what you picked up from that conversation.",
		},
		entities.SegmentCulturalNote: {
			entities.SegmentWelcome:      "Before we practice, here's some helpful cultural context.",
			entities.SegmentVocabulary:   "Now, a bit of cultural background that will help you use these words naturally.",
			entities.SegmentNaturalSpeed: "Now let me give you some cultural context about what you just heard.",
		},
	}

	text, ok := transitions[current][prev]
	if !ok {
		return nil
	}
	return &entities.ParsedLine{
		SpeakerID:   1,
		SegmentType: string(current.Tag()),
		Emotion:     "transitional",
		Text:        text,
	}
}

// mockTransitionClosing returns the scripted bridge OUT of a section. It
// introduces the next section, so it carries the next section's type.
func mockTransitionClosing(current, next entities.SegmentType) *entities.ParsedLine {
	type closing struct {
		speaker int
		text    string
	}
	closings := map[entities.SegmentType]map[entities.SegmentType]closing{
		entities.SegmentWelcome: {
			entities.SegmentVocabulary:   {1, "So let's start by learning some essential vocabulary you'll need for this situation."},
			entities.SegmentSlowDialogue: {1, "Let's begin with a slow, clear version of the conversation so you can follow along easily."},
			entities.SegmentNaturalSpeed: {1, "Let's jump right in with a natural conversation!"},
		},
		entities.SegmentVocabulary: {
			entities.SegmentSlowDialogue: {2, "Now that you've got those words, let's hear them in a real conversation. We'll take it slow at first."},
			entities.SegmentBreakdown:    {1, "Now let's look at how to put these words together in useful phrases."},
			entities.SegmentNaturalSpeed: {1, "Time to hear these words in action at natural speed!"},
		},
		entities.SegmentSlowDialogue: {
			entities.SegmentBreakdown:    {1, "Now let me break down the key phrases you just heard."},
			entities.SegmentNaturalSpeed: {2, "Great! Now let's hear that at natural, everyday speed."},
			entities.SegmentQuiz:         {1, "Let's check your understanding with a quick quiz."},
		},
		entities.SegmentBreakdown: {
			entities.SegmentNaturalSpeed: {2, "Now that you understand those phrases, let's hear a full conversation at natural speed."},
			entities.SegmentQuiz:         {1, "Time to test what you've learned!"},
		},
		entities.SegmentNaturalSpeed: {
			entities.SegmentQuiz:         {1, "Let's test what you picked up from that conversation."},
			entities.SegmentCulturalNote: {1, "Here's some cultural background about what you just heard."},
		},
		entities.SegmentQuiz: {
			entities.SegmentCulturalNote: {1, "Nice work! Now for some cultural context that ties everything together."},
		},
	}

	c, ok := closings[current][next]
	if !ok {
		return nil
	}
	// SpokenText matches Text so vocab-bound bridges play as speech without
	// rendering as a vocab card.
	return &entities.ParsedLine{
		SpeakerID:   c.speaker,
		SegmentType: string(next.Tag()),
		Emotion:     "transitional",
		Text:        c.text,
		SpokenText:  c.text,
	}
}

// effectiveSegments is the segment order a generator actually produces. When
// every quiz archetype is toggled off the quiz segment is dropped entirely,
// so no quiz lines and no quiz-tagged bridge lines appear.
func effectiveSegments(config *entities.ConversationConfig) []entities.SegmentType {
	segments := config.SegmentTypes()
	if config.QuizConfig.AnyEnabled() {
		return segments
	}
	kept := make([]entities.SegmentType, 0, len(segments))
	for _, s := range segments {
		if s != entities.SegmentQuiz {
			kept = append(kept, s)
		}
	}
	return kept
}

var quizOrdinals = []string{"one", "two", "three", "four"}

// mockQuizLines builds question/answer pairs for the enabled archetypes only.
// Questions reference the vocabulary, breakdown phrases, and conversation
// details from the earlier mock sections; ordinals renumber to match however
// many pairs survive the toggles.
func mockQuizLines(quiz entities.QuizConfig) []entities.ParsedLine {
	type quizPair struct {
		questionText   string
		questionSpoken string
		answerText     string
		answerSpoken   string
	}

	var pairs []quizPair
	if quiz.VocabL2ToL1 {
		pairs = append(pairs, quizPair{
			questionText:   `What does "order" mean?`,
			questionSpoken: `What does "order" mean? We learned this word in our vocabulary section. Take a moment to recall.`,
			answerText:     "To request something",
			answerSpoken:   `The answer is: to request something, especially food or drink. Remember, "I'd like to order" is a polite way to start.`,
		})
	}
	if quiz.PhraseMeaning {
		pairs = append(pairs, quizPair{
			questionText:   `What does "That's all" mean?`,
			questionSpoken: `What does "That's all" mean? We covered this phrase in our breakdown.`,
			answerText:     "I'm done ordering",
			answerSpoken:   "The answer is: it means you're done ordering. It's a simple way to tell the staff you don't need anything else.",
		})
	}
	if quiz.Comprehension {
		pairs = append(pairs, quizPair{
			questionText:   "What size coffee did the customer order?",
			questionSpoken: "In the conversation we just heard, what size coffee did the customer order? Think back to the dialogue.",
			answerText:     "Large",
			answerSpoken:   `The answer is: large. The customer said "I'd like a large coffee, please." They also asked for it hot with a little cream.`,
		})
	}
	if quiz.VocabL1ToL2 {
		pairs = append(pairs, quizPair{
			questionText:   "How do you politely ask for a large size?",
			questionSpoken: "How do you politely ask for a large size? Remember the magic word we learned.",
			answerText:     `"Large, please"`,
			answerSpoken:   `The answer is: "Large, please" or "A large one, please." Adding "please" makes any request polite.`,
		})
	}

	lines := make([]entities.ParsedLine, 0, len(pairs)*2)
	for i, p := range pairs {
		prefix := fmt.Sprintf("Question %s:", quizOrdinals[i])
		if len(pairs) > 1 && i == len(pairs)-1 {
			prefix = "Last question:"
		}

		question := entities.ParsedLine{
			SpeakerID:   1,
			SegmentType: "QUIZ",
			Text:        p.questionText,
			SpokenText:  prefix + " " + p.questionSpoken,
		}
		if i == 0 {
			question.Emotion = "encouraging"
		}

		answer := entities.ParsedLine{
			SpeakerID:   1,
			SegmentType: "QUIZ",
			Text:        p.answerText,
			SpokenText:  p.answerSpoken,
		}
		if i == len(pairs)-1 {
			answer.Emotion = "celebratory"
			answer.SpokenText += " Excellent work on this quiz!"
		}

		lines = append(lines, question, answer)
	}
	return lines
}

func buildMockLines(config *entities.ConversationConfig) []entities.ParsedLine {
	var mockLines []entities.ParsedLine
	segments := effectiveSegments(config)
	locationLabel, _ := entities.LocationLabel(config.Location)

	for i, segmentType := range segments {
		if i > 0 {
			if t := mockTransitionOpening(segmentType, segments[i-1], config.Speaker2.Name); t != nil {
				mockLines = append(mockLines, *t)
			}
		}

		switch segmentType {
		case entities.SegmentWelcome:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Emotion: "warm", Text: fmt.Sprintf("Hello and welcome! I'm %s, and I'll be your %s today.", config.Speaker1.Name, config.Speaker1.Role)},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "WELCOME", Emotion: "friendly", Text: fmt.Sprintf("And I'm %s! I work as a %s here.", config.Speaker2.Name, config.Speaker2.Role)},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Text: fmt.Sprintf("Today we're going to practice a real conversation at the %s.", locationLabel)},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "WELCOME", Text: fmt.Sprintf("That's right! We'll focus on %q - something you'll use all the time.", config.Situation)},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Emotion: "encouraging", Text: "By the end, you'll feel confident handling this situation on your own."},
			)
		case entities.SegmentVocabulary:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Emotion: "enthusiastic", Text: `Key word: "coffee" - a popular hot beverage made from roasted beans`, SpokenText: "Our first word is coffee. Coffee is a popular hot beverage made from roasted beans. You'll hear this word a lot when ordering drinks."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"order" - to request something, especially food or drink`, SpokenText: `Next up: order. To order means to request something, especially food or drink. For example, "I'd like to order a coffee."`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"please" - a polite word used when making requests`, SpokenText: "An important word: please. Please is a polite word used when making requests. Always add it to sound friendly and respectful."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"thank you" - an expression of gratitude`, SpokenText: "Don't forget: thank you. Thank you is an expression of gratitude. Use it whenever someone helps you or gives you something."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Emotion: "encouraging", Text: `"large" - bigger than normal size, often used for drink sizes`, SpokenText: `And finally: large. Large means bigger than normal size. It's often used when choosing drink sizes, like "a large coffee, please."`},
			)
		case entities.SegmentSlowDialogue:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Emotion: "friendly", Text: "Hello... How... can... I... help... you?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Emotion: "friendly", Text: "Hi... I... want... to... order... coffee."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Text: "What... size... do... you... want?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Text: "Large... please."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Text: "Hot... or... cold?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Text: "Hot... please."},
			)
		case entities.SegmentBreakdown:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Emotion: "instructive", Text: `"How can I help you?" - This is a common greeting used by service staff.`, SpokenText: `First phrase: "How can I help you?" This is a common greeting used by service staff. You'll hear this as soon as you approach the counter.`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"I want to order" - This phrase expresses your intention to buy something.`, SpokenText: `Next: "I want to order." This expresses your intention to buy something. It's direct and clear - perfect for getting started.`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"What size?" - A question about dimensions, common in food service.`, SpokenText: `You'll often hear: "What size?" This is a question about dimensions, very common in food service. Be ready to answer with small, medium, or large.`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Emotion: "helpful", Text: `"Please" goes at the end of requests to sound polite.`, SpokenText: `A quick tip: "Please" goes at the end of requests to sound polite. For example, "A large coffee, please" sounds much friendlier than just "A large coffee."`},
			)
		case entities.SegmentNaturalSpeed:
			mockLines = append(mockLines, naturalMockByDifficulty(config.Difficulty)...)
		case entities.SegmentQuiz:
			mockLines = append(mockLines, mockQuizLines(config.QuizConfig)...)
		case entities.SegmentCulturalNote:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Emotion: "informative", Text: "Cultural Tip: In many countries, tipping baristas is appreciated but not required.", SpokenText: "Here's an interesting cultural tip: In many countries, tipping baristas is appreciated but not required. It's a nice gesture, but don't feel pressured."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Text: "In the US, it's common to leave a dollar or two in the tip jar.", SpokenText: "In the United States specifically, it's common to leave a dollar or two in the tip jar. You'll usually see one near the register."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Emotion: "friendly", Text: "Coffee shops often have loyalty programs - ask about rewards cards!", SpokenText: "One more tip: Coffee shops often have loyalty programs. Don't be shy to ask about rewards cards - you can earn free drinks over time!"},
			)
		}

		if i < len(segments)-1 {
			if t := mockTransitionClosing(segmentType, segments[i+1]); t != nil {
				mockLines = append(mockLines, *t)
			}
		}
	}

	return mockLines
}

func naturalMockByDifficulty(difficulty entities.Difficulty) []entities.ParsedLine {
	switch difficulty {
	case entities.DifficultyBeginner:
		return []entities.ParsedLine{
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Hello! How can I help you?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "friendly", Text: "Hi! I want to order."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Yes. What do you want?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "I want a coffee, please."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "What size? Small or large?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "A large one, please."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Hot or cold?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Hot, please."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Do you want milk?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Yes, please. With milk."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "That is five dollars."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Here you go."},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Here is your coffee."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Thank you very much!"},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "You're welcome. Have a nice day!"},
			{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "grateful", Text: "You too! Goodbye!"},
		}
	case entities.DifficultyAdvanced:
		return []entities.ParsedLine{
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Good morning! What brings you in on this rather dreary day?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Well, I figured I'd need something to counteract this gloomy weather—ideally something with a serious caffeine kick."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "I hear you. Nothing like a proper coffee to shake off the morning fog, so to speak."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Exactly. I've been burning the midnight oil lately, and it's starting to catch up with me."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "In that case, might I suggest our cold brew? It packs quite a punch—roughly twice the caffeine of our regular drip."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Hmm, tempting, but I'm in the mood for something a bit more... indulgent. What's your personal favorite?"},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "thoughtful", Text: "Between you and me? Our oat milk mocha is absolutely divine. It's got this subtle earthiness that complements the chocolate beautifully."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Now you're speaking my language. I've been trying to cut back on dairy anyway, so that sounds perfect."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Brilliant choice. Would you prefer it hot, or shall I make it over ice?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Hot, definitely. I need something to warm my soul at this point."},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "amused", Text: "Soul-warming beverages are our specialty. Any preference on size? Our large is practically bottomless."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Go big or go home, right? I'll take the large. Though I should probably grab something to eat too, or I'll be bouncing off the walls."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Wise thinking. Our avocado toast is phenomenal, if you're inclined—locally sourced bread, perfectly ripe avocados."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "You've twisted my arm. That sounds too good to pass up."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Wonderful. So we're looking at a large oat milk mocha and the avo toast. That'll be $16.50 whenever you're ready."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Worth every penny, I'm sure. Here you are."},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Cheers! We'll have everything ready for you shortly. Feel free to grab a seat by the window."},
			{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "grateful", Text: "Perfect—thanks for the recommendation. You've made my morning considerably brighter."},
		}
	default:
		return []entities.ParsedLine{
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Good morning! Welcome in. What can I get started for you today?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "friendly", Text: "Hey there! I'm looking to grab a coffee, but I'm not sure what to get."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "No problem! Are you in the mood for something hot or maybe an iced drink?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Actually, I'm thinking something warm. It's pretty chilly outside."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Totally get it. Our house blend is really popular, or if you're feeling fancy, we've got a great caramel latte."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Ooh, the caramel latte sounds good. How sweet is it though?"},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "It's got a nice balance—not too sweet. We can always adjust the syrup if you'd like."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Perfect, I'll go with that then. Medium size, please."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "You got it! Would you like whipped cream on top?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Why not? Treat yourself, right?"},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "amused", Text: "Ha! That's the spirit. Anything else I can add for you?"},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Do you have any pastries? I haven't had breakfast yet."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "We've got fresh croissants and blueberry muffins. Both are pretty amazing."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "I'll take a croissant. Can't resist those."},
			{SpeakerID: 2, SegmentType: "NATURAL", Text: "Great choice! That'll be $8.50."},
			{SpeakerID: 1, SegmentType: "NATURAL", Text: "Here's my card. Thanks!"},
			{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Enjoy your coffee, and have a great day!"},
			{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "grateful", Text: "Thanks so much! You too!"},
		}
	}
}

// GenerateMockDialogue builds a scripted lesson without calling any external
// service. It paces itself briefly so progress updates resemble a real run.
func GenerateMockDialogue(ctx context.Context, config *entities.ConversationConfig, onProgress ProgressFunc) (*entities.GeneratedDialogue, error) {
	report := func(p float64, status string) {
		if onProgress != nil {
			onProgress(p, status)
		}
	}

	report(0.2, "Generating dialogue...")
	select {
	case <-time.After(1 * time.Second):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	mockLines := buildMockLines(config)

	report(0.5, "Processing...")
	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var currentTime int64
	lines := make([]entities.DialogueLine, 0, len(mockLines))
	for i, line := range mockLines {
		spoken := line.SpokenText
		if spoken == "" {
			spoken = line.Text
		}
		duration := mockDurationMs(spoken)

		lines = append(lines, entities.DialogueLine{
			ID:          fmt.Sprintf("line_%d", i),
			SpeakerID:   line.SpeakerID,
			Text:        line.Text,
			SpokenText:  line.SpokenText,
			Emotion:     line.Emotion,
			SegmentType: line.SegmentType,
			StartTime:   currentTime,
			EndTime:     currentTime + duration,
			Duration:    duration,
		})
		currentTime += duration + pauseBetweenLinesMs
	}

	report(1, "Complete!")

	return &entities.GeneratedDialogue{
		Config:        config,
		Lines:         lines,
		TotalDuration: currentTime,
	}, nil
}

// GenerateInstantMockDialogue builds a scripted lesson synchronously with no
// pacing, no transitions, and no audio.
func GenerateInstantMockDialogue(config *entities.ConversationConfig) *entities.GeneratedDialogue {
	var mockLines []entities.ParsedLine
	locationLabel, _ := entities.LocationLabel(config.Location)

	for _, segmentType := range effectiveSegments(config) {
		switch segmentType {
		case entities.SegmentWelcome:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Emotion: "warm", Text: fmt.Sprintf("Hello and welcome! I'm %s, and I'll be your guide today.", config.Speaker1.Name)},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "WELCOME", Emotion: "friendly", Text: fmt.Sprintf("And I'm %s! We're so glad you're here.", config.Speaker2.Name)},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Text: fmt.Sprintf("Today we'll practice a conversation at the %s.", locationLabel)},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "WELCOME", Text: fmt.Sprintf("We'll focus on %q - something you'll use all the time.", config.Situation)},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "WELCOME", Emotion: "encouraging", Text: "By the end, you'll feel confident handling this on your own. Let's get started!"},
			)
		case entities.SegmentVocabulary:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"coffee" - a hot beverage made from roasted beans`, SpokenText: "Our first word is coffee. Coffee is a popular hot beverage made from roasted beans. You'll hear this everywhere."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"order" - to request something, especially food or drink`, SpokenText: `Next up: order. To order means to request something, especially food or drink. For example, "I'd like to order a coffee."`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"please" - a polite word used when making requests`, SpokenText: "An important word: please. Please is a polite word used when making requests. Always add it to sound friendly."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "VOCAB", Text: `"large" - bigger than normal size, often used for drink sizes`, SpokenText: "And finally: large. Large means bigger than normal size. It's often used when choosing drink sizes."},
			)
		case entities.SegmentSlowDialogue:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Emotion: "friendly", Text: "Hello... How... can... I... help... you... today?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Text: "Hi... I... would... like... to... order... please."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Text: "Of... course... What... can... I... get... for... you?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Text: "I'd... like... a... large... coffee... please."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "SLOW", Text: "Would... you... like... anything... else?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "SLOW", Text: "No... thank... you... That's... all."},
			)
		case entities.SegmentBreakdown:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"How can I help you?" - A common greeting from service staff`, SpokenText: `First phrase: "How can I help you?" This is a very common greeting you'll hear from service staff. You'll hear this as soon as you approach the counter.`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"I'd like to order" - A polite way to start your request`, SpokenText: `Next: "I'd like to order." This is a polite way to start your request. It's softer than saying "I want."`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"What can I get for you?" - Another way staff ask for your order`, SpokenText: `You might also hear: "What can I get for you?" This is another friendly way staff ask for your order.`},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "BREAKDOWN", Text: `"That's all" - How to indicate you're done ordering`, SpokenText: `Finally: "That's all." Use this to indicate you're done ordering. Simple but very useful!`},
			)
		case entities.SegmentNaturalSpeed:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "Hi there! Welcome in. What can I get started for you?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Text: "Hey! I'd like a large coffee, please."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Text: "Sure thing! Would you like that hot or iced?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Text: "Hot, please. It's a bit chilly today."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "I hear you! Any room for cream?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Text: "Yes, just a little bit."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Text: "Perfect. Anything else I can get for you?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Text: "No, that's all for now. Thank you!"},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Text: "That'll be $4.50. Cash or card?"},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Text: "Card, please."},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Text: "Great, just tap right here. Your coffee will be ready at the end of the bar."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "NATURAL", Emotion: "grateful", Text: "Awesome, thanks so much!"},
				entities.ParsedLine{SpeakerID: 2, SegmentType: "NATURAL", Emotion: "friendly", Text: "You're welcome! Have a great day!"},
			)
		case entities.SegmentQuiz:
			mockLines = append(mockLines, mockQuizLines(config.QuizConfig)...)
		case entities.SegmentCulturalNote:
			mockLines = append(mockLines,
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Text: "In many countries, tipping baristas is appreciated but not required.", SpokenText: "Here's an interesting cultural tip: In many countries, tipping baristas is appreciated but not required. It's a nice gesture, but don't feel pressured."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Text: "In the US, it's common to leave a dollar or two in the tip jar.", SpokenText: "In the United States specifically, it's common to leave a dollar or two in the tip jar. You'll usually see one near the register."},
				entities.ParsedLine{SpeakerID: 1, SegmentType: "CULTURAL", Text: "Coffee shops often have loyalty programs - ask about rewards cards!", SpokenText: "One more tip: Coffee shops often have loyalty programs. Don't be shy to ask about rewards cards - you can earn free drinks over time!"},
			)
		}
	}

	var currentTime int64
	lines := make([]entities.DialogueLine, 0, len(mockLines))
	for i, line := range mockLines {
		spoken := line.SpokenText
		if spoken == "" {
			spoken = line.Text
		}
		duration := mockDurationMs(spoken)

		lines = append(lines, entities.DialogueLine{
			ID:          fmt.Sprintf("mock_%d", i),
			SpeakerID:   line.SpeakerID,
			Text:        line.Text,
			SpokenText:  line.SpokenText,
			Emotion:     line.Emotion,
			SegmentType: line.SegmentType,
			StartTime:   currentTime,
			EndTime:     currentTime + duration,
			Duration:    duration,
		})
		currentTime += duration + pauseBetweenLinesMs
	}

	return &entities.GeneratedDialogue{
		Config:        config,
		Lines:         lines,
		TotalDuration: currentTime,
	}
}
