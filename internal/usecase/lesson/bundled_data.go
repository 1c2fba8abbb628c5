package lesson

import (
	"fmt"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// bundledAudioURI points at the pre-synthesized audio object shipped with a
// bundled lesson. Objects live under bundled/{lessonKey}/line_{index}.mp3 in
// the audio bucket.
func bundledAudioURI(lessonKey string, lineIndex int) string {
	return fmt.Sprintf("bundled/%s/line_%d.mp3", lessonKey, lineIndex)
}

// englishCoffeeShopLesson is the pre-generated classroom-style lesson for
// ordering a drink at a coffee shop in English. Timings match the
// pre-synthesized audio files, so they are fixed rather than estimated.
func englishCoffeeShopLesson() *entities.GeneratedDialogue {
	const key = "en_coffee_shop"

	lines := []entities.DialogueLine{
		{ID: "line_0", SpeakerID: 1, SegmentType: "WELCOME", Text: "Welcome to today's lesson! I'm Maria, and I'll be your teacher.", StartTime: 0, EndTime: 3000, Duration: 3000},
		{ID: "line_1", SpeakerID: 2, SegmentType: "WELCOME", Text: "And I'm Ben. I'll be helping out with the practice conversations.", StartTime: 3500, EndTime: 6500, Duration: 3000},
		{ID: "line_2", SpeakerID: 1, SegmentType: "WELCOME", Text: "Today we're at a coffee shop. You'll learn how to order drinks and have a friendly chat with the barista.", StartTime: 7000, EndTime: 11000, Duration: 4000},

		{ID: "line_3", SpeakerID: 1, SegmentType: "VOCAB", Text: "coffee - a hot beverage made from roasted beans", SpokenText: "Let's start with our first word: coffee. Coffee is a popular hot beverage made from roasted beans. You'll hear this everywhere in a coffee shop.", StartTime: 11500, EndTime: 17000, Duration: 5500},
		{ID: "line_4", SpeakerID: 1, SegmentType: "VOCAB", Text: "latte - espresso with steamed milk", SpokenText: "Next up: latte. A latte is espresso mixed with steamed milk. It's creamy and delicious.", StartTime: 17500, EndTime: 22000, Duration: 4500},
		{ID: "line_5", SpeakerID: 1, SegmentType: "VOCAB", Text: "order - to request something", SpokenText: "An important word: order. To order means to request something. You'll use this when telling the barista what you want.", StartTime: 22500, EndTime: 27500, Duration: 5000},
		{ID: "line_6", SpeakerID: 1, SegmentType: "VOCAB", Text: "to go - for takeaway, not to drink here", SpokenText: "And finally: to go. When you want your drink to go, it means you're taking it with you, not drinking it in the shop.", StartTime: 28000, EndTime: 33500, Duration: 5500},

		{ID: "line_7", SpeakerID: 1, SegmentType: "SLOW", Text: "Now let's hear these words in a real conversation. We'll take it slow at first.", StartTime: 34000, EndTime: 38000, Duration: 4000},
		{ID: "line_8", SpeakerID: 2, SegmentType: "SLOW", Emotion: "friendly", Text: "Hi there! Welcome to the coffee shop. What can I get for you today?", StartTime: 38500, EndTime: 43000, Duration: 4500},
		{ID: "line_9", SpeakerID: 1, SegmentType: "SLOW", Emotion: "polite", Text: "Hello! I'd like a latte, please.", StartTime: 43500, EndTime: 47000, Duration: 3500},
		{ID: "line_10", SpeakerID: 2, SegmentType: "SLOW", Text: "Of course! Would you like that for here or to go?", StartTime: 47500, EndTime: 51000, Duration: 3500},
		{ID: "line_11", SpeakerID: 1, SegmentType: "SLOW", Text: "To go, please.", StartTime: 51500, EndTime: 54000, Duration: 2500},
		{ID: "line_12", SpeakerID: 2, SegmentType: "SLOW", Text: "Great! That'll be four dollars and fifty cents.", StartTime: 54500, EndTime: 58000, Duration: 3500},

		{ID: "line_13", SpeakerID: 1, SegmentType: "BREAKDOWN", Text: "What can I get for you? - A polite way to ask what someone wants to order", SpokenText: "Let's break down some key phrases. 'What can I get for you?' is a polite way the barista asks what you want to order. It's very common in service situations.", StartTime: 58500, EndTime: 65000, Duration: 6500},
		{ID: "line_14", SpeakerID: 1, SegmentType: "BREAKDOWN", Text: "I'd like... - A polite way to express what you want", SpokenText: "The phrase 'I'd like' is a polite way to say what you want. It's softer than saying 'I want'. Very useful in any ordering situation.", StartTime: 65500, EndTime: 72000, Duration: 6500},
		{ID: "line_15", SpeakerID: 1, SegmentType: "BREAKDOWN", Text: "For here or to go? - Asking if you're staying or leaving", SpokenText: "'For here or to go?' is how staff ask if you're drinking in the shop or taking your order with you. In British English, you might hear 'eat in or take away' instead.", StartTime: 72500, EndTime: 80000, Duration: 7500},

		{ID: "line_16", SpeakerID: 1, SegmentType: "NATURAL", Text: "Now let's hear a natural-speed conversation.", StartTime: 80500, EndTime: 83500, Duration: 3000},
		{ID: "line_17", SpeakerID: 2, SegmentType: "NATURAL", Emotion: "casual", Text: "Hey! What can I get you?", StartTime: 84000, EndTime: 86000, Duration: 2000},
		{ID: "line_18", SpeakerID: 1, SegmentType: "NATURAL", Text: "Hi! Can I get a large latte to go?", StartTime: 86500, EndTime: 89000, Duration: 2500},
		{ID: "line_19", SpeakerID: 2, SegmentType: "NATURAL", Text: "Sure thing! Anything else?", StartTime: 89500, EndTime: 91500, Duration: 2000},
		{ID: "line_20", SpeakerID: 1, SegmentType: "NATURAL", Text: "No, that's all, thanks!", StartTime: 92000, EndTime: 94000, Duration: 2000},
		{ID: "line_21", SpeakerID: 2, SegmentType: "NATURAL", Text: "That's four fifty. Here you go!", StartTime: 94500, EndTime: 97000, Duration: 2500},
		{ID: "line_22", SpeakerID: 1, SegmentType: "NATURAL", Text: "Perfect, thank you!", StartTime: 97500, EndTime: 99500, Duration: 2000},

		{ID: "line_23", SpeakerID: 1, SegmentType: "QUIZ", Text: "QUESTION: What does 'to go' mean?", SpokenText: "Time for a quick quiz! Question one: What does 'to go' mean? Think about it for a moment.", StartTime: 100000, EndTime: 106000, Duration: 6000},
		{ID: "line_24", SpeakerID: 1, SegmentType: "QUIZ", Text: "ANSWER: Taking your order with you, not staying in the shop", SpokenText: "The answer is: taking your order with you, not staying in the shop. Did you get it right?", StartTime: 106500, EndTime: 112000, Duration: 5500},
		{ID: "line_25", SpeakerID: 1, SegmentType: "QUIZ", Text: "QUESTION: How do you politely say what you want?", SpokenText: "Question two: How do you politely say what you want to order?", StartTime: 112500, EndTime: 117500, Duration: 5000},
		{ID: "line_26", SpeakerID: 1, SegmentType: "QUIZ", Text: "ANSWER: I'd like...", SpokenText: "The answer is: 'I'd like...' followed by what you want. For example, 'I'd like a latte, please.'", StartTime: 118000, EndTime: 124000, Duration: 6000},

		{ID: "line_27", SpeakerID: 1, SegmentType: "CULTURAL", Text: "Here's a cultural tip about coffee shops.", StartTime: 124500, EndTime: 127500, Duration: 3000},
		{ID: "line_28", SpeakerID: 1, SegmentType: "CULTURAL", Text: "In American coffee shops, tipping is common. A dollar or two for your drink is appreciated!", StartTime: 128000, EndTime: 134000, Duration: 6000},
		{ID: "line_29", SpeakerID: 2, SegmentType: "CULTURAL", Text: "That's right! And don't worry about small talk - baristas are usually friendly and happy to chat.", StartTime: 134500, EndTime: 140000, Duration: 5500},
		{ID: "line_30", SpeakerID: 1, SegmentType: "CULTURAL", Text: "Great job today! Keep practicing these phrases and you'll be ordering like a pro in no time.", StartTime: 140500, EndTime: 146000, Duration: 5500},
	}
	for i := range lines {
		lines[i].AudioURI = bundledAudioURI(key, i)
	}

	// The pre-authored structure places the cultural note after the quiz,
	// which the interactive segment editor would not allow, so the segment
	// list is spelled out directly instead of built through AddSegment.
	config := &entities.ConversationConfig{
		Language:   "en",
		Location:   "coffee_shop",
		Situation:  "Ordering a drink",
		Difficulty: entities.DifficultyIntermediate,
		Format:     entities.FormatClassroomStyle,
		Segments: []entities.LessonSegment{
			{ID: "seg_0", Type: entities.SegmentWelcome},
			{ID: "seg_1", Type: entities.SegmentVocabulary},
			{ID: "seg_2", Type: entities.SegmentSlowDialogue},
			{ID: "seg_3", Type: entities.SegmentBreakdown},
			{ID: "seg_4", Type: entities.SegmentNaturalSpeed},
			{ID: "seg_5", Type: entities.SegmentQuiz},
			{ID: "seg_6", Type: entities.SegmentCulturalNote},
		},
		Speaker1:   entities.SpeakerConfig{Name: "Maria", Role: "Customer"},
		Speaker2:   entities.SpeakerConfig{Name: "Ben", Role: "Barista"},
		QuizConfig: entities.DefaultQuizConfig(),
	}

	return &entities.GeneratedDialogue{
		Config:        config,
		Lines:         lines,
		TotalDuration: 146000,
	}
}
