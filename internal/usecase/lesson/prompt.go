package lesson

import (
	"fmt"
	"strings"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// difficultyGuide returns the style rules block for a difficulty level.
func difficultyGuide(difficulty entities.Difficulty, languageLabel string) string {
	switch difficulty {
	case entities.DifficultyBeginner:
		return `BEGINNER LEVEL - STRICTLY FOLLOW:
- Use ONLY simple vocabulary (common everyday words)
- Keep sentences SHORT (5-8 words maximum)
- Use basic grammar only (present simple, past simple)
- NO idioms, NO slang, NO complex phrases
- Use clear, direct language
- Repeat key vocabulary for reinforcement
- Speak at a SLOW pace`
	case entities.DifficultyAdvanced:
		return `ADVANCED LEVEL:
- Use sophisticated vocabulary and expressions
- Include complex idioms, metaphors, and nuanced language
- Use advanced grammar (conditionals, passive voice, subjunctive)
- Include subtle humor, sarcasm, or cultural references
- Natural interruptions and overlapping thoughts
- Complex sentence structures with multiple clauses
- Speak at a NATURAL, fast pace`
	default:
		return fmt.Sprintf(`INTERMEDIATE LEVEL:
- Use natural conversational %s
- Include common idioms and phrasal verbs
- Use varied sentence structures (compound sentences)
- Include some colloquial expressions
- Natural flow with appropriate fillers
- Medium length sentences (10-15 words)
- Speak at a MODERATE pace`, languageLabel)
	}
}

// sectionTransitions defines how to transition INTO a section from the
// previous one, keyed [segment][previous segment].
var sectionTransitions = map[entities.SegmentType]map[entities.SegmentType]string{
	entities.SegmentVocabulary: {
		entities.SegmentWelcome:      `Transition naturally from the welcome by saying something like "Now, before we jump into the conversation, let's go over some key words you'll hear..."`,
		entities.SegmentSlowDialogue: `Transition from the slow dialogue by saying "Let's make sure you know the key vocabulary from what we just heard..."`,
		entities.SegmentBreakdown:    `After the breakdown, introduce vocabulary with "Now let's expand on that with a few more essential words..."`,
		entities.SegmentNaturalSpeed: `After the natural conversation, say "Let's review the key vocabulary we used in that exchange..."`,
		entities.SegmentQuiz:         `After the quiz, introduce vocabulary with "Great job! Now let's add some more words to your toolkit..."`,
		entities.SegmentCulturalNote: `After the cultural notes, transition with "With that context in mind, here are some words you'll need..."`,
	},
	entities.SegmentSlowDialogue: {
		entities.SegmentWelcome:      `Transition from welcome by saying "Alright, let's ease into it with a slow-paced version of the conversation..."`,
		entities.SegmentVocabulary:   `After vocabulary, transition with "Now that you know those words, let's hear them in action—nice and slow at first..."`,
		entities.SegmentBreakdown:    `After the breakdown, say "Let's practice with a slower version so you can focus on the pronunciation..."`,
		entities.SegmentNaturalSpeed: `After the natural speed dialogue, say "Now let's slow that down so you can catch every word..."`,
		entities.SegmentQuiz:         `After the quiz, transition with "Great job! Let's do a slow practice round..."`,
		entities.SegmentCulturalNote: `After cultural notes, say "With that background, let's try a slow practice conversation..."`,
	},
	entities.SegmentBreakdown: {
		entities.SegmentWelcome:      `Transition from welcome by saying "Before we practice, let me break down some key phrases you'll need..."`,
		entities.SegmentVocabulary:   `After vocabulary, say "Now let's look at how these words come together in useful phrases..."`,
		entities.SegmentSlowDialogue: `After the slow dialogue, transition with "Let's break down what you just heard—I'll explain the key phrases..."`,
		entities.SegmentNaturalSpeed: `After the natural conversation, say "Let me break down some of the more complex phrases from that exchange..."`,
		entities.SegmentQuiz:         `After the quiz, say "Now let's go deeper into the grammar and structure of what we covered..."`,
		entities.SegmentCulturalNote: `After cultural notes, transition with "Now let's look at the language patterns behind what we discussed..."`,
	},
	entities.SegmentNaturalSpeed: {
		entities.SegmentWelcome:      `Transition from welcome with "Alright, let's dive right into a natural conversation—just like you'd hear in real life..."`,
		entities.SegmentVocabulary:   `After vocabulary, say "Now let's put those words into action with a real conversation at natural speed..."`,
		entities.SegmentSlowDialogue: `After the slow dialogue, say "Great! Now let's hear that same type of conversation at natural, everyday speed..."`,
		entities.SegmentBreakdown:    `After the breakdown, say "Now that you understand the phrases, let's hear a full conversation at natural speed..."`,
		entities.SegmentQuiz:         `After the quiz, say "Excellent! Now let's hear another natural conversation to reinforce what you've learned..."`,
		entities.SegmentCulturalNote: `After cultural notes, transition with "With that cultural context, here's how a real conversation would sound..."`,
	},
	entities.SegmentQuiz: {
		entities.SegmentWelcome:      `Transition from welcome with "Let's start with a quick check of what you already know..."`,
		entities.SegmentVocabulary:   `After vocabulary, say "Now let's test yourself on those words we just learned. I'll ask a question, give you a moment to think, then reveal the answer..."`,
		entities.SegmentSlowDialogue: `After the slow dialogue, say "Let's check your understanding of what we just practiced..."`,
		entities.SegmentBreakdown:    `After the breakdown, say "Time to test those phrases! I'll quiz you on what we just covered..."`,
		entities.SegmentNaturalSpeed: `After the natural conversation, say "Alright, let's see what you picked up from that conversation. I'll ask about the vocabulary, phrases, and details from the dialogue..."`,
		entities.SegmentCulturalNote: `After cultural notes, say "Let's see how much you remember—quiz time..."`,
	},
	entities.SegmentCulturalNote: {
		entities.SegmentWelcome:      `Transition from welcome with "Before we practice, here's some helpful cultural context..."`,
		entities.SegmentVocabulary:   `After vocabulary, say "Now, a bit of cultural background that will help you use these words naturally..."`,
		entities.SegmentSlowDialogue: `After the slow dialogue, say "Here's some cultural context that will help you understand why people speak this way..."`,
		entities.SegmentBreakdown:    `After the breakdown, say "Let me share some cultural insights that explain these expressions..."`,
		entities.SegmentNaturalSpeed: `After the natural conversation, say "Now let me give you some cultural context about what you just heard..."`,
		entities.SegmentQuiz:         `After the quiz, say "Great job! Now for some cultural background that ties everything together..."`,
	},
}

// sectionClosings defines how to close out a section before transitioning
// to the next, keyed [segment][next segment].
var sectionClosings = map[entities.SegmentType]map[entities.SegmentType]string{
	entities.SegmentWelcome: {
		entities.SegmentVocabulary:   `End the welcome by teasing what's next: "Let's start by learning some essential vocabulary..."`,
		entities.SegmentSlowDialogue: `End welcome by saying "Let's begin with a slow, clear version of the conversation..."`,
		entities.SegmentBreakdown:    `End welcome with "First, let me break down some key phrases for you..."`,
		entities.SegmentNaturalSpeed: `End welcome with "Let's jump right into a natural conversation..."`,
		entities.SegmentQuiz:         `End welcome with "Let's see what you already know with a quick warm-up quiz..."`,
		entities.SegmentCulturalNote: `End welcome with "First, some cultural context that will help you understand..."`,
	},
	entities.SegmentVocabulary: {
		entities.SegmentSlowDialogue: `End vocabulary with "Now let's hear these words in a real conversation—we'll take it slow..."`,
		entities.SegmentBreakdown:    `End vocabulary with "Now let's look at how to put these words together in phrases..."`,
		entities.SegmentNaturalSpeed: `End vocabulary with "Time to hear these words in action at natural speed..."`,
		entities.SegmentQuiz:         `End vocabulary with "Let's test how well you remember these words..."`,
		entities.SegmentCulturalNote: `End vocabulary with "Now some cultural context about when to use these words..."`,
	},
	entities.SegmentSlowDialogue: {
		entities.SegmentVocabulary:   `End slow dialogue with "Now let's go over the vocabulary from that conversation..."`,
		entities.SegmentBreakdown:    `End slow dialogue with "Let me break down the key phrases you just heard..."`,
		entities.SegmentNaturalSpeed: `End slow dialogue with "Now let's hear that at natural, everyday speed..."`,
		entities.SegmentQuiz:         `End slow dialogue with "Let's check your understanding with a quick quiz..."`,
		entities.SegmentCulturalNote: `End slow dialogue with "Here's some cultural context about that interaction..."`,
	},
	entities.SegmentBreakdown: {
		entities.SegmentVocabulary:   `End breakdown with "Let's add some more vocabulary to your toolkit..."`,
		entities.SegmentSlowDialogue: `End breakdown with "Now let's practice with a slow version..."`,
		entities.SegmentNaturalSpeed: `End breakdown with "Now that you understand the phrases, let's hear a natural conversation..."`,
		entities.SegmentQuiz:         `End breakdown with "Time to test what you've learned..."`,
		entities.SegmentCulturalNote: `End breakdown with "Let me share some cultural insights related to these phrases..."`,
	},
	entities.SegmentNaturalSpeed: {
		entities.SegmentVocabulary:   `End natural dialogue with "Let's review the key vocabulary from that conversation..."`,
		entities.SegmentSlowDialogue: `End natural dialogue with "Now let's slow that down for practice..."`,
		entities.SegmentBreakdown:    `End natural dialogue with "Let me break down some of those phrases for you..."`,
		entities.SegmentQuiz:         `End natural dialogue with "Let's test what you picked up from that conversation..."`,
		entities.SegmentCulturalNote: `End natural dialogue with "Here's some cultural background about what you just heard..."`,
	},
	entities.SegmentQuiz: {
		entities.SegmentVocabulary:   `End quiz with "Great job! Let's add some more vocabulary..."`,
		entities.SegmentSlowDialogue: `End quiz with "Well done! Now let's do some slow practice..."`,
		entities.SegmentBreakdown:    `End quiz with "Good work! Let's go deeper into the grammar..."`,
		entities.SegmentNaturalSpeed: `End quiz with "Excellent! Now let's hear another natural conversation..."`,
		entities.SegmentCulturalNote: `End quiz with "Nice work! Now for some cultural context..."`,
	},
	entities.SegmentCulturalNote: {
		entities.SegmentVocabulary:   `End cultural notes with "Now let's learn some vocabulary related to this..."`,
		entities.SegmentSlowDialogue: `End cultural notes with "Let's practice a conversation with this in mind—nice and slow..."`,
		entities.SegmentBreakdown:    `End cultural notes with "Now let's look at the language patterns..."`,
		entities.SegmentNaturalSpeed: `End cultural notes with "Here's how a real conversation sounds with this context..."`,
		entities.SegmentQuiz:         `End cultural notes with "Let's see how much you remember..."`,
	},
}

// BuildPrompt assembles the full instruction set sent to the dialogue model.
func BuildPrompt(config *entities.ConversationConfig) string {
	languageLabel, ok := entities.LanguageLabel(config.Language)
	if !ok {
		languageLabel = config.Language
	}
	locationLabel, ok := entities.LocationLabel(config.Location)
	if !ok {
		locationLabel = config.Location
	}

	segmentInstructions := buildSegmentInstructions(config, languageLabel, locationLabel)

	return fmt.Sprintf(`Create a %s language lesson for a student at a %s.

IMPORTANT: The entire lesson content MUST be in %s. Do NOT use English unless %s is English.

Situation: %s

Speaker 1: %s (%s)
Speaker 2: %s (%s)

%s

%s

Format each line as:
[Speaker Number]|[Segment Type]|[Optional Emotion]|[Content in %s]

Segment types: WELCOME, VOCAB, SLOW, BREAKDOWN, NATURAL, QUIZ, CULTURAL

Examples:
1|WELCOME|[warm]|Hello everyone! I'm %s, and I'll be your guide today.
2|WELCOME|[friendly]|And I'm %s! We're excited to help you practice.
1|VOCAB||Key word: "café" - a coffee shop
2|SLOW|[friendly]|Buenos días, ¿qué le puedo ofrecer?
1|BREAKDOWN||"¿Qué le puedo ofrecer?" means "What can I offer you?"
1|NATURAL|[casual]|Un café con leche, por favor.
1|QUIZ||What does "café con leche" mean?
1|CULTURAL||In Spain, it's common to stand at the bar for a quick coffee.

Generate the %s lesson now:`,
		languageLabel, locationLabel,
		languageLabel, languageLabel,
		config.Situation,
		config.Speaker1.Name, config.Speaker1.Role,
		config.Speaker2.Name, config.Speaker2.Role,
		difficultyGuide(config.Difficulty, languageLabel),
		segmentInstructions,
		languageLabel,
		config.Speaker1.Name,
		config.Speaker2.Name,
		languageLabel,
	)
}

// quizQuestionTypes lists the TYPE blocks for the enabled quiz archetypes,
// renumbered so the model never sees a gap.
func quizQuestionTypes(quiz entities.QuizConfig) string {
	type questionType struct {
		enabled bool
		block   string
	}
	types := []questionType{
		{quiz.VocabL2ToL1, `Vocabulary Recall: Test words from the Vocabulary section
     Question text: "What does '[word from vocab section]' mean?"
     Answer text: "[the definition, brief]"`},
		{quiz.PhraseMeaning, `Phrase Meaning: Test phrases from the Breakdown section
     Question text: "What does '[phrase from breakdown]' mean?"
     Answer text: "[the meaning, brief]"`},
		{quiz.Comprehension, `Comprehension: Test details from the Natural Speed Conversation
     Question text: "What did [character] [do/order/ask for]?"
     Answer text: "[specific detail from conversation]"`},
		{quiz.VocabL1ToL2, `Production/Recall: Ask how to say something
     Question text: "How do you politely [action from lesson]?"
     Answer text: "[the phrase taught]"`},
	}

	var blocks []string
	n := 1
	for _, t := range types {
		if !t.enabled {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("   TYPE %d - %s", n, t.block))
		n++
	}
	return strings.Join(blocks, "\n\n")
}

func buildSegmentInstructions(config *entities.ConversationConfig, languageLabel, locationLabel string) string {
	segments := effectiveSegments(config)
	var instructions []string

	instructions = append(instructions, `CRITICAL - CONTINUOUS LESSON FLOW:
This lesson must sound like ONE continuous class taught by two teachers, NOT separate audio clips stitched together.
- Each section should TRANSITION SMOOTHLY into the next
- Speakers should reference what they just covered and preview what's coming
- Use natural bridging phrases between sections
- The teachers are having a real class together, not reading isolated scripts

IMPORTANT SEGMENT TYPE RULE:
- When a speaker says something like "Now let's learn vocabulary..." or "Let's move on to the quiz...", that line should be marked with the segment type of the section it's INTRODUCING, NOT the section it's coming from.
- Example: "Let's start with some vocabulary!" should be marked as VOCAB, not WELCOME.

LESSON STRUCTURE - Generate content in this exact order:
`)

	sectionNum := 1
	for i, segment := range segments {
		var prevSegment, nextSegment entities.SegmentType
		if i > 0 {
			prevSegment = segments[i-1]
		}
		if i < len(segments)-1 {
			nextSegment = segments[i+1]
		}

		transitionIn := ""
		if prevSegment != "" {
			transitionIn = sectionTransitions[segment][prevSegment]
		}
		transitionOut := ""
		if nextSegment != "" {
			transitionOut = sectionClosings[segment][nextSegment]
		}

		transitionInLine := ""
		if transitionIn != "" {
			transitionInLine = fmt.Sprintf("- FIRST LINE: A transition from %s - \"%s\" (marked as %s, not %s)",
				prevSegment, transitionIn, segment.Tag(), prevSegment.Tag())
		}
		transitionOutLine := ""
		if transitionOut != "" {
			transitionOutLine = fmt.Sprintf("- LAST LINE: A transition to %s (marked as %s, not %s)",
				nextSegment, nextSegment.Tag(), segment.Tag())
		}

		switch segment {
		case entities.SegmentWelcome:
			instructions = append(instructions, fmt.Sprintf(`%d. WELCOME/INTRODUCTION SECTION (marked as WELCOME):
   - %s and %s greet the learner warmly
   - They introduce themselves by name and role (e.g., "%s" as "%s", "%s" as "%s")
   - Briefly explain what the lesson will cover: "%s" at the %s
   - Set expectations for what the learner will practice
   - Generate 4-6 lines of welcoming dialogue between both speakers
   - NOTE: Do NOT include transition to the next section in WELCOME lines`,
				sectionNum,
				config.Speaker1.Name, config.Speaker2.Name,
				config.Speaker1.Name, config.Speaker1.Role,
				config.Speaker2.Name, config.Speaker2.Role,
				config.Situation, locationLabel))
		case entities.SegmentVocabulary:
			instructions = append(instructions, fmt.Sprintf(`%d. VOCABULARY SECTION (marked as VOCAB):
   %s
   - Introduce 5-8 key words/phrases relevant to the situation
   - Each vocab line has TWO parts:
     * "text" field: The word and definition in dictionary format (e.g., "espresso - a strong coffee made by forcing hot water through grounds")
     * "spokenText" field: The conversational explanation teachers would say (e.g., "Our first word is espresso. An espresso is a strong coffee made by forcing hot water through coffee grounds. You'll see this on almost every coffee shop menu.")
   - IMPORTANT: Do NOT include punctuation (periods, question marks, etc.) attached to the vocabulary word itself. Write "espresso" not "espresso." or "espresso?"
   - Include pronunciation hints if helpful
   %s`, sectionNum, transitionInLine, transitionOutLine))
		case entities.SegmentSlowDialogue:
			instructions = append(instructions, fmt.Sprintf(`%d. SLOW DIALOGUE SECTION (marked as SLOW):
   %s
   - Generate 10-12 lines of dialogue at a SLOW, CLEAR pace
   - Each line should be shorter and more deliberate
   - Include [slow] emotion tag where appropriate
   - Natural back-and-forth between speakers
   %s`, sectionNum, transitionInLine, transitionOutLine))
		case entities.SegmentBreakdown:
			instructions = append(instructions, fmt.Sprintf(`%d. BREAKDOWN SECTION (marked as BREAKDOWN):
   %s
   - Explain 4-6 key phrases from the dialogue
   - Speaker 1 provides explanations
   - Each breakdown line has TWO parts:
     * "text" field: The phrase with explanation (e.g., "How can I help you? - A common greeting from service staff")
     * "spokenText" field: The conversational explanation (e.g., "Now let's break down 'How can I help you?' This is a very common greeting you'll hear from service staff...")
   - Include grammar notes and cultural context
   %s`, sectionNum, transitionInLine, transitionOutLine))
		case entities.SegmentNaturalSpeed:
			instructions = append(instructions, fmt.Sprintf(`%d. NATURAL SPEED DIALOGUE (marked as NATURAL):
   %s
   - Generate 16-24 lines of natural conversation
   - Use natural pacing and rhythm for %s
   - Include emotions and natural reactions
   - Complete conversation with beginning, middle, end
   %s`, sectionNum, transitionInLine, languageLabel, transitionOutLine))
		case entities.SegmentQuiz:
			instructions = append(instructions, fmt.Sprintf(`%d. QUIZ/RECALL SECTION (marked as QUIZ):
   %s

   CRITICAL: Quiz questions MUST directly test content from EARLIER sections of THIS lesson:
   - Questions about VOCABULARY words that were introduced in the Vocabulary section
   - Questions about PHRASES that were explained in the Breakdown section
   - Questions about EVENTS/DETAILS from the Natural Speed Conversation (comprehension)

   Include 4-6 question/answer pairs using these QUESTION TYPES (mix them):

%s

   FORMAT - Alternate between QUESTION lines and ANSWER lines:
   - Each line has TWO parts:
     * "text" field: SHORT text for flashcard display (question or answer only)
     * "spokenText" field: Full conversational narration with context
   - For QUESTIONS:
     * text: Just the question (e.g., "What does 'espresso' mean?")
     * spokenText: Full prompt (e.g., "Question one: What does espresso mean? We learned this word earlier. Take a moment to think.")
   - For ANSWERS:
     * text: Just the answer, very brief (e.g., "A strong coffee")
     * spokenText: Full explanation (e.g., "The answer is: a strong coffee made by forcing hot water through grounds. Remember, you'll see this on every menu.")

   %s`, sectionNum, transitionInLine, quizQuestionTypes(config.QuizConfig), transitionOutLine))
		case entities.SegmentCulturalNote:
			instructions = append(instructions, fmt.Sprintf(`%d. CULTURAL NOTE (marked as CULTURAL):
   %s
   - Include 2-3 cultural insights about %s-speaking regions
   - Relate to the %s scenario
   - Each cultural line has TWO parts:
     * "text" field: The cultural tip (e.g., "Cultural Tip: In many countries, tipping baristas is appreciated but not required.")
     * "spokenText" field: The conversational explanation (e.g., "Here's something useful to know about coffee culture...")
   - Practical tips for real-world interaction
   - Speaker 1 provides the cultural context`,
				sectionNum, transitionInLine, languageLabel, config.Situation))
		}
		sectionNum++
		instructions = append(instructions, "")
	}

	return strings.Join(instructions, "\n")
}
