package lesson

import (
	"strings"
	"testing"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

func classroomConfig() *entities.ConversationConfig {
	return entities.NewConversationConfig(
		"es", "coffee_shop", "Ordering a drink",
		entities.DifficultyBeginner, entities.FormatClassroomStyle,
		entities.SpeakerConfig{Name: "Maria", Role: "Customer"},
		entities.SpeakerConfig{Name: "Jordan", Role: "Barista"},
	)
}

func TestBuildPrompt_LanguageAndSpeakers(t *testing.T) {
	prompt := BuildPrompt(classroomConfig())

	if !strings.Contains(prompt, "Create a Spanish language lesson") {
		t.Errorf("prompt should name the target language label")
	}
	if !strings.Contains(prompt, "The entire lesson content MUST be in Spanish") {
		t.Errorf("prompt missing language enforcement")
	}
	if !strings.Contains(prompt, "Speaker 1: Maria (Customer)") {
		t.Errorf("prompt missing speaker 1 line")
	}
	if !strings.Contains(prompt, "Speaker 2: Jordan (Barista)") {
		t.Errorf("prompt missing speaker 2 line")
	}
	if !strings.Contains(prompt, "Situation: Ordering a drink") {
		t.Errorf("prompt missing situation")
	}
}

func TestBuildPrompt_DifficultyGuides(t *testing.T) {
	cfg := classroomConfig()

	prompt := BuildPrompt(cfg)
	if !strings.Contains(prompt, "BEGINNER LEVEL - STRICTLY FOLLOW:") {
		t.Errorf("beginner guide missing")
	}

	cfg.Difficulty = entities.DifficultyIntermediate
	prompt = BuildPrompt(cfg)
	if !strings.Contains(prompt, "INTERMEDIATE LEVEL:") {
		t.Errorf("intermediate guide missing")
	}
	if !strings.Contains(prompt, "Use natural conversational Spanish") {
		t.Errorf("intermediate guide should name the language")
	}

	cfg.Difficulty = entities.DifficultyAdvanced
	prompt = BuildPrompt(cfg)
	if !strings.Contains(prompt, "ADVANCED LEVEL:") {
		t.Errorf("advanced guide missing")
	}
}

func TestBuildPrompt_SegmentOrderAndTransitions(t *testing.T) {
	prompt := BuildPrompt(classroomConfig())

	// Classroom format: welcome, vocab, slow, breakdown, natural, quiz.
	sections := []string{
		"1. WELCOME/INTRODUCTION SECTION",
		"2. VOCABULARY SECTION",
		"3. SLOW DIALOGUE SECTION",
		"4. BREAKDOWN SECTION",
		"5. NATURAL SPEED DIALOGUE",
		"6. QUIZ/RECALL SECTION",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		if idx == -1 {
			t.Fatalf("section %q missing from prompt", section)
		}
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}

	if !strings.Contains(prompt, "CRITICAL - CONTINUOUS LESSON FLOW:") {
		t.Errorf("flow preamble missing")
	}
	// Vocabulary follows welcome, so its transition-in comes from welcome.
	if !strings.Contains(prompt, "FIRST LINE: A transition from welcome") {
		t.Errorf("vocabulary transition-in missing")
	}
	// Welcome section never carries a transition inside its own lines.
	if !strings.Contains(prompt, "Do NOT include transition to the next section in WELCOME lines") {
		t.Errorf("welcome no-transition rule missing")
	}
}

func TestBuildPrompt_QuizTypesFollowToggles(t *testing.T) {
	prompt := BuildPrompt(classroomConfig())
	for _, block := range []string{
		"TYPE 1 - Vocabulary Recall",
		"TYPE 2 - Phrase Meaning",
		"TYPE 3 - Comprehension",
		"TYPE 4 - Production/Recall",
	} {
		if !strings.Contains(prompt, block) {
			t.Errorf("default config should request %q", block)
		}
	}

	cfg := classroomConfig()
	cfg.QuizConfig = entities.QuizConfig{Comprehension: true}
	prompt = BuildPrompt(cfg)
	if !strings.Contains(prompt, "TYPE 1 - Comprehension") {
		t.Errorf("sole enabled archetype should be renumbered to TYPE 1")
	}
	for _, absent := range []string{"Vocabulary Recall", "Phrase Meaning", "Production/Recall", "TYPE 2"} {
		if strings.Contains(prompt, absent) {
			t.Errorf("disabled archetype %q leaked into the prompt", absent)
		}
	}
}

func TestBuildPrompt_AllQuizTogglesOffDropsSection(t *testing.T) {
	cfg := classroomConfig()
	cfg.QuizConfig = entities.QuizConfig{}

	prompt := BuildPrompt(cfg)
	if strings.Contains(prompt, "QUIZ/RECALL SECTION") {
		t.Errorf("quiz section requested with every archetype disabled")
	}
}

func TestBuildPrompt_QuickFormatSkipsAbsentSections(t *testing.T) {
	cfg := classroomConfig()
	cfg.SetFormat(entities.FormatQuickDialogue)

	prompt := BuildPrompt(cfg)
	if strings.Contains(prompt, "VOCABULARY SECTION") {
		t.Errorf("quick format should not include vocabulary section")
	}
	if !strings.Contains(prompt, "2. NATURAL SPEED DIALOGUE") {
		t.Errorf("natural section should be second in quick format")
	}
}
