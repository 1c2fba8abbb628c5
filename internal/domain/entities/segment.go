package entities

import "strings"

// SegmentType identifies one section of a lesson.
type SegmentType string

const (
	SegmentWelcome      SegmentType = "welcome"
	SegmentVocabulary   SegmentType = "vocabulary"
	SegmentSlowDialogue SegmentType = "slow_dialogue"
	SegmentBreakdown    SegmentType = "breakdown"
	SegmentNaturalSpeed SegmentType = "natural_speed"
	SegmentQuiz         SegmentType = "quiz"
	SegmentCulturalNote SegmentType = "cultural_note"
)

// AllSegmentTypes lists every segment type in canonical lesson order.
var AllSegmentTypes = []SegmentType{
	SegmentWelcome,
	SegmentVocabulary,
	SegmentSlowDialogue,
	SegmentBreakdown,
	SegmentNaturalSpeed,
	SegmentQuiz,
	SegmentCulturalNote,
}

// Uppercase segment tags carried on dialogue lines.
const (
	TagWelcome   = "WELCOME"
	TagVocab     = "VOCAB"
	TagSlow      = "SLOW"
	TagBreakdown = "BREAKDOWN"
	TagNatural   = "NATURAL"
	TagQuiz      = "QUIZ"
	TagCultural  = "CULTURAL"
)

var segmentTags = map[SegmentType]string{
	SegmentWelcome:      TagWelcome,
	SegmentVocabulary:   TagVocab,
	SegmentSlowDialogue: TagSlow,
	SegmentBreakdown:    TagBreakdown,
	SegmentNaturalSpeed: TagNatural,
	SegmentQuiz:         TagQuiz,
	SegmentCulturalNote: TagCultural,
}

// Tag returns the uppercase wire tag for a segment type.
func (s SegmentType) Tag() string {
	if tag, ok := segmentTags[s]; ok {
		return tag
	}
	return strings.ToUpper(string(s))
}

// DisplayInfo describes how a segment is presented to learners.
type DisplayInfo struct {
	Label            string `json:"label"`
	Color            string `json:"color"`
	HasAlternateView bool   `json:"has_alternate_view"`
}

// neutralColor is used for tags outside the known catalog.
const neutralColor = "#64748B"

var displayInfoByTag = map[string]DisplayInfo{
	TagWelcome:   {Label: "Welcome", Color: "#06B6D4", HasAlternateView: false},
	TagVocab:     {Label: "Vocabulary", Color: "#8B5CF6", HasAlternateView: true},
	TagSlow:      {Label: "Slow Dialogue", Color: "#0EA5E9", HasAlternateView: false},
	TagBreakdown: {Label: "Breakdown", Color: "#F59E0B", HasAlternateView: true},
	TagNatural:   {Label: "Conversation", Color: "#10B981", HasAlternateView: false},
	TagQuiz:      {Label: "Quiz", Color: "#EF4444", HasAlternateView: true},
	TagCultural:  {Label: "Cultural Note", Color: "#EC4899", HasAlternateView: true},
}

// NormalizeTag maps a raw segment tag to its canonical uppercase form.
// The legacy NATURAL_SPEED spelling folds into NATURAL.
func NormalizeTag(tag string) string {
	upper := strings.ToUpper(strings.TrimSpace(tag))
	if upper == "NATURAL_SPEED" {
		return TagNatural
	}
	return upper
}

// DisplayInfoOf is a total lookup: unknown tags get a neutral fallback so
// playback never breaks on unexpected model output.
func DisplayInfoOf(tag string) DisplayInfo {
	normalized := NormalizeTag(tag)
	if info, ok := displayInfoByTag[normalized]; ok {
		return info
	}
	return DisplayInfo{Label: normalized, Color: neutralColor, HasAlternateView: false}
}

// LessonFormat names a preset lesson structure.
type LessonFormat string

const (
	FormatQuickDialogue   LessonFormat = "quick_dialogue"
	FormatVocabularyFirst LessonFormat = "vocabulary_first"
	FormatClassroomStyle  LessonFormat = "classroom_style"
	FormatImmersion       LessonFormat = "immersion"
	FormatCustom          LessonFormat = "custom"
)

// FormatOption describes a lesson format for the catalog API.
type FormatOption struct {
	Value       LessonFormat `json:"value"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
}

// LessonFormats lists all selectable formats.
var LessonFormats = []FormatOption{
	{Value: FormatQuickDialogue, Label: "Quick Dialogue", Description: "Just the conversation"},
	{Value: FormatVocabularyFirst, Label: "Vocabulary First", Description: "Words introduced, then conversation"},
	{Value: FormatClassroomStyle, Label: "Classroom Style", Description: "Full lesson: Vocab, Slow, Breakdown, Natural, Quiz"},
	{Value: FormatImmersion, Label: "Immersion", Description: "Long natural conversation, no hand-holding"},
	{Value: FormatCustom, Label: "Custom", Description: "Arrange your own lesson structure"},
}

var formatSegments = map[LessonFormat][]SegmentType{
	FormatQuickDialogue:   {SegmentWelcome, SegmentNaturalSpeed},
	FormatVocabularyFirst: {SegmentWelcome, SegmentVocabulary, SegmentNaturalSpeed},
	FormatClassroomStyle:  {SegmentWelcome, SegmentVocabulary, SegmentSlowDialogue, SegmentBreakdown, SegmentNaturalSpeed, SegmentQuiz},
	FormatImmersion:       {SegmentWelcome, SegmentNaturalSpeed},
	FormatCustom:          {SegmentWelcome, SegmentVocabulary, SegmentSlowDialogue, SegmentBreakdown, SegmentNaturalSpeed, SegmentQuiz, SegmentCulturalNote},
}

// FormatSegments returns a fresh copy of the preset segment sequence for a
// format. Unknown formats get the quick dialogue preset.
func FormatSegments(format LessonFormat) []SegmentType {
	preset, ok := formatSegments[format]
	if !ok {
		preset = formatSegments[FormatQuickDialogue]
	}
	out := make([]SegmentType, len(preset))
	copy(out, preset)
	return out
}

// IsValidSegmentType reports whether the segment type is one of the seven
// known types.
func IsValidSegmentType(segmentType SegmentType) bool {
	for _, t := range AllSegmentTypes {
		if t == segmentType {
			return true
		}
	}
	return false
}

// IsValidFormat reports whether the format is one of the known presets.
func IsValidFormat(format LessonFormat) bool {
	_, ok := formatSegments[format]
	return ok
}
