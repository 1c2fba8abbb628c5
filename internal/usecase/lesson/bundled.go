package lesson

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// BundledRegistry holds pre-generated lessons that can be served without
// calling any external provider. Used in development mode and as seed
// content for common scenarios.
type BundledRegistry struct {
	mu      sync.RWMutex
	lessons map[string]*entities.GeneratedDialogue
}

// NewBundledRegistry creates a registry seeded with the shipped lessons.
func NewBundledRegistry() *BundledRegistry {
	r := &BundledRegistry{
		lessons: make(map[string]*entities.GeneratedDialogue),
	}
	r.Register(englishCoffeeShopLesson())
	return r
}

// bundledKey identifies a bundled lesson by its scenario coordinates.
func bundledKey(language, location, situation string, difficulty entities.Difficulty) string {
	return strings.ToLower(fmt.Sprintf("%s|%s|%s|%s", language, location, situation, difficulty))
}

// Register stores a pre-generated lesson for its config's scenario.
func (b *BundledRegistry) Register(dialogue *entities.GeneratedDialogue) {
	if dialogue == nil || dialogue.Config == nil {
		return
	}
	c := dialogue.Config
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lessons[bundledKey(c.Language, c.Location, c.Situation, c.Difficulty)] = dialogue
}

// Lookup returns the bundled lesson matching the config, if any.
func (b *BundledRegistry) Lookup(config *entities.ConversationConfig) (*entities.GeneratedDialogue, bool) {
	if config == nil {
		return nil, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	d, ok := b.lessons[bundledKey(config.Language, config.Location, config.Situation, config.Difficulty)]
	return d, ok
}

// Len reports how many bundled lessons are registered.
func (b *BundledRegistry) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lessons)
}
