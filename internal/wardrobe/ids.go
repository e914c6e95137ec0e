package wardrobe

import (
	"sync"

	"github.com/google/uuid"
)

// IDSource hands out identifiers for new entities. The store takes it as a
// dependency so tests can assert exact ids instead of relying on wall-clock
// tokens.
type IDSource interface {
	NextItemID() int
	NextOutfitID() int
	NextEventID() string
	// Seed raises the integer counters so ids never collide with entities
	// loaded from persistence.
	Seed(itemMax, outfitMax int)
}

type counterSource struct {
	mu     sync.Mutex
	item   int
	outfit int
}

// NewIDSource returns the default source: monotonic counters for item and
// outfit ids, random UUIDs for event ids.
func NewIDSource() IDSource {
	return &counterSource{}
}

func (s *counterSource) NextItemID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.item++
	return s.item
}

func (s *counterSource) NextOutfitID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outfit++
	return s.outfit
}

func (s *counterSource) NextEventID() string {
	return uuid.New().String()
}

func (s *counterSource) Seed(itemMax, outfitMax int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if itemMax > s.item {
		s.item = itemMax
	}
	if outfitMax > s.outfit {
		s.outfit = outfitMax
	}
}
