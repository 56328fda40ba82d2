package idgen

import (
	"sync"

	"github.com/google/uuid"
)

// Generator issues identifiers for plans and offline queue entries.
type Generator interface {
	New() uuid.UUID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return UUIDGenerator{}
}

func (UUIDGenerator) New() uuid.UUID {
	return uuid.New()
}

// SequenceGenerator hands out a fixed list of IDs in order, then falls back to random ones.
type SequenceGenerator struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func NewSequenceGenerator(ids ...uuid.UUID) *SequenceGenerator {
	return &SequenceGenerator{ids: ids}
}

func (g *SequenceGenerator) New() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.ids) == 0 {
		return uuid.New()
	}
	id := g.ids[0]
	g.ids = g.ids[1:]
	return id
}
