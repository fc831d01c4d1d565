// Package ids abstracts identifier generation so identity is injectable
// and deterministic under test.
package ids

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type Generator interface {
	NewID() string
}

// UUID generates random v4 identifiers. Wiring for production.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Sequence hands out "<prefix>-1", "<prefix>-2", ... Wiring for tests.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	n      uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}
