// Package idgen produces application-side 64-bit identifiers. Values are
// derived from the current time in nanoseconds with a small random component,
// so they always exceed 2^53 and must travel as strings in JSON payloads.
package idgen

import (
	"math/rand"
	"sync"
	"time"
)

type Generator interface {
	NextID() int64
}

type generator struct {
	mu   sync.Mutex
	last int64
}

func New() Generator {
	return &generator{}
}

// NextID returns a strictly increasing identifier. The low bits carry random
// jitter so concurrent processes rarely collide.
func (g *generator) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixNano() + rand.Int63n(1000) //nolint:gosec
	if id <= g.last {
		id = g.last + 1
	}

	g.last = id

	return id
}
