package random

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source - random number generation that can be seeded or mocked in tests.
type Source interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// Seeded - goroutine-safe Source backed by a locked x/exp/rand source.
type Seeded struct {
	rnd *rand.Rand
}

// New - creates a Source with a fixed seed, the same seed yields the same sequence.
func New(seed uint64) *Seeded {
	src := &rand.LockedSource{}
	src.Seed(seed)

	return &Seeded{rnd: rand.New(src)}
}

// NewFromSeed - a zero seed means "seed from the clock".
func NewFromSeed(seed uint64) *Seeded {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return New(seed)
}

func (that *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return that.rnd.Intn(n)
}
