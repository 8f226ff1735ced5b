package bloxi

import (
	"strconv"
	"sync/atomic"
)

// KeyGen hands out child keys of the form bloxi-<index>-<counter>. The
// counter is shared by all callers and only grows, so keys are unique for
// the life of the generator.
type KeyGen struct {
	counter atomic.Uint64
}

// DefaultKeys is the process-wide generator used by factories.
var DefaultKeys = &KeyGen{}

// Next returns a fresh key for a child at the given index.
func (g *KeyGen) Next(index int) string {
	n := g.counter.Add(1) - 1
	return "bloxi-" + strconv.Itoa(index) + "-" + strconv.FormatUint(n, 10)
}

// Reset restarts the counter. Intended for tests.
func (g *KeyGen) Reset() {
	g.counter.Store(0)
}
