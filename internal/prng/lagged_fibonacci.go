// Package prng provides the deterministic random stream that feeds terrain
// generation. The stream is a lagged-Fibonacci generator over a 64-word
// ring, seeded from an arbitrary byte buffer.
//
// Identical seeds always produce identical sequences, including the empty
// seed. Two streams built from empty buffers are therefore the same stream,
// never two independent ones.
package prng

const (
	ringSize = 64
	ringMask = ringSize - 1

	// seedWindow is how many trailing seed bytes are mixed into the ring.
	seedWindow = 54
	seedStart  = 54

	tapA = 40
	tapB = 9

	valueMask = 0x7fffffff

	// warmup draws are discarded after seeding so that short seeds diverge
	// quickly.
	warmup = 2048

	fillValue = 0xa98765 + 68
)

// LaggedFibonacci is a single-owner random stream. It is not safe for
// concurrent use.
type LaggedFibonacci struct {
	ring  [ringSize]uint32
	index int
}

// New builds a stream purely from seed. Only the last 54 bytes of a longer
// seed are significant.
func New(seed []byte) *LaggedFibonacci {
	g := &LaggedFibonacci{}
	for i := range g.ring {
		g.ring[i] = fillValue
	}

	if len(seed) > seedWindow {
		seed = seed[len(seed)-seedWindow:]
	}

	n := seedStart
	for _, b := range seed {
		g.ring[n] ^= uint32(b)
		n = (n + 1) & ringMask
	}

	for range warmup {
		g.Next()
	}
	return g
}

// Next advances the stream and returns a 31-bit value.
func (g *LaggedFibonacci) Next() uint32 {
	g.index = (g.index + 1) & ringMask
	v := (g.ring[(g.index+tapA)&ringMask] + g.ring[(g.index+tapB)&ringMask]) & valueMask
	g.ring[g.index] = v
	return v
}

// Random returns a value in [0, modulo). It consumes two draws, the first
// of which is discarded. A zero modulo returns 0 and still consumes both.
func (g *LaggedFibonacci) Random(modulo uint32) uint32 {
	g.Next()
	v := g.Next()
	if modulo == 0 {
		return 0
	}
	return v % modulo
}

// State returns a copy of the ring and cursor, for digests and snapshots.
func (g *LaggedFibonacci) State() ([ringSize]uint32, int) {
	return g.ring, g.index
}
