package prng

import "testing"

func draw(g *LaggedFibonacci, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}

func TestSameSeedSameSequence(t *testing.T) {
	seeds := [][]byte{
		nil,
		{},
		[]byte("hedgehog"),
		make([]byte, 200),
	}

	for _, seed := range seeds {
		a := draw(New(seed), 500)
		b := draw(New(seed), 500)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("seed %q: sequences diverge at %d: %d vs %d", seed, i, a[i], b[i])
			}
		}
	}
}

func TestEmptySeedsCollide(t *testing.T) {
	a := New(nil)
	b := New([]byte{})
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("nil and empty seeds should be the same stream (draw %d)", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := draw(New([]byte("seed-a")), 64)
	b := draw(New([]byte("seed-b")), 64)

	same := 0
	for i := range a {
		if a[i] == b[i] {
			same++
		}
	}
	if same == len(a) {
		t.Error("different seeds produced identical sequences")
	}
}

func TestOnlyTrailingWindowMatters(t *testing.T) {
	tail := make([]byte, seedWindow)
	for i := range tail {
		tail[i] = byte(i * 7)
	}
	long := append([]byte("ignored-prefix"), tail...)

	a := draw(New(tail), 50)
	b := draw(New(long), 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("prefix beyond the seed window changed the stream at draw %d", i)
		}
	}
}

func TestValuesAre31Bit(t *testing.T) {
	g := New([]byte("range"))
	for i := 0; i < 10000; i++ {
		if v := g.Next(); v > valueMask {
			t.Fatalf("Next() = %#x exceeds 31 bits", v)
		}
	}
}

func TestRandomModulo(t *testing.T) {
	g := New([]byte("modulo"))
	for i := 0; i < 1000; i++ {
		if v := g.Random(7); v >= 7 {
			t.Fatalf("Random(7) = %d", v)
		}
	}
	if v := g.Random(0); v != 0 {
		t.Errorf("Random(0) = %d, expected 0", v)
	}
}

func TestRandomConsumesTwoDraws(t *testing.T) {
	a := New([]byte("pair"))
	b := New([]byte("pair"))

	a.Random(1 << 30)
	b.Next()
	b.Next()

	ra, ia := a.State()
	rb, ib := b.State()
	if ra != rb || ia != ib {
		t.Error("Random should advance the stream by exactly two draws")
	}
}
