package snake

import (
	"math/rand"
	"testing"
)

// seqRand replays fixed draws, then falls back to a seeded generator.
type seqRand struct {
	ints     []int
	floats   []float64
	fallback *rand.Rand
}

func newSeqRand(ints []int, floats ...float64) *seqRand {
	return &seqRand{ints: ints, floats: floats, fallback: rand.New(rand.NewSource(1))}
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.fallback.Float64()
}

// bodyOf builds a body from head-first cells.
func bodyOf(heading Direction, cells ...Point) *Body {
	b := &Body{heading: heading}
	for _, c := range cells {
		b.cells.PushBack(c)
	}
	return b
}

func newTestState(t *testing.T, width, height int, rng Rand) *State {
	t.Helper()
	s, err := NewState(width, height, rng)
	if err != nil {
		t.Fatalf("NewState(%d, %d) failed: %v", width, height, err)
	}
	return s
}

func pt(x, y int) Point {
	return Point{X: x, Y: y}
}
