package snake

import (
	"github.com/gammazero/deque"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for d. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Dir returns a pointer to d, for use as a move override.
func Dir(d Direction) *Direction {
	return &d
}

// Body is the snake itself: an ordered run of cells with the head at index 0.
//
// Growth is deferred: eating food only raises pendingGrowth, and each
// committed move then puts back the cell it just evicted from the tail.
// A Body must not be copied after first use.
type Body struct {
	cells         deque.Deque[Point]
	heading       Direction
	pendingGrowth int
	lastEvicted   Point
	hasEvicted    bool
	invincibility int
}

// NewBody returns a three-cell body lying on row y with its tail at x,
// heading right.
func NewBody(x, y int) *Body {
	b := &Body{heading: DirRight}
	b.cells.PushBack(Point{X: x + 2, Y: y})
	b.cells.PushBack(Point{X: x + 1, Y: y})
	b.cells.PushBack(Point{X: x, Y: y})
	return b
}

// Head returns the front cell.
func (b *Body) Head() Point {
	return b.cells.Front()
}

// Tail returns the last cell.
func (b *Body) Tail() Point {
	return b.cells.Back()
}

// Heading returns the current direction of travel.
func (b *Body) Heading() Direction {
	return b.heading
}

// Len returns the number of occupied cells.
func (b *Body) Len() int {
	return b.cells.Len()
}

// Cells returns a head-first copy of the occupied cells.
func (b *Body) Cells() []Point {
	out := make([]Point, b.cells.Len())
	for i := range out {
		out[i] = b.cells.At(i)
	}
	return out
}

// NextHead returns where the head would land after one step along override,
// or along the current heading when override is nil. It does not mutate b.
func (b *Body) NextHead(override *Direction) Point {
	dir := b.heading
	if override != nil {
		dir = *override
	}
	return b.Head().Add(dir.Delta())
}

// Move advances the body one cell. A non-nil override becomes the new
// heading first. The evicted tail cell is remembered for RestoreTail.
// Validity of the destination is the caller's concern.
func (b *Body) Move(override *Direction) {
	if override != nil {
		b.heading = *override
	}
	b.cells.PushFront(b.NextHead(nil))
	b.lastEvicted = b.cells.PopBack()
	b.hasEvicted = true
}

// RestoreTail re-appends the most recently evicted cell.
func (b *Body) RestoreTail() {
	if !b.hasEvicted {
		return
	}
	b.cells.PushBack(b.lastEvicted)
}

// ApplyPendingGrowth consumes one unit of pending growth, if any.
// Called exactly once per committed move.
func (b *Body) ApplyPendingGrowth() {
	if b.pendingGrowth > 0 {
		b.pendingGrowth--
		b.RestoreTail()
	}
}

// RequestGrowth queues n cells of growth.
func (b *Body) RequestGrowth(n int) {
	b.pendingGrowth += n
}

// PendingGrowth returns the number of queued growth cells.
func (b *Body) PendingGrowth() int {
	return b.pendingGrowth
}

// OverlapsBody reports whether p hits the body for collision purposes.
// The tail is skipped because it vacates its cell on the same move. This
// holds even while growth is pending, when the tail in fact stays put.
// Always false while invincible.
func (b *Body) OverlapsBody(p Point) bool {
	if b.IsInvincible() {
		return false
	}
	for i := range b.cells.Len() - 1 {
		if b.cells.At(i) == p {
			return true
		}
	}
	return false
}

// Occupies reports whether p is any body cell, tail included.
func (b *Body) Occupies(p Point) bool {
	for i := range b.cells.Len() {
		if b.cells.At(i) == p {
			return true
		}
	}
	return false
}

// OccupiesVacatedCell reports whether p is the tail cell or the last
// evicted cell, either of which the snake may be about to pass through.
func (b *Body) OccupiesVacatedCell(p Point) bool {
	if b.Tail() == p {
		return true
	}
	return b.hasEvicted && b.lastEvicted == p
}

// IncreaseInvincibility adds n moves of invincibility.
func (b *Body) IncreaseInvincibility(n int) {
	b.invincibility += n
}

// DecreaseInvincibility removes one move of invincibility, stopping at zero.
func (b *Body) DecreaseInvincibility() {
	if b.invincibility > 0 {
		b.invincibility--
	}
}

// Invincibility returns the remaining invincible moves.
func (b *Body) Invincibility() int {
	return b.invincibility
}

// IsInvincible reports whether hazards are currently ignored.
func (b *Body) IsInvincible() bool {
	return b.invincibility > 0
}
