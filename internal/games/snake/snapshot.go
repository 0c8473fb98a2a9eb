package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Segment is one body cell as seen by a renderer.
type Segment struct {
	Pos  Point
	Head bool
}

// Snapshot captures everything a renderer or a determinism check needs
// from one frame.
type Snapshot struct {
	Width         int
	Height        int
	Status        Status
	Segments      []Segment // head first
	Items         []Item    // insertion order
	Borders       [4]core.Rect
	Heading       Direction
	Length        int
	PendingGrowth int
	Invincibility int
	Waiting       float64
}

// Snapshot returns a copy of the current board.
func (s *State) Snapshot() Snapshot {
	cells := s.body.Cells()
	segments := make([]Segment, len(cells))
	for i, p := range cells {
		segments[i] = Segment{Pos: p, Head: i == 0}
	}

	return Snapshot{
		Width:         s.width,
		Height:        s.height,
		Status:        s.status,
		Segments:      segments,
		Items:         s.field.Items(),
		Borders:       s.Borders(),
		Heading:       s.body.Heading(),
		Length:        s.body.Len(),
		PendingGrowth: s.body.PendingGrowth(),
		Invincibility: s.body.Invincibility(),
		Waiting:       s.waiting,
	}
}

// GameOver reports whether the snapshot was taken after the run ended.
func (sn Snapshot) GameOver() bool {
	return sn.Status == StatusGameOver
}
