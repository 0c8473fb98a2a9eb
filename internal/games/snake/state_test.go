package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewStateValidation(t *testing.T) {
	if _, err := NewState(7, 10, newSeqRand(nil)); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("7x10: expected ErrGridTooSmall, got %v", err)
	}
	if _, err := NewState(10, 7, newSeqRand(nil)); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("10x7: expected ErrGridTooSmall, got %v", err)
	}
	if _, err := NewState(10, 10, nil); err == nil {
		t.Error("nil random source should be rejected")
	}
	if _, err := NewState(MinGridWidth, MinGridHeight, newSeqRand(nil)); err != nil {
		t.Errorf("minimum board should be accepted: %v", err)
	}
}

func TestNewStateInitial(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))

	if s.Status() != StatusPlaying || s.GameOver() {
		t.Errorf("new state should be playing, got %v", s.Status())
	}
	if s.Body().Head() != pt(4, 2) || s.Body().Len() != 3 {
		t.Errorf("unexpected starting body %v", s.Body().Cells())
	}
	if s.Field().Len() != 1 {
		t.Errorf("expected only the seeded fruit, got %d items", s.Field().Len())
	}
	if s.Waiting() != 0 {
		t.Errorf("Waiting() = %v, expected 0", s.Waiting())
	}
}

func TestBorders(t *testing.T) {
	s := newTestState(t, 10, 10, newSeqRand(nil))

	want := [4]core.Rect{
		core.NewRect(0, 0, 10, 1),
		core.NewRect(0, 9, 10, 1),
		core.NewRect(0, 0, 1, 10),
		core.NewRect(9, 0, 1, 10),
	}
	if got := s.Borders(); got != want {
		t.Errorf("Borders() = %v, expected %v", got, want)
	}
	if got := s.Interior(); got != core.NewRect(1, 1, 8, 8) {
		t.Errorf("Interior() = %v", got)
	}
}

func TestEatFruitGrowsByOne(t *testing.T) {
	// respawn at (10,10) as a plain fruit, no poles
	s := newTestState(t, 24, 18, newSeqRand([]int{9, 9, 0, 0}))
	s.body = bodyOf(DirDown, pt(4, 5), pt(4, 4), pt(4, 3))

	s.Step(nil)

	if s.GameOver() {
		t.Fatal("eating should not end the game")
	}
	if s.Body().Len() != 4 || s.Body().PendingGrowth() != 0 {
		t.Errorf("len=%d pending=%d, expected 4 and 0", s.Body().Len(), s.Body().PendingGrowth())
	}
	items := s.Field().Items()
	if len(items) != 1 || items[0].Pos != pt(10, 10) || items[0].Kind != KindFruit {
		t.Errorf("expected the eaten fruit replaced by one at (10,10), got %+v", items)
	}
}

func TestEatDoubleFruitGrowsByTwo(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand([]int{9, 9, 0, 0}))
	s.body = bodyOf(DirDown, pt(4, 5), pt(4, 4), pt(4, 3))
	s.field.items = []Item{{Kind: KindDoubleFruit, Pos: pt(4, 6)}}

	s.Step(nil)
	if s.Body().Len() != 4 || s.Body().PendingGrowth() != 1 {
		t.Fatalf("after eating: len=%d pending=%d, expected 4 and 1", s.Body().Len(), s.Body().PendingGrowth())
	}

	s.Step(nil)
	if s.Body().Len() != 5 || s.Body().PendingGrowth() != 0 {
		t.Errorf("after next move: len=%d pending=%d, expected 5 and 0", s.Body().Len(), s.Body().PendingGrowth())
	}
}

func TestEatSuperFruitGrantsInvincibility(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand([]int{9, 9, 0, 0}))
	s.body = bodyOf(DirDown, pt(4, 5), pt(4, 4), pt(4, 3))
	s.body.IncreaseInvincibility(1)
	s.field.items = []Item{{Kind: KindSuperFruit, Pos: pt(4, 6)}}

	s.Step(nil)

	// 1 - 1 for the move + 5 from the fruit
	if got := s.Body().Invincibility(); got != SuperFruitMoves {
		t.Errorf("Invincibility() = %d, expected %d", got, SuperFruitMoves)
	}
	if s.Body().Len() != 3 {
		t.Errorf("super fruit should not grow the body, len = %d", s.Body().Len())
	}
	if s.Field().Len() != 1 {
		t.Errorf("expected a respawned set, got %d items", s.Field().Len())
	}
}

func TestRedundantAndReverseInputIgnored(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.Tick(0.1)
	before := s.Snapshot()

	s.HandleDirectionInput(DirRight)
	s.HandleDirectionInput(DirLeft)

	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("input along or against the heading changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestTurnMovesImmediately(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.Tick(0.3)

	s.HandleDirectionInput(DirDown)

	if s.Body().Head() != pt(4, 3) || s.Body().Heading() != DirDown {
		t.Errorf("head=%v heading=%v, expected (4,3) down", s.Body().Head(), s.Body().Heading())
	}
	if s.Waiting() != 0 {
		t.Errorf("a move should reset the timer, Waiting() = %v", s.Waiting())
	}

	s.Tick(0.3)
	if s.Body().Head() != pt(4, 3) {
		t.Error("timer should restart from the input move")
	}
}

func TestWallEndsGame(t *testing.T) {
	tests := []struct {
		name string
		body *Body
	}{
		{"right", bodyOf(DirRight, pt(8, 2), pt(7, 2), pt(6, 2))},
		{"left", bodyOf(DirLeft, pt(1, 5), pt(2, 5), pt(3, 5))},
		{"top", bodyOf(DirUp, pt(5, 1), pt(5, 2), pt(5, 3))},
		{"bottom", bodyOf(DirDown, pt(5, 8), pt(5, 7), pt(5, 6))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, 10, 10, newSeqRand(nil))
			s.body = tt.body
			head := tt.body.Head()

			s.Step(nil)

			if !s.GameOver() {
				t.Fatal("moving into the border should end the game")
			}
			if s.Body().Head() != head {
				t.Errorf("body should not move on a fatal step, head = %v", s.Body().Head())
			}
		})
	}
}

func TestLastInteriorCellIsValid(t *testing.T) {
	s := newTestState(t, 10, 10, newSeqRand(nil))
	s.body = bodyOf(DirRight, pt(7, 2), pt(6, 2), pt(5, 2))

	s.Step(nil)

	if s.GameOver() || s.Body().Head() != pt(8, 2) {
		t.Errorf("x = width-2 should be playable, head=%v status=%v", s.Body().Head(), s.Status())
	}
}

func TestWallEndsGameWhileInvincible(t *testing.T) {
	s := newTestState(t, 10, 10, newSeqRand(nil))
	s.body = bodyOf(DirRight, pt(8, 2), pt(7, 2), pt(6, 2))
	s.body.IncreaseInvincibility(5)

	s.Step(nil)

	if !s.GameOver() {
		t.Error("invincibility should not protect against the border")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.body = bodyOf(DirLeft, pt(3, 3), pt(4, 3), pt(4, 4), pt(3, 4), pt(2, 4), pt(2, 5))

	s.HandleDirectionInput(DirDown)

	if !s.GameOver() {
		t.Error("turning into the body should end the game")
	}
}

func TestSelfCollisionIgnoredWhileInvincible(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.body = bodyOf(DirLeft, pt(3, 3), pt(4, 3), pt(4, 4), pt(3, 4), pt(2, 4), pt(2, 5))
	s.body.IncreaseInvincibility(2)

	s.HandleDirectionInput(DirDown)

	if s.GameOver() {
		t.Fatal("invincible snake should pass through itself")
	}
	if s.Body().Head() != pt(3, 4) || s.Body().Invincibility() != 1 {
		t.Errorf("head=%v invincibility=%d", s.Body().Head(), s.Body().Invincibility())
	}
}

func TestMoveIntoTailCell(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.body = bodyOf(DirUp, pt(3, 3), pt(3, 4), pt(2, 4), pt(2, 3))

	s.HandleDirectionInput(DirLeft)

	if s.GameOver() {
		t.Fatal("the tail cell is vacated by the same move")
	}
	if s.Body().Head() != pt(2, 3) || s.Body().Len() != 4 {
		t.Errorf("head=%v len=%d", s.Body().Head(), s.Body().Len())
	}
}

func TestMoveIntoTailCellWithPendingGrowth(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.body = bodyOf(DirUp, pt(3, 3), pt(3, 4), pt(2, 4), pt(2, 3))
	s.body.RequestGrowth(1)

	s.HandleDirectionInput(DirLeft)

	// The tail is still exempt even though growth puts it back.
	if s.GameOver() {
		t.Fatal("tail exemption should not depend on pending growth")
	}
	if s.Body().Head() != s.Body().Tail() || s.Body().Len() != 5 {
		t.Errorf("head=%v tail=%v len=%d", s.Body().Head(), s.Body().Tail(), s.Body().Len())
	}
}

func TestPoleWhileInvincible(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.field.items = append(s.field.items, Item{Kind: KindPole, Pos: pt(5, 2)})
	s.body.IncreaseInvincibility(3)

	s.Step(nil)

	if s.GameOver() {
		t.Fatal("invincible snake should survive a pole")
	}
	if _, _, hit := s.Field().CollisionAt(pt(5, 2)); hit {
		t.Error("pole should be removed")
	}
	if s.Field().Len() != 1 {
		t.Errorf("removing a pole should not respawn, got %d items", s.Field().Len())
	}
	if s.Body().Invincibility() != 2 {
		t.Errorf("Invincibility() = %d, expected 2", s.Body().Invincibility())
	}
}

func TestPoleEndsGame(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))
	s.field.items = append(s.field.items, Item{Kind: KindPole, Pos: pt(5, 2)})

	s.Step(nil)

	if !s.GameOver() {
		t.Fatal("pole should end the game")
	}
	if it, _, hit := s.Field().CollisionAt(pt(5, 2)); !hit || it.Kind != KindPole {
		t.Error("pole should stay on the field")
	}
}

func TestTickMovesAfterPeriod(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil))

	s.Tick(MovePeriod)
	if s.Body().Head() != pt(4, 2) {
		t.Fatal("exactly one period should not move yet")
	}

	s.Tick(0.01)
	if s.Body().Head() != pt(5, 2) {
		t.Errorf("head = %v, expected (5,2)", s.Body().Head())
	}
	if s.Waiting() != 0 {
		t.Errorf("Waiting() = %v after a move", s.Waiting())
	}
}

func TestTickRefreshesSuperFruitColor(t *testing.T) {
	s := newTestState(t, 24, 18, newSeqRand(nil, 0.25, 0.5, 0.75))
	s.field.items = append(s.field.items, Item{Kind: KindSuperFruit, Pos: pt(10, 10)})

	s.Tick(0.5)

	it, _, _ := s.Field().CollisionAt(pt(10, 10))
	if want := (colorful.Color{R: 0.25, G: 0.5, B: 0.75}); it.Color != want {
		t.Errorf("color = %v, expected %v", it.Color, want)
	}
}

func TestGameOverLifecycle(t *testing.T) {
	s := newTestState(t, 10, 10, newSeqRand(nil))
	s.body = bodyOf(DirRight, pt(8, 2), pt(7, 2), pt(6, 2))
	s.Tick(0.5)
	if !s.GameOver() {
		t.Fatal("expected game over")
	}
	over := s.Snapshot()

	s.HandleDirectionInput(DirUp)
	s.Step(Dir(DirDown))
	s.Tick(0.5)
	if !s.GameOver() {
		t.Fatal("should stay over before the restart delay")
	}
	if s.Body().Head() != over.Segments[0].Pos {
		t.Error("input and steps should be ignored after game over")
	}

	s.Tick(0.6)
	if s.GameOver() {
		t.Fatal("should restart after the delay")
	}
	fresh := newTestState(t, 10, 10, newSeqRand(nil))
	if !reflect.DeepEqual(s.Snapshot(), fresh.Snapshot()) {
		t.Error("restarted board should match a fresh one")
	}
}

func TestRestartMatchesFreshState(t *testing.T) {
	s := newTestState(t, 24, 18, rand.New(rand.NewSource(5)))
	s.body = bodyOf(DirDown, pt(4, 3), pt(4, 2), pt(3, 2))
	s.body.IncreaseInvincibility(4)
	for range 6 {
		s.Tick(0.5)
	}
	s.HandleDirectionInput(DirRight)

	s.Restart()

	fresh := newTestState(t, 24, 18, newSeqRand(nil))
	if !reflect.DeepEqual(s.Snapshot(), fresh.Snapshot()) {
		t.Errorf("Restart() = %+v\nfresh     = %+v", s.Snapshot(), fresh.Snapshot())
	}
}
