package tui

import (
	"maps"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// scriptGame reports game over on the frames listed in over.
type scriptGame struct {
	frame   int
	over    map[int]bool
	length  int
	dts     []float64
	inputs  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *scriptGame) ID() string { return "stub" }
func (g *scriptGame) Title() string { return "Stub" }
func (g *scriptGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptGame) State() core.GameState { return core.GameState{Score: g.length, GameOver: g.over[g.frame]} }
func (g *scriptGame) Resize(screenW, screenH int) { g.resized = [2]int{screenW, screenH} }

func (g *scriptGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub board")
}

func (g *scriptGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.frame++
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, core.InputFrame{Actions: maps.Clone(in.Actions)})
	return core.StepResult{State: g.State()}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func TestModelFrameTime(t *testing.T) {
	g := &scriptGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 1}, nil)
	start := time.Unix(1000, 0)

	m = tick(t, m, start)
	m = tick(t, m, start.Add(100*time.Millisecond))
	m = tick(t, m, start.Add(50*time.Millisecond)) // clock went back

	want := []float64{0.02, 0.1, 0.02}
	for i, dt := range g.dts {
		if math.Abs(dt-want[i]) > 1e-9 {
			t.Errorf("frame %d: dt = %v, expected %v", i, dt, want[i])
		}
	}
}

func TestModelInputClearedEachFrame(t *testing.T) {
	g := &scriptGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	m = tick(t, m, time.Unix(1, 0))
	m = tick(t, m, time.Unix(2, 0))

	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first frame should carry the key press")
	}
	if !g.inputs[1].Empty() {
		t.Error("second frame should have no input")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptGame{}, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSavesEachRunOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptGame{length: 9, over: map[int]bool{2: true, 3: true, 4: true, 7: true}}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)

	at := time.Unix(0, 0)
	for range 8 {
		at = at.Add(time.Second / 60)
		m = tick(t, m, at)
	}

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected one saved run per game over, got %d", len(runs))
	}
	if m.Best() != 9 {
		t.Errorf("Best() = %d, expected 9", m.Best())
	}
}

func TestModelLoadsBest(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun("stub", 14); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewModel(&scriptGame{}, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	if m.Best() != 14 {
		t.Errorf("Best() = %d, expected 14", m.Best())
	}
	if !strings.Contains(m.View(), "Best: 14") {
		t.Error("footer should show the best length")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &scriptGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", g.resets)
	}
	if g.resized != [2]int{100, 30 - footerHeight} {
		t.Errorf("Resize got %v", g.resized)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&scriptGame{}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, nil)

	view := m.View()
	if !strings.Contains(view, "stub board") {
		t.Error("view should contain the game screen")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Errorf("view has %d lines, expected screen plus footer = 10", lines)
	}
}
