package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	borderCell = core.Cell{Rune: '█', Color: core.ColorGray}
	bodyCell   = core.Cell{Rune: '█', Color: core.ColorWhite}
	headCell   = core.Cell{Rune: '█', Color: core.ColorBrightWhite}
	// Head color while invincible.
	shieldCell = core.Cell{Rune: '█', Color: core.ColorBrightRed}
)

// itemCell returns how an item is drawn.
func itemCell(it Item) core.Cell {
	switch it.Kind {
	case KindFruit:
		return core.Cell{Rune: '●', Color: core.ColorRed}
	case KindDoubleFruit:
		return core.Cell{Rune: '●', Color: core.ColorYellow}
	case KindSuperFruit:
		return core.Cell{Rune: '★', Hex: it.Color.Clamped().Hex()}
	case KindPole:
		return core.Cell{Rune: '▲', Color: core.ColorGreen}
	default:
		return core.Cell{Rune: '?'}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	snap := g.state.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	offX := (dst.Width() - snap.Width*g.cellWidth) / 2
	offY := hudHeight

	for _, r := range snap.Borders {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				g.plot(dst, offX, offY, Point{X: x, Y: y}, borderCell, true)
			}
		}
	}

	for _, it := range snap.Items {
		g.plot(dst, offX, offY, it.Pos, itemCell(it), false)
	}

	// Tail first so the head stays on top.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		cell := bodyCell
		if seg.Head {
			cell = headCell
			if snap.Invincibility > 0 {
				cell = shieldCell
			}
		}
		g.plot(dst, offX, offY, seg.Pos, cell, true)
	}

	if snap.GameOver() {
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Length: %d", snap.Length))
	}
}

// plot draws one grid cell. Solid cells fill every column of the cell,
// glyphs only the first.
func (g *Game) plot(dst *core.Screen, offX, offY int, p Point, c core.Cell, solid bool) {
	x := offX + p.X*g.cellWidth
	y := offY + p.Y
	dst.SetCell(x, y, c)
	for i := 1; i < g.cellWidth; i++ {
		if solid {
			dst.SetCell(x+i, y, c)
		} else {
			dst.Set(x+i, y, ' ')
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s | Length: %d", g.Title(), snap.Length)
	if snap.Invincibility > 0 {
		hud += fmt.Sprintf("  Invincible: %d", snap.Invincibility)
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
