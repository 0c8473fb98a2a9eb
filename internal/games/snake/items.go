package snake

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
)

// ItemKind tags the variant of an Item.
type ItemKind int

const (
	KindFruit ItemKind = iota
	KindPole
	KindDoubleFruit
	KindSuperFruit
)

func (k ItemKind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindPole:
		return "pole"
	case KindDoubleFruit:
		return "double_fruit"
	case KindSuperFruit:
		return "super_fruit"
	default:
		return "unknown"
	}
}

// IsFood reports whether eating the item respawns a new set.
func (k ItemKind) IsFood() bool {
	return k != KindPole
}

// Item is something placed on the field. Color is only meaningful for
// KindSuperFruit and has no effect on play.
type Item struct {
	Kind  ItemKind
	Pos   Point
	Color colorful.Color
}

// Rand is the random source used for placement and colors.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RandomColor draws an opaque RGB color from rng.
func RandomColor(rng Rand) colorful.Color {
	return colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}

// seedFruit is where the first fruit of every run is placed.
var seedFruit = Point{X: 4, Y: 6}

// Spawn odds: a draw in [0, foodRoll) picks the food kind.
const (
	foodRoll        = 10
	doubleFruitFrom = 8 // 8..9 -> 20%
	superFruitFrom  = 2 // 2..7 -> 60%, 0..1 fruit -> 20%
	maxPoles        = 2
)

// Field holds the items on the board in insertion order. Indices returned
// by CollisionAt stay valid until the next mutation.
type Field struct {
	items  []Item
	width  int
	height int
	rng    Rand
	logger *log.Logger
}

// NewField returns a field for a width x height board (border included)
// holding a single seeded fruit. A nil logger discards output.
func NewField(width, height int, rng Rand, logger *log.Logger) *Field {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Field{
		items:  []Item{{Kind: KindFruit, Pos: seedFruit}},
		width:  width,
		height: height,
		rng:    rng,
		logger: logger,
	}
}

// Items returns a copy of the placed items in insertion order.
func (f *Field) Items() []Item {
	return slices.Clone(f.items)
}

// Len returns the number of placed items.
func (f *Field) Len() int {
	return len(f.items)
}

// SpawnSet places one food item followed by zero to two poles, each on a
// free interior cell away from body.
func (f *Field) SpawnSet(body *Body) {
	if pos, ok := f.findLocation(body); ok {
		item := Item{Pos: pos}
		switch roll := f.rng.Intn(foodRoll); {
		case roll >= doubleFruitFrom:
			item.Kind = KindDoubleFruit
		case roll >= superFruitFrom:
			item.Kind = KindSuperFruit
			item.Color = RandomColor(f.rng)
		default:
			item.Kind = KindFruit
		}
		f.items = append(f.items, item)
		f.logger.Debug("item spawned", "kind", item.Kind, "x", pos.X, "y", pos.Y)
	}

	poles := f.rng.Intn(maxPoles + 1)
	for range poles {
		pos, ok := f.findLocation(body)
		if !ok {
			break
		}
		f.items = append(f.items, Item{Kind: KindPole, Pos: pos})
		f.logger.Debug("item spawned", "kind", KindPole, "x", pos.X, "y", pos.Y)
	}
}

// findLocation draws interior cells until one is free. After a bounded
// number of misses it picks uniformly among the remaining free cells so a
// crowded board cannot stall a frame; ok is false when none are left.
func (f *Field) findLocation(body *Body) (Point, bool) {
	innerW, innerH := f.width-2, f.height-2
	if innerW <= 0 || innerH <= 0 {
		return Point{}, false
	}

	for range 4 * innerW * innerH {
		p := Point{X: 1 + f.rng.Intn(innerW), Y: 1 + f.rng.Intn(innerH)}
		if f.isFree(p, body) {
			return p, true
		}
	}

	var free []Point
	for y := 1; y <= innerH; y++ {
		for x := 1; x <= innerW; x++ {
			if p := (Point{X: x, Y: y}); f.isFree(p, body) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		f.logger.Warn("no free cell for item")
		return Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}

func (f *Field) isFree(p Point, body *Body) bool {
	if body.Occupies(p) || body.OccupiesVacatedCell(p) {
		return false
	}
	_, _, hit := f.CollisionAt(p)
	return !hit
}

// CollisionAt returns the first item at p and its index.
func (f *Field) CollisionAt(p Point) (Item, int, bool) {
	for i, it := range f.items {
		if it.Pos == p {
			return it, i, true
		}
	}
	return Item{}, -1, false
}

// RemoveAt deletes the item at index i, keeping the order of the rest.
func (f *Field) RemoveAt(i int) {
	if i < 0 || i >= len(f.items) {
		return
	}
	f.items = slices.Delete(f.items, i, i+1)
}

// SetSuperFruitColors recolors every super fruit.
func (f *Field) SetSuperFruitColors(c colorful.Color) {
	for i := range f.items {
		if f.items[i].Kind == KindSuperFruit {
			f.items[i].Color = c
		}
	}
}
