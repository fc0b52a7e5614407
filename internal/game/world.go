package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrItemCount reports an NKI count the catalog cannot satisfy.
	ErrItemCount = errors.New("game: item count out of range")
	// ErrBoardTooSmall reports a board with fewer free cells than occupants.
	ErrBoardTooSmall = errors.New("game: board too small")
)

// maxRejections bounds random probing before placement falls back to a scan.
const maxRejections = 64

// Catalog supplies NKI descriptions.
type Catalog interface {
	Len() int
	Sample(n int, rng *rand.Rand) []string
}

// WorldConfig sizes a new World.
type WorldConfig struct {
	Width  int
	Height int
	Items  int
}

// Item is something robot can bump into.
type Item struct {
	Glyph       Glyph
	Description string
	Kitten      bool
}

// Thing is an Item placed on the board.
type Thing struct {
	Item
	Pos Position
}

// OutcomeKind classifies what a single move did.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeMoved
	OutcomeBlocked
	OutcomeTouched
	OutcomeFoundKitten
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeTouched:
		return "touched"
	case OutcomeFoundKitten:
		return "found-kitten"
	}
	return "none"
}

// Outcome is the result of World.Move.
type Outcome struct {
	Kind OutcomeKind
	// Item is set for OutcomeTouched and OutcomeFoundKitten.
	Item Item
	// Robot is robot's position after the move.
	Robot Position
}

// World is the board plus everything on it.
type World struct {
	width  int
	height int
	robot  Position
	things []Thing
	// index maps occupied cells (robot excluded) to offsets into things.
	index map[Position]int
	rng   *rand.Rand
}

// NewWorld samples cfg.Items descriptions from catalog and places robot,
// kitten and the NKIs on distinct random cells.
func NewWorld(cfg WorldConfig, catalog Catalog, rng *rand.Rand) (*World, error) {
	if rng == nil {
		return nil, fmt.Errorf("game: rng is required")
	}
	available := 0
	if catalog != nil {
		available = catalog.Len()
	}
	if cfg.Items < 0 || cfg.Items > available {
		return nil, fmt.Errorf("%w: %d (have %d descriptions)", ErrItemCount, cfg.Items, available)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height < cfg.Items+2 {
		return nil, fmt.Errorf("%w: %dx%d cannot hold %d objects", ErrBoardTooSmall, cfg.Width, cfg.Height, cfg.Items+2)
	}

	w := &World{
		width:  cfg.Width,
		height: cfg.Height,
		index:  make(map[Position]int, cfg.Items+1),
		rng:    rng,
	}
	w.robot = w.randomCell()

	var descriptions []string
	if cfg.Items > 0 {
		descriptions = catalog.Sample(cfg.Items, rng)
	}
	w.things = make([]Thing, 0, len(descriptions)+1)
	w.things = append(w.things, Thing{Item: Item{Glyph: randomGlyph(rng), Kitten: true}})
	for _, desc := range descriptions {
		w.things = append(w.things, Thing{Item: Item{Glyph: randomGlyph(rng), Description: desc}})
	}
	for i := range w.things {
		pos, ok := w.freeCell()
		if !ok {
			return nil, fmt.Errorf("%w: no free cell for object %d", ErrBoardTooSmall, i)
		}
		w.things[i].Pos = pos
		w.index[pos] = i
	}
	return w, nil
}

// Width returns the number of columns on the board.
func (w *World) Width() int { return w.width }

// Height returns the number of rows on the board.
func (w *World) Height() int { return w.height }

// Robot returns robot's current cell.
func (w *World) Robot() Position { return w.robot }

// Kitten returns kitten and its cell.
func (w *World) Kitten() Thing { return w.things[0] }

// Things returns every placed occupant other than robot, kitten first.
func (w *World) Things() []Thing {
	out := make([]Thing, len(w.things))
	copy(out, w.things)
	return out
}

// ItemCount returns the number of NKIs on the board.
func (w *World) ItemCount() int { return len(w.things) - 1 }

// InBounds reports whether p lies on the board.
func (w *World) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < w.width && p.Y < w.height
}

// At returns the thing occupying p, if any. Robot is not a Thing.
func (w *World) At(p Position) (Thing, bool) {
	idx, ok := w.index[p]
	if !ok {
		return Thing{}, false
	}
	return w.things[idx], true
}

// Occupied reports whether robot or a thing sits on p.
func (w *World) Occupied(p Position) bool {
	if p == w.robot {
		return true
	}
	_, ok := w.index[p]
	return ok
}

// Move tries to step robot one cell in dir. Robot never moves onto another
// occupant; touching one reports it instead.
func (w *World) Move(dir Direction) Outcome {
	if dir == None {
		return Outcome{Kind: OutcomeNone, Robot: w.robot}
	}
	target := w.robot.Add(dir)
	if !w.InBounds(target) {
		return Outcome{Kind: OutcomeBlocked, Robot: w.robot}
	}
	if thing, ok := w.At(target); ok {
		kind := OutcomeTouched
		if thing.Kitten {
			kind = OutcomeFoundKitten
		}
		return Outcome{Kind: kind, Item: thing.Item, Robot: w.robot}
	}
	w.robot = target
	return Outcome{Kind: OutcomeMoved, Robot: w.robot}
}

// Resize changes the board dimensions. Occupants that fall outside the new
// bounds are moved to free cells inside it. The world is left untouched
// when the new board cannot hold everything.
func (w *World) Resize(width, height int) error {
	if width == w.width && height == w.height {
		return nil
	}
	if width <= 0 || height <= 0 || width*height < len(w.things)+1 {
		return fmt.Errorf("%w: %dx%d cannot hold %d objects", ErrBoardTooSmall, width, height, len(w.things)+1)
	}
	w.width = width
	w.height = height

	robotLost := !w.InBounds(w.robot)
	var lost []int
	for i, thing := range w.things {
		if !w.InBounds(thing.Pos) {
			delete(w.index, thing.Pos)
			lost = append(lost, i)
		}
	}
	if robotLost {
		// Park robot on a cell nothing else claims before relocating it.
		w.robot = Position{X: -1, Y: -1}
		pos, ok := w.freeCell()
		if !ok {
			return fmt.Errorf("%w: no free cell for robot", ErrBoardTooSmall)
		}
		w.robot = pos
	}
	for _, i := range lost {
		pos, ok := w.freeCell()
		if !ok {
			return fmt.Errorf("%w: no free cell for object %d", ErrBoardTooSmall, i)
		}
		w.things[i].Pos = pos
		w.index[pos] = i
	}
	return nil
}

func (w *World) randomCell() Position {
	return Position{X: w.rng.IntN(w.width), Y: w.rng.IntN(w.height)}
}

// freeCell probes random cells, then scans from a random offset so dense
// boards still terminate.
func (w *World) freeCell() (Position, bool) {
	for i := 0; i < maxRejections; i++ {
		p := w.randomCell()
		if !w.Occupied(p) {
			return p, true
		}
	}
	total := w.width * w.height
	start := w.rng.IntN(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		p := Position{X: idx % w.width, Y: idx / w.width}
		if !w.Occupied(p) {
			return p, true
		}
	}
	return Position{}, false
}
