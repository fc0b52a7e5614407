package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog []string

func (c fakeCatalog) Len() int { return len(c) }

func (c fakeCatalog) Sample(n int, rng *rand.Rand) []string {
	perm := rng.Perm(len(c))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, c[idx])
	}
	return out
}

func testCatalog(n int) fakeCatalog {
	c := make(fakeCatalog, n)
	for i := range c {
		c[i] = fmt.Sprintf("thing number %d", i)
	}
	return c
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// placeAt rebuilds w so robot and things sit on known cells.
func placeAt(w *World, robot Position, things ...Thing) {
	w.robot = robot
	w.things = things
	w.index = map[Position]int{}
	for i, thing := range things {
		w.index[thing.Pos] = i
	}
}

func assertDistinct(t *testing.T, w *World) {
	t.Helper()
	seen := map[Position]bool{w.Robot(): true}
	for _, thing := range w.Things() {
		require.Truef(t, w.InBounds(thing.Pos), "thing at %s is outside %dx%d", thing.Pos, w.Width(), w.Height())
		require.Falsef(t, seen[thing.Pos], "cell %s used twice", thing.Pos)
		seen[thing.Pos] = true
	}
	require.True(t, w.InBounds(w.Robot()))
}

func TestNewWorldPlacesEverythingOnDistinctCells(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		w, err := NewWorld(WorldConfig{Width: 80, Height: 21, Items: 20}, testCatalog(201), seeded(seed))
		require.NoError(t, err)
		assert.Equal(t, 20, w.ItemCount())
		assert.True(t, w.Kitten().Kitten)
		assertDistinct(t, w)
	}
}

func TestNewWorldFillsDenseBoard(t *testing.T) {
	// 3x3 board, robot + kitten + 7 items leaves no free cell.
	w, err := NewWorld(WorldConfig{Width: 3, Height: 3, Items: 7}, testCatalog(10), seeded(7))
	require.NoError(t, err)
	assertDistinct(t, w)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.True(t, w.Occupied(Position{X: x, Y: y}))
		}
	}
}

func TestNewWorldDescriptionsAreDistinct(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 40, Height: 20, Items: 50}, testCatalog(50), seeded(3))
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, thing := range w.Things() {
		if thing.Kitten {
			assert.Empty(t, thing.Description)
			continue
		}
		require.False(t, seen[thing.Description], "duplicate %q", thing.Description)
		seen[thing.Description] = true
	}
	assert.Len(t, seen, 50)
}

func TestNewWorldGlyphsAvoidRobot(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 80, Height: 20, Items: 200}, testCatalog(200), seeded(11))
	require.NoError(t, err)
	for _, thing := range w.Things() {
		assert.NotEqual(t, RobotRune, thing.Glyph.Rune)
		assert.GreaterOrEqual(t, thing.Glyph.Rune, rune(firstGlyph))
		assert.LessOrEqual(t, thing.Glyph.Rune, rune(lastGlyph))
		assert.GreaterOrEqual(t, thing.Glyph.Color, minColor)
		assert.LessOrEqual(t, thing.Glyph.Color, maxColor)
	}
}

func TestNewWorldSameSeedSameBoard(t *testing.T) {
	a, err := NewWorld(WorldConfig{Width: 60, Height: 18, Items: 30}, testCatalog(201), seeded(42))
	require.NoError(t, err)
	b, err := NewWorld(WorldConfig{Width: 60, Height: 18, Items: 30}, testCatalog(201), seeded(42))
	require.NoError(t, err)
	assert.Equal(t, a.Robot(), b.Robot())
	assert.Equal(t, a.Things(), b.Things())
}

func TestNewWorldRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  WorldConfig
		cat  fakeCatalog
		want error
	}{
		{name: "negative items", cfg: WorldConfig{Width: 10, Height: 10, Items: -1}, cat: testCatalog(5), want: ErrItemCount},
		{name: "more items than catalog", cfg: WorldConfig{Width: 10, Height: 10, Items: 6}, cat: testCatalog(5), want: ErrItemCount},
		{name: "board too small", cfg: WorldConfig{Width: 2, Height: 2, Items: 3}, cat: testCatalog(5), want: ErrBoardTooSmall},
		{name: "zero width", cfg: WorldConfig{Width: 0, Height: 10, Items: 0}, cat: testCatalog(5), want: ErrBoardTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWorld(tt.cfg, tt.cat, seeded(1))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestNewWorldZeroItems(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 1, Height: 2, Items: 0}, nil, seeded(1))
	require.NoError(t, err)
	assert.Equal(t, 0, w.ItemCount())
	assertDistinct(t, w)
}

func TestMoveOutcomes(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 5, Height: 5, Items: 1}, testCatalog(1), seeded(1))
	require.NoError(t, err)
	kitten := Thing{Item: Item{Glyph: Glyph{Rune: 'k', Color: 3}, Kitten: true}, Pos: Position{X: 2, Y: 0}}
	rock := Thing{Item: Item{Glyph: Glyph{Rune: 'r', Color: 4}, Description: "A rock."}, Pos: Position{X: 0, Y: 1}}
	placeAt(w, Position{X: 0, Y: 0}, kitten, rock)

	out := w.Move(Up)
	assert.Equal(t, OutcomeBlocked, out.Kind)
	assert.Equal(t, Position{X: 0, Y: 0}, w.Robot())

	out = w.Move(Left)
	assert.Equal(t, OutcomeBlocked, out.Kind)

	out = w.Move(Down)
	assert.Equal(t, OutcomeTouched, out.Kind)
	assert.Equal(t, "A rock.", out.Item.Description)
	assert.Equal(t, Position{X: 0, Y: 0}, w.Robot(), "robot must not move onto an item")

	out = w.Move(Right)
	assert.Equal(t, OutcomeMoved, out.Kind)
	assert.Equal(t, Position{X: 1, Y: 0}, out.Robot)

	out = w.Move(Right)
	assert.Equal(t, OutcomeFoundKitten, out.Kind)
	assert.True(t, out.Item.Kitten)
	assert.Equal(t, Position{X: 1, Y: 0}, w.Robot())

	out = w.Move(DownRight)
	assert.Equal(t, OutcomeMoved, out.Kind)
	assert.Equal(t, Position{X: 2, Y: 1}, w.Robot())

	out = w.Move(None)
	assert.Equal(t, OutcomeNone, out.Kind)
}

func TestResizeRelocatesOutOfBoundsOccupants(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 10, Height: 10, Items: 2}, testCatalog(2), seeded(5))
	require.NoError(t, err)
	kitten := Thing{Item: Item{Kitten: true}, Pos: Position{X: 9, Y: 9}}
	a := Thing{Item: Item{Description: "a"}, Pos: Position{X: 8, Y: 1}}
	b := Thing{Item: Item{Description: "b"}, Pos: Position{X: 1, Y: 1}}
	placeAt(w, Position{X: 7, Y: 7}, kitten, a, b)

	require.NoError(t, w.Resize(4, 4))
	assert.Equal(t, 4, w.Width())
	assert.Equal(t, 4, w.Height())
	assertDistinct(t, w)
	got, ok := w.At(Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.Equal(t, "b", got.Description, "in-bounds occupants stay put")
}

func TestResizeTooSmallKeepsWorld(t *testing.T) {
	w, err := NewWorld(WorldConfig{Width: 10, Height: 10, Items: 5}, testCatalog(5), seeded(9))
	require.NoError(t, err)
	before := w.Things()
	err = w.Resize(2, 2)
	require.ErrorIs(t, err, ErrBoardTooSmall)
	assert.Equal(t, 10, w.Width())
	assert.Equal(t, before, w.Things())
}

func TestDirectionDelta(t *testing.T) {
	seen := map[[2]int]Direction{}
	for _, d := range []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight} {
		dx, dy := d.Delta()
		key := [2]int{dx, dy}
		_, dup := seen[key]
		require.False(t, dup, "%s shares a delta", d)
		seen[key] = d
		assert.False(t, dx == 0 && dy == 0, "%s has no delta", d)
	}
	assert.Equal(t, "down-left", DownLeft.String())
}
