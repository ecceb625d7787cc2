package model

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

// seed builds a world whose current generation holds exactly the given alive cells
func seed(alive ...Coordinate) *World {
	w := NewWorld()
	for _, loc := range alive {
		w.Set(loc, true)
	}
	w.swap()
	return w
}

func coords(pairs ...[2]int64) []Coordinate {
	out := make([]Coordinate, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, NewCoordinate(p[0], p[1]))
	}
	return out
}

func shift(locs []Coordinate, dRow, dCol int64) []Coordinate {
	out := make([]Coordinate, 0, len(locs))
	for _, loc := range locs {
		out = append(out, NewCoordinate(loc.Row+dRow, loc.Col+dCol))
	}
	return out
}

// assertExactFrontier checks the tracked set is the alive cells plus their neighbours
func assertExactFrontier(t *testing.T, w *World) {
	t.Helper()
	want := map[Coordinate]bool{}
	for _, loc := range w.AliveCoordinates() {
		want[loc] = true
		for _, nb := range loc.Neighbors() {
			if !want[nb] {
				want[nb] = false
			}
		}
	}
	assert.Equal(t, want, map[Coordinate]bool(w.CurrentBuffer()))
}

var (
	blinkerHorizontal = coords([2]int64{0, -1}, [2]int64{0, 0}, [2]int64{0, 1})
	blinkerVertical   = coords([2]int64{-1, 0}, [2]int64{0, 0}, [2]int64{1, 0})
	block             = coords([2]int64{0, 0}, [2]int64{0, 1}, [2]int64{1, 0}, [2]int64{1, 1})
	glider            = coords([2]int64{0, 1}, [2]int64{1, 2}, [2]int64{2, 0}, [2]int64{2, 1}, [2]int64{2, 2})
)

// ---- tests ----

func TestWorld_GetMissingIsDead(t *testing.T) {
	w := NewWorld()
	assert.False(t, w.Get(NewCoordinate(0, 0)))
	assert.False(t, w.Get(NewCoordinate(-1e12, 1e12)))
	assert.Zero(t, w.FrontierSize())
}

func TestWorld_SetWritesNextGeneration(t *testing.T) {
	w := NewWorld()
	loc := NewCoordinate(5, 5)
	w.Set(loc, true)

	assert.False(t, w.Get(loc), "writes must not be visible before the swap")
	w.swap()
	assert.True(t, w.Get(loc))
	assert.Equal(t, 9, w.FrontierSize())
	for _, nb := range loc.Neighbors() {
		v, ok := w.CurrentBuffer()[nb]
		assert.True(t, ok, "neighbour %v should be tracked", nb)
		assert.False(t, v)
	}
}

func TestWorld_SetDeadDoesNotExpand(t *testing.T) {
	w := NewWorld()
	w.Set(NewCoordinate(0, 0), false)
	w.swap()
	assert.Equal(t, 1, w.FrontierSize())
}

func TestWorld_SetKeepsExistingNeighbours(t *testing.T) {
	w := NewWorld()
	w.Set(NewCoordinate(0, 0), true)
	w.Set(NewCoordinate(0, 1), true)
	w.swap()

	assert.True(t, w.Get(NewCoordinate(0, 0)), "expansion must not clobber an alive entry")
	assert.True(t, w.Get(NewCoordinate(0, 1)))
	assert.Equal(t, 12, w.FrontierSize())
}

func TestWorld_SetOverwrites(t *testing.T) {
	w := NewWorld()
	loc := NewCoordinate(2, 2)
	w.Set(loc, true)
	w.Set(loc, false)
	w.swap()

	assert.False(t, w.Get(loc))
	assert.Equal(t, 9, w.FrontierSize())
}

func TestWorld_IsolatedCellDies(t *testing.T) {
	w := seed(NewCoordinate(0, 0))
	require.True(t, w.Get(NewCoordinate(0, 0)))
	assert.Zero(t, w.CurrentBuffer().aliveNeighbors(NewCoordinate(0, 0)))

	w.Step()
	assert.False(t, w.Get(NewCoordinate(0, 0)))
	assert.Zero(t, w.Population())
	assertExactFrontier(t, w)
}

func TestWorld_BlockIsStillLife(t *testing.T) {
	w := seed(block...)
	for _, loc := range block {
		assert.Equal(t, 3, w.CurrentBuffer().aliveNeighbors(loc))
	}

	for i := 0; i < 10; i++ {
		w.Step()
		assert.Equal(t, block, w.AliveCoordinates())
		assertExactFrontier(t, w)
	}
}

func TestWorld_BlinkerOscillation(t *testing.T) {
	w := seed(blinkerHorizontal...)

	w.Step()
	assert.Equal(t, blinkerVertical, w.AliveCoordinates())
	assert.NotEqual(t, blinkerHorizontal, w.AliveCoordinates())
	assertExactFrontier(t, w)

	w.Step()
	assert.Equal(t, blinkerHorizontal, w.AliveCoordinates())
	assertExactFrontier(t, w)
}

func TestWorld_GliderTranslates(t *testing.T) {
	w := seed(glider...)

	for i := 1; i <= 3; i++ {
		for j := 0; j < 4; j++ {
			w.Step()
			assertExactFrontier(t, w)
		}
		assert.Equal(t, shift(glider, int64(i), int64(i)), w.AliveCoordinates())
	}
}

func TestWorld_StepsAreNotIdempotent(t *testing.T) {
	once := seed(blinkerHorizontal...)
	once.Step()

	twice := seed(blinkerHorizontal...)
	twice.Step()
	twice.Step()

	assert.NotEqual(t, once.AliveCoordinates(), twice.AliveCoordinates())
}

func TestWorld_CloneIsIndependent(t *testing.T) {
	original := seed(glider...)
	before := maps.Clone(original.CurrentBuffer())

	clone := original.Clone()
	for i := 0; i < 7; i++ {
		clone.Step()
	}
	assert.Equal(t, before, original.CurrentBuffer())
	assert.NotEqual(t, original.AliveCoordinates(), clone.AliveCoordinates())

	snapshot := maps.Clone(clone.CurrentBuffer())
	original.Step()
	assert.Equal(t, snapshot, clone.CurrentBuffer())
}

func TestWorld_PopulationAndFrontier(t *testing.T) {
	w := seed(blinkerHorizontal...)
	assert.Equal(t, 3, w.Population())
	// 3x5 box around the row of three
	assert.Equal(t, 15, w.FrontierSize())
}
