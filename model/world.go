package model

import (
	"github.com/sheikhrachel/sparse-life/rules"
)

// World is an unbounded Game of Life board backed by two generation stores.
// Reads go to the current store, writes go to the next one, and Step swaps
// their roles.
type World struct {
	first      GenerationStore
	second     GenerationStore
	usingFirst bool
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		first:      GenerationStore{},
		second:     GenerationStore{},
		usingFirst: true,
	}
}

// CurrentBuffer returns the readable store. Callers must not modify it.
func (w *World) CurrentBuffer() GenerationStore {
	if w.usingFirst {
		return w.first
	}
	return w.second
}

func (w *World) nextBuffer() GenerationStore {
	if w.usingFirst {
		return w.second
	}
	return w.first
}

// Get returns whether loc is alive in the current generation
func (w *World) Get(loc Coordinate) bool {
	return w.CurrentBuffer().IsAlive(loc)
}

// Set writes loc into the next generation. Setting a cell alive also tracks
// every untracked neighbour as dead, so it is visited on the following step.
func (w *World) Set(loc Coordinate, alive bool) {
	next := w.nextBuffer()
	next[loc] = alive
	if !alive {
		return
	}
	for _, nb := range loc.Neighbors() {
		if _, ok := next[nb]; !ok {
			next[nb] = false
		}
	}
}

// Step advances the world by exactly one generation
func (w *World) Step() {
	current := w.CurrentBuffer()
	for _, loc := range current.Coordinates() {
		aliveNeighbors := current.aliveNeighbors(loc)
		// dead next generation: tracked only if a live neighbour expands onto it
		if aliveNeighbors == 0 || !rules.NewStatus(current.IsAlive(loc), aliveNeighbors) {
			continue
		}
		w.Set(loc, true)
	}
	w.swap()
}

// swap promotes the next store to current and empties the stale one
func (w *World) swap() {
	w.usingFirst = !w.usingFirst
	clear(w.nextBuffer())
}

// Clone returns a deep, independent copy of the world
func (w *World) Clone() *World {
	return &World{
		first:      w.first.clone(),
		second:     w.second.clone(),
		usingFirst: w.usingFirst,
	}
}

// Population returns the number of alive cells in the current generation
func (w *World) Population() int {
	return w.CurrentBuffer().CountAlive()
}

// FrontierSize returns the number of tracked coordinates in the current generation
func (w *World) FrontierSize() int {
	return len(w.CurrentBuffer())
}

// AliveCoordinates returns the alive cells of the current generation sorted row-major
func (w *World) AliveCoordinates() []Coordinate {
	return w.CurrentBuffer().Alive()
}
