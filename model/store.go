package model

import (
	"cmp"
	"maps"
	"slices"
)

// GenerationStore maps tracked coordinates to their alive flag. A missing
// coordinate is dead.
type GenerationStore map[Coordinate]bool

// IsAlive returns the stored flag for loc, or false when loc is not tracked
func (s GenerationStore) IsAlive(loc Coordinate) bool {
	return s[loc]
}

// Coordinates snapshots the tracked coordinates
func (s GenerationStore) Coordinates() []Coordinate {
	locs := make([]Coordinate, 0, len(s))
	for loc := range s {
		locs = append(locs, loc)
	}
	return locs
}

// Alive returns the alive coordinates sorted row-major
func (s GenerationStore) Alive() []Coordinate {
	var locs []Coordinate
	for loc, alive := range s {
		if alive {
			locs = append(locs, loc)
		}
	}
	slices.SortFunc(locs, compareCoordinates)
	return locs
}

// CountAlive returns the number of alive coordinates
func (s GenerationStore) CountAlive() (count int) {
	for _, alive := range s {
		if alive {
			count++
		}
	}
	return
}

// aliveNeighbors counts how many of loc's neighbours are alive
func (s GenerationStore) aliveNeighbors(loc Coordinate) (count int) {
	for _, nb := range loc.Neighbors() {
		if s[nb] {
			count++
		}
	}
	return
}

func (s GenerationStore) clone() GenerationStore {
	if s == nil {
		return GenerationStore{}
	}
	return maps.Clone(s)
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
