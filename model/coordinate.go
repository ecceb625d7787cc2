package model

import "fmt"

// Coordinate identifies a single cell on the unbounded plane
type Coordinate struct {
	Row int64
	Col int64
}

// NewCoordinate creates a coordinate at the given row and column
func NewCoordinate(row, col int64) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Neighbors returns the 8 Moore neighbours in row-major order:
// three above, two on the same row, three below.
func (c Coordinate) Neighbors() [8]Coordinate {
	return [8]Coordinate{
		{c.Row - 1, c.Col - 1},
		{c.Row - 1, c.Col},
		{c.Row - 1, c.Col + 1},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col - 1},
		{c.Row + 1, c.Col},
		{c.Row + 1, c.Col + 1},
	}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}
