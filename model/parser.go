package model

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// InvalidCharacterError reports a character in a configuration that is neither
// a sentinel nor a line break. Row and Col are 0-indexed.
type InvalidCharacterError struct {
	Char rune
	Row  int
	Col  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid char %q at (%d, %d)", e.Char, e.Row, e.Col)
}

// FromConfiguration builds a world from a character grid. Each row is
// terminated by a line feed, carriage returns are ignored, dead and alive mark
// cells. The grid is centred on the origin using the number of line feeds and
// the width of the last row.
func FromConfiguration(data string, dead, alive rune) (*World, error) {
	var totalRows, totalCols, row, col int64
	for _, c := range data {
		switch c {
		case dead, alive:
			totalCols++
			col++
		case '\n':
			totalCols = 0
			totalRows++
			row++
			col = 0
		case '\r':
		default:
			return nil, errors.WithStack(&InvalidCharacterError{Char: c, Row: int(row), Col: int(col)})
		}
	}

	world := NewWorld()
	row, col = 0, 0
	for _, c := range data {
		switch c {
		case dead, alive:
			world.Set(NewCoordinate(row-totalRows/2, col-totalCols/2), c == alive)
			col++
		case '\n':
			row++
			col = 0
		}
	}
	world.swap()
	return world, nil
}

// LoadConfiguration reads a configuration file and parses it with FromConfiguration
func LoadConfiguration(filename string, dead, alive rune) (*World, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfiguration] failed to read file: %+v", filename)
	}

	world, err := FromConfiguration(string(data), dead, alive)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfiguration] failed to parse file: %+v", filename)
	}
	return world, nil
}
