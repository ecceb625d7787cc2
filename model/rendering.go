package model

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic line-oriented terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the visible part of the world, one line per viewport row.
// The cell size of the viewport is ignored.
func (r *TerminalRenderer) Display(w *World, v Viewport) error {
	v.CellSize = MinCellSize
	rows, cols := v.MaxRows(), v.MaxCols()
	if rows <= 0 || cols <= 0 {
		return nil
	}

	visible := make([][]bool, rows)
	for i := range visible {
		visible[i] = make([]bool, cols)
	}
	for loc, alive := range w.CurrentBuffer() {
		if !alive || !v.Visible(loc) {
			continue
		}
		x, y := v.ToScreen(loc)
		visible[y][x] = true
	}

	var sb strings.Builder
	sb.Grow(int(rows) * (int(cols)*len(gridPosBlock) + 1))
	for _, line := range visible {
		for _, alive := range line {
			if alive {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.Out, sb.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear terminal")
	}
	return nil
}
