package model

import (
	"github.com/gdamore/tcell/v2"
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0xcc, 0xcc, 0xcc))
	deadStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0x11, 0x33, 0x66))
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// ScreenRenderer draws a world onto a tcell screen. Each cell is twice as
// wide as it is tall so that squares look square in a terminal.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialised screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// Viewport adjusts v to the screen's current size, keeping its zoom and
// centre. The bottom row is reserved for the status line.
func (r *ScreenRenderer) Viewport(v Viewport) Viewport {
	w, h := r.screen.Size()
	v.Resize(w/2, max(h-1, 0))
	return v
}

// Display draws the visible alive cells and a status line, then shows the frame
func (r *ScreenRenderer) Display(w *World, v Viewport, status string) {
	r.screen.Fill(' ', deadStyle)

	size := v.cellSize()
	for loc, alive := range w.CurrentBuffer() {
		if !alive || !v.Visible(loc) {
			continue
		}
		x, y := v.ToScreen(loc)
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < 2*size; dx++ {
				r.screen.SetContent(2*x+dx, y+dy, ' ', nil, aliveStyle)
			}
		}
	}

	_, h := r.screen.Size()
	for i, c := range []rune(status) {
		r.screen.SetContent(i, h-1, c, nil, statusStyle)
	}
	r.screen.Show()
}
