package model

// Zoom bounds for Viewport.CellSize
const (
	MinCellSize = 1
	MaxCellSize = 20
)

// Viewport maps plane coordinates onto a screen of Width x Height units.
// CenterRow and CenterCol shift the plane relative to the screen centre.
type Viewport struct {
	Width     int
	Height    int
	CellSize  int
	CenterRow int64
	CenterCol int64
}

// NewViewport creates a viewport centred on the origin
func NewViewport(width, height, cellSize int) Viewport {
	v := Viewport{Width: width, Height: height, CellSize: cellSize}
	v.clampCellSize()
	return v
}

// MaxCols returns how many cells fit horizontally
func (v Viewport) MaxCols() int64 {
	return int64(v.Width / v.cellSize())
}

// MaxRows returns how many cells fit vertically
func (v Viewport) MaxRows() int64 {
	return int64(v.Height / v.cellSize())
}

// Visible reports whether loc falls inside the viewport
func (v Viewport) Visible(loc Coordinate) bool {
	maxRows, maxCols := v.MaxRows(), v.MaxCols()
	row := loc.Row + v.CenterRow
	col := loc.Col + v.CenterCol
	return row >= -maxRows/2 && col >= -maxCols/2 &&
		row < maxRows/2 && col < maxCols/2
}

// ToScreen returns the top-left screen position of loc's cell
func (v Viewport) ToScreen(loc Coordinate) (x, y int) {
	x = int(loc.Col+v.MaxCols()/2+v.CenterCol) * v.cellSize()
	y = int(loc.Row+v.MaxRows()/2+v.CenterRow) * v.cellSize()
	return x, y
}

// Pan shifts the plane by the given number of cells
func (v *Viewport) Pan(dRow, dCol int64) {
	v.CenterRow += dRow
	v.CenterCol += dCol
}

// ZoomIn enlarges cells up to MaxCellSize
func (v *Viewport) ZoomIn() {
	v.CellSize++
	v.clampCellSize()
}

// ZoomOut shrinks cells down to MinCellSize
func (v *Viewport) ZoomOut() {
	v.CellSize--
	v.clampCellSize()
}

// Resize updates the screen dimensions
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

func (v *Viewport) clampCellSize() {
	v.CellSize = min(max(v.CellSize, MinCellSize), MaxCellSize)
}

func (v Viewport) cellSize() int {
	return max(v.CellSize, MinCellSize)
}
