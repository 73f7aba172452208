// Package canvas provides the square paintable grid backing the sketch
// widget. The canvas is a plain array-backed store indexed by (x, y),
// decoupled from any rendering surface; the terminal layer is a pure
// consumer of cell updates.
package canvas

import "fmt"

// Dimension bounds for a canvas side length.
const (
	MinDimension = 1
	MaxDimension = 100
)

// ErrBadDimension is returned when a requested side length is outside
// [MinDimension, MaxDimension].
var ErrBadDimension = fmt.Errorf("canvas: dimension must be between %d and %d", MinDimension, MaxDimension)

// ValidateDimension checks that dim is a legal canvas side length.
func ValidateDimension(dim int) error {
	if dim < MinDimension || dim > MaxDimension {
		return fmt.Errorf("%w, got %d", ErrBadDimension, dim)
	}
	return nil
}

// Cell represents a single cell of the canvas.
type Cell struct {
	Set   bool // Whether the cell has been painted
	Color RGB  // Valid only when Set is true
}

// Empty returns an unpainted cell.
func Empty() Cell {
	return Cell{}
}

// Painted returns a painted cell with the given color.
func Painted(c RGB) Cell {
	return Cell{Set: true, Color: c}
}

// Canvas is a square grid of paintable cells.
// Cells are stored in row-major order: index = y*dim + x.
// The shape is immutable once created; a dimension change means a rebuild.
type Canvas struct {
	dim   int
	cells []Cell
}

// New creates an empty canvas with the given side length.
func New(dim int) (*Canvas, error) {
	if err := ValidateDimension(dim); err != nil {
		return nil, err
	}
	return &Canvas{
		dim:   dim,
		cells: make([]Cell, dim*dim),
	}, nil
}

// Dimension returns the side length of the canvas.
func (cv *Canvas) Dimension() int {
	return cv.dim
}

// index converts a coordinate to a flat array index.
func (cv *Canvas) index(c Coord) int {
	return c.Y*cv.dim + c.X
}

// InBounds returns true if the coordinate is within the canvas.
func (cv *Canvas) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < cv.dim && c.Y >= 0 && c.Y < cv.dim
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (cv *Canvas) Get(c Coord) Cell {
	if !cv.InBounds(c) {
		return Empty()
	}
	return cv.cells[cv.index(c)]
}

// ColorAt returns the color at the given coordinate and whether the cell
// has been painted.
func (cv *Canvas) ColorAt(c Coord) (RGB, bool) {
	cell := cv.Get(c)
	return cell.Color, cell.Set
}

// SetColor paints the cell at the given coordinate.
// Out-of-bounds coordinates are silently ignored.
func (cv *Canvas) SetColor(c Coord, color RGB) {
	if cv.InBounds(c) {
		cv.cells[cv.index(c)] = Painted(color)
	}
}

// Unset clears the cell at the given coordinate back to unpainted.
func (cv *Canvas) Unset(c Coord) {
	if cv.InBounds(c) {
		cv.cells[cv.index(c)] = Empty()
	}
}

// PaintedCount returns the number of painted cells.
func (cv *Canvas) PaintedCount() int {
	count := 0
	for _, cell := range cv.cells {
		if cell.Set {
			count++
		}
	}
	return count
}

// PaintedCoords returns all coordinates holding painted cells,
// ordered by row then column.
func (cv *Canvas) PaintedCoords() []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < cv.dim; y++ {
		for x := 0; x < cv.dim; x++ {
			c := C(x, y)
			if cv.Get(c).Set {
				coords = append(coords, c)
			}
		}
	}
	return coords
}

// Clone returns a deep copy of the canvas.
func (cv *Canvas) Clone() *Canvas {
	cells := make([]Cell, len(cv.cells))
	copy(cells, cv.cells)
	return &Canvas{
		dim:   cv.dim,
		cells: cells,
	}
}

// Equal returns true if two canvases have the same dimension and contents.
func (cv *Canvas) Equal(other *Canvas) bool {
	if cv.dim != other.dim {
		return false
	}
	for i, cell := range cv.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
