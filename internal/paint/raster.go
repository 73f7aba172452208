// Package paint implements the painting core of the sketch widget:
// discrete line rasterization between pointer cells, the per-cell color
// transition rules, and the session controller that owns the transient
// pointer state. This package is UI-agnostic and deterministic given a seed.
package paint

import (
	"github.com/vovakirdan/tui-sketch/internal/canvas"
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Rasterize returns the ordered sequence of cells forming the 8-connected
// discrete approximation of the straight segment from one cell to another,
// inclusive of both endpoints. Fast pointer motion is interpolated through
// this path so a drag paints a continuous line instead of a dotted one.
//
// Integer-only Bresenham: the sequence starts at from, ends at to, every
// consecutive pair differs by at most 1 in each axis, and its length is
// at most Chebyshev(from, to)+1. A zero-length segment yields one cell.
func Rasterize(from, to canvas.Coord) []canvas.Coord {
	dx := core.Abs(to.X - from.X)
	sx := core.Sign(to.X - from.X)
	dy := -core.Abs(to.Y - from.Y)
	sy := core.Sign(to.Y - from.Y)
	err := dx + dy

	path := make([]canvas.Coord, 0, from.Chebyshev(to)+1)
	cur := from
	path = append(path, cur)

	for !cur.Equal(to) {
		e2 := 2 * err
		if e2 >= dy && cur.X != to.X {
			err += dy
			cur.X += sx
		}
		if e2 <= dx && cur.Y != to.Y {
			err += dx
			cur.Y += sy
		}
		path = append(path, cur)
	}
	return path
}
