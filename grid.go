// Package pixelgrid is a rasterization engine for an N×N grid of on/off cells. It rasterizes lines and circle outlines, stamps square brushes that set or clear cells, and exports the cells that are on in a deterministic order.
package pixelgrid

import (
	"errors"
	"io"
	"os"
)

// DefaultSize is the grid size used when none is given.
const DefaultSize = 512

// ErrEmpty is returned when exporting a grid without any cells turned on.
var ErrEmpty = errors.New("nothing to export")

// Grid holds the on/off state of an N×N cell space. Coordinates outside [0,N) are silently clipped by all operations. A Grid is not safe for concurrent use.
type Grid struct {
	size int
	on   CellSet
}

// New returns an empty grid of size×size cells. A non-positive size gives DefaultSize.
func New(size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	return &Grid{
		size: size,
		on:   CellSet{},
	}
}

func (g *Grid) Size() int {
	return g.size
}

// Contains returns true if c lies within the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.In(g.size)
}

// At returns true if c is turned on.
func (g *Grid) At(c Cell) bool {
	return g.on.Has(c)
}

// Len returns the number of cells turned on.
func (g *Grid) Len() int {
	return g.on.Len()
}

// Clear turns off all cells.
func (g *Grid) Clear() {
	g.on.Clear()
}

// Brush stamps a width×width square centered on c, turning cells on or off. Even widths are rounded up to the next odd width, widths below one are treated as one. It returns all stamped cells within the grid, whether or not they changed.
func (g *Grid) Brush(c Cell, width int, on bool) CellSet {
	stamped := CellSet{}
	g.brush(stamped, c, width, on)
	return stamped
}

func (g *Grid) brush(stamped CellSet, c Cell, width int, on bool) {
	half := max(width, 1) / 2
	x0, x1 := max(c.X-half, 0), min(c.X+half, g.size-1)
	y0, y1 := max(c.Y-half, 0), min(c.Y+half, g.size-1)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			d := Cell{x, y}
			if on {
				g.on.Add(d)
			} else {
				g.on.Remove(d)
			}
			stamped.Add(d)
		}
	}
}

// Line turns on the cells of the line from a to b, each stamped by a brush of the given width. It returns all stamped cells.
func (g *Grid) Line(a, b Cell, width int) CellSet {
	stamped := CellSet{}
	for _, c := range RasterizeLine(a, b) {
		g.brush(stamped, c, width, true)
	}
	return stamped
}

// CircleOutline is like the package-level CircleOutline but drops cells outside the grid.
func (g *Grid) CircleOutline(center Cell, r int) CellSet {
	cells := CellSet{}
	circleOctants(center, r, func(c Cell) {
		if c.In(g.size) {
			cells.Add(c)
		}
	})
	return cells
}

// Circle turns on the outline of the circle centered on center and passing through edge, with the radius given by Radius. Each outline cell is stamped by a brush of the given width. It returns all stamped cells.
func (g *Grid) Circle(center, edge Cell, width int) CellSet {
	stamped := CellSet{}
	for c := range g.CircleOutline(center, Radius(center, edge)) {
		g.brush(stamped, c, width, true)
	}
	return stamped
}

// Export returns the cells turned on, sorted by X and then Y. It returns ErrEmpty if no cell is on.
func (g *Grid) Export() ([]Cell, error) {
	if g.on.Len() == 0 {
		return nil, ErrEmpty
	}
	return g.on.Sorted(), nil
}

////////////////////////////////////////////////////////////////

// Writer can write a grid to a file format.
type Writer func(w io.Writer, g *Grid) error

// Write writes the grid to w using the given writer.
func (g *Grid) Write(w io.Writer, writer Writer) error {
	return writer(w, g)
}

// WriteFile writes the grid to filename using the given writer. No file is created when the grid is empty, ErrEmpty is returned instead. The file is removed when the writer fails.
func (g *Grid) WriteFile(filename string, writer Writer) error {
	if g.on.Len() == 0 {
		return ErrEmpty
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = writer(f, g); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	if err = f.Close(); err != nil {
		os.Remove(filename)
		return err
	}
	return nil
}
