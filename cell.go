package pixelgrid

import (
	"cmp"
	"slices"
	"strconv"
)

// Cell is an address in the grid.
type Cell struct {
	X, Y int
}

// Pt is shorthand for Cell{x, y}.
func Pt(x, y int) Cell {
	return Cell{x, y}
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// In returns true if both coordinates are in [0,n).
func (c Cell) In(n int) bool {
	return 0 <= c.X && c.X < n && 0 <= c.Y && c.Y < n
}

func (c Cell) String() string {
	buf := make([]byte, 0, 16)
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	buf = append(buf, ')')
	return string(buf)
}

// MarshalJSON encodes the cell as a two-element array [x,y].
func (c Cell) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 16)
	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	buf = append(buf, ']')
	return buf, nil
}

// compareCells orders by X and then by Y.
func compareCells(a, b Cell) int {
	if n := cmp.Compare(a.X, b.X); n != 0 {
		return n
	}
	return cmp.Compare(a.Y, b.Y)
}

////////////////////////////////////////////////////////////////

// CellSet is an unordered set of cells.
type CellSet map[Cell]struct{}

func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

func (s CellSet) Remove(c Cell) {
	delete(s, c)
}

func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) Len() int {
	return len(s)
}

// Clear removes all cells but keeps the allocated map.
func (s CellSet) Clear() {
	clear(s)
}

// Union adds all cells of t to s.
func (s CellSet) Union(t CellSet) {
	for c := range t {
		s[c] = struct{}{}
	}
}

// Sorted returns the cells in ascending order of X and then Y.
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCells)
	return cells
}
