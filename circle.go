package pixelgrid

import "math"

// CircleOutline returns the cells on the outline of a circle with the given center and radius using the midpoint circle algorithm. A radius of zero gives the center cell and a negative radius gives an empty set. The result is not clipped.
func CircleOutline(center Cell, r int) CellSet {
	cells := CellSet{}
	circleOctants(center, r, func(c Cell) {
		cells.Add(c)
	})
	return cells
}

// circleOctants calls fn for each of the 8 symmetric points per step. Points on the axes and diagonals are visited more than once.
func circleOctants(center Cell, r int, fn func(Cell)) {
	x, y, err := r, 0, 0
	for y <= x {
		fn(Cell{center.X + x, center.Y + y})
		fn(Cell{center.X + y, center.Y + x})
		fn(Cell{center.X - y, center.Y + x})
		fn(Cell{center.X - x, center.Y + y})
		fn(Cell{center.X - x, center.Y - y})
		fn(Cell{center.X - y, center.Y - x})
		fn(Cell{center.X + y, center.Y - x})
		fn(Cell{center.X + x, center.Y - y})

		// the second test sees the updated y but x before decrementing
		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if 0 < err {
			x--
			err -= 2*x + 1
		}
	}
}

// Radius returns the distance between center and edge truncated toward zero.
func Radius(center, edge Cell) int {
	dx, dy := float64(edge.X-center.X), float64(edge.Y-center.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}
