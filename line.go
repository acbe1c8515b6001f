package pixelgrid

// RasterizeLine returns the cells on the line from a to b using Bresenham's algorithm. Both end points are included and consecutive cells are 8-connected. No clipping is done, the brush that consumes the cells clips against the grid.
func RasterizeLine(a, b Cell) []Cell {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if b.X <= a.X {
		sx = -1
	}
	if b.Y <= a.Y {
		sy = -1
	}

	cells := make([]Cell, 0, max(dx, dy)+1)
	err := dx - dy
	p := a
	for {
		cells = append(cells, p)
		if p == b {
			break
		}
		e2 := 2 * err
		if -dy < e2 {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
	return cells
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
