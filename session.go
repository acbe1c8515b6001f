package pixelgrid

import "fmt"

// DefaultCellSize is the number of pointer pixels per cell side.
const DefaultCellSize = 2

// MaxBrushWidth is the largest brush width a Session accepts.
const MaxBrushWidth = 20

// Tool selects how pointer events are interpreted.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
	ToolLine
	ToolCircle
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	case ToolLine:
		return "line"
	case ToolCircle:
		return "circle"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool parses the name of a tool as returned by Tool.String.
func ParseTool(s string) (Tool, error) {
	switch s {
	case "pen":
		return ToolPen, nil
	case "eraser":
		return ToolEraser, nil
	case "line":
		return ToolLine, nil
	case "circle":
		return ToolCircle, nil
	}
	return 0, fmt.Errorf("unknown tool: %q", s)
}

////////////////////////////////////////////////////////////////

// Session holds the interaction state of a pointer-driven drawing surface on top of a grid: the selected tool, the brush width and the anchor of a line or circle gesture. All pointer methods return the cells that were stamped so the caller can redraw them, or nil if nothing changed. A Session is not safe for concurrent use.
type Session struct {
	grid     *Grid
	tool     Tool
	width    int
	cellSize int

	anchor    Cell
	hasAnchor bool
}

func NewSession(g *Grid) *Session {
	return &Session{
		grid:     g,
		tool:     ToolPen,
		width:    1,
		cellSize: DefaultCellSize,
	}
}

func (s *Session) Grid() *Grid {
	return s.grid
}

func (s *Session) Tool() Tool {
	return s.tool
}

// SetTool selects the tool. A pending line or circle gesture is kept.
func (s *Session) SetTool(t Tool) {
	s.tool = t
}

func (s *Session) Width() int {
	return s.width
}

// SetWidth sets the brush width, clamped to [1,MaxBrushWidth].
func (s *Session) SetWidth(width int) {
	s.width = min(max(width, 1), MaxBrushWidth)
}

func (s *Session) CellSize() int {
	return s.cellSize
}

// SetCellSize sets the number of pointer pixels per cell side, at least one.
func (s *Session) SetCellSize(cellSize int) {
	s.cellSize = max(cellSize, 1)
}

// Anchor returns the start cell of a pending line or circle gesture.
func (s *Session) Anchor() (Cell, bool) {
	return s.anchor, s.hasAnchor
}

// CellAt converts a pointer position in pixels to a cell. It returns false when the position falls outside the grid.
func (s *Session) CellAt(px, py int) (Cell, bool) {
	c := Cell{floorDiv(px, s.cellSize), floorDiv(py, s.cellSize)}
	return c, s.grid.Contains(c)
}

// Press starts a gesture at c. The pen and eraser stamp immediately, the line and circle tools remember c as their anchor.
func (s *Session) Press(c Cell) CellSet {
	if !s.grid.Contains(c) {
		return nil
	}
	switch s.tool {
	case ToolPen:
		return s.grid.Brush(c, s.width, true)
	case ToolEraser:
		return s.grid.Brush(c, s.width, false)
	case ToolLine, ToolCircle:
		s.anchor, s.hasAnchor = c, true
	}
	return nil
}

// Drag continues a gesture at c. Only the pen and eraser change the grid while dragging.
func (s *Session) Drag(c Cell) CellSet {
	if !s.grid.Contains(c) {
		return nil
	}
	switch s.tool {
	case ToolPen:
		return s.grid.Brush(c, s.width, true)
	case ToolEraser:
		return s.grid.Brush(c, s.width, false)
	}
	return nil
}

// Release ends a gesture at c. A pending line or circle is committed from the anchor to c. The anchor is discarded in all cases, also when c is outside the grid.
func (s *Session) Release(c Cell) CellSet {
	anchor, ok := s.anchor, s.hasAnchor
	s.anchor, s.hasAnchor = Cell{}, false
	if !ok || !s.grid.Contains(c) {
		return nil
	}
	switch s.tool {
	case ToolLine:
		return s.grid.Line(anchor, c, s.width)
	case ToolCircle:
		return s.grid.Circle(anchor, c, s.width)
	}
	return nil
}

func (s *Session) PointerDown(px, py int) CellSet {
	c, ok := s.CellAt(px, py)
	if !ok {
		return nil
	}
	return s.Press(c)
}

func (s *Session) PointerMove(px, py int) CellSet {
	c, ok := s.CellAt(px, py)
	if !ok {
		return nil
	}
	return s.Drag(c)
}

func (s *Session) PointerUp(px, py int) CellSet {
	c, _ := s.CellAt(px, py)
	return s.Release(c)
}

// Reset clears the grid and drops any pending gesture.
func (s *Session) Reset() {
	s.grid.Clear()
	s.anchor, s.hasAnchor = Cell{}, false
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
