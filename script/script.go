// Package script parses and replays pointer-event scripts against a drawing session. A script holds one command per line, blank lines are skipped and # starts a comment:
//
//	tool line
//	width 3
//	down 10 10
//	move 40 12
//	up 80 20
//	clear
//
// Positions are pointer pixels and are converted to cells by the session.
package script

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pixelgrid/pixelgrid"
	"github.com/tdewolff/parse/v2/strconv"
)

// Op is the kind of a script command.
type Op int

const (
	OpTool Op = iota
	OpWidth
	OpDown
	OpMove
	OpUp
	OpClear
)

var opNames = []string{"tool", "width", "down", "move", "up", "clear"}

func (op Op) String() string {
	if 0 <= op && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

func parseOp(b []byte) (Op, bool) {
	for i, name := range opNames {
		if string(b) == name {
			return Op(i), true
		}
	}
	return 0, false
}

// Event is a single command of a script.
type Event struct {
	Line  int // line number, starting at 1
	Op    Op
	Tool  pixelgrid.Tool // OpTool
	Width int            // OpWidth
	X, Y  int            // OpDown, OpMove and OpUp
}

func (e Event) String() string {
	switch e.Op {
	case OpTool:
		return fmt.Sprintf("tool %v", e.Tool)
	case OpWidth:
		return fmt.Sprintf("width %d", e.Width)
	case OpDown, OpMove, OpUp:
		return fmt.Sprintf("%v %d %d", e.Op, e.X, e.Y)
	}
	return e.Op.String()
}

// Error is a parse error at a line of the script.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrUnknownOp = errors.New("unknown command")
	ErrArguments = errors.New("wrong number of arguments")
	ErrInteger   = errors.New("invalid integer")
)

// Parse reads all events of a script.
func Parse(r io.Reader) ([]Event, error) {
	events := []Event{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if i := bytes.IndexByte(b, '#'); i != -1 {
			b = b[:i]
		}
		fields := bytes.Fields(b)
		if len(fields) == 0 {
			continue
		}

		e, err := parseEvent(fields)
		if err != nil {
			return nil, &Error{line, err}
		}
		e.Line = line
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{line + 1, err}
	}
	return events, nil
}

func parseEvent(fields [][]byte) (Event, error) {
	op, ok := parseOp(fields[0])
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrUnknownOp, fields[0])
	}
	args := fields[1:]

	e := Event{Op: op}
	switch op {
	case OpTool:
		if len(args) != 1 {
			return e, ErrArguments
		}
		tool, err := pixelgrid.ParseTool(string(args[0]))
		if err != nil {
			return e, err
		}
		e.Tool = tool
	case OpWidth:
		if len(args) != 1 {
			return e, ErrArguments
		}
		width, err := parseInt(args[0])
		if err != nil {
			return e, err
		}
		e.Width = width
	case OpDown, OpMove, OpUp:
		if len(args) != 2 {
			return e, ErrArguments
		}
		x, err := parseInt(args[0])
		if err != nil {
			return e, err
		}
		y, err := parseInt(args[1])
		if err != nil {
			return e, err
		}
		e.X, e.Y = x, y
	case OpClear:
		if len(args) != 0 {
			return e, ErrArguments
		}
	}
	return e, nil
}

func parseInt(b []byte) (int, error) {
	i, n := strconv.ParseInt(b)
	if n == 0 || n != len(b) {
		return 0, fmt.Errorf("%w: %s", ErrInteger, b)
	}
	return int(i), nil
}

// Run replays the events on the session. If fn is not nil, it is called after each event with the cells that were stamped.
func Run(s *pixelgrid.Session, events []Event, fn func(Event, pixelgrid.CellSet)) {
	for _, e := range events {
		var stamped pixelgrid.CellSet
		switch e.Op {
		case OpTool:
			s.SetTool(e.Tool)
		case OpWidth:
			s.SetWidth(e.Width)
		case OpDown:
			stamped = s.PointerDown(e.X, e.Y)
		case OpMove:
			stamped = s.PointerMove(e.X, e.Y)
		case OpUp:
			stamped = s.PointerUp(e.X, e.Y)
		case OpClear:
			s.Reset()
		}
		if fn != nil {
			fn(e, stamped)
		}
	}
}
