package pixelgrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestNew(t *testing.T) {
	test.T(t, New(10).Size(), 10)
	test.T(t, New(0).Size(), DefaultSize)
	test.T(t, New(-5).Size(), DefaultSize)
	test.T(t, New(10).Len(), 0)
}

func TestBrush(t *testing.T) {
	var tts = []struct {
		c     Cell
		width int
		cells []Cell
	}{
		{Pt(5, 5), 1, []Cell{{5, 5}}},
		{Pt(5, 5), 0, []Cell{{5, 5}}},
		{Pt(5, 5), -3, []Cell{{5, 5}}},
		{Pt(5, 5), 2, []Cell{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 5}, {5, 6}, {6, 4}, {6, 5}, {6, 6}}},
		{Pt(5, 5), 3, []Cell{{4, 4}, {4, 5}, {4, 6}, {5, 4}, {5, 5}, {5, 6}, {6, 4}, {6, 5}, {6, 6}}},
		{Pt(9, 9), 3, []Cell{{8, 8}, {8, 9}, {9, 8}, {9, 9}}},
		{Pt(0, 0), 3, []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Pt(0, 9), 5, []Cell{{0, 7}, {0, 8}, {0, 9}, {1, 7}, {1, 8}, {1, 9}, {2, 7}, {2, 8}, {2, 9}}},
		{Pt(12, 4), 3, []Cell{}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.c, tt.width), func(t *testing.T) {
			g := New(10)
			stamped := g.Brush(tt.c, tt.width, true)
			test.T(t, stamped.Sorted(), tt.cells)
			test.T(t, g.Len(), len(tt.cells))
			for _, c := range tt.cells {
				test.That(t, g.At(c))
			}
		})
	}
}

func TestBrushWide(t *testing.T) {
	g := New(10)
	stamped := g.Brush(Pt(5, 5), 1<<40+1, true)
	test.T(t, stamped.Len(), 100)
	test.T(t, g.Len(), 100)

	stamped = g.Brush(Pt(-1<<50, 3), 1<<40+1, false)
	test.T(t, stamped.Len(), 0)
	test.T(t, g.Len(), 100)
}

func TestBrushIdempotent(t *testing.T) {
	g := New(10)
	g.Brush(Pt(4, 4), 3, true)
	once := g.on.Sorted()
	stamped := g.Brush(Pt(4, 4), 3, true)
	test.T(t, g.on.Sorted(), once)
	test.T(t, stamped.Len(), 9)
}

func TestBrushErase(t *testing.T) {
	g := New(10)
	g.Brush(Pt(1, 1), 1, true)
	g.Brush(Pt(8, 8), 1, true)
	before := g.on.Sorted()

	stamped := g.Brush(Pt(5, 5), 5, true)
	test.T(t, g.Len(), len(before)+25)
	erased := g.Brush(Pt(5, 5), 5, false)
	test.T(t, erased.Sorted(), stamped.Sorted())
	test.T(t, g.on.Sorted(), before)

	// erasing reports touched cells even when they were already off
	erased = g.Brush(Pt(5, 5), 1, false)
	test.T(t, erased.Sorted(), []Cell{{5, 5}})
	test.T(t, g.on.Sorted(), before)
}

func TestGridLine(t *testing.T) {
	g := New(10)
	stamped := g.Line(Pt(0, 0), Pt(3, 1), 1)
	test.T(t, stamped.Sorted(), []Cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}})
	test.T(t, g.on.Sorted(), []Cell{{0, 0}, {1, 0}, {2, 1}, {3, 1}})

	g.Clear()
	stamped = g.Line(Pt(9, 0), Pt(9, 2), 3)
	test.T(t, stamped.Sorted(), []Cell{{8, 0}, {8, 1}, {8, 2}, {8, 3}, {9, 0}, {9, 1}, {9, 2}, {9, 3}})
	test.T(t, g.Len(), 8)
}

func TestGridCircle(t *testing.T) {
	g := New(10)
	stamped := g.Circle(Pt(5, 5), Pt(5, 5), 1)
	test.T(t, stamped.Sorted(), []Cell{{5, 5}})

	g.Clear()
	stamped = g.Circle(Pt(5, 5), Pt(6, 6), 1) // radius 1.41 truncates to 1
	test.T(t, stamped.Sorted(), []Cell{{4, 5}, {5, 4}, {5, 6}, {6, 5}})
	test.That(t, !g.At(Pt(5, 5)))

	g.Clear()
	stamped = g.Circle(Pt(5, 5), Pt(5, 6), 3)
	test.T(t, g.Len(), 21)
	test.T(t, stamped.Len(), 21)
	test.That(t, g.At(Pt(5, 5)))
	test.That(t, g.At(Pt(3, 5)))
	test.That(t, !g.At(Pt(3, 3)))
}

func TestGridCircleClipped(t *testing.T) {
	g := New(10)
	test.T(t, g.CircleOutline(Pt(0, 0), 2).Sorted(), []Cell{{0, 2}, {1, 1}, {2, 0}})

	// outline cells outside the grid do not stamp their in-grid neighbours
	g.Circle(Pt(-2, 5), Pt(0, 5), 3)
	test.T(t, g.on.Sorted(), []Cell{{0, 4}, {0, 5}, {0, 6}, {1, 4}, {1, 5}, {1, 6}})
}

func TestExport(t *testing.T) {
	g := New(10)
	_, err := g.Export()
	test.That(t, errors.Is(err, ErrEmpty))

	g.Brush(Pt(3, 1), 1, true)
	g.Brush(Pt(1, 2), 1, true)
	g.Brush(Pt(1, 1), 1, true)
	cells, err := g.Export()
	test.Error(t, err)
	test.T(t, cells, []Cell{{1, 1}, {1, 2}, {3, 1}})

	g.Clear()
	_, err = g.Export()
	test.That(t, errors.Is(err, ErrEmpty))
}

func TestWrite(t *testing.T) {
	writer := func(w io.Writer, g *Grid) error {
		cells, err := g.Export()
		if err != nil {
			return err
		}
		for _, c := range cells {
			fmt.Fprintln(w, c)
		}
		return nil
	}

	g := New(10)
	g.Line(Pt(0, 0), Pt(2, 0), 1)
	buf := &bytes.Buffer{}
	test.Error(t, g.Write(buf, writer))
	test.String(t, buf.String(), "(0,0)\n(1,0)\n(2,0)\n")

	filename := filepath.Join(t.TempDir(), "cells.txt")
	test.Error(t, g.WriteFile(filename, writer))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.String(t, string(b), "(0,0)\n(1,0)\n(2,0)\n")

	// a failing writer leaves no partial file behind
	failed := filepath.Join(t.TempDir(), "failed.txt")
	errWrite := errors.New("disk full")
	err = g.WriteFile(failed, func(w io.Writer, g *Grid) error {
		fmt.Fprint(w, "(0,0)")
		return errWrite
	})
	test.That(t, errors.Is(err, errWrite))
	_, err = os.Stat(failed)
	test.That(t, os.IsNotExist(err))

	empty := filepath.Join(t.TempDir(), "empty.txt")
	test.That(t, errors.Is(New(10).WriteFile(empty, writer), ErrEmpty))
	_, err = os.Stat(empty)
	test.That(t, os.IsNotExist(err))
}
