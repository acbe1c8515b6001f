// Package export writes the cells of a grid to files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pixelgrid/pixelgrid"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

const jsonMimetype = "application/json"

// Options control the JSON output.
type Options struct {
	Indent string // indentation per nesting level before minifying
	Minify bool
}

// DefaultOptions indent by two spaces, one element per line.
var DefaultOptions = Options{
	Indent: "  ",
}

// JSON returns a writer that encodes the exported cells as a JSON array of [x,y] pairs sorted by x and then y.
func JSON(opts *Options) pixelgrid.Writer {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	return func(w io.Writer, g *pixelgrid.Grid) error {
		cells, err := g.Export()
		if err != nil {
			return err
		}

		indent := opts.Indent
		if opts.Minify && indent == "" {
			indent = DefaultOptions.Indent
		}

		var b []byte
		if indent != "" {
			b, err = json.MarshalIndent(cells, "", indent)
		} else {
			b, err = json.Marshal(cells)
		}
		if err != nil {
			return fmt.Errorf("encode cells: %w", err)
		}

		// minified output is compacted by the minifier only
		if opts.Minify {
			m := minify.New()
			m.AddFunc(jsonMimetype, mjson.Minify)
			if err := m.Minify(jsonMimetype, w, bytes.NewReader(b)); err != nil {
				return fmt.Errorf("minify cells: %w", err)
			}
			return nil
		}
		_, err = w.Write(b)
		return err
	}
}

// Write writes the grid to filename, choosing the format by the file extension. Both .json and .txt files receive JSON. Accepted options are Options and *Options.
func Write(filename string, g *pixelgrid.Grid, opts ...interface{}) error {
	options := DefaultOptions
	for _, opt := range opts {
		switch o := opt.(type) {
		case Options:
			options = o
		case *Options:
			if o != nil {
				options = *o
			}
		default:
			return fmt.Errorf("unknown option: %v", opt)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json", ".txt":
		return g.WriteFile(filename, JSON(&options))
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}
