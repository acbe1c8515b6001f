package main

import (
	"errors"
	"io"
	"os"

	"github.com/pixelgrid/pixelgrid"
	"github.com/pixelgrid/pixelgrid/export"
	"github.com/pixelgrid/pixelgrid/script"
	"github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
)

type Draw struct {
	Size     int    `default:"512" desc:"Grid size in cells"`
	CellSize int    `name:"cell-size" default:"2" desc:"Pointer pixels per cell"`
	Output   string `short:"o" default:"drawing.json" desc:"Output file, .json or .txt"`
	Minify   bool   `desc:"Minify JSON output"`
	Verbose  bool   `short:"v" desc:"Log every replayed event"`
	Input    string `index:"0" desc:"Script file, or - for stdin"`
}

var log = logrus.New()

func main() {
	root := argp.NewCmd(&Draw{}, "Replay pointer events on a pixel grid and export the drawn cells")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	events, err := script.Parse(r)
	if err != nil {
		return err
	}

	g := pixelgrid.New(cmd.Size)
	s := pixelgrid.NewSession(g)
	s.SetCellSize(cmd.CellSize)
	script.Run(s, events, func(e script.Event, stamped pixelgrid.CellSet) {
		log.WithFields(logrus.Fields{
			"line":    e.Line,
			"tool":    s.Tool(),
			"stamped": stamped.Len(),
		}).Debug(e)
	})

	err = export.Write(cmd.Output, g, export.Options{
		Indent: export.DefaultOptions.Indent,
		Minify: cmd.Minify,
	})
	if errors.Is(err, pixelgrid.ErrEmpty) {
		log.Warn("no drawing to save")
		return nil
	} else if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"cells": g.Len(),
		"size":  g.Size(),
	}).Infof("drawing saved to %s", cmd.Output)
	return nil
}
