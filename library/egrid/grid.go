// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egrid

import (
	"fmt"

	"github.com/Astera-org/plotgrid/library/elog"
	"github.com/Astera-org/plotgrid/library/eseries"
	"github.com/Astera-org/plotgrid/library/estats"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Callbacks are called by the Grid after each Update and Plot.
// Any of them may be nil.
type Callbacks struct {
	OnUpdate func()
	OnRender func(fnm string)
}

// Grid is a container of Subplots laid out in rows and columns,
// for convenient updating and plotting into a single image.
type Grid struct {
	Subplots  []*Subplot    `desc:"subplots, laid out row by row"`
	NCol      int           `desc:"number of columns"`
	NRow      int           `desc:"number of rows"`
	Format    string        `desc:"image format: png, jpeg or bmp -- empty means png"`
	Logs      elog.Logs     `desc:"curve tables, which can be streamed to log files"`
	Stats     estats.Stats  `desc:"summary stats of every curve as of the last Plot"`
	Callbacks []Callbacks   `desc:"called in order after Update and Plot"`
	Log       *logrus.Entry `view:"-" desc:"logger"`

	canvas *vgimg.Canvas
	closed bool
}

// NewGrid lays out subplots with at most maxCols columns,
// or all in one row if maxCols is -1 (or any value < 1).
func NewGrid(subplots []*Subplot, maxCols int) (*Grid, error) {
	if len(subplots) == 0 {
		return nil, ErrNoSubplots{}
	}
	ncol := len(subplots)
	if maxCols > 0 && maxCols < ncol {
		ncol = maxCols
	}
	nrow := (len(subplots) + ncol - 1) / ncol
	if nrow < 1 {
		nrow = 1
	}
	g := &Grid{
		Subplots: subplots,
		NCol:     ncol,
		NRow:     nrow,
		Stats:    estats.InitStats(),
		Log:      logrus.WithField("grid", fmt.Sprintf("%dx%d", nrow, ncol)),
	}
	for _, sp := range subplots {
		for _, lbl := range sp.Labels {
			g.Logs.AddTable(sp.Title, lbl, sp.Curves[lbl].Table())
		}
	}
	g.canvas = vgimg.NewWith(
		vgimg.UseWH(TileSize*vg.Length(ncol), TileSize*vg.Length(nrow)),
		vgimg.UseDPI(DPI))
	return g, nil
}

// AddCallbacks registers cb to be called after later updates and renders
func (g *Grid) AddCallbacks(cb Callbacks) {
	g.Callbacks = append(g.Callbacks, cb)
}

// SetLogDir streams the points of every curve to a tsv file in dir
func (g *Grid) SetLogDir(dir string) error {
	if g.closed {
		return ErrGridClosed{}
	}
	return g.Logs.SetLogDir(dir, "tsv")
}

// Update gives the i'th map of points to the i'th subplot. Extra maps
// or subplots are ignored. If any map names an unknown curve, nothing is
// appended anywhere.
func (g *Grid) Update(upds []map[string][]eseries.Point) error {
	if g.closed {
		return ErrGridClosed{}
	}
	n := len(upds)
	if len(g.Subplots) < n {
		n = len(g.Subplots)
	}
	for i := 0; i < n; i++ {
		sp := g.Subplots[i]
		for lbl := range upds[i] {
			if _, ok := sp.Curves[lbl]; !ok {
				return fmt.Errorf("update %d: %w", i, ErrUnknownCurve{sp.Title, lbl})
			}
		}
	}
	for i := 0; i < n; i++ {
		if err := g.Subplots[i].Update(upds[i]); err != nil {
			return fmt.Errorf("update %d: %w", i, err)
		}
	}
	for _, cb := range g.Callbacks {
		if cb.OnUpdate != nil {
			cb.OnUpdate()
		}
	}
	return nil
}

// Tile returns the row and column of the i'th subplot
func (g *Grid) Tile(i int) (row, col int) {
	return i / g.NCol, i % g.NCol
}

// Plot redraws every subplot and saves the image to <loc>.<ext>.
// Tiles past the last subplot are left blank.
func (g *Grid) Plot(loc string) error {
	if g.closed {
		return ErrGridClosed{}
	}
	dc := draw.New(g.canvas)
	dc.SetColor(colornames.White)
	dc.Fill(dc.Rectangle.Path())
	tiles := draw.Tiles{
		Rows: g.NRow,
		Cols: g.NCol,
		PadX: vg.Points(6),
		PadY: vg.Points(6),
	}
	for i, sp := range g.Subplots {
		row, col := g.Tile(i)
		if err := sp.Draw(tiles.At(dc, col, row)); err != nil {
			return fmt.Errorf("subplot %q: %w", sp.Title, err)
		}
		for lbl, sum := range sp.Summaries() {
			g.Stats.SetSummary(sp.Title, lbl, sum)
		}
	}
	fnm, err := SaveImage(g.canvas.Image(), loc, g.Format)
	if err != nil {
		return fmt.Errorf("saving %s: %w", loc, err)
	}
	g.Log.WithField("file", fnm).Debug("rendered grid")
	for _, cb := range g.Callbacks {
		if cb.OnRender != nil {
			cb.OnRender(fnm)
		}
	}
	return nil
}

// Close releases the image, writes any pending log rows and closes the log files.
// Calling Close more than once is a no-op.
func (g *Grid) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.canvas = nil
	werr := g.Logs.WriteAll()
	if err := g.Logs.CloseLogFiles(); err != nil {
		return err
	}
	return werr
}
