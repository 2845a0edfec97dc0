package main

import (
	"math/rand"

	"github.com/Astera-org/plotgrid/library/egrid"
	"github.com/Astera-org/plotgrid/library/eseries"
)

// DemoConfig is the grid used when no config file is given
func DemoConfig() egrid.GridConfig {
	cfg := egrid.DefaultGridConfig()
	cfg.MaxCols = 3
	cfg.Subplots = []egrid.SubplotConfig{
		{Title: "First Plot", Labels: []string{"first", "second", "third"}, Window: 10},
		{Title: "Second Plot", Labels: []string{"first", "second"}, Window: 30},
		{Title: "Third Plot", Labels: []string{"first", "second"}, Window: 30, Zoom: true},
	}
	return cfg
}

// DemoData produces noisy samples of a line for every curve of a grid
type DemoData struct {
	N   int        `desc:"number of points"`
	Max float64    `desc:"x range is [0, Max]"`
	Rnd *rand.Rand `desc:"noise source"`
}

// Update returns the updates for the i'th sample of every curve in g.
// Curves are offset from each other, and the third curve of a subplot
// is missing wherever the noisy value is at most 1.
func (dd *DemoData) Update(g *egrid.Grid, i int) []map[string][]eseries.Point {
	x := 0.0
	if dd.N > 1 {
		x = dd.Max * float64(i) / float64(dd.N-1)
	}
	y := x - dd.Rnd.Float64()*10
	offsets := []float64{0, 10, -10}
	upds := make([]map[string][]eseries.Point, len(g.Subplots))
	for si, sp := range g.Subplots {
		upd := make(map[string][]eseries.Point, len(sp.Labels))
		for ci, lbl := range sp.Labels {
			off := offsets[ci%len(offsets)]
			if si > 0 && ci == 1 {
				off = 1.2
			}
			pt := eseries.Pt(x, y+off)
			if ci == 2 && y <= 1 {
				pt = eseries.MissingY(x)
			}
			upd[lbl] = []eseries.Point{pt}
		}
		upds[si] = upd
	}
	return upds
}
