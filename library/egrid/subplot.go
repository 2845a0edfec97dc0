// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egrid

import (
	"fmt"
	"math"

	"github.com/Astera-org/plotgrid/library/eseries"
	"github.com/Astera-org/plotgrid/library/estats"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SubplotConfig holds the display configuration of one Subplot
type SubplotConfig struct {
	Title         string   `toml:"title" desc:"title drawn above the subplot"`
	Labels        []string `toml:"labels" desc:"curve labels, in legend and color order"`
	YScale        YScale   `toml:"y_scale" desc:"scale of the y axis"`
	Window        int      `toml:"window" desc:"moving average window for the smoothed line -- values < 1 mean no smoothing"`
	SmoothInitial bool     `toml:"smooth_initial" desc:"replace the first Window smoothed values with the one at index Window"`
	Zoom          bool     `toml:"zoom" desc:"draw an inset of the final part of the x range"`
	KeepMissing   bool     `toml:"keep_missing" desc:"keep points with a missing coordinate instead of dropping them on update"`
}

// Subplot is one chart of a Grid: a set of labeled curves plus
// how to display them.
type Subplot struct {
	SubplotConfig
	Curves map[string]*eseries.Curve `desc:"curve for each label"`
	VX     []float64                 `desc:"x positions of vertical marker lines"`
}

// NewSubplot returns a new Subplot with an empty curve for each label
func NewSubplot(cfg SubplotConfig) (*Subplot, error) {
	sp := &Subplot{SubplotConfig: cfg}
	sp.Labels = append([]string(nil), cfg.Labels...)
	sp.Curves = make(map[string]*eseries.Curve, len(cfg.Labels))
	for _, lbl := range cfg.Labels {
		if _, has := sp.Curves[lbl]; has {
			return nil, ErrDuplicateLabel{cfg.Title, lbl}
		}
		sp.Curves[lbl] = eseries.NewCurve(lbl)
	}
	return sp, nil
}

// Curve returns the curve with given label, or nil
func (sp *Subplot) Curve(label string) *eseries.Curve {
	return sp.Curves[label]
}

// Update appends points to the curves named by the keys of upd.
// Nothing is appended if any key is not a curve of this subplot.
// Points with a missing coordinate are dropped unless KeepMissing is set.
func (sp *Subplot) Update(upd map[string][]eseries.Point) error {
	for lbl := range upd {
		if _, ok := sp.Curves[lbl]; !ok {
			return ErrUnknownCurve{sp.Title, lbl}
		}
	}
	for lbl, pts := range upd {
		if sp.KeepMissing {
			sp.Curves[lbl].Add(pts...)
		} else {
			sp.Curves[lbl].AddValid(pts...)
		}
	}
	return nil
}

// AddVLine adds vertical marker lines at the given x positions
func (sp *Subplot) AddVLine(xs ...float64) {
	sp.VX = append(sp.VX, xs...)
}

// Summaries returns summary stats of the y values of each curve
func (sp *Subplot) Summaries() map[string]estats.Summary {
	sums := make(map[string]estats.Summary, len(sp.Labels))
	for _, lbl := range sp.Labels {
		sums[lbl] = estats.Summarize(sp.Curves[lbl].SortedView(), eseries.YCol)
	}
	return sums
}

// series returns the raw and smoothed points of a curve, sorted by x.
// On a log scale, non-positive values are left out.
func (sp *Subplot) series(cv *eseries.Curve) (raw, smooth plotter.XYs) {
	xs, ys := cv.XY()
	sm := eseries.MovingAverage(ys, sp.Window, sp.SmoothInitial)
	raw = make(plotter.XYs, 0, len(xs))
	smooth = make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if sp.YScale != Log || ys[i] > 0 {
			raw = append(raw, plotter.XY{X: xs[i], Y: ys[i]})
		}
		if sp.YScale != Log || sm[i] > 0 {
			smooth = append(smooth, plotter.XY{X: xs[i], Y: sm[i]})
		}
	}
	return raw, smooth
}

// addCurves adds the raw and smoothed line of every curve to p,
// returning all raw points drawn.
func (sp *Subplot) addCurves(p *plot.Plot, legend bool) (plotter.XYs, error) {
	var all plotter.XYs
	for i, lbl := range sp.Labels {
		raw, smooth := sp.series(sp.Curves[lbl])
		rl, err := plotter.NewLine(raw)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", lbl, err)
		}
		rl.LineStyle.Color = CycleColor(i, AlphaRaw)
		rl.LineStyle.Width = WidthRaw
		sl, err := plotter.NewLine(smooth)
		if err != nil {
			return nil, fmt.Errorf("curve %q smoothed: %w", lbl, err)
		}
		sl.LineStyle.Color = CycleColor(i, AlphaSmoothed)
		sl.LineStyle.Width = WidthSmoothed
		sl.LineStyle.Dashes = DashSmoothed
		p.Add(rl, sl)
		if legend {
			p.Legend.Add(lbl, sl)
		}
		all = append(all, raw...)
	}
	return all, nil
}

func (sp *Subplot) configAxes(p *plot.Plot) {
	p.BackgroundColor = colornames.White
	p.X.Tick.Marker = SciTicks{}
	if sp.YScale == Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	grid := plotter.NewGrid()
	grid.Vertical.Color = colornames.Grey
	grid.Vertical.Dashes = DashGrid
	grid.Horizontal.Color = colornames.Grey
	grid.Horizontal.Dashes = DashGrid
	p.Add(grid)
}

// fixYRange keeps the y axis drawable when there is no data,
// or a single value on a log scale.
func (sp *Subplot) fixYRange(p *plot.Plot) {
	if sp.YScale != Log {
		return
	}
	switch {
	case math.IsInf(p.Y.Min, 0) || math.IsInf(p.Y.Max, 0):
		p.Y.Min, p.Y.Max = 1, 10
	case p.Y.Min == p.Y.Max:
		p.Y.Min, p.Y.Max = p.Y.Min/2, p.Y.Max*2
	}
}

// addVLines draws a black vertical line with a rotated label for each VX,
// spanning the y range of the raw data.
func (sp *Subplot) addVLines(p *plot.Plot, pts plotter.XYs) error {
	if len(sp.VX) == 0 {
		return nil
	}
	ys := make([]float64, len(pts))
	for i := range pts {
		ys[i] = pts[i].Y
	}
	yr, ok := estats.Range(ys)
	if !ok {
		yr.Set(0, 1)
		if sp.YScale == Log {
			yr.Set(1, 10)
		}
	}
	for _, x := range sp.VX {
		ln, err := plotter.NewLine(plotter.XYs{{X: x, Y: yr.Min}, {X: x, Y: yr.Max}})
		if err != nil {
			return fmt.Errorf("vline %g: %w", x, err)
		}
		ln.LineStyle.Color = colornames.Black
		ln.LineStyle.Width = WidthVLine
		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: x, Y: yr.Min}},
			Labels: []string{fmt.Sprint(x)},
		})
		if err != nil {
			return fmt.Errorf("vline %g label: %w", x, err)
		}
		lbl.TextStyle[0].Color = colornames.Black
		lbl.TextStyle[0].Rotation = math.Pi / 2
		lbl.Offset = vg.Point{X: vg.Points(-2), Y: vg.Points(2)}
		p.Add(ln, lbl)
	}
	return nil
}

// Plot builds the chart for the current curves
func (sp *Subplot) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = sp.Title
	sp.configAxes(p)
	pts, err := sp.addCurves(p, true)
	if err != nil {
		return nil, err
	}
	if err := sp.addVLines(p, pts); err != nil {
		return nil, err
	}
	sp.fixYRange(p)
	p.Legend.Top, p.Legend.Left = sp.legendCorner(pts)
	return p, nil
}

// legendCorner returns the corner of the data range holding the fewest
// raw points. Ties go to top right, then top left, bottom left and
// bottom right. On a log scale the y midpoint is the geometric mean.
func (sp *Subplot) legendCorner(pts plotter.XYs) (top, left bool) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i := range pts {
		xs[i], ys[i] = pts[i].X, pts[i].Y
	}
	xr, okx := estats.Range(xs)
	yr, oky := estats.Range(ys)
	if !okx || !oky {
		return true, false
	}
	xmid := (xr.Min + xr.Max) / 2
	ymid := (yr.Min + yr.Max) / 2
	if sp.YScale == Log {
		ymid = math.Sqrt(yr.Min * yr.Max)
	}
	var n [4]int // top right, top left, bottom left, bottom right
	for _, pt := range pts {
		up := pt.Y >= ymid
		lf := pt.X < xmid
		switch {
		case up && !lf:
			n[0]++
		case up:
			n[1]++
		case lf:
			n[2]++
		default:
			n[3]++
		}
	}
	best := 0
	for i := 1; i < len(n); i++ {
		if n[i] < n[best] {
			best = i
		}
	}
	return best < 2, best == 1 || best == 2
}

// Inset builds the zoom inset: the final ZoomFrac of the x range,
// with y limits fit to the raw data there. Returns false if Zoom is
// off or there is no data to zoom on.
func (sp *Subplot) Inset() (*plot.Plot, bool, error) {
	if !sp.Zoom {
		return nil, false, nil
	}
	p := plot.New()
	sp.configAxes(p)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Tick.Label.Font.Size = vg.Points(6)
	}
	pts, err := sp.addCurves(p, false)
	if err != nil {
		return nil, false, err
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i := range pts {
		xs[i], ys[i] = pts[i].X, pts[i].Y
	}
	xr, yr, ok := estats.TailBounds(xs, ys, ZoomFrac)
	if !ok {
		return nil, false, nil
	}
	pad := 0.05 * yr.Range()
	if sp.YScale == Log {
		pad = 0
	}
	p.X.Min, p.X.Max = xr.Min, xr.Max
	p.Y.Min, p.Y.Max = yr.Min-pad, yr.Max+pad
	sp.fixYRange(p)
	return p, true, nil
}

// Draw draws the subplot, and its zoom inset if any, onto c
func (sp *Subplot) Draw(c draw.Canvas) error {
	p, err := sp.Plot()
	if err != nil {
		return err
	}
	p.Draw(c)
	inset, ok, err := sp.Inset()
	if err != nil || !ok {
		return err
	}
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	ic := draw.Crop(c,
		w*vg.Length(1-InsetSize.X-InsetMargin.X), -w*vg.Length(InsetMargin.X),
		h*vg.Length(1-InsetSize.Y-InsetMargin.Y), -h*vg.Length(InsetMargin.Y))
	inset.Draw(ic)
	return nil
}
