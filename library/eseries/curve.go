// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eseries

import (
	"math"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Column names of the table backing a Curve
const (
	XCol = "X"
	YCol = "Y"
)

// Point is one (x, y) sample. A NaN coordinate marks a missing value.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// MissingY returns a point at x whose y value is missing
func MissingY(x float64) Point {
	return Point{X: x, Y: math.NaN()}
}

// Missing returns true if either coordinate is missing
func (pt Point) Missing() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Curve is one named line series. Points are only ever appended,
// in arrival order, to an etable with X and Y columns; readers get
// them back sorted by X.
type Curve struct {
	Name  string        `desc:"name of the curve, used as the legend label"`
	table *etable.Table `desc:"points in append order"`
}

// NewCurve returns a new Curve holding the given points
func NewCurve(name string, points ...Point) *Curve {
	cv := &Curve{Name: name}
	sch := etable.Schema{
		{Name: XCol, Type: etensor.FLOAT64},
		{Name: YCol, Type: etensor.FLOAT64},
	}
	cv.table = etable.New(sch, 0)
	cv.table.SetMetaData("name", name)
	cv.table.SetMetaData("desc", "points of curve "+name)
	cv.Add(points...)
	return cv
}

// Add appends all points, including any with missing coordinates
func (cv *Curve) Add(points ...Point) {
	if len(points) == 0 {
		return
	}
	row := cv.table.Rows
	cv.table.AddRows(len(points))
	for i, pt := range points {
		cv.table.SetCellFloat(XCol, row+i, pt.X)
		cv.table.SetCellFloat(YCol, row+i, pt.Y)
	}
}

// AddValid appends only the points that have both coordinates,
// returning the number of points kept.
func (cv *Curve) AddValid(points ...Point) int {
	valid := make([]Point, 0, len(points))
	for _, pt := range points {
		if !pt.Missing() {
			valid = append(valid, pt)
		}
	}
	cv.Add(valid...)
	return len(valid)
}

// Len returns the number of points appended so far
func (cv *Curve) Len() int {
	return cv.table.Rows
}

// Table returns the table backing the curve, in append order.
// It must not be modified except through the Curve.
func (cv *Curve) Table() *etable.Table {
	return cv.table
}

// SortedView returns an index view onto the table, stably sorted by X
func (cv *Curve) SortedView() *etable.IdxView {
	ix := etable.NewIdxView(cv.table)
	xs := cv.table.ColByName(XCol).(*etensor.Float64).Values
	ix.SortStable(func(et *etable.Table, i, j int) bool {
		return xs[i] < xs[j]
	})
	return ix
}

// XY returns all points stably sorted by X, split into
// parallel x and y slices.
func (cv *Curve) XY() (xs, ys []float64) {
	ix := cv.SortedView()
	xv := cv.table.ColByName(XCol).(*etensor.Float64).Values
	yv := cv.table.ColByName(YCol).(*etensor.Float64).Values
	xs = make([]float64, len(ix.Idxs))
	ys = make([]float64, len(ix.Idxs))
	for i, row := range ix.Idxs {
		xs[i] = xv[row]
		ys[i] = yv[row]
	}
	return xs, ys
}

// Points returns all points stably sorted by X
func (cv *Curve) Points() []Point {
	xs, ys := cv.XY()
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts
}
