// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estats

import (
	"math"

	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/minmax"
)

// funcs contains misc stats functions

// Summary describes the values of one column of a curve table
type Summary struct {
	Count int     `desc:"number of non-missing values"`
	Min   float64 `desc:"smallest value"`
	Max   float64 `desc:"largest value"`
	Mean  float64 `desc:"mean value"`
	Last  float64 `desc:"value in the last row of the view"`
}

// Summarize aggregates column colNm over the rows of ix.
// Missing (NaN) values are ignored by the aggregators.
func Summarize(ix *etable.IdxView, colNm string) Summary {
	sum := Summary{}
	if ix.Len() == 0 {
		return sum
	}
	sum.Count = int(agg.Agg(ix, colNm, agg.AggCount)[0])
	if sum.Count == 0 {
		return sum
	}
	sum.Min = agg.Agg(ix, colNm, agg.AggMin)[0]
	sum.Max = agg.Agg(ix, colNm, agg.AggMax)[0]
	sum.Mean = agg.Agg(ix, colNm, agg.AggMean)[0]
	sum.Last = ix.Table.CellFloat(colNm, ix.Idxs[ix.Len()-1])
	return sum
}

// Range returns the min and max of the non-missing vals,
// and false if there are none.
func Range(vals []float64) (minmax.F64, bool) {
	mm := minmax.F64{Min: math.Inf(1), Max: math.Inf(-1)}
	ok := false
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		ok = true
		if v < mm.Min {
			mm.Min = v
		}
		if v > mm.Max {
			mm.Max = v
		}
	}
	return mm, ok
}

// TailBounds returns the x range covering the final frac of the full
// x range of xs, and the range of the ys whose x falls inside it.
// Returns false if there is no data in the tail.
func TailBounds(xs, ys []float64, frac float64) (xr, yr minmax.F64, ok bool) {
	full, ok := Range(xs)
	if !ok {
		return xr, yr, false
	}
	xr.Set(full.Max-frac*full.Range(), full.Max)
	yr = minmax.F64{Min: math.Inf(1), Max: math.Inf(-1)}
	ok = false
	for i, x := range xs {
		if i >= len(ys) || math.IsNaN(x) || x < xr.Min || math.IsNaN(ys[i]) {
			continue
		}
		ok = true
		if ys[i] < yr.Min {
			yr.Min = ys[i]
		}
		if ys[i] > yr.Max {
			yr.Max = ys[i]
		}
	}
	return xr, yr, ok
}
