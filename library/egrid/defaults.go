// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package egrid

import (
	"fmt"
	"image/color"

	"github.com/goki/mat32"
	"gonum.org/v1/plot/vg"
)

// ColorCycle is the high-visibility color cycle from SciencePlots,
// assigned to curves in label order and repeated.
var ColorCycle = []string{"#0d49fb", "#e6091c", "#26eb47", "#8936df", "#fec32d", "#25d7fd"}

// Figure and line style defaults
var (
	TileSize = 3.5 * vg.Inch
	DPI      = 100

	AlphaRaw      = 0.3
	AlphaSmoothed = 1.0
	WidthRaw      = vg.Points(0.4)
	WidthSmoothed = vg.Points(1)
	DashSmoothed  = []vg.Length{vg.Points(4), vg.Points(2)}
	DashGrid      = []vg.Length{vg.Points(2), vg.Points(2)}
	WidthVLine    = vg.Points(1)

	// ZoomFrac is the trailing fraction of the x range shown by the zoom inset
	ZoomFrac = 0.2
	// InsetSize and InsetMargin are fractions of the subplot tile
	InsetSize   = mat32.Vec2{X: 0.42, Y: 0.36}
	InsetMargin = mat32.Vec2{X: 0.04, Y: 0.1}
)

// CycleColor returns the color for the i'th curve, with given alpha
func CycleColor(i int, alpha float64) color.NRGBA {
	c := mustParseHex(ColorCycle[i%len(ColorCycle)])
	c.A = uint8(alpha*255 + 0.5)
	return c
}

func mustParseHex(s string) color.NRGBA {
	var c color.NRGBA
	if _, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B); err != nil {
		panic(fmt.Sprintf("egrid: bad color %q: %v", s, err))
	}
	c.A = 0xff
	return c
}
