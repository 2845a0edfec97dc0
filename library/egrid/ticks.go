package egrid

import (
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// SciTicks places ticks like plot.DefaultTicks but labels them
// in scientific notation, e.g. 2.5e+03.
type SciTicks struct {
	plot.DefaultTicks
}

func (t SciTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.DefaultTicks.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = SciLabel(ticks[i].Value)
		}
	}
	return ticks
}

// SciLabel formats v with one decimal of mantissa, dropping a trailing .0
func SciLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'e', 1, 64)
	return strings.Replace(s, ".0e", "e", 1)
}
