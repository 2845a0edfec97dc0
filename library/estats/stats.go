// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package estats

import (
	"fmt"
	"sort"
	"strings"
)

// Stats holds named metrics computed over the curves of a grid,
// keyed by GenName.
type Stats struct {
	FloatMetrics map[string]float64
	IntMetrics   map[string]int
}

func InitStats() Stats {
	stats := Stats{}
	stats.FloatMetrics = make(map[string]float64)
	stats.IntMetrics = make(map[string]int)
	return stats
}

func (stats *Stats) SetFloatMetric(name string, value float64) {
	stats.FloatMetrics[name] = value
}
func (stats *Stats) SetIntMetric(name string, value int) {
	stats.IntMetrics[name] = value
}

func (stats *Stats) IntMetric(name string) int {
	return stats.IntMetrics[name]
}

// GenName returns the metric name for a stat of one curve in one subplot
func GenName(subplot, curve, stat string) string {
	return subplot + "/" + curve + ":" + stat
}

// SetSummary records all fields of sum under GenName(subplot, curve, *)
func (stats *Stats) SetSummary(subplot, curve string, sum Summary) {
	stats.SetIntMetric(GenName(subplot, curve, "N"), sum.Count)
	if sum.Count == 0 {
		return
	}
	stats.SetFloatMetric(GenName(subplot, curve, "Min"), sum.Min)
	stats.SetFloatMetric(GenName(subplot, curve, "Max"), sum.Max)
	stats.SetFloatMetric(GenName(subplot, curve, "Mean"), sum.Mean)
	stats.SetFloatMetric(GenName(subplot, curve, "Last"), sum.Last)
}

// Names returns all metric names in sorted order
func (stats *Stats) Names() []string {
	var nms []string
	for nm := range stats.FloatMetrics {
		nms = append(nms, nm)
	}
	for nm := range stats.IntMetrics {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// Print returns a "name: value" line for each of the given names,
// skipping any that are not set. All metrics are printed if names is nil.
func (stats *Stats) Print(names []string) string {
	if names == nil {
		names = stats.Names()
	}
	var sb strings.Builder
	for _, nm := range names {
		if v, ok := stats.FloatMetrics[nm]; ok {
			fmt.Fprintf(&sb, "%s: %.4g\n", nm, v)
		} else if v, ok := stats.IntMetrics[nm]; ok {
			fmt.Fprintf(&sb, "%s: %d\n", nm, v)
		}
	}
	return sb.String()
}
