// Copyright (c) 2022, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eseries

// MovingAverage computes the sliding window average of arr.
// Each output value is the sum of the up-to-window raw samples ending at
// that index divided by window, i.e. a full convolution with a box kernel
// truncated to len(arr), so the first window-1 values ramp up from zero.
// A NaN or Inf only affects the outputs whose window contains it.
// If smoothInitial is set, the first window values are replaced with the
// value at index window to hide that ramp.
// Inputs no longer than window are returned unchanged.
func MovingAverage(arr []float64, window int, smoothInitial bool) []float64 {
	if window < 1 {
		window = 1
	}
	if len(arr) <= window {
		return arr
	}
	out := make([]float64, len(arr))
	wt := 1 / float64(window)
	for i := range arr {
		st := i - window + 1
		if st < 0 {
			st = 0
		}
		sum := 0.0
		for _, v := range arr[st : i+1] {
			sum += v
		}
		out[i] = sum * wt
	}
	if smoothInitial {
		for i := 0; i < window; i++ {
			out[i] = out[window]
		}
	}
	return out
}
