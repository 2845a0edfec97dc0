package eseries

import (
	"math"
	"testing"
)

func closeTo(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			if math.IsNaN(a[i]) != math.IsNaN(b[i]) {
				return false
			}
			continue
		}
		if math.Abs(a[i]-b[i]) > 1e-9*math.Max(1, math.Abs(b[i])) {
			return false
		}
	}
	return true
}

// convolveBox is the full convolution of arr with a box kernel of
// weight 1/window, truncated to len(arr).
func convolveBox(arr []float64, window int) []float64 {
	out := make([]float64, len(arr))
	for i := range arr {
		for k := 0; k < window && k <= i; k++ {
			out[i] += arr[i-k] / float64(window)
		}
	}
	return out
}

func TestMovingAverageWindowLargerThanInput(t *testing.T) {
	in := []float64{1, 1, 1, 1, 1}
	out := MovingAverage(in, 10, false)
	if !closeTo(out, in) {
		t.Errorf("expected input unchanged, got %v", out)
	}
	for win := len(in); win < 20; win++ {
		if out := MovingAverage(in, win, true); !closeTo(out, in) {
			t.Errorf("window %d: expected identity, got %v", win, out)
		}
	}
}

func TestMovingAverageFullConvolution(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	out := MovingAverage(in, 2, false)
	want := []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}
	if !closeTo(out, want) {
		t.Errorf("got %v want %v", out, want)
	}
	out = MovingAverage(in, 3, false)
	want = []float64{1.0 / 3, 1, 2, 3, 4, 5}
	if !closeTo(out, want) {
		t.Errorf("got %v want %v", out, want)
	}
	if len(out) != len(in) {
		t.Errorf("length changed: %d != %d", len(out), len(in))
	}
}

func TestMovingAverageSmoothInitial(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	out := MovingAverage(in, 3, true)
	want := []float64{3, 3, 3, 3, 4, 5}
	if !closeTo(out, want) {
		t.Errorf("got %v want %v", out, want)
	}
}

func TestMovingAverageDegenerateWindow(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	if out := MovingAverage(in, 0, false); !closeTo(out, in) {
		t.Errorf("window 0 should be identity, got %v", out)
	}
	if out := MovingAverage(in, 1, false); !closeTo(out, in) {
		t.Errorf("window 1 should be identity, got %v", out)
	}
	if out := MovingAverage(nil, 5, false); len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
}

func TestMovingAverageDoesNotModifyInput(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	MovingAverage(in, 2, true)
	if !closeTo(in, []float64{1, 2, 3, 4, 5, 6}) {
		t.Errorf("input was modified: %v", in)
	}
}

func TestMovingAverageNaNStaysInWindow(t *testing.T) {
	in := []float64{1, math.NaN(), 1, 1, 1, 1, 1, 1}
	out := MovingAverage(in, 2, false)
	want := []float64{0.5, math.NaN(), math.NaN(), 1, 1, 1, 1, 1}
	if !closeTo(out, want) {
		t.Errorf("got %v want %v", out, want)
	}
	if !closeTo(out, convolveBox(in, 2)) {
		t.Errorf("got %v, convolution gives %v", out, convolveBox(in, 2))
	}
}

func TestMovingAverageLargeSpikeRecovers(t *testing.T) {
	in := []float64{1e17, 1, 1, 1, 1, 1, 1, 1}
	out := MovingAverage(in, 2, false)
	ref := convolveBox(in, 2)
	if !closeTo(out, ref) {
		t.Errorf("got %v, convolution gives %v", out, ref)
	}
	if out[len(out)-1] != 1 {
		t.Errorf("tail should recover to 1, got %v", out[len(out)-1])
	}
}

func TestMovingAverageMatchesConvolution(t *testing.T) {
	in := []float64{3, -1, 4, 1, -5, 9, 2, 6, 5, 3, 5}
	for win := 1; win < len(in); win++ {
		if out := MovingAverage(in, win, false); !closeTo(out, convolveBox(in, win)) {
			t.Errorf("window %d: got %v want %v", win, out, convolveBox(in, win))
		}
	}
}
