package estats

import (
	"math"
	"strings"
	"testing"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

func testTable(vals []float64) *etable.Table {
	dt := etable.New(etable.Schema{{Name: "Y", Type: etensor.FLOAT64}}, len(vals))
	for i, v := range vals {
		dt.SetCellFloat("Y", i, v)
	}
	return dt
}

func TestSummarize(t *testing.T) {
	ix := etable.NewIdxView(testTable([]float64{4, 2, 6, 8}))
	sum := Summarize(ix, "Y")
	if sum.Count != 4 || sum.Min != 2 || sum.Max != 8 || sum.Mean != 5 || sum.Last != 8 {
		t.Errorf("unexpected summary %+v", sum)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	ix := etable.NewIdxView(testTable(nil))
	sum := Summarize(ix, "Y")
	if sum.Count != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}

func TestRange(t *testing.T) {
	mm, ok := Range([]float64{3, math.NaN(), -1, 7})
	if !ok || mm.Min != -1 || mm.Max != 7 {
		t.Errorf("got %v %v", mm, ok)
	}
	if _, ok := Range([]float64{math.NaN()}); ok {
		t.Errorf("expected no range for all-missing values")
	}
}

func TestTailBounds(t *testing.T) {
	var xs, ys []float64
	for i := 0; i <= 100; i++ {
		xs = append(xs, float64(i))
		ys = append(ys, float64(-i))
	}
	xr, yr, ok := TailBounds(xs, ys, 0.2)
	if !ok {
		t.Fatalf("expected tail data")
	}
	if xr.Min != 80 || xr.Max != 100 {
		t.Errorf("x range %v, want [80, 100]", xr)
	}
	if yr.Min != -100 || yr.Max != -80 {
		t.Errorf("y range %v, want [-100, -80]", yr)
	}
	if _, _, ok := TailBounds(nil, nil, 0.2); ok {
		t.Errorf("expected no tail for empty input")
	}
}

func TestStatsPrint(t *testing.T) {
	st := InitStats()
	st.SetSummary("Loss", "train", Summary{Count: 2, Min: 1, Max: 3, Mean: 2, Last: 3})
	st.SetIntMetric("renders", 4)
	if st.IntMetric(GenName("Loss", "train", "N")) != 2 {
		t.Errorf("count not recorded")
	}
	out := st.Print(nil)
	if !strings.Contains(out, "Loss/train:Mean: 2") || !strings.Contains(out, "renders: 4") {
		t.Errorf("unexpected print output:\n%s", out)
	}
	if st.Print([]string{"missing"}) != "" {
		t.Errorf("unset names should be skipped")
	}
}
