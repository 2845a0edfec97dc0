package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Astera-org/plotgrid/library/egrid"
	"github.com/Astera-org/plotgrid/library/eseries"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDefaultCallbacks(t *testing.T) {
	sp, err := egrid.NewSubplot(egrid.SubplotConfig{Title: "Loss", Labels: []string{"train"}, Window: 2})
	if err != nil {
		t.Fatal(err)
	}
	g, err := egrid.NewGrid([]*egrid.Subplot{sp}, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	logger, hook := test.NewNullLogger()
	g.Log = logrus.NewEntry(logger)

	dir := t.TempDir()
	if err := g.SetLogDir(dir); err != nil {
		t.Fatal(err)
	}
	AddLogFileCallbacks(g)
	rl := AddRenderLogCallbacks(g, logrus.InfoLevel)

	for i := 0; i < 5; i++ {
		if err := g.Update([]map[string][]eseries.Point{{"train": {eseries.Pt(float64(i), float64(i))}}}); err != nil {
			t.Fatal(err)
		}
	}
	b, err := os.ReadFile(filepath.Join(dir, "Loss_train.tsv"))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(b)), "\n"); len(lines) != 6 {
		t.Errorf("expected header and 5 rows streamed before close, got %d lines", len(lines))
	}

	if err := g.Plot(filepath.Join(dir, "loss")); err != nil {
		t.Fatal(err)
	}
	if rl.Renders != 1 {
		t.Errorf("render count %d", rl.Renders)
	}
	last := hook.LastEntry()
	if last == nil || last.Message != "saved plot" || last.Data["file"] != filepath.Join(dir, "loss.png") {
		t.Errorf("unexpected log entry %+v", last)
	}
}
