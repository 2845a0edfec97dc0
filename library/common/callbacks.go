package common

import (
	"github.com/Astera-org/plotgrid/library/egrid"
	"github.com/sirupsen/logrus"
)

// AddDefaultCallbacks streams new curve points to any open log files
// after every update, and logs where each render was saved.
func AddDefaultCallbacks(g *egrid.Grid) {
	AddLogFileCallbacks(g)
	AddRenderLogCallbacks(g, logrus.InfoLevel)
}

// AddLogFileCallbacks writes new rows of every curve table after each update
func AddLogFileCallbacks(g *egrid.Grid) {
	g.AddCallbacks(egrid.Callbacks{
		OnUpdate: func() {
			if err := g.Logs.WriteAll(); err != nil {
				g.Log.WithError(err).Error("writing curve logs")
			}
		},
	})
}

// RenderLogHandler logs each saved image, with the curve summaries
// at debug level.
type RenderLogHandler struct {
	egrid.Callbacks
	Level   logrus.Level
	Renders int
	g       *egrid.Grid
}

// AddRenderLogCallbacks registers a RenderLogHandler logging at level
func AddRenderLogCallbacks(g *egrid.Grid, level logrus.Level) *RenderLogHandler {
	rl := &RenderLogHandler{Level: level, g: g}
	rl.Callbacks.OnRender = rl.OnRender
	g.AddCallbacks(rl.Callbacks)
	return rl
}

func (rl *RenderLogHandler) OnRender(fnm string) {
	rl.Renders++
	rl.g.Log.WithFields(logrus.Fields{
		"file":   fnm,
		"render": rl.Renders,
	}).Log(rl.Level, "saved plot")
	if rl.g.Log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		rl.g.Log.Debug("curve summaries:\n" + rl.g.Stats.Print(nil))
	}
}
