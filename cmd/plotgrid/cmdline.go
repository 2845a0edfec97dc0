package main

import (
	"flag"

	"github.com/sirupsen/logrus"
)

// Args holds the command line arguments
type Args struct {
	Config  string `desc:"toml file describing the grid -- the demo grid is used if empty"`
	Out     string `desc:"path stem of the image file to write"`
	Points  int    `desc:"number of demo points per curve"`
	Every   int    `desc:"render every this many points -- 0 renders only at the end"`
	Seed    int64  `desc:"random seed for the demo noise"`
	LogDir  string `desc:"directory to stream curve points to, one tsv file per curve"`
	CSVDir  string `desc:"directory to save a csv snapshot of every curve to at the end"`
	Format  string `desc:"image format, overrides the config"`
	Verbose bool   `desc:"debug logging"`
}

// ParseArgs parses the command line into an Args
func ParseArgs(args []string) (Args, error) {
	var a Args
	fs := flag.NewFlagSet("plotgrid", flag.ContinueOnError)
	fs.StringVar(&a.Config, "config", "", "toml file describing the grid -- the demo grid is used if empty")
	fs.StringVar(&a.Out, "out", "plot", "path stem of the image file to write")
	fs.IntVar(&a.Points, "points", 200, "number of demo points per curve")
	fs.IntVar(&a.Every, "every", 0, "render every this many points -- 0 renders only at the end")
	fs.Int64Var(&a.Seed, "seed", 1, "random seed for the demo noise")
	fs.StringVar(&a.LogDir, "logdir", "", "if set, stream curve points to tsv files in this directory")
	fs.StringVar(&a.CSVDir, "csv", "", "if set, save a csv snapshot of every curve in this directory at the end")
	fs.StringVar(&a.Format, "format", "", "image format: png, jpeg or bmp -- overrides the config")
	fs.BoolVar(&a.Verbose, "v", false, "if true, log at debug level")
	if err := fs.Parse(args); err != nil {
		return a, err
	}
	if a.Points < 1 {
		return a, invalidArgErr{"-points", "must be > 0"}
	}
	if a.Every < 0 {
		return a, invalidArgErr{"-every", "must be >= 0"}
	}
	return a, nil
}

// LogLevel returns the logrus level selected by the arguments
func (a Args) LogLevel() logrus.Level {
	if a.Verbose {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
