package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/Astera-org/plotgrid/library/common"
	"github.com/Astera-org/plotgrid/library/egrid"
	"github.com/sirupsen/logrus"
)

func main() {
	args, err := ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logrus.SetLevel(args.LogLevel())
	if err := run(args); err != nil {
		logrus.WithError(err).Fatal("plotgrid failed")
	}
}

func run(args Args) error {
	cfg := DemoConfig()
	if args.Config != "" {
		var err error
		if cfg, err = egrid.LoadConfig(args.Config); err != nil {
			return err
		}
	}
	if args.Format != "" {
		cfg.Format = args.Format
	}
	g, err := cfg.Build()
	if err != nil {
		return err
	}
	defer g.Close()

	if args.LogDir != "" {
		if err := g.SetLogDir(args.LogDir); err != nil {
			return err
		}
		fmt.Printf("Streaming %d curve logs to: %s\n", len(g.Logs.FilesOpen()), args.LogDir)
	}
	common.AddDefaultCallbacks(g)

	dd := &DemoData{N: args.Points, Max: 10, Rnd: rand.New(rand.NewSource(args.Seed))}
	for i := 0; i < dd.N; i++ {
		if err := g.Update(dd.Update(g, i)); err != nil {
			return err
		}
		if args.Every > 0 && (i+1)%args.Every == 0 {
			if err := g.Plot(args.Out); err != nil {
				return err
			}
		}
	}
	if err := g.Plot(args.Out); err != nil {
		return err
	}
	if args.CSVDir != "" {
		if err := g.Logs.SaveCSV(args.CSVDir); err != nil {
			return err
		}
		fmt.Printf("Saved curve snapshots to: %s\n", args.CSVDir)
	}
	return g.Close()
}
