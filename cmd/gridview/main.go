// SPDX-License-Identifier: MIT

// Command gridview prints a text grid and explores cell adjacency in it.
//
//	gridview -i test -p 5,0 -d -w right
//
// reads input/example, prints it, lists the neighbors of (5, 0) including
// diagonals and traces a ray to the right edge.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/katalvlaran/lvgrid/config"
	"github.com/katalvlaran/lvgrid/internal/view"
	"github.com/katalvlaran/lvgrid/logging"
)

func main() {
	// GRIDVIEW_* variables may come from a local .env file; a missing file
	// is fine, an unreadable or malformed one is reported.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "gridview: .env not loaded:", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gridview:", err)
		os.Exit(1)
	}
}

// newApp builds the command line; output goes to app.Writer.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gridview"
	app.Usage = "print a grid and list cell neighbors"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase log level from the default for the input type",
		},
		cli.StringFlag{
			Name:  "input, i",
			Value: config.InputActual.String(),
			Usage: fmt.Sprintf("input type, %q or %q", config.InputTest, config.InputActual),
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML config file",
		},
		cli.BoolFlag{
			Name:  "diagonals, d",
			Usage: "include diagonal neighbors",
		},
		cli.StringSliceFlag{
			Name:  "probe, p",
			Usage: "x,y cell whose neighbors are listed (repeatable)",
		},
		cli.StringFlag{
			Name:  "walk, w",
			Usage: "direction to walk from each probe until the grid edge",
		},
		cli.BoolFlag{
			Name:  "dump-config",
			Usage: "print the effective configuration as YAML and exit",
		},
	}
	app.Action = run

	return app
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if err := applyFlags(c, cfg); err != nil {
		return err
	}
	out := c.App.Writer
	if c.Bool("dump-config") {
		return cfg.WriteYAML(out)
	}

	lvl := logging.ForInput(cfg.Input, cfg.Verbose)
	logger := logging.New(out, lvl)
	_ = level.Debug(logger).Log("msg", "starting", "level", lvl, "config", c.String("config"))

	return view.Run(cfg, out, logger)
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(c *cli.Context, cfg *config.Config) error {
	if c.IsSet("input") {
		in, err := config.ParseInput(c.String("input"))
		if err != nil {
			return err
		}
		cfg.Input = in
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	if c.IsSet("diagonals") {
		cfg.Diagonals = c.Bool("diagonals")
	}
	if c.IsSet("probe") {
		cfg.Probes = c.StringSlice("probe")
	}
	if c.IsSet("walk") {
		cfg.Walk = c.String("walk")
	}

	return nil
}
