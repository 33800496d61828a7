// SPDX-License-Identifier: MIT

// Package view implements the gridview command: load a grid, print it, list
// the neighbors of selected cells and optionally trace a ray from each one.
package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvgrid/config"
	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridio"
)

// ErrProbeOutside indicates a probe coordinate that is not a cell of the grid.
var ErrProbeOutside = errors.New("view: probe outside grid")

// Run loads the grid selected by cfg and writes the report to out.
func Run(cfg *config.Config, out io.Writer, logger log.Logger) error {
	path := cfg.InputPath()
	_ = level.Info(logger).Log("msg", "loading grid", "input", cfg.Input, "path", path)

	g, err := gridio.Load(path, logger)
	if err != nil {
		return err
	}
	_ = level.Info(logger).Log("msg", "grid loaded", "width", g.Width(), "height", g.Height())

	return Report(g, cfg, out, logger)
}

// Report writes g, the neighbors of every probe and, when cfg.Walk names a
// direction, one traced ray per probe.
func Report(g *grid.Grid[rune], cfg *config.Config, out io.Writer, logger log.Logger) error {
	probes, err := parseProbes(g, cfg.Probes)
	if err != nil {
		return err
	}
	var walk *grid.Direction
	if cfg.Walk != "" {
		d, err := grid.ParseDirection(cfg.Walk)
		if err != nil {
			return err
		}
		walk = &d
	}

	if err := grid.Render(out, g, cellString); err != nil {
		return err
	}

	for _, p := range probes {
		ns := grid.Neighbors(g, p, cfg.Diagonals)
		_ = level.Debug(logger).Log("msg", "neighbors", "pos", p, "count", len(ns), "diagonals", cfg.Diagonals)
		if _, err := fmt.Fprintf(out, "\nneighbors of %v: %v\n", p, ns); err != nil {
			return err
		}
		for _, n := range ns {
			if _, err := fmt.Fprintf(out, "  %-10v %v %q\n", n.Direction, n.Position, g.At(n.Position)); err != nil {
				return err
			}
		}

		if walk == nil {
			continue
		}
		var path []grid.Neighbor
		for n := range grid.Ray(g, *walk, p) {
			path = append(path, n)
		}
		_ = level.Debug(logger).Log("msg", "ray", "from", p, "direction", *walk, "length", len(path))
		if _, err := fmt.Fprintf(out, "\nray %v from %v: %d cells\n", *walk, p, len(path)); err != nil {
			return err
		}
		if err := grid.RenderTrace(out, g, cellString, path); err != nil {
			return err
		}
	}

	return nil
}

// parseProbes parses each "x,y" probe and checks it against g.
func parseProbes(g *grid.Grid[rune], raw []string) ([]grid.Coordinate, error) {
	probes := make([]grid.Coordinate, 0, len(raw))
	for _, s := range raw {
		c, err := grid.ParseCoordinate(s)
		if err != nil {
			return nil, err
		}
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v not in %dx%d", ErrProbeOutside, c, g.Width(), g.Height())
		}
		probes = append(probes, c)
	}

	return probes, nil
}

func cellString(r rune) string { return string(r) }
