// SPDX-License-Identifier: MIT

package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/logging"
)

var (
	// ErrNoInput indicates the source contained no lines.
	ErrNoInput = errors.New("gridio: no input")
	// ErrBadCell indicates a rune the cell decoder rejected.
	ErrBadCell = errors.New("gridio: bad cell")
)

// ReadLines reads r line by line, dropping line terminators. Each line is
// echoed at trace level.
// Returns ErrNoInput if r yields no lines.
func ReadLines(r io.Reader, logger log.Logger) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		_ = logging.Trace(logger).Log("msg", "read line", "n", len(lines), "line", line)
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoInput
	}

	return lines, nil
}

// ReadFile is ReadLines over the named file.
func ReadFile(path string, logger log.Logger) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f, log.With(logger, "path", path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lines, nil
}

// Parse builds a grid from lines, decoding each rune with cell.
// A decoder error is wrapped with its line and column together with
// ErrBadCell; ragged lines fail with grid.ErrRaggedRows.
func Parse[T any](lines []string, cell func(rune) (T, error)) (*grid.Grid[T], error) {
	rows := make([][]T, 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("%w at %v: %w", ErrBadCell, grid.NewCoordinate(x, y), err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return grid.New(rows)
}

// Runes builds a grid holding each rune of lines unchanged.
func Runes(lines []string) (*grid.Grid[rune], error) {
	return Parse(lines, func(r rune) (rune, error) { return r, nil })
}

// Digits builds a grid of single decimal digits, e.g. height maps.
func Digits(lines []string) (*grid.Grid[int], error) {
	return Parse(lines, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a digit", r)
		}
		return int(r - '0'), nil
	})
}

// Load reads path and returns its rune grid.
func Load(path string, logger log.Logger) (*grid.Grid[rune], error) {
	lines, err := ReadFile(path, logger)
	if err != nil {
		return nil, err
	}
	g, err := Runes(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	_ = level.Debug(logger).Log("msg", "loaded grid", "path", path, "width", g.Width(), "height", g.Height())

	return g, nil
}
