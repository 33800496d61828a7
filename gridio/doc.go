// SPDX-License-Identifier: MIT

// Package gridio loads line-oriented text into grids.
//
// Every line of the input becomes one grid row and every rune one
// cell. The input must be rectangular; ragged lines fail with
// grid.ErrRaggedRows rather than being padded. An input without any lines
// fails with ErrNoInput.
//
// Lines are echoed at trace level (logging.Trace) through the supplied
// go-kit logger as they are read.
package gridio
