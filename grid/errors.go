// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
	// ErrNegativeDimension indicates a negative width or height.
	ErrNegativeDimension = errors.New("grid: width and height must be non-negative")
	// ErrTooLarge indicates a width×height cell count that overflows int.
	ErrTooLarge = errors.New("grid: cell count overflows int")
	// ErrInvalidCoordinate indicates text that does not describe a non-negative "x,y" pair.
	ErrInvalidCoordinate = errors.New("grid: invalid coordinate")
	// ErrUnknownDirection indicates text that names no direction.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
