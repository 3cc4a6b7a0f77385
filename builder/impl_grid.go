// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Model:
//   - Orthogonal grid, each cell linked to its right and bottom neighbours.
//   - Vertex IDs use the fixed scheme GridID(r, c) = "r_c" in row-major order.
//     cfg.idFn is not consulted so coordinates stay explicit. The separator
//     is "_" because "," joins uids inside a tracker.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell in row-major order emit Right then Bottom, where present.
//
// Complexity: O(rows*cols) vertices + O(rows*cols) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d_%d"
)

// GridID returns the vertex ID Grid assigns to cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// With WithBidirectional every cell reaches all four neighbours.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := ensure(b, methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := arc(b, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := arc(b, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
