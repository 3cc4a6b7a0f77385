// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Declares cfg.idFn(0..n-1) in ascending order.
//   - Emits arcs (i-1)→i for i=1..n-1.
//
// Complexity: O(n) vertices + O(n-1) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ensure(b, methodPath, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := arc(b, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
