// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Declares cfg.idFn(0..n-1) in ascending order.
//   - Emits arcs i→(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ensure(b, methodCycle, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := arc(b, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
