// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Declares the hub CenterVertexID, then leaves cfg.idFn(1..n-1).
//   - Emits spokes Center→leaf in ascending leaf order.
//
// Complexity: O(n) vertices + O(n-1) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

// CenterVertexID is the fixed ID of the hub emitted by Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := ensure(b, methodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := ensure(b, methodStar, leaf); err != nil {
				return err
			}
			if err := arc(b, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
