// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Declares cfg.idFn(0..n-1) in ascending order.
//   - Emits every ordered pair i→j, i≠j, with i ascending then j ascending.
//     Both directions are always emitted; WithBidirectional is ignored.
//
// Complexity: O(n) vertices + O(n²) arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := ensure(b, methodComplete, ids[i]); err != nil {
				return err
			}
		}

		one := cfg
		one.bidirectional = false
		for i, u := range ids {
			for j, v := range ids {
				if i == j {
					continue
				}
				if err := arc(b, one, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
