// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_binary_tree.go - BinaryTree(depth) constructor.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewVertices); depth 1 is a single root.
//   - Heap numbering: vertex i has children 2i+1 and 2i+2, IDs via cfg.idFn.
//   - Emits parent→left then parent→right for i ascending.
//
// Complexity: O(2^depth) vertices and arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodBinaryTree = "BinaryTree"
	minTreeDepth     = 1
	maxTreeDepth     = 24
)

// BinaryTree returns a Constructor that builds a complete binary tree with
// 2^depth - 1 vertices, arcs pointing away from the root "idFn(0)".
func BinaryTree(depth int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if depth < minTreeDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodBinaryTree, depth, minTreeDepth, ErrTooFewVertices)
		}
		if depth > maxTreeDepth {
			return fmt.Errorf("%s: depth=%d > max=%d: %w", methodBinaryTree, depth, maxTreeDepth, ErrConstructFailed)
		}
		n := 1<<depth - 1
		for i := 0; i < n; i++ {
			if err := ensure(b, methodBinaryTree, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; 2*i+1 < n; i++ {
			u := cfg.idFn(i)
			if err := arc(b, cfg, methodBinaryTree, u, cfg.idFn(2*i+1)); err != nil {
				return err
			}
			if err := arc(b, cfg, methodBinaryTree, u, cfg.idFn(2*i+2)); err != nil {
				return err
			}
		}

		return nil
	}
}
