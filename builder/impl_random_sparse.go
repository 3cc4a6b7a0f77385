// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like digraph: each ordered pair (i,j), i≠j, becomes an
//     arc independently with probability p. Self-loops are never emitted.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run i ascending then j ascending; the RNG stream is consumed in
//     that order (trial first, then the arc cost), so a seed fixes the map.
//   - WithBidirectional is ignored: both directions already get a trial.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a digraph over n vertices
// with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := ensure(b, methodRandomSparse, ids[i]); err != nil {
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
				if !trial(cfg, p) {
					continue
				}
				if err := arc(b, one, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial is a Bernoulli draw; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
