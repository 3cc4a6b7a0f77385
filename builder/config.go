// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn          = DefaultIDFn      ("0","1","2",...)
//   - rng           = nil              (no randomness unless seeded)
//   - weightFn      = DefaultWeightFn  (every arc costs DefaultEdgeWeight)
//   - bidirectional = false            (arcs follow index order only)
//   - startCost     = 0

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	bidirectional bool
	startCost     float64
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
