// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// api.go - public entry point for the fixture builder.
//
// Contract:
//   - One orchestrator: Build(copts, bopts, start, end, cons...). Creates a
//     core.Builder, resolves cfg, runs cons in order, freezes the result.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical maps, successor lists included.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathq/core"
)

// Constructor emits vertices and arcs into b using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching b.
//   - Emit arcs in a stable, documented order (it becomes Next order).
//   - Declare vertices idempotently so several constructors can share IDs.
type Constructor func(b *core.Builder, cfg builderConfig) error

// Build creates a core.Builder with copts, applies every constructor in
// order and freezes the result into an Adjacency anchored at start and end.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors, wrapped as "Build: %w".
//   - core.ErrUnknownIdentity when start or end was never declared.
//
// Complexity: Σ cost of the constructors plus O(V + E) for the freeze.
func Build(copts []core.BuilderOption, bopts []BuilderOption, start, end string, cons ...Constructor) (*core.Adjacency, error) {
	b := core.NewBuilder(copts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	m, err := b.Map(start, end, core.WithStartCost(cfg.startCost))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return m, nil
}

// Into runs cons against an existing core.Builder, for fixtures that mix
// generated topology with hand-written arcs.
func Into(b *core.Builder, bopts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("Into: nil builder: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Into: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("Into: %w", err)
		}
	}

	return nil
}

// ensure declares id unless an earlier constructor already did.
func ensure(b *core.Builder, method, id string) error {
	if b.HasVertex(id) {
		return nil
	}
	if err := b.AddVertex(id); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}
	return nil
}

// arc emits u→v, and v→u when cfg.bidirectional is set. Each direction
// draws its own cost.
func arc(b *core.Builder, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := b.AddArc(u, v, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if !cfg.bidirectional {
		return nil
	}
	w = cfg.weightFn(cfg.rng)
	if err := b.AddArc(v, u, w); err != nil {
		return fmt.Errorf("%s: AddArc(%s→%s, w=%g): %w", method, v, u, w, err)
	}
	return nil
}
