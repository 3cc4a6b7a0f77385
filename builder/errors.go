// SPDX-License-Identifier: MIT
// Package: pathq/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w as
// "<Method>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, depth) below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed, such as
// a nil constructor or builder.
var ErrConstructFailed = errors.New("builder: construction failed")
