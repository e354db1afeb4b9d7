// SPDX-License-Identifier: MIT
// File: spectrum.go
// Role: graph Fourier basis and largest Laplacian eigenvalue.
// Caching:
//   - The eigen-decomposition is computed on first use and cached together
//     with the topology version it was computed from.
//   - Concurrent callers may each compute it. Among equal versions the last
//     writer wins; an older version never replaces a newer one.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvgsp/matrix"
)

// FourierBasis returns the Laplacian eigenvalues in ascending order and the
// matching orthonormal eigenvectors as columns of U. Both are copies; the
// cache cannot be mutated through them.
//
// Returns ErrEmptyGraph, or a wrapped matrix error if the eigen-solver fails.
// Complexity: O(1) when cached, otherwise O(sweeps·V³).
func (g *Graph) FourierBasis() ([]float64, *matrix.Dense, error) {
	s, err := g.spectrum()
	if err != nil {
		return nil, nil, err
	}
	vals := make([]float64, len(s.values))
	copy(vals, s.values)

	return vals, s.basis.Clone(), nil
}

// LMax returns the largest Laplacian eigenvalue.
// Returns ErrEmptyGraph for a graph without vertices.
func (g *Graph) LMax() (float64, error) {
	s, err := g.spectrum()
	if err != nil {
		return 0, err
	}

	return s.values[len(s.values)-1], nil
}

// UpperBoundLMax returns a cheap Gershgorin bound on the largest eigenvalue:
// 2·maxDegree for the combinatorial Laplacian, 2 for the normalized one.
// It never computes the spectrum.
func (g *Graph) UpperBoundLMax() float64 {
	if g.kind == Normalized {
		return 2
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	var maxDeg, d float64
	for i := range g.ids {
		if d = g.degreeLocked(i); d > maxDeg {
			maxDeg = d
		}
	}

	return 2 * maxDeg
}

// spectrum returns the cached decomposition, recomputing it when the
// topology changed since it was stored.
func (g *Graph) spectrum() (*spectrum, error) {
	// Stage 1: snapshot the Laplacian and its version
	g.mu.RLock()
	version := g.version
	g.muSpec.Lock()
	cached := g.spec
	g.muSpec.Unlock()
	if cached != nil && cached.version == version {
		g.mu.RUnlock()
		return cached, nil
	}
	L, err := g.laplacianLocked()
	g.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	// Stage 2: decompose outside of any lock
	vals, U, err := matrix.EigenSym(L, g.eigTol, g.maxSweeps)
	if err != nil {
		return nil, fmt.Errorf("FourierBasis: %w", err)
	}
	s := &spectrum{version: version, values: vals, basis: U}

	// Stage 3: publish unless a newer version is already cached
	g.muSpec.Lock()
	if g.spec == nil || g.spec.version <= version {
		g.spec = s
	}
	g.muSpec.Unlock()

	return s, nil
}
