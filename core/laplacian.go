// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgsp/matrix"
)

// Laplacian builds the n×n Laplacian selected by WithLaplacian.
//
//	Combinatorial: L[i][i] = d_i,  L[i][j] = -w_ij
//	Normalized:    L[i][i] = 1,    L[i][j] = -w_ij / sqrt(d_i·d_j)
//
// Isolated vertices give an all-zero row and column in both kinds.
// Returns ErrEmptyGraph for a graph without vertices.
// Complexity: O(V² + E).
func (g *Graph) Laplacian() (*matrix.Dense, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	L, err := g.laplacianLocked()

	return L, err
}

// laplacianLocked is Laplacian without locking. Caller holds mu (read).
func (g *Graph) laplacianLocked() (*matrix.Dense, error) {
	n := len(g.ids)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		deg[i] = g.degreeLocked(i)
	}

	var (
		i, j int
		w    float64
	)
	switch g.kind {
	case Combinatorial:
		for i = 0; i < n; i++ {
			_ = L.Set(i, i, deg[i])
			for j, w = range g.adj[i] {
				_ = L.Set(i, j, -w)
			}
		}
	case Normalized:
		for i = 0; i < n; i++ {
			if deg[i] == 0 {
				continue
			}
			_ = L.Set(i, i, 1)
			for j, w = range g.adj[i] {
				_ = L.Set(i, j, -w/math.Sqrt(deg[i]*deg[j]))
			}
		}
	default:
		return nil, fmt.Errorf("Laplacian: %s: %w", g.kind, ErrUnknownLaplacian)
	}

	return L, nil
}
