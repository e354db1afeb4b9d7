// SPDX-License-Identifier: MIT
// File: methods.go
// Role: vertex and edge lifecycle plus read-only topology queries.
// Concurrency:
//   - Mutations under mu write lock; each bumps version.
//   - Queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddVertex inserts a vertex with the given ID if it is not present.
// Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id and returns its index. Caller holds mu.
func (g *Graph) addVertexLocked(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = i
	g.adj = append(g.adj, make(map[int]float64))
	g.version++

	return i
}

// AddEdge links from and to with the given weight, creating missing vertices.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Lock mu, ensure both endpoints, reject parallel edges.
//  3. Store the weight symmetrically and bump version.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("AddEdge(%s,%s,%g): %w", from, to, weight, ErrBadWeight)
	}
	if from == to {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i := g.addVertexLocked(from)
	j := g.addVertexLocked(to)
	if _, ok := g.adj[i][j]; ok {
		return fmt.Errorf("AddEdge(%s,%s): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	g.adj[i][j] = weight
	g.adj[j][i] = weight
	g.edges++
	g.version++

	return nil
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether an edge links from and to.
func (g *Graph) HasEdge(from, to string) bool {
	_, err := g.Weight(from, to)

	return err == nil
}

// Weight returns the weight of edge {from,to}.
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[from]
	if !ok {
		return 0, fmt.Errorf("Weight(%s): %w", from, ErrVertexNotFound)
	}
	j, ok := g.index[to]
	if !ok {
		return 0, fmt.Errorf("Weight(%s): %w", to, ErrVertexNotFound)
	}
	w, ok := g.adj[i][j]
	if !ok {
		return 0, fmt.Errorf("Weight(%s,%s): %w", from, to, ErrEdgeNotFound)
	}

	return w, nil
}

// Degree returns the weighted degree (sum of incident weights) of id.
func (g *Graph) Degree(id string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrVertexNotFound)
	}

	return g.degreeLocked(i), nil
}

// degreeLocked sums the weights around vertex i. Caller holds mu.
func (g *Graph) degreeLocked(i int) float64 {
	var d float64
	for _, w := range g.adj[i] {
		d += w
	}

	return d
}

// Neighbors returns the neighbors of id in vertex index order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrVertexNotFound)
	}
	out := make([]string, 0, len(g.adj[i]))
	for j := range g.ids {
		if _, linked := g.adj[i][j]; linked {
			out = append(out, g.ids[j])
		}
	}

	return out, nil
}

// Vertices returns vertex IDs in insertion order, which is also the order
// of samples in a graph signal.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.ids)
}

// Size returns the number of undirected edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
