// SPDX-License-Identifier: MIT
// File: components.go
// Role: breadth-first connectivity queries.
// Note:
//   - The number of components equals the multiplicity of eigenvalue 0
//     of either Laplacian.

package core

import "sort"

// walker carries BFS state for one component.
type walker struct {
	g       *Graph
	queue   []int // pending vertex indices
	visited []bool
	order   []string
}

// Components partitions the vertices into connected components.
// Components are listed in order of their first vertex (insertion order),
// and each component lists its vertices in breadth-first order.
// Complexity: O(V + E log d) where d is the maximum degree.
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.ids)
	w := &walker{
		g:       g,
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
	}

	var comps [][]string
	for i := 0; i < n; i++ {
		if w.visited[i] {
			continue
		}
		w.order = nil
		w.enqueue(i)
		w.loop()
		comps = append(comps, w.order)
	}

	return comps
}

// IsConnected reports whether the graph has exactly one component.
// The empty graph is not connected.
func (g *Graph) IsConnected() bool {
	return len(g.Components()) == 1
}

func (w *walker) enqueue(i int) {
	w.visited[i] = true
	w.queue = append(w.queue, i)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		i := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, w.g.ids[i])
		for _, j := range sortedKeys(w.g.adj[i]) {
			if !w.visited[j] {
				w.enqueue(j)
			}
		}
	}
}

// sortedKeys returns the neighbor indices of one adjacency row in ascending order.
func sortedKeys(row map[int]float64) []int {
	out := make([]int, 0, len(row))
	for j := range row {
		out = append(out, j)
	}
	sort.Ints(out)

	return out
}
