// SPDX-License-Identifier: MIT
// File: shapes.go
// Role: vertex lists and index-pair edge lists of the supported topologies.
// Order:
//   - ids fixes the sample order of every signal on the built graph.
//   - edges are emitted in slice order, one weight draw per edge.

package builder

import "fmt"

// gridIDFmt renders cell (r,c) of a Grid.
const gridIDFmt = "%d,%d"

// StarCenterID is the fixed ID of the hub vertex of Star.
const StarCenterID = "Center"

// shape is a topology resolved for one size: vertex IDs and edges between
// positions in ids.
type shape struct {
	ids   []string
	edges [][2]int
}

func indexedIDs(n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = idFn(i)
	}

	return ids
}

// ring: i - (i+1) mod n.
func cycleShape(n int, idFn IDFn) shape {
	s := shape{ids: indexedIDs(n, idFn), edges: make([][2]int, 0, n)}
	for i := 0; i < n; i++ {
		s.edges = append(s.edges, [2]int{i, (i + 1) % n})
	}

	return s
}

func pathShape(n int, idFn IDFn) shape {
	s := shape{ids: indexedIDs(n, idFn), edges: make([][2]int, 0, n-1)}
	for i := 0; i+1 < n; i++ {
		s.edges = append(s.edges, [2]int{i, i + 1})
	}

	return s
}

// star: the hub comes first, leaves take idFn(0..n-2).
func starShape(n int, idFn IDFn) shape {
	s := shape{ids: append([]string{StarCenterID}, indexedIDs(n-1, idFn)...)}
	for leaf := 1; leaf < n; leaf++ {
		s.edges = append(s.edges, [2]int{0, leaf})
	}

	return s
}

func completeShape(n int, idFn IDFn) shape {
	s := shape{ids: indexedIDs(n, idFn), edges: make([][2]int, 0, n*(n-1)/2)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s.edges = append(s.edges, [2]int{i, j})
		}
	}

	return s
}

// grid: row-major "r,c" IDs; each cell links right, then down.
func gridShape(rows, cols int) shape {
	s := shape{ids: make([]string, 0, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.ids = append(s.ids, fmt.Sprintf(gridIDFmt, r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			at := r*cols + c
			if c+1 < cols {
				s.edges = append(s.edges, [2]int{at, at + 1})
			}
			if r+1 < rows {
				s.edges = append(s.edges, [2]int{at, at + cols})
			}
		}
	}

	return s
}
