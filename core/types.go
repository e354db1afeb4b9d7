// SPDX-License-Identifier: MIT
// Package core defines the weighted undirected Graph that carries graph
// signals, together with its Laplacian and cached spectral data.
//
// This file declares Graph, GraphOption, LaplacianKind, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - weight is not finite and strictly positive.
//	ErrLoopNotAllowed      - self-loop (from == to).
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
//	ErrEmptyGraph          - spectral query on a graph without vertices.
//	ErrUnknownLaplacian    - unrecognized Laplacian kind.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvgsp/matrix"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN, infinite, zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and > 0")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyGraph indicates a spectral query on a graph with no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrUnknownLaplacian indicates an unrecognized LaplacianKind.
	ErrUnknownLaplacian = errors.New("core: unknown laplacian kind")
)

// LaplacianKind selects the graph structure operator whose spectrum is analyzed.
type LaplacianKind int

const (
	// Combinatorial is L = D - W. Its spectrum lies in [0, 2·maxDegree].
	Combinatorial LaplacianKind = iota
	// Normalized is L = I - D^{-1/2} W D^{-1/2}. Its spectrum lies in [0, 2].
	Normalized
)

// String returns the lower-case name of the kind.
func (k LaplacianKind) String() string {
	switch k {
	case Combinatorial:
		return "combinatorial"
	case Normalized:
		return "normalized"
	default:
		return fmt.Sprintf("LaplacianKind(%d)", int(k))
	}
}

// ParseLaplacian maps "combinatorial" or "normalized" to a LaplacianKind.
func ParseLaplacian(s string) (LaplacianKind, error) {
	switch s {
	case "combinatorial":
		return Combinatorial, nil
	case "normalized":
		return Normalized, nil
	default:
		return 0, fmt.Errorf("ParseLaplacian(%q): %w", s, ErrUnknownLaplacian)
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLaplacian selects the Laplacian used by Laplacian, FourierBasis and LMax.
func WithLaplacian(kind LaplacianKind) GraphOption {
	return func(g *Graph) { g.kind = kind }
}

// WithEigenTolerance sets the off-diagonal convergence threshold of the
// eigen-solver. Non-positive values are ignored.
func WithEigenTolerance(tol float64) GraphOption {
	return func(g *Graph) {
		if tol > 0 {
			g.eigTol = tol
		}
	}
}

// WithMaxSweeps caps the number of Jacobi sweeps. Non-positive values are ignored.
func WithMaxSweeps(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxSweeps = n
		}
	}
}

// Graph is a weighted undirected simple graph whose vertices index a signal.
//
// Vertex i (in insertion order) owns sample i of any signal on the graph.
// mu guards topology and version; muSpec guards the cached spectrum.
// version increments on every mutation so a stale spectrum is never served.
type Graph struct {
	mu     sync.RWMutex // guards ids, index, adj, edges, version
	muSpec sync.Mutex   // guards spec

	// Configuration
	kind      LaplacianKind
	eigTol    float64
	maxSweeps int

	// Storage
	ids     []string          // index → vertex ID
	index   map[string]int    // vertex ID → index
	adj     []map[int]float64 // adj[i][j] = weight of {i,j}
	edges   int               // undirected edge count
	version uint64            // bumped by every mutation

	spec *spectrum // cached eigen-decomposition, nil until first use
}

// spectrum is an eigen-decomposition of the Laplacian at a given version.
type spectrum struct {
	version uint64
	values  []float64
	basis   *matrix.Dense
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph uses the combinatorial Laplacian and the matrix
// package's default eigen tolerance and sweep budget.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		kind:      Combinatorial,
		eigTol:    matrix.DefaultEigenTolerance,
		maxSweeps: matrix.DefaultMaxSweeps,
		index:     make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Kind reports the configured Laplacian kind.
func (g *Graph) Kind() LaplacianKind { return g.kind }
