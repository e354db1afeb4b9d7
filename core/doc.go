// Package core provides a thread-safe, weighted, undirected Graph tailored
// to graph signal processing.
//
// A graph signal is a []float64 whose i-th sample lives on the i-th vertex
// in insertion order (see Vertices). The Graph exposes the structure
// operator used to define "frequency" on such signals:
//
//   - Laplacian: combinatorial (D-W) or normalized (I-D^{-1/2}WD^{-1/2}),
//     selected with WithLaplacian.
//   - FourierBasis: ascending eigenvalues and orthonormal eigenvectors of
//     the Laplacian, computed lazily and cached until the next mutation.
//   - LMax: the largest eigenvalue, which sets the spectral range filter
//     banks are designed over.
//   - UpperBoundLMax: a Gershgorin bound that never decomposes anything.
//
// Configuration Options (GraphOption):
//
//	– WithLaplacian(kind)
//	– WithEigenTolerance(tol)
//	– WithMaxSweeps(n)
//
// Edges are simple (no loops, no parallel edges) and carry strictly
// positive finite weights; AddEdge creates missing endpoints.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 1)
//	lmax, _ := g.LMax() // 3 for the path A-B-C
package core
