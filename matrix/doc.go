// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear algebra needed for graph
// spectral analysis: a row-major Dense matrix, matrix-vector products and
// a symmetric eigen-solver.
//
// What & Why:
//
//	Graph Laplacians are real and symmetric, so their spectrum is real and
//	their eigenvectors form an orthonormal basis (the graph Fourier basis).
//	EigenSym diagonalizes such matrices with cyclic Jacobi rotations, which
//	is simple, dependency-free and accurate to machine precision for the
//	small and medium graphs this module targets.
//
// Complexity:
//
//	At/Set are O(1) with bounds checking.
//	MulVec/TMulVec are O(r*c).
//	EigenSym is O(n³) per sweep; typical inputs converge in < 15 sweeps.
package matrix
