// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors. Callers match with errors.Is; routines wrap them
// with the failing call's context and never panic on user input.

package matrix

import "errors"

var (
	// ErrBadShape: rows or cols ≤ 0.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange: row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: vector length does not fit the operand,
	// e.g. MulVec with len(x) != Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: EigenSym needs n×n input.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry: |a[i][j] - a[j][i]| exceeds the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf: a stored value must be finite.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: nil *Dense operand.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed: Jacobi sweeps ran out before the off-diagonal mass
	// fell under the tolerance.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
