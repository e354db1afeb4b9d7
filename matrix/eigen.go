// SPDX-License-Identifier: MIT
// EigenSym computes all eigenvalues and eigenvectors of a real symmetric
// matrix using cyclic Jacobi rotations.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Default numeric policy for EigenSym callers that have no better knowledge.
const (
	DefaultEigenTolerance = 1e-12
	DefaultMaxSweeps      = 100
)

// EigenSym performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues in ascending order and a matrix Q whose columns
// are the matching orthonormal eigenvectors, so that m = Q·diag(λ)·Qᵀ.
//
// Implementation:
//   - Stage 1: validate shape and symmetry (within tol).
//   - Stage 2: copy m into a work buffer and start Q at identity.
//   - Stage 3: sweep all (p,q) pairs, annihilating A[p][q] with a plane
//     rotation, until the off-diagonal Frobenius norm drops below tol.
//   - Stage 4: sort eigenpairs ascending by eigenvalue.
//
// Returns ErrNilMatrix, ErrNonSquare, ErrAsymmetry or ErrEigenFailed.
// Complexity: O(n³) per sweep; Memory: O(n²).
func EigenSym(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	// Stage 1: Validate input
	if m == nil {
		return nil, nil, fmt.Errorf("EigenSym: %w", ErrNilMatrix)
	}
	n := m.r
	if n != m.c {
		return nil, nil, fmt.Errorf("EigenSym: non-square %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if !m.IsSymmetric(tol) {
		return nil, nil, fmt.Errorf("EigenSym: %w", ErrAsymmetry)
	}

	// Stage 2: Prepare A (work) and Q (eigenvectors)
	a := make([]float64, len(m.data))
	copy(a, m.data)
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("EigenSym: %w", err)
	}
	q := Q.data

	// Stage 3: Execute cyclic Jacobi sweeps
	var (
		sweep     int
		i, j, k   int
		off       float64 // off-diagonal Frobenius norm
		apq       float64
		theta, t  float64
		c, s      float64
		akp, akq  float64
		converged bool
	)
	for sweep = 0; sweep < maxSweeps; sweep++ {
		off = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off += a[i*n+j] * a[i*n+j]
			}
		}
		if math.Sqrt(off) <= tol {
			converged = true
			break
		}

		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				apq = a[i*n+j]
				if apq == 0 {
					continue
				}
				// t = tan of the rotation angle, smaller root of t²+2θt-1=0
				theta = (a[j*n+j] - a[i*n+i]) / (2 * apq)
				t = 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				// A ← A·J (columns i, j)
				for k = 0; k < n; k++ {
					akp = a[k*n+i]
					akq = a[k*n+j]
					a[k*n+i] = c*akp - s*akq
					a[k*n+j] = s*akp + c*akq
				}
				// A ← Jᵀ·A (rows i, j)
				for k = 0; k < n; k++ {
					akp = a[i*n+k]
					akq = a[j*n+k]
					a[i*n+k] = c*akp - s*akq
					a[j*n+k] = s*akp + c*akq
				}
				a[i*n+j] = 0
				a[j*n+i] = 0

				// Q ← Q·J
				for k = 0; k < n; k++ {
					akp = q[k*n+i]
					akq = q[k*n+j]
					q[k*n+i] = c*akp - s*akq
					q[k*n+j] = s*akp + c*akq
				}
			}
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("EigenSym: %d sweeps, tol=%g: %w", maxSweeps, tol, ErrEigenFailed)
	}

	// Stage 4: Sort eigenpairs ascending
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a[order[x]*n+order[x]] < a[order[y]*n+order[y]]
	})

	vals := make([]float64, n)
	vecs, _ := NewDense(n, n)
	for j = 0; j < n; j++ {
		vals[j] = a[order[j]*n+order[j]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+j] = q[i*n+order[j]]
		}
	}

	return vals, vecs, nil
}
