package luengine

import (
	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
)

// zeroPivot is the sentinel magnitude for singularity detection.
const zeroPivot = 0.0

// expandRowMajor scatters the row-compressed triple into a dense n×n
// row-major buffer. Duplicate entries accumulate, matching how solving
// phases read repeated indices.
func expandRowMajor[T csc.Value](n int, values []T, rowPtr, colIdx []int32) []T {
	a := make([]T, n*n)
	for i := 0; i < n; i++ {
		base := i * n
		for k := rowPtr[i]; k < rowPtr[i+1]; k++ {
			a[base+int(colIdx[k])] += values[k]
		}
	}

	return a
}

// factorLU computes an in-place LU decomposition of the dense row-major
// n×n buffer a with partial row pivoting: after return, a holds the unit
// lower factor below the diagonal and the upper factor on and above it,
// and piv records the row swap chosen at each elimination step.
//
// Returns StatusNumerical when an elimination column has no nonzero pivot.
func factorLU[T csc.Value](a []T, n int) (piv []int32, st engine.Status) {
	piv = make([]int32, n)

	var i, j, k, p int
	var best, mag float64
	var pivot, mult T
	for k = 0; k < n; k++ {
		// Pick the largest magnitude in column k at or below the diagonal.
		p, best = k, csc.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = csc.Abs(a[i*n+k]); mag > best {
				best, p = mag, i
			}
		}
		if best == zeroPivot {
			return nil, engine.StatusNumerical
		}
		piv[k] = int32(p)
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
		}

		// Eliminate below the pivot, storing multipliers in place.
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			mult = a[i*n+k] / pivot
			a[i*n+k] = mult
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= mult * a[k*n+j]
			}
		}
	}

	return piv, engine.StatusOK
}

// luSolve solves M·x = b in place on b, where lu/piv hold the pivoted
// factors of M: apply the recorded row swaps, forward-substitute the unit
// lower factor, back-substitute the upper factor.
func luSolve[T csc.Value](lu []T, piv []int32, n int, b []T) {
	var i, k int
	var sum T

	for k = 0; k < n; k++ {
		if p := int(piv[k]); p != k {
			b[k], b[p] = b[p], b[k]
		}
	}
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += lu[i*n+k] * b[k]
		}
		b[i] -= sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += lu[i*n+k] * b[k]
		}
		b[i] = (b[i] - sum) / lu[i*n+i]
	}
}

// luSolveTransposed solves Mᵀ·x = b in place on b using the factors of M:
// forward-substitute Uᵀ, back-substitute Lᵀ, then undo the row swaps in
// reverse order.
func luSolveTransposed[T csc.Value](lu []T, piv []int32, n int, b []T) {
	var i, k int
	var sum T

	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += lu[k*n+i] * b[k]
		}
		b[i] = (b[i] - sum) / lu[i*n+i]
	}
	for i = n - 1; i >= 0; i-- {
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += lu[k*n+i] * b[k]
		}
		b[i] -= sum
	}
	for k = n - 1; k >= 0; k-- {
		if p := int(piv[k]); p != k {
			b[k], b[p] = b[p], b[k]
		}
	}
}

// residual computes r = b − M·x (or b − Mᵀ·x) into a fresh slice, reading
// the dense row-major copy of M.
func residual[T csc.Value](a []T, n int, x, b []T, transposed bool) []T {
	r := make([]T, n)
	copy(r, b)
	var i, j int
	if transposed {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				r[i] -= a[j*n+i] * x[j]
			}
		}

		return r
	}
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			r[i] -= a[base+j] * x[j]
		}
	}

	return r
}

// infNorm returns max|v| over the slice.
func infNorm[T csc.Value](v []T) float64 {
	var norm, mag float64
	for _, e := range v {
		if mag = csc.Abs(e); mag > norm {
			norm = mag
		}
	}

	return norm
}
