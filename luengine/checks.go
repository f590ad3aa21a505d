package luengine

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/csc"
	"github.com/katalvlaran/lvlsparse/engine"
)

// checkTriple validates the structural minimum every computational phase
// relies on: positive order, pointer array of length n+1 starting at zero
// and non-decreasing, matching index/value counts, indices in range.
func checkTriple[T csc.Value](n int32, values []T, ptr, idx []int32) engine.Status {
	if n <= 0 || len(ptr) != int(n)+1 || ptr[0] != 0 {
		return engine.StatusInconsistentInput
	}
	for g := 1; g < len(ptr); g++ {
		if ptr[g] < ptr[g-1] {
			return engine.StatusInconsistentInput
		}
	}
	nnz := int(ptr[n])
	if len(idx) != nnz || len(values) != nnz {
		return engine.StatusInconsistentInput
	}
	for _, i := range idx {
		if i < 0 || i >= n {
			return engine.StatusInconsistentInput
		}
	}

	return engine.StatusOK
}

// CheckMatrix runs the strict structural diagnostic: the basic triple
// checks plus sorted, duplicate-free indices within each group and finite
// values — the layout the solving phases assume when accumulating.
func (e *Engine[T]) CheckMatrix(mtype engine.MatrixType, n int32, values []T, colPtr, rowIdx []int32) engine.Status {
	if !mtype.Valid() || mtype.IsComplex() != csc.IsComplex[T]() {
		return engine.StatusInconsistentInput
	}
	if st := checkTriple(n, values, colPtr, rowIdx); st != engine.StatusOK {
		return st
	}
	for g := 0; g < int(n); g++ {
		for k := colPtr[g] + 1; k < colPtr[g+1]; k++ {
			if rowIdx[k] <= rowIdx[k-1] {
				return engine.StatusInconsistentInput
			}
		}
	}
	for _, v := range values {
		if !csc.IsFinite(v) {
			return engine.StatusInconsistentInput
		}
	}

	return engine.StatusOK
}

// CheckVector scans a dense n×nrhs block for shape and non-finite entries.
func (e *Engine[T]) CheckVector(n, nrhs int32, b []T) engine.Status {
	if n <= 0 || nrhs <= 0 || len(b) != int(n)*int(nrhs) {
		return engine.StatusInconsistentInput
	}
	for _, v := range b {
		if !csc.IsFinite(v) {
			return engine.StatusInconsistentInput
		}
	}

	return engine.StatusOK
}

// PrintStats writes matrix and right-hand-side statistics to the
// configured output.
func (e *Engine[T]) PrintStats(mtype engine.MatrixType, n int32, values []T, colPtr, rowIdx []int32, nrhs int32, rhs []T) engine.Status {
	if st := e.CheckMatrix(mtype, n, values, colPtr, rowIdx); st != engine.StatusOK {
		return st
	}
	if st := e.CheckVector(n, nrhs, rhs); st != engine.StatusOK {
		return st
	}

	fmt.Fprintf(e.out, "luengine: matrix %q, n=%d, nnz=%d, |A|max=%.6g\n",
		mtype.String(), n, len(values), infNorm(values))
	for col := int32(0); col < nrhs; col++ {
		seg := rhs[col*n : (col+1)*n]
		fmt.Fprintf(e.out, "luengine: rhs %d, |b|max=%.6g\n", col+1, infNorm(seg))
	}

	return engine.StatusOK
}
