package luengine_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lvlsparse/engine"
	"github.com/katalvlaran/lvlsparse/luengine"
	"github.com/stretchr/testify/assert"
)

// TestCheckMatrix_Valid accepts a clean upper-triangular pattern.
func TestCheckMatrix_Valid(t *testing.T) {
	e := luengine.New[float64]()
	st := e.CheckMatrix(engine.RealNonsymmetric, 2,
		[]float64{1, 2, 3}, []int32{0, 1, 3}, []int32{0, 0, 1})
	assert.Equal(t, engine.StatusOK, st)
}

// TestCheckMatrix_Violations rejects structural defects one by one.
func TestCheckMatrix_Violations(t *testing.T) {
	e := luengine.New[float64]()

	// Non-monotone pointer array.
	st := e.CheckMatrix(engine.RealNonsymmetric, 2,
		[]float64{1, 2}, []int32{0, 2, 1}, []int32{0, 1})
	assert.Equal(t, engine.StatusInconsistentInput, st, "decreasing colPtr")

	// Unsorted indices within a group.
	st = e.CheckMatrix(engine.RealNonsymmetric, 2,
		[]float64{1, 2}, []int32{0, 2, 2}, []int32{1, 0})
	assert.Equal(t, engine.StatusInconsistentInput, st, "unsorted indices")

	// Duplicate index within a group.
	st = e.CheckMatrix(engine.RealNonsymmetric, 2,
		[]float64{1, 2}, []int32{0, 2, 2}, []int32{0, 0})
	assert.Equal(t, engine.StatusInconsistentInput, st, "duplicate index")

	// Non-finite value.
	st = e.CheckMatrix(engine.RealNonsymmetric, 1,
		[]float64{math.NaN()}, []int32{0, 1}, []int32{0})
	assert.Equal(t, engine.StatusInconsistentInput, st, "NaN value")

	// Wrong domain for the matrix type.
	st = e.CheckMatrix(engine.ComplexNonsymmetric, 1,
		[]float64{1}, []int32{0, 1}, []int32{0})
	assert.Equal(t, engine.StatusInconsistentInput, st, "complex type on real data")
}

// TestCheckVector_ShapeAndFiniteness covers the rejection paths.
func TestCheckVector_ShapeAndFiniteness(t *testing.T) {
	e := luengine.New[float64]()

	assert.Equal(t, engine.StatusOK, e.CheckVector(2, 1, []float64{1, 2}))
	assert.Equal(t, engine.StatusInconsistentInput, e.CheckVector(2, 1, []float64{1}), "short block")
	assert.Equal(t, engine.StatusInconsistentInput, e.CheckVector(2, 1, []float64{1, math.Inf(1)}), "Inf entry")
	assert.Equal(t, engine.StatusInconsistentInput, e.CheckVector(0, 1, nil), "non-positive order")
}

// TestPrintStats writes one line per right-hand side plus the header.
func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	e := luengine.New[float64](luengine.WithOutput(&buf))

	st := e.PrintStats(engine.RealNonsymmetric, 2,
		[]float64{1, 2}, []int32{0, 1, 2}, []int32{0, 1},
		2, []float64{1, 2, 3, 4})
	assert.Equal(t, engine.StatusOK, st)
	assert.Contains(t, buf.String(), "n=2")
	assert.Contains(t, buf.String(), "rhs 1")
	assert.Contains(t, buf.String(), "rhs 2")
}
