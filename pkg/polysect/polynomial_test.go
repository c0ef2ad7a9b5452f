package polysect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	values := []struct {
		poly Polynomial
		x    float64
		want float64
	}{
		{Polynomial{1, 0, -4}, 0, -4},
		{Polynomial{1, 0, -4}, 2, 0},
		{Polynomial{1, 0, -4}, -3, 5},
		{Polynomial{1, -1}, 1, 0},
		{Polynomial{1, -1}, 2.5, 1.5},
		{Polynomial{42}, 1337, 42},
		{Polynomial{2, -3, 0, 1}, 2, 5},
	}

	for _, v := range values {
		assert.Equal(t, v.want, v.poly.Eval(v.x), "Wrong evaluation of %s at %g", v.poly, v.x)
	}
}

func TestEvalIsPure(t *testing.T) {
	poly := Polynomial{3, -2, 1, -7}

	first := poly.Eval(1.75)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, poly.Eval(1.75), "Evaluation changed between calls")
	}
}

func TestEvalPropagatesNonFinite(t *testing.T) {
	poly := Polynomial{1, 0}

	assert.True(t, math.IsNaN(poly.Eval(math.NaN())), "NaN input did not propagate")
	assert.True(t, math.IsInf(poly.Eval(math.Inf(1)), 1), "Inf input did not propagate")
}

func TestDegree(t *testing.T) {
	assert.Equal(t, 2, Polynomial{1, 0, -4}.Degree(), "Wrong degree")
	assert.Equal(t, 0, Polynomial{5}.Degree(), "Wrong degree for a constant")
	assert.Equal(t, -1, Polynomial{}.Degree(), "Wrong degree for an empty polynomial")
}

func TestString(t *testing.T) {
	values := []struct {
		poly Polynomial
		want string
	}{
		{Polynomial{1, 0, -4}, "x^2 - 4"},
		{Polynomial{1, -1}, "x - 1"},
		{Polynomial{1, 1}, "x + 1"},
		{Polynomial{-2, 0, 3, 0}, "-2x^3 + 3x"},
		{Polynomial{0.5, 0}, "0.5x"},
		{Polynomial{42}, "42"},
		{Polynomial{0, 0, 0}, "0"},
	}

	for _, v := range values {
		assert.Equal(t, v.want, v.poly.String(), "Wrong rendering")
	}
}
