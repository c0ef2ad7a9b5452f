package polysect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A Polynomial is an ordered list of real coefficients in descending degree,
// i.e. [a_n, a_n-1, ..., a_0]. A polynomial of degree n has n+1 coefficients,
// a single coefficient being a constant.
type Polynomial []float64

// Degree returns the degree of the polynomial, or -1 for an empty one.
func (p Polynomial) Degree() int {
	return len(p) - 1
}

// Eval evaluates the polynomial at x using Horner's scheme.
// Floating point edge cases (NaN, Inf) are not treated specially and
// propagate as produced by the arithmetic.
func (p Polynomial) Eval(x float64) float64 {
	var res float64
	for _, coefficient := range p {
		res = res*x + coefficient
	}
	return res
}

// String renders the polynomial in a human readable form, e.g. "x^2 - 4".
// Zero coefficients are skipped, except for the all-zero polynomial which
// renders as "0".
func (p Polynomial) String() string {
	var sb strings.Builder

	degree := p.Degree()
	for i, coefficient := range p {
		if coefficient == 0 {
			continue
		}

		exponent := degree - i

		if sb.Len() == 0 {
			if coefficient < 0 {
				sb.WriteString("-")
			}
		} else if coefficient < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}

		abs := math.Abs(coefficient)
		if abs != 1 || exponent == 0 {
			sb.WriteString(trimFloat(abs))
		}

		if exponent == 1 {
			sb.WriteString("x")
		} else if exponent > 1 {
			sb.WriteString(fmt.Sprintf("x^%d", exponent))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// trimFloat formats a coefficient without trailing zeros
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
