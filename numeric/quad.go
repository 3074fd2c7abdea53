package numeric

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	quadTol      = 1e-8
	quadMaxDepth = 24
	panelNodes   = 5
)

// Quad integrates f over [a, b] with adaptive panel refinement: each panel
// is estimated with a fixed Gauss-Legendre rule, compared against the sum
// of its halves, and split until the two agree within tolerance.
func Quad(f func(float64) float64, a, b float64) float64 {
	return adaptive(f, a, b, quadTol, quadMaxDepth)
}

func adaptive(f func(float64) float64, a, b, tol float64, depth int) float64 {
	whole := panel(f, a, b)
	mid := (a + b) / 2
	left := panel(f, a, mid)
	right := panel(f, mid, b)
	// A non-finite panel estimate can never converge; refining it would
	// just fan out to the full depth budget. Propagate NaN instead.
	if !finite(whole) || !finite(left) || !finite(right) {
		return math.NaN()
	}
	if depth <= 0 || math.Abs(left+right-whole) <= tol {
		return left + right
	}
	return adaptive(f, a, mid, tol/2, depth-1) + adaptive(f, mid, b, tol/2, depth-1)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func panel(f func(float64) float64, a, b float64) float64 {
	return quad.Fixed(f, a, b, panelNodes, quad.Legendre{}, 0)
}

// DblQuad computes the double integral of the bound expression over
// [x0,x1]×[y0,y1] as nested one-dimensional integrals: the inner integral
// runs over y for each fixed x, and the outer over x.
func DblQuad(ev *Evaluator, x0, x1, y0, y1 float64) float64 {
	outer := func(x float64) float64 {
		return Quad(func(y float64) float64 { return ev.At(x, y) }, y0, y1)
	}
	return Quad(outer, x0, x1)
}
