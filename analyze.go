package gnc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/wnods/GNC/numeric"
	"github.com/wnods/GNC/symbol"
)

// Analysis bundles everything derived from one function over one
// rectangular window: the sampled meshes, the symbolic derivatives and
// integrals, the numeric double integral, the sampled extrema and the
// sequential limit toward the origin.
//
// IntX, IntY, IntXY and LimitOrigin are nil when no closed form was
// found; the renderer prints a placeholder for those.
type Analysis struct {
	Expr symbol.Expr

	X, Y, Z *mat.Dense

	DfDx, DfDy symbol.Expr
	GradX      *mat.Dense
	GradY      *mat.Dense
	GradMag    *mat.Dense

	IntX       symbol.Expr
	IntY       symbol.Expr
	IntXY      symbol.Expr
	IntNumeric float64

	Min, Max numeric.Extremum

	LimitOrigin symbol.Expr

	XRange, YRange [2]float64
	Resolution     int
}

// Analyze samples expr over [xRange]×[yRange] at the given resolution and
// computes every derived quantity. The expression must be a function of
// x and y only; anything else should have been fixed beforehand.
func Analyze(expr symbol.Expr, xRange, yRange [2]float64, resolution int) (*Analysis, error) {
	if resolution < 2 {
		return nil, fmt.Errorf("gnc: resolution must be at least 2, got %d", resolution)
	}
	ev, err := numeric.Bind(expr, "x", "y")
	if err != nil {
		return nil, err
	}

	xs := numeric.Linspace(xRange[0], xRange[1], resolution)
	ys := numeric.Linspace(yRange[0], yRange[1], resolution)
	X, Y := numeric.Meshgrid(xs, ys)
	Z := numeric.EvalGrid(ev, X, Y)

	a := &Analysis{
		Expr:       expr,
		X:          X,
		Y:          Y,
		Z:          Z,
		XRange:     xRange,
		YRange:     yRange,
		Resolution: resolution,
	}

	a.DfDx = symbol.DeepSimplify(symbol.Diff(expr, "x"))
	a.DfDy = symbol.DeepSimplify(symbol.Diff(expr, "y"))
	evX, err := numeric.Bind(a.DfDx, "x", "y")
	if err != nil {
		return nil, err
	}
	evY, err := numeric.Bind(a.DfDy, "x", "y")
	if err != nil {
		return nil, err
	}
	a.GradX = numeric.EvalGrid(evX, X, Y)
	a.GradY = numeric.EvalGrid(evY, X, Y)
	a.GradMag = gradMagnitude(a.GradX, a.GradY)

	if anti, ok := symbol.Integrate(expr, "x"); ok {
		a.IntX = symbol.DeepSimplify(anti)
	}
	if anti, ok := symbol.Integrate(expr, "y"); ok {
		a.IntY = symbol.DeepSimplify(anti)
	}
	if def, ok := symbol.DoubleIntegral(expr, "x", "y",
		symbol.Float(xRange[0]), symbol.Float(xRange[1]),
		symbol.Float(yRange[0]), symbol.Float(yRange[1])); ok {
		a.IntXY = def
	}
	a.IntNumeric = numeric.DblQuad(ev, xRange[0], xRange[1], yRange[0], yRange[1])

	a.Min, a.Max = numeric.MinMax(X, Y, Z)

	a.LimitOrigin = limitOrigin(expr)

	return a, nil
}

// limitOrigin computes the sequential limit toward the origin: first
// x -> 0, then y -> 0 on what remains. The order matters and is never
// collapsed into a joint limit. Returns nil when either step fails.
func limitOrigin(expr symbol.Expr) symbol.Expr {
	first := symbol.Limit(expr, "x", symbol.Int(0))
	if !first.Success {
		return nil
	}
	second := symbol.Limit(first.Value, "y", symbol.Int(0))
	if !second.Success {
		return nil
	}
	return second.Value
}

func gradMagnitude(gx, gy *mat.Dense) *mat.Dense {
	rows, cols := gx.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, math.Hypot(gx.At(i, j), gy.At(i, j)))
		}
	}
	return out
}
