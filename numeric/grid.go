package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced samples over [lo, hi], endpoints
// included. n must be at least 2.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic("numeric: Linspace requires n >= 2")
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Meshgrid builds coordinate matrices from the axis samples: X varies
// along columns and Y along rows, so X.At(i,j) == xs[j] and
// Y.At(i,j) == ys[i].
func Meshgrid(xs, ys []float64) (X, Y *mat.Dense) {
	rows, cols := len(ys), len(xs)
	X = mat.NewDense(rows, cols, nil)
	Y = mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, xs[j])
			Y.Set(i, j, ys[i])
		}
	}
	return X, Y
}

// EvalGrid samples ev over the coordinate mesh, returning a matrix of the
// same shape.
func EvalGrid(ev *Evaluator, X, Y *mat.Dense) *mat.Dense {
	rows, cols := X.Dims()
	Z := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			Z.Set(i, j, ev.At(X.At(i, j), Y.At(i, j)))
		}
	}
	return Z
}

// Extremum is a sampled grid value together with its coordinates.
type Extremum struct {
	Value float64
	X, Y  float64
}

// MinMax scans the sampled surface for its smallest and largest finite
// values and the coordinates they occur at. NaN samples are skipped.
func MinMax(X, Y, Z *mat.Dense) (min, max Extremum) {
	min = Extremum{Value: math.Inf(1)}
	max = Extremum{Value: math.Inf(-1)}
	rows, cols := Z.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := Z.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < min.Value {
				min = Extremum{Value: v, X: X.At(i, j), Y: Y.At(i, j)}
			}
			if v > max.Value {
				max = Extremum{Value: v, X: X.At(i, j), Y: Y.At(i, j)}
			}
		}
	}
	return min, max
}
