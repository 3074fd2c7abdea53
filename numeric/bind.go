// Package numeric evaluates symbolic expressions over sampled grids and
// computes numerical integrals.
package numeric

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wnods/GNC/symbol"
)

// Evaluator evaluates a two-variable expression at float coordinates by
// substituting exact values into the symbolic tree and folding.
type Evaluator struct {
	expr  symbol.Expr
	xName string
	yName string
}

// Bind prepares expr for numeric evaluation in the two named variables.
// It fails when the expression still contains any other free variable.
func Bind(expr symbol.Expr, xName, yName string) (*Evaluator, error) {
	var extra []string
	for name := range symbol.FreeVars(expr) {
		if name != xName && name != yName {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, fmt.Errorf("numeric: unbound variables %s in %s",
			strings.Join(extra, ", "), expr.String())
	}
	return &Evaluator{expr: expr, xName: xName, yName: yName}, nil
}

// At evaluates the bound expression at (x, y). Points where the expression
// is undefined (poles, domain errors) evaluate to NaN.
func (ev *Evaluator) At(x, y float64) float64 {
	subbed := ev.expr.
		Sub(ev.xName, symbol.Float(x)).
		Sub(ev.yName, symbol.Float(y)).
		Simplify()
	if n, ok := subbed.Fold(); ok {
		return n.Float64()
	}
	return math.NaN()
}
