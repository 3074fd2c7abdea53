// Package gnc analyzes and plots two-variable mathematical functions: it
// parses an expression in x and y, derives its partial derivatives,
// symbolic and numeric integrals and the limit toward the origin, and
// samples it over a rectangular grid for surface and contour rendering.
package gnc

import (
	"sort"

	"github.com/wnods/GNC/symbol"
)

// ParseError wraps a failure to interpret the user's function text.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "erro ao interpretar a função: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// ValidateFunction reports whether src parses as a mathematical
// expression. Variables are not checked here: an expression mentioning
// names other than x and y is still valid, and any name left unfixed
// only surfaces as an error when the expression is bound for sampling.
func ValidateFunction(src string) bool {
	_, err := symbol.Parse(src)
	return err == nil
}

// ParseFunction parses src and substitutes the fixed variable values,
// returning the simplified expression.
func ParseFunction(src string, fixed map[string]float64) (symbol.Expr, error) {
	expr, err := symbol.Parse(src)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	names := make([]string, 0, len(fixed))
	for name := range fixed {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		expr = expr.Sub(name, symbol.Float(fixed[name]))
	}
	return expr.Simplify(), nil
}
