// Package symbol is the symbolic core of GNC: an exact-rational expression
// tree with deterministic simplification, differentiation, rule-based
// integration, and limits.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat), floats only at the edges
//   - Deterministic simplification and stable output
//   - Just enough calculus for surface analysis: Diff, Integrate, Limit
//   - An infix parser accepting the notation users type at the prompt
package symbol

import (
	"fmt"
	"math"
	"math/big"
)

// Expr is an immutable symbolic expression over named variables.
// Implementations are *Num, *Sym, *Add, *Mul, *Pow and *Call.
type Expr interface {
	// Simplify returns an equivalent expression in reduced form.
	Simplify() Expr
	// Sub replaces every occurrence of the named variable with value.
	Sub(name string, value Expr) Expr
	// Diff returns the partial derivative with respect to the named variable.
	Diff(name string) Expr
	// Fold evaluates the expression to a constant when it is variable-free.
	Fold() (*Num, bool)
	// Equal reports structural equality.
	Equal(other Expr) bool
	String() string

	node() // seals the interface
}

// ============================================================
// Num — exact rational constant
// ============================================================

type Num struct{ val *big.Rat }

// Int builds an integer constant.
func Int(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Rat builds the exact fraction p/q. Panics when q is zero.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic("symbol: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float builds the exact rational value of f.
func Float(f float64) *Num { return &Num{val: new(big.Rat).SetFloat64(f)} }

func (n *Num) Simplify() Expr        { return n }
func (n *Num) Sub(string, Expr) Expr { return n }
func (n *Num) Diff(string) Expr      { return Int(0) }
func (n *Num) Fold() (*Num, bool)    { return n, true }
func (n *Num) Equal(other Expr) bool { o, ok := other.(*Num); return ok && n.val.Cmp(o.val) == 0 }
func (n *Num) node()                 {}

// Float64 returns the nearest float64 value.
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

func (n *Num) IsZero() bool    { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool     { return n.val.Cmp(ratOne) == 0 }
func (n *Num) IsMinusOne() bool { return n.val.Cmp(ratMinusOne) == 0 }
func (n *Num) IsInteger() bool { return n.val.IsInt() }
func (n *Num) Sign() int       { return n.val.Sign() }

var (
	ratOne      = new(big.Rat).SetInt64(1)
	ratMinusOne = new(big.Rat).SetInt64(-1)
)

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	if d := n.val.Denom(); d.BitLen() > 20 {
		// Large denominators come from float conversions; render as decimal.
		return fmt.Sprintf("%g", n.Float64())
	}
	return n.val.RatString()
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numCmp(a, b *Num) int  { return a.val.Cmp(b.val) }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("symbol: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

// finiteFold folds e and additionally rejects NaN/Inf results.
func finiteFold(e Expr) (float64, bool) {
	n, ok := e.Fold()
	if !ok {
		return 0, false
	}
	f := n.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ============================================================
// Sym — named variable
// ============================================================

type Sym struct{ name string }

// Var builds a symbolic variable.
func Var(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Simplify() Expr    { return s }
func (s *Sym) Fold() (*Num, bool) { return nil, false }
func (s *Sym) String() string    { return s.name }
func (s *Sym) Name() string      { return s.name }
func (s *Sym) node()             {}

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

func (s *Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Sym) Diff(name string) Expr {
	if s.name == name {
		return Int(1)
	}
	return Int(0)
}

// ============================================================
// Free variables
// ============================================================

// FreeVars returns the set of variable names occurring in e.
func FreeVars(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectVars(e, out)
	return out
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		out[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectVars(t, out)
		}
	case *Mul:
		for _, f := range v.factors {
			collectVars(f, out)
		}
	case *Pow:
		collectVars(v.base, out)
		collectVars(v.exp, out)
	case *Call:
		collectVars(v.arg, out)
	}
}

// DependsOn reports whether the named variable occurs in e.
func DependsOn(e Expr, name string) bool {
	_, ok := FreeVars(e)[name]
	return ok
}
