package symbol

import (
	"math"
	"sort"
	"strings"
)

// ============================================================
// Add — sum of terms
// ============================================================

type Add struct{ terms []Expr }

// Sum builds a simplified sum of the given terms.
func Sum(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Neg builds -e.
func Neg(e Expr) Expr { return Prod(Int(-1), e) }

func (a *Add) Terms() []Expr { return a.terms }
func (a *Add) node()         {}

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	constant := Int(0)
	varCoeffs := map[string]*Num{}
	varOrder := []string{}
	others := []Expr{}
	collect := func(name string, c *Num) {
		if _, seen := varCoeffs[name]; !seen {
			varOrder = append(varOrder, name)
			varCoeffs[name] = Int(0)
		}
		varCoeffs[name] = numAdd(varCoeffs[name], c)
	}
	for _, t := range flat {
		switch v := t.(type) {
		case *Num:
			constant = numAdd(constant, v)
		case *Sym:
			collect(v.name, Int(1))
		case *Mul:
			// c*x counts toward x's coefficient, so x - x cancels.
			if len(v.factors) == 2 {
				if c, ok := v.factors[0].(*Num); ok {
					if s, ok2 := v.factors[1].(*Sym); ok2 {
						collect(s.name, c)
						continue
					}
				}
			}
			others = append(others, t)
		default:
			others = append(others, t)
		}
	}

	sort.Strings(varOrder)
	result := []Expr{}
	for _, name := range varOrder {
		coeff := varCoeffs[name]
		switch {
		case coeff.IsZero():
		case coeff.IsOne():
			result = append(result, Var(name))
		default:
			result = append(result, Prod(coeff, Var(name)))
		}
	}
	result = append(result, others...)
	if !constant.IsZero() {
		result = append(result, constant)
	}

	switch len(result) {
	case 0:
		return Int(0)
	case 1:
		return result[0]
	}
	return &Add{terms: result}
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Sub(name, value)
	}
	return Sum(terms...)
}

func (a *Add) Diff(name string) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Diff(name)
	}
	return Sum(terms...)
}

func (a *Add) Fold() (*Num, bool) {
	acc := Int(0)
	for _, t := range a.terms {
		v, ok := t.Fold()
		if !ok {
			return nil, false
		}
		acc = numAdd(acc, v)
	}
	return acc, true
}

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Mul — product of factors
// ============================================================

type Mul struct{ factors []Expr }

// Prod builds a simplified product of the given factors.
func Prod(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Quot builds a/b as a * b^-1.
func Quot(a, b Expr) Expr { return Prod(a, Power(b, Int(-1))) }

func (m *Mul) Factors() []Expr { return m.factors }
func (m *Mul) node()           {}

func (m *Mul) Simplify() Expr {
	flat := make([]Expr, 0, len(m.factors))
	for _, f := range m.factors {
		s := f.Simplify()
		if inner, ok := s.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := Int(1)
	others := []Expr{}
	for _, f := range flat {
		if v, ok := f.(*Num); ok {
			coeff = numMul(coeff, v)
		} else {
			others = append(others, f)
		}
	}
	if coeff.IsZero() {
		return Int(0)
	}
	if len(others) == 0 {
		return coeff
	}

	// Stable factor order keyed by rendered form; keys precomputed so the
	// comparator does not re-render on every comparison.
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(others))
	for i, e := range others {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	for i := range ks {
		others[i] = ks[i].e
	}

	if coeff.IsOne() {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{factors: others}
	}
	return &Mul{factors: append([]Expr{coeff}, others...)}
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if _, isAdd := f.(*Add); isAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Sub(name, value)
	}
	return Prod(factors...)
}

// Diff applies the generalized product rule.
func (m *Mul) Diff(name string) Expr {
	terms := make([]Expr, len(m.factors))
	for i, fi := range m.factors {
		dfi := fi.Diff(name)
		rest := make([]Expr, 0, len(m.factors))
		rest = append(rest, dfi)
		for j, fj := range m.factors {
			if j != i {
				rest = append(rest, fj)
			}
		}
		terms[i] = Prod(rest...)
	}
	return Sum(terms...)
}

func (m *Mul) Fold() (*Num, bool) {
	acc := Int(1)
	for _, f := range m.factors {
		v, ok := f.Fold()
		if !ok {
			return nil, false
		}
		acc = numMul(acc, v)
	}
	return acc, true
}

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

// ============================================================
// Pow — base^exponent
// ============================================================

type Pow struct{ base, exp Expr }

// Power builds a simplified base^exp.
func Power(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Sqrt builds e^(1/2).
func Sqrt(e Expr) Expr { return Power(e, Rat(1, 2)) }

func (p *Pow) Base() Expr     { return p.base }
func (p *Pow) Exponent() Expr { return p.exp }
func (p *Pow) node()          {}

func (p *Pow) Simplify() Expr {
	base := p.base.Simplify()
	exp := p.exp.Simplify()

	if en, ok := exp.(*Num); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
	}
	if bn, ok := base.(*Num); ok {
		if bn.IsZero() {
			// 0^0 and 0^negative stay unevaluated.
			if en, ok2 := exp.(*Num); ok2 && (en.IsZero() || en.Sign() < 0) {
				return &Pow{base: base, exp: exp}
			}
			return Int(0)
		}
		if bn.IsOne() {
			return Int(1)
		}
		if en, ok2 := exp.(*Num); ok2 && en.IsInteger() {
			if e := en.val.Num().Int64(); e >= -20 && e <= 20 {
				return intPow(bn, e)
			}
		}
	}
	if inner, ok := base.(*Pow); ok {
		return Power(inner.base, Prod(inner.exp, exp))
	}
	return &Pow{base: base, exp: exp}
}

// intPow raises a nonzero rational to a small integer power exactly.
func intPow(b *Num, e int64) *Num {
	n := e
	if n < 0 {
		n = -n
	}
	result := Int(1)
	for i := int64(0); i < n; i++ {
		result = numMul(result, b)
	}
	if e < 0 {
		return numRecip(result)
	}
	return result
}

func (p *Pow) String() string {
	baseStr := p.base.String()
	switch p.base.(type) {
	case *Add, *Mul:
		baseStr = "(" + baseStr + ")"
	}
	return baseStr + "^" + p.exp.String()
}

func (p *Pow) Sub(name string, value Expr) Expr {
	return Power(p.base.Sub(name, value), p.exp.Sub(name, value))
}

func (p *Pow) Diff(name string) Expr {
	du := p.base.Diff(name)
	dv := p.exp.Diff(name)
	if _, expIsNum := p.exp.(*Num); expIsNum {
		// Power rule: d(u^n) = n*u^(n-1)*du
		return Prod(p.exp, Power(p.base, Sum(p.exp, Int(-1))), du)
	}
	if _, baseIsNum := p.base.(*Num); baseIsNum {
		// Exponential rule: d(a^v) = a^v*ln(a)*dv
		return Prod(Power(p.base, p.exp), Ln(p.base), dv)
	}
	// General case: d(u^v) = u^v*(dv*ln(u) + v*du/u)
	logTerm := Prod(dv, Ln(p.base))
	quotTerm := Prod(p.exp, du, Power(p.base, Int(-1)))
	return Prod(Power(p.base, p.exp), Sum(logTerm, quotTerm))
}

func (p *Pow) Fold() (*Num, bool) {
	b, ok1 := p.base.Fold()
	e, ok2 := p.exp.Fold()
	if !ok1 || !ok2 {
		return nil, false
	}
	v := math.Pow(b.Float64(), e.Float64())
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	return Float(v), true
}

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}
