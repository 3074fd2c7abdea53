package symbol

// ============================================================
// Differentiation
// ============================================================

// Diff returns the simplified partial derivative ∂expr/∂name.
func Diff(expr Expr, name string) Expr {
	return expr.Diff(name).Simplify()
}

// Gradient returns the partial derivatives of expr with respect to each
// variable in names, in order.
func Gradient(expr Expr, names ...string) []Expr {
	out := make([]Expr, len(names))
	for i, v := range names {
		out[i] = Diff(expr, v)
	}
	return out
}

// ============================================================
// Integration (rule-based symbolic)
// ============================================================

// Integrate returns an antiderivative of expr with respect to name, without
// the constant of integration. The second result reports whether the
// rule set found a closed form.
func Integrate(expr Expr, name string) (Expr, bool) {
	expr = expr.Simplify()
	// Anything free of the integration variable is a constant factor.
	if !DependsOn(expr, name) {
		return Prod(expr, Var(name)), true
	}
	switch v := expr.(type) {
	case *Sym:
		return Prod(Rat(1, 2), Power(Var(name), Int(2))), true
	case *Pow:
		if sym, ok := v.base.(*Sym); ok && sym.name == name {
			if n, ok2 := v.exp.(*Num); ok2 {
				if n.IsMinusOne() {
					return Ln(Abs(Var(name))), true
				}
				up := numAdd(n, Int(1))
				return Prod(numRecip(up), Power(Var(name), up)), true
			}
		}
		// c**x for constant c.
		if sym, ok := v.exp.(*Sym); ok && sym.name == name {
			if _, ok2 := v.base.(*Num); ok2 {
				return Quot(Power(v.base, Var(name)), Ln(v.base)), true
			}
		}
		return nil, false
	case *Mul:
		coeff := Int(1)
		var rest []Expr
		for _, f := range v.factors {
			if !DependsOn(f, name) {
				if n, ok := f.Fold(); ok {
					coeff = numMul(coeff, n)
					continue
				}
			}
			rest = append(rest, f)
		}
		var inner Expr
		switch len(rest) {
		case 0:
			inner = Int(1)
		case 1:
			inner = rest[0]
		default:
			inner = &Mul{factors: rest}
		}
		// Split off symbolic constant factors too (e.g. y inside ∫x·y dx).
		var free, dep []Expr
		if m, ok := inner.(*Mul); ok {
			for _, f := range m.factors {
				if DependsOn(f, name) {
					dep = append(dep, f)
				} else {
					free = append(free, f)
				}
			}
			if len(free) > 0 {
				switch len(dep) {
				case 0:
					inner = Int(1)
				case 1:
					inner = dep[0]
				default:
					inner = &Mul{factors: dep}
				}
			}
		}
		intInner, ok := Integrate(inner, name)
		if !ok {
			return nil, false
		}
		parts := append([]Expr{coeff}, free...)
		parts = append(parts, intInner)
		return Prod(parts...).Simplify(), true
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			intT, ok := Integrate(t, name)
			if !ok {
				return nil, false
			}
			terms[i] = intT
		}
		return Sum(terms...).Simplify(), true
	case *Call:
		return integrateCall(v, name)
	}
	return nil, false
}

func integrateCall(c *Call, name string) (Expr, bool) {
	x := Var(name)
	arg := c.arg

	// linArg reports whether arg is name or k*name, returning 1/k.
	linArg := func() (*Num, bool) {
		if sym, ok := arg.(*Sym); ok && sym.name == name {
			return Int(1), true
		}
		if m, ok := arg.(*Mul); ok && len(m.factors) == 2 {
			if k, ok2 := m.factors[0].(*Num); ok2 && !k.IsZero() {
				if sym, ok3 := m.factors[1].(*Sym); ok3 && sym.name == name {
					return numRecip(k), true
				}
			}
		}
		return nil, false
	}

	switch c.name {
	case "sin":
		if rk, ok := linArg(); ok {
			return Prod(Int(-1), rk, Cos(arg)), true
		}
	case "cos":
		if rk, ok := linArg(); ok {
			return Prod(rk, Sin(arg)), true
		}
	case "exp":
		if rk, ok := linArg(); ok {
			return Prod(rk, Exp(arg)), true
		}
	case "sinh":
		if rk, ok := linArg(); ok {
			return Prod(rk, Cosh(arg)), true
		}
	case "cosh":
		if rk, ok := linArg(); ok {
			return Prod(rk, Sinh(arg)), true
		}
	case "ln":
		if sym, ok := arg.(*Sym); ok && sym.name == name {
			return Sum(Prod(x, Ln(x)), Neg(x)), true
		}
	case "asin":
		if sym, ok := arg.(*Sym); ok && sym.name == name {
			return Sum(Prod(x, Asin(x)), Sqrt(Sum(Int(1), Neg(Power(x, Int(2)))))), true
		}
	case "atan":
		if sym, ok := arg.(*Sym); ok && sym.name == name {
			return Sum(
				Prod(x, Atan(x)),
				Prod(Int(-1), Rat(1, 2), Ln(Sum(Int(1), Power(x, Int(2))))),
			), true
		}
	}
	return nil, false
}

// IntegrateDefinite evaluates the definite integral of expr in name over
// [lo, hi] by substituting the bounds into an antiderivative. It fails
// when no closed-form antiderivative is known.
func IntegrateDefinite(expr Expr, name string, lo, hi Expr) (Expr, bool) {
	anti, ok := Integrate(expr, name)
	if !ok {
		return nil, false
	}
	upper := anti.Sub(name, hi).Simplify()
	lower := anti.Sub(name, lo).Simplify()
	return Sum(upper, Neg(lower)).Simplify(), true
}

// DoubleIntegral evaluates ∫∫ expr dx dy over the rectangle
// [x0,x1]×[y0,y1], integrating in xName first and then in yName.
func DoubleIntegral(expr Expr, xName, yName string, x0, x1, y0, y1 Expr) (Expr, bool) {
	inner, ok := IntegrateDefinite(expr, xName, x0, x1)
	if !ok {
		return nil, false
	}
	return IntegrateDefinite(inner, yName, y0, y1)
}
