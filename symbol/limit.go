package symbol

// ============================================================
// Limits
// ============================================================

// LimitResult holds the outcome of a limit computation.
type LimitResult struct {
	Value   Expr
	Success bool
	Error   string
}

// Limit computes lim_{name -> point} expr. It tries direct substitution
// first, then L'Hôpital on 0/0 quotients, then a short Taylor expansion
// around the point.
func Limit(expr Expr, name string, point Expr) LimitResult {
	return limitRecursive(expr, name, point, 5)
}

func limitRecursive(expr Expr, name string, point Expr, maxLhopital int) LimitResult {
	expr = expr.Simplify()
	// 0/0 quotients must be caught before substitution, or the zero
	// numerator would swallow the indeterminate denominator.
	if maxLhopital > 0 {
		if num, den, ok := splitQuotient(expr); ok {
			nv, nok := num.Sub(name, point).Simplify().Fold()
			dv, dok := den.Sub(name, point).Simplify().Fold()
			if nok && dok && nv.IsZero() && dv.IsZero() {
				return limitRecursive(Quot(Diff(num, name), Diff(den, name)), name, point, maxLhopital-1)
			}
		}
	}
	subbed := expr.Sub(name, point).Simplify()
	if _, ok := finiteFold(subbed); ok {
		return LimitResult{Value: subbed, Success: true}
	}
	if !DependsOn(subbed, name) && len(FreeVars(subbed)) > 0 {
		// Still symbolic in other variables; substitution stands.
		return LimitResult{Value: subbed, Success: true}
	}
	if _, ok := point.Fold(); ok {
		series := taylor(expr, name, point, 4)
		atPoint := series.Sub(name, point).Simplify()
		if _, ok2 := finiteFold(atPoint); ok2 {
			return LimitResult{Value: atPoint, Success: true}
		}
	}
	return LimitResult{
		Error:   "limit could not be determined: " + expr.String() + " as " + name + " -> " + point.String(),
		Success: false,
	}
}

// splitQuotient decomposes a product into numerator and denominator, where
// the denominator collects all factors raised to the power -1.
func splitQuotient(e Expr) (num, den Expr, ok bool) {
	m, isMul := e.(*Mul)
	if !isMul {
		return nil, nil, false
	}
	var numFactors, denFactors []Expr
	for _, f := range m.factors {
		if p, isPow := f.(*Pow); isPow {
			if n, isNum := p.exp.(*Num); isNum && n.IsMinusOne() {
				denFactors = append(denFactors, p.base)
				continue
			}
		}
		numFactors = append(numFactors, f)
	}
	if len(denFactors) == 0 {
		return nil, nil, false
	}
	switch len(numFactors) {
	case 0:
		num = Int(1)
	case 1:
		num = numFactors[0]
	default:
		num = &Mul{factors: numFactors}
	}
	if len(denFactors) == 1 {
		den = denFactors[0]
	} else {
		den = &Mul{factors: denFactors}
	}
	return num, den, true
}

// taylor expands expr around point to the given order. Used only as a
// limit fallback, so terms whose coefficient fails to simplify to a
// number are dropped.
func taylor(expr Expr, name string, point Expr, order int) Expr {
	var terms []Expr
	current := expr
	factorial := Int(1)
	shifted := Sum(Var(name), Neg(point))
	for k := 0; k <= order; k++ {
		if k > 0 {
			factorial = numMul(factorial, Int(int64(k)))
		}
		coeff := Prod(current.Sub(name, point), numRecip(factorial)).Simplify()
		if n, ok := coeff.(*Num); ok && n.IsZero() {
			current = Diff(current, name)
			continue
		}
		switch k {
		case 0:
			terms = append(terms, coeff)
		case 1:
			terms = append(terms, Prod(coeff, shifted))
		default:
			terms = append(terms, Prod(coeff, Power(shifted, Int(int64(k)))))
		}
		current = Diff(current, name)
	}
	return Sum(terms...).Simplify()
}
