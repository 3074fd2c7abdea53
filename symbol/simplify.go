package symbol

// TrigSimplify applies sin²+cos²=1 together with the exp/ln cancellations
// already performed by Simplify, recursing through the whole tree.
func TrigSimplify(e Expr) Expr {
	return trigWalk(e.Simplify()).Simplify()
}

func trigWalk(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = trigWalk(t)
		}
		return pythagorean(Sum(terms...))
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = trigWalk(f)
		}
		return Prod(factors...)
	case *Pow:
		return Power(trigWalk(v.base), v.exp)
	case *Call:
		return callOf(v.name, trigWalk(v.arg)).Simplify()
	}
	return e
}

// pythagorean collapses matching c*sin(u)^2 + c*cos(u)^2 pairs into c.
func pythagorean(e Expr) Expr {
	add, ok := e.(*Add)
	if !ok {
		return e
	}
	type squared struct {
		fn    string
		arg   string
		coeff *Num
		idx   int
	}
	var pairs []squared
	for idx, t := range add.terms {
		coeff, inner := splitCoeff(t)
		p, ok2 := inner.(*Pow)
		if !ok2 {
			continue
		}
		fn, ok3 := p.base.(*Call)
		if !ok3 || (fn.name != "sin" && fn.name != "cos") {
			continue
		}
		if en, ok4 := p.exp.(*Num); ok4 && en.IsInteger() && en.val.Num().Int64() == 2 {
			pairs = append(pairs, squared{fn.name, fn.arg.String(), coeff, idx})
		}
	}
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			pi, pj := pairs[i], pairs[j]
			if pi.arg != pj.arg || pi.fn == pj.fn || numCmp(pi.coeff, pj.coeff) != 0 {
				continue
			}
			rest := []Expr{}
			for idx, t := range add.terms {
				if idx != pi.idx && idx != pj.idx {
					rest = append(rest, t)
				}
			}
			rest = append(rest, pi.coeff)
			return Sum(rest...).Simplify()
		}
	}
	return e
}

// splitCoeff separates a leading numeric coefficient from the rest of a term.
func splitCoeff(e Expr) (*Num, Expr) {
	if m, ok := e.(*Mul); ok && len(m.factors) >= 2 {
		if coeff, ok2 := m.factors[0].(*Num); ok2 {
			rest := m.factors[1:]
			if len(rest) == 1 {
				return coeff, rest[0]
			}
			return coeff, &Mul{factors: rest}
		}
	}
	return Int(1), e
}

// DeepSimplify repeats simplification and trig passes until the rendered
// form stabilizes (bounded at ten rounds).
func DeepSimplify(e Expr) Expr {
	prev := ""
	curr := e.Simplify()
	for i := 0; i < 10; i++ {
		str := curr.String()
		if str == prev {
			break
		}
		prev = str
		curr = TrigSimplify(curr).Simplify()
	}
	return curr
}
