package symbol

import "strings"

// Pretty renders expr for display: integer powers become unicode
// superscripts and explicit multiplication uses '·'. Everything else
// matches String.
func Pretty(e Expr) string {
	return pretty(e, false)
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

func superscript(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		sup, ok := superscripts[r]
		if !ok {
			return "", false
		}
		b.WriteRune(sup)
	}
	return b.String(), true
}

func pretty(e Expr, wrap bool) string {
	switch v := e.(type) {
	case *Num:
		s := v.String()
		if wrap && (v.Sign() < 0 || !v.IsInteger()) {
			return "(" + s + ")"
		}
		return s
	case *Sym:
		return v.name
	case *Add:
		parts := make([]string, 0, len(v.terms))
		for _, t := range v.terms {
			c, _ := splitCoeff(t)
			s := pretty(t, false)
			if len(parts) > 0 {
				if c.Sign() < 0 {
					s = "- " + pretty(Neg(t).Simplify(), false)
				} else {
					s = "+ " + s
				}
			}
			parts = append(parts, s)
		}
		out := strings.Join(parts, " ")
		if wrap {
			return "(" + out + ")"
		}
		return out
	case *Mul:
		num, den := mulParts(v)
		out := strings.Join(num, "·")
		if len(den) > 0 {
			d := strings.Join(den, "·")
			if len(den) > 1 {
				d = "(" + d + ")"
			}
			out += "/" + d
		}
		if wrap {
			return "(" + out + ")"
		}
		return out
	case *Pow:
		base := pretty(v.base, true)
		if n, ok := v.exp.(*Num); ok && n.IsInteger() {
			if sup, ok2 := superscript(n.String()); ok2 {
				return base + sup
			}
		}
		return base + "^" + pretty(v.exp, true)
	case *Call:
		return v.name + "(" + pretty(v.arg, false) + ")"
	}
	return e.String()
}

// mulParts splits a product's factors into numerator and denominator
// strings, folding x**-n into the denominator.
func mulParts(m *Mul) (num, den []string) {
	for _, f := range m.factors {
		if p, ok := f.(*Pow); ok {
			if n, ok2 := p.exp.(*Num); ok2 && n.IsInteger() && n.Sign() < 0 {
				if n.IsMinusOne() {
					den = append(den, pretty(p.base, true))
				} else {
					den = append(den, pretty(Power(p.base, numNeg(n)), true))
				}
				continue
			}
		}
		if n, ok := f.(*Num); ok && n.IsMinusOne() {
			num = append(num, "-1")
			continue
		}
		num = append(num, pretty(f, true))
	}
	if len(num) == 0 {
		num = []string{"1"}
	}
	// -1·x reads better as -x.
	if len(num) > 1 && num[0] == "-1" {
		num = append([]string{"-" + num[1]}, num[2:]...)
	}
	return num, den
}
