package symbol

import "math"

// ============================================================
// Call — named elementary function application
// ============================================================

type Call struct {
	name string
	arg  Expr
}

func callOf(name string, arg Expr) *Call { return &Call{name: name, arg: arg} }

func Sin(arg Expr) Expr   { return callOf("sin", arg).Simplify() }
func Cos(arg Expr) Expr   { return callOf("cos", arg).Simplify() }
func Tan(arg Expr) Expr   { return callOf("tan", arg).Simplify() }
func Exp(arg Expr) Expr   { return callOf("exp", arg).Simplify() }
func Ln(arg Expr) Expr    { return callOf("ln", arg).Simplify() }
func Abs(arg Expr) Expr   { return callOf("abs", arg).Simplify() }
func Asin(arg Expr) Expr  { return callOf("asin", arg).Simplify() }
func Acos(arg Expr) Expr  { return callOf("acos", arg).Simplify() }
func Atan(arg Expr) Expr  { return callOf("atan", arg).Simplify() }
func Sinh(arg Expr) Expr  { return callOf("sinh", arg).Simplify() }
func Cosh(arg Expr) Expr  { return callOf("cosh", arg).Simplify() }
func Tanh(arg Expr) Expr  { return callOf("tanh", arg).Simplify() }
func Floor(arg Expr) Expr { return callOf("floor", arg).Simplify() }
func Ceil(arg Expr) Expr  { return callOf("ceil", arg).Simplify() }
func Sign(arg Expr) Expr  { return callOf("sign", arg).Simplify() }

// evalTable maps function names to their float64 evaluation. ln of a
// non-positive argument is handled separately so folding can refuse it.
var evalTable = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"exp":   math.Exp,
	"abs":   math.Abs,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

func (c *Call) FuncName() string { return c.name }
func (c *Call) Arg() Expr        { return c.arg }
func (c *Call) node()            {}

func (c *Call) Simplify() Expr {
	arg := c.arg.Simplify()
	if n, ok := arg.(*Num); ok {
		v := n.Float64()
		switch c.name {
		case "ln":
			if v > 0 {
				return Float(math.Log(v))
			}
		case "sign":
			switch {
			case v > 0:
				return Int(1)
			case v < 0:
				return Int(-1)
			default:
				return Int(0)
			}
		default:
			if fn, ok2 := evalTable[c.name]; ok2 {
				f := fn(v)
				if !math.IsNaN(f) && !math.IsInf(f, 0) {
					return Float(f)
				}
			}
		}
	}
	switch c.name {
	case "ln":
		if inner, ok := arg.(*Call); ok && inner.name == "exp" {
			return inner.arg
		}
	case "exp":
		if inner, ok := arg.(*Call); ok && inner.name == "ln" {
			return inner.arg
		}
	case "abs":
		// |−u| = |u|
		if m, ok := arg.(*Mul); ok && len(m.factors) >= 1 {
			if coeff, ok2 := m.factors[0].(*Num); ok2 && coeff.IsMinusOne() {
				return Abs(Prod(m.factors[1:]...))
			}
		}
	}
	return &Call{name: c.name, arg: arg}
}

func (c *Call) String() string { return c.name + "(" + c.arg.String() + ")" }

func (c *Call) Sub(name string, value Expr) Expr {
	return callOf(c.name, c.arg.Sub(name, value)).Simplify()
}

// Diff applies the chain rule with the outer derivative per function.
func (c *Call) Diff(name string) Expr {
	du := c.arg.Diff(name)
	var outer Expr
	switch c.name {
	case "sin":
		outer = Cos(c.arg)
	case "cos":
		outer = Neg(Sin(c.arg))
	case "tan":
		outer = Sum(Int(1), Power(Tan(c.arg), Int(2)))
	case "exp":
		outer = Exp(c.arg)
	case "ln":
		outer = Power(c.arg, Int(-1))
	case "asin":
		outer = Power(Sum(Int(1), Neg(Power(c.arg, Int(2)))), Rat(-1, 2))
	case "acos":
		outer = Neg(Power(Sum(Int(1), Neg(Power(c.arg, Int(2)))), Rat(-1, 2)))
	case "atan":
		outer = Power(Sum(Int(1), Power(c.arg, Int(2))), Int(-1))
	case "sinh":
		outer = Cosh(c.arg)
	case "cosh":
		outer = Sinh(c.arg)
	case "tanh":
		outer = Sum(Int(1), Neg(Power(Tanh(c.arg), Int(2))))
	case "sign", "floor", "ceil":
		// Zero almost everywhere; the jump points are not representable here.
		return Int(0)
	default:
		return Prod(callOf("D["+c.name+"]", c.arg), du)
	}
	return Prod(outer, du).Simplify()
}

func (c *Call) Fold() (*Num, bool) {
	n, ok := c.arg.Fold()
	if !ok {
		return nil, false
	}
	v := n.Float64()
	if c.name == "ln" {
		if v <= 0 {
			return nil, false
		}
		return Float(math.Log(v)), true
	}
	if c.name == "sign" {
		switch {
		case v > 0:
			return Int(1), true
		case v < 0:
			return Int(-1), true
		}
		return Int(0), true
	}
	fn, ok := evalTable[c.name]
	if !ok {
		return nil, false
	}
	f := fn(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return Float(f), true
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.name == o.name && c.arg.Equal(o.arg)
}
