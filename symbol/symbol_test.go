package symbol_test

import (
	"math"
	"strings"
	"testing"

	"github.com/wnods/GNC/symbol"
)

// ============================================================
// Num and Sym tests
// ============================================================

func TestNum_Integer(t *testing.T) {
	n := symbol.Int(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestNum_Rational(t *testing.T) {
	n := symbol.Rat(1, 3)
	if n.String() != "1/3" {
		t.Errorf("want 1/3, got %s", n.String())
	}
}

func TestNum_Diff_IsZero(t *testing.T) {
	result := symbol.Int(5).Diff("x")
	if result.String() != "0" {
		t.Errorf("d/dx(5) should be 0, got %s", result.String())
	}
}

func TestSym_Sub_Match(t *testing.T) {
	result := symbol.Var("x").Sub("x", symbol.Int(3))
	if result.String() != "3" {
		t.Errorf("want 3, got %s", result.String())
	}
}

func TestSym_Sub_NoMatch(t *testing.T) {
	result := symbol.Var("x").Sub("y", symbol.Int(3))
	if result.String() != "x" {
		t.Errorf("want x, got %s", result.String())
	}
}

func TestFreeVars(t *testing.T) {
	e := symbol.Sum(symbol.Var("x"), symbol.Prod(symbol.Var("y"), symbol.Var("z")))
	vars := symbol.FreeVars(e)
	for _, name := range []string{"x", "y", "z"} {
		if _, ok := vars[name]; !ok {
			t.Errorf("FreeVars missing %s", name)
		}
	}
	if len(vars) != 3 {
		t.Errorf("want 3 free variables, got %d", len(vars))
	}
}

// ============================================================
// Arithmetic simplification tests
// ============================================================

func TestSum_CollectsLikeTerms(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Sum(x, x)
	want := symbol.Prod(symbol.Int(2), symbol.Var("x"))
	if !result.Equal(want) {
		t.Errorf("x + x should be 2*x, got %s", result.String())
	}
}

func TestSum_CancelsToZero(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Sum(x, symbol.Neg(x))
	if result.String() != "0" {
		t.Errorf("x - x should be 0, got %s", result.String())
	}
}

func TestSum_CancelsScaledTerms(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Sum(
		symbol.Prod(symbol.Int(2), x),
		symbol.Prod(symbol.Int(-2), x),
	)
	if result.String() != "0" {
		t.Errorf("2x - 2x should be 0, got %s", result.String())
	}
}

func TestSum_MergesScaledTerms(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Sum(x, symbol.Prod(symbol.Int(2), x))
	want := symbol.Prod(symbol.Int(3), symbol.Var("x"))
	if !result.Equal(want) {
		t.Errorf("x + 2x should be 3*x, got %s", result.String())
	}
}

func TestProd_ZeroAnnihilates(t *testing.T) {
	result := symbol.Prod(symbol.Int(0), symbol.Var("x"))
	if result.String() != "0" {
		t.Errorf("0*x should be 0, got %s", result.String())
	}
}

func TestPower_SmallIntExact(t *testing.T) {
	result := symbol.Power(symbol.Int(2), symbol.Int(10))
	if result.String() != "1024" {
		t.Errorf("2**10 should be 1024, got %s", result.String())
	}
}

func TestQuot_FoldsExactly(t *testing.T) {
	result := symbol.Quot(symbol.Int(3), symbol.Int(4))
	if !result.Equal(symbol.Rat(3, 4)) {
		t.Errorf("3/4 should fold to 3/4, got %s", result.String())
	}
}

func TestTrigSimplify_Pythagorean(t *testing.T) {
	x := symbol.Var("x")
	e := symbol.Sum(
		symbol.Power(symbol.Sin(x), symbol.Int(2)),
		symbol.Power(symbol.Cos(x), symbol.Int(2)),
	)
	result := symbol.TrigSimplify(e)
	if result.String() != "1" {
		t.Errorf("sin² + cos² should be 1, got %s", result.String())
	}
}

// ============================================================
// Parser tests
// ============================================================

func TestParse_Polynomial(t *testing.T) {
	e, err := symbol.Parse("x**2 + y**2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := symbol.Sum(
		symbol.Power(symbol.Var("x"), symbol.Int(2)),
		symbol.Power(symbol.Var("y"), symbol.Int(2)),
	)
	if !e.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), e.String())
	}
}

func TestParse_CaretPower(t *testing.T) {
	e, err := symbol.Parse("x^3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !e.Equal(symbol.Power(symbol.Var("x"), symbol.Int(3))) {
		t.Errorf("x^3 parsed as %s", e.String())
	}
}

func TestParse_PowerRightAssociative(t *testing.T) {
	e, err := symbol.Parse("2**3**2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// 2**(3**2) = 512, not (2**3)**2 = 64.
	if e.String() != "512" {
		t.Errorf("2**3**2 should be 512, got %s", e.String())
	}
}

func TestParse_UnaryMinusBindsLooserThanPower(t *testing.T) {
	e, err := symbol.Parse("-x**2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := symbol.Neg(symbol.Power(symbol.Var("x"), symbol.Int(2)))
	if !e.Equal(want) {
		t.Errorf("-x**2 should be -(x**2), got %s", e.String())
	}
}

func TestParse_Division(t *testing.T) {
	e, err := symbol.Parse("sin(x)/x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := symbol.Quot(symbol.Sin(symbol.Var("x")), symbol.Var("x"))
	if !e.Equal(want) {
		t.Errorf("want %s, got %s", want.String(), e.String())
	}
}

func TestParse_FunctionsAndConstants(t *testing.T) {
	e, err := symbol.Parse("exp(x) + pi")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v := e.Sub("x", symbol.Int(0)).Simplify()
	f, ok := v.Fold()
	if !ok {
		t.Fatalf("exp(0) + pi should fold, got %s", v.String())
	}
	if math.Abs(f.Float64()-(1+math.Pi)) > 1e-9 {
		t.Errorf("want %v, got %v", 1+math.Pi, f.Float64())
	}
}

func TestParse_Decimal(t *testing.T) {
	e, err := symbol.Parse("2.5*x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !e.Equal(symbol.Prod(symbol.Rat(5, 2), symbol.Var("x"))) {
		t.Errorf("2.5*x parsed as %s", e.String())
	}
}

func TestParse_UnknownFunction(t *testing.T) {
	_, err := symbol.Parse("foo(x)")
	if err == nil || !strings.Contains(err.Error(), "unknown function") {
		t.Errorf("want unknown function error, got %v", err)
	}
}

func TestParse_UnmatchedParen(t *testing.T) {
	if _, err := symbol.Parse("(x + y"); err == nil {
		t.Error("want error for unmatched paren")
	}
}

func TestParse_TrailingGarbage(t *testing.T) {
	if _, err := symbol.Parse("x + y)"); err == nil {
		t.Error("want error for trailing ')'")
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := symbol.Parse("   "); err == nil {
		t.Error("want error for empty input")
	}
}

// ============================================================
// Differentiation tests
// ============================================================

func TestDiff_PowerRule(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Diff(symbol.Power(x, symbol.Int(2)), "x")
	if !result.Equal(symbol.Prod(symbol.Int(2), symbol.Var("x"))) {
		t.Errorf("d/dx(x²) should be 2*x, got %s", result.String())
	}
}

func TestDiff_ChainRule(t *testing.T) {
	x := symbol.Var("x")
	result := symbol.Diff(symbol.Sin(symbol.Prod(symbol.Int(2), x)), "x")
	want := symbol.Prod(symbol.Int(2), symbol.Cos(symbol.Prod(symbol.Int(2), symbol.Var("x"))))
	if !result.Equal(want) {
		t.Errorf("d/dx(sin(2x)) should be 2*cos(2*x), got %s", result.String())
	}
}

func TestGradient_TwoVariables(t *testing.T) {
	e, err := symbol.Parse("x**2 + y**2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	grad := symbol.Gradient(e, "x", "y")
	if len(grad) != 2 {
		t.Fatalf("want 2 components, got %d", len(grad))
	}
	if !grad[0].Equal(symbol.Prod(symbol.Int(2), symbol.Var("x"))) {
		t.Errorf("∂/∂x should be 2*x, got %s", grad[0].String())
	}
	if !grad[1].Equal(symbol.Prod(symbol.Int(2), symbol.Var("y"))) {
		t.Errorf("∂/∂y should be 2*y, got %s", grad[1].String())
	}
}

func TestGradient_Sum(t *testing.T) {
	e, err := symbol.Parse("x + y")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	grad := symbol.Gradient(e, "x", "y")
	if grad[0].String() != "1" || grad[1].String() != "1" {
		t.Errorf("partials of x+y should both be 1, got %s, %s", grad[0].String(), grad[1].String())
	}
}

// ============================================================
// Integration tests
// ============================================================

func TestIntegrate_Constant(t *testing.T) {
	result, ok := symbol.Integrate(symbol.Int(3), "x")
	if !ok {
		t.Fatal("∫3 dx should succeed")
	}
	if !result.Equal(symbol.Prod(symbol.Int(3), symbol.Var("x"))) {
		t.Errorf("∫3 dx should be 3*x, got %s", result.String())
	}
}

func TestIntegrate_ForeignVariableIsConstant(t *testing.T) {
	result, ok := symbol.Integrate(symbol.Power(symbol.Var("y"), symbol.Int(2)), "x")
	if !ok {
		t.Fatal("∫y² dx should succeed")
	}
	want := symbol.Prod(symbol.Power(symbol.Var("y"), symbol.Int(2)), symbol.Var("x"))
	if !result.Equal(want) {
		t.Errorf("∫y² dx should be x*y², got %s", result.String())
	}
}

func TestIntegrate_PowerRule(t *testing.T) {
	result, ok := symbol.Integrate(symbol.Power(symbol.Var("x"), symbol.Int(2)), "x")
	if !ok {
		t.Fatal("∫x² dx should succeed")
	}
	want := symbol.Prod(symbol.Rat(1, 3), symbol.Power(symbol.Var("x"), symbol.Int(3)))
	if !result.Equal(want) {
		t.Errorf("∫x² dx should be x³/3, got %s", result.String())
	}
}

func TestIntegrate_Reciprocal(t *testing.T) {
	result, ok := symbol.Integrate(symbol.Power(symbol.Var("x"), symbol.Int(-1)), "x")
	if !ok {
		t.Fatal("∫1/x dx should succeed")
	}
	if !result.Equal(symbol.Ln(symbol.Abs(symbol.Var("x")))) {
		t.Errorf("∫1/x dx should be ln(abs(x)), got %s", result.String())
	}
}

func TestIntegrate_Sine(t *testing.T) {
	result, ok := symbol.Integrate(symbol.Sin(symbol.Var("x")), "x")
	if !ok {
		t.Fatal("∫sin(x) dx should succeed")
	}
	if !result.Equal(symbol.Neg(symbol.Cos(symbol.Var("x")))) {
		t.Errorf("∫sin(x) dx should be -cos(x), got %s", result.String())
	}
}

func TestIntegrate_NoClosedForm(t *testing.T) {
	// exp(x²) has no elementary antiderivative and no matching rule.
	e := symbol.Exp(symbol.Power(symbol.Var("x"), symbol.Int(2)))
	if _, ok := symbol.Integrate(e, "x"); ok {
		t.Error("∫exp(x²) dx should report no closed form")
	}
}

func TestIntegrateDefinite_Parabola(t *testing.T) {
	e := symbol.Power(symbol.Var("x"), symbol.Int(2))
	result, ok := symbol.IntegrateDefinite(e, "x", symbol.Int(-1), symbol.Int(1))
	if !ok {
		t.Fatal("definite ∫x² dx should succeed")
	}
	if !result.Equal(symbol.Rat(2, 3)) {
		t.Errorf("∫_{-1}^{1} x² dx should be 2/3, got %s", result.String())
	}
}

func TestDoubleIntegral_Paraboloid(t *testing.T) {
	e, err := symbol.Parse("x**2 + y**2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	result, ok := symbol.DoubleIntegral(e, "x", "y",
		symbol.Int(-1), symbol.Int(1), symbol.Int(-1), symbol.Int(1))
	if !ok {
		t.Fatal("double integral of x²+y² should succeed")
	}
	if !result.Equal(symbol.Rat(8, 3)) {
		t.Errorf("∫∫(x²+y²) over [-1,1]² should be 8/3, got %s", result.String())
	}
}

// ============================================================
// Limit tests
// ============================================================

func TestLimit_DirectSubstitution(t *testing.T) {
	e, _ := symbol.Parse("x**2 + 1")
	res := symbol.Limit(e, "x", symbol.Int(2))
	if !res.Success || res.Value.String() != "5" {
		t.Errorf("lim x²+1 at 2 should be 5, got %+v", res)
	}
}

func TestLimit_LHopital(t *testing.T) {
	e, _ := symbol.Parse("sin(x)/x")
	res := symbol.Limit(e, "x", symbol.Int(0))
	if !res.Success {
		t.Fatalf("lim sin(x)/x at 0 should succeed: %s", res.Error)
	}
	f, ok := res.Value.Fold()
	if !ok || math.Abs(f.Float64()-1) > 1e-9 {
		t.Errorf("lim sin(x)/x at 0 should be 1, got %s", res.Value.String())
	}
}

func TestLimit_SymbolicRemainder(t *testing.T) {
	e, _ := symbol.Parse("x + y")
	res := symbol.Limit(e, "x", symbol.Int(0))
	if !res.Success || res.Value.String() != "y" {
		t.Errorf("lim_{x→0}(x+y) should be y, got %+v", res)
	}
}

func TestLimit_Sequential(t *testing.T) {
	e, _ := symbol.Parse("x + y")
	first := symbol.Limit(e, "x", symbol.Int(0))
	if !first.Success {
		t.Fatalf("first limit failed: %s", first.Error)
	}
	second := symbol.Limit(first.Value, "y", symbol.Int(0))
	if !second.Success || second.Value.String() != "0" {
		t.Errorf("sequential limit of x+y should be 0, got %+v", second)
	}
}

func TestLimit_DivergentFails(t *testing.T) {
	e, _ := symbol.Parse("1/x")
	res := symbol.Limit(e, "x", symbol.Int(0))
	if res.Success {
		t.Errorf("lim 1/x at 0 should fail, got %s", res.Value.String())
	}
}

// ============================================================
// Pretty-printer tests
// ============================================================

func TestPretty_Superscript(t *testing.T) {
	e, _ := symbol.Parse("x**2")
	if got := symbol.Pretty(e); got != "x²" {
		t.Errorf("want x², got %s", got)
	}
}

func TestPretty_ProductDot(t *testing.T) {
	e := symbol.Prod(symbol.Int(2), symbol.Var("x"))
	if got := symbol.Pretty(e); got != "2·x" {
		t.Errorf("want 2·x, got %s", got)
	}
}

func TestPretty_Quotient(t *testing.T) {
	e := symbol.Quot(symbol.Sin(symbol.Var("x")), symbol.Var("x"))
	if got := symbol.Pretty(e); got != "sin(x)/x" {
		t.Errorf("want sin(x)/x, got %s", got)
	}
}
