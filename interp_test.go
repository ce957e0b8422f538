package arithma_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/arithma"
)

func TestEvalString(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		re, im float64
		unit   string
	}{
		// literals
		{"int", "12", 12, 0, ""},
		{"real", "1.5", 1.5, 0, ""},
		{"point", ".25", 0.25, 0, ""},
		{"imaginary", "2i", 0, 2, ""},
		{"i", "i", 0, 1, ""},
		// precedence
		{"add", "1+2", 3, 0, ""},
		{"sub", "5 - 7", -2, 0, ""},
		{"minus", "5 − 7", -2, 0, ""},
		{"mul", "2×3", 6, 0, ""},
		{"div", "1÷4", 0.25, 0, ""},
		{"ascii", "6*7/2", 21, 0, ""},
		{"addmul", "1+2×3", 7, 0, ""},
		{"muladd", "2×3+1", 7, 0, ""},
		{"pow", "2^10", 1024, 0, ""},
		{"powleft", "2^3^2", 64, 0, ""},
		{"powmul", "2×3^2", 18, 0, ""},
		{"subsub", "10-3-2", 5, 0, ""},
		{"divdiv", "16/4/2", 2, 0, ""},
		{"parens", "(1+2)×3", 9, 0, ""},
		{"nested", "((2))", 2, 0, ""},
		{"unclosed", "(1+2", 3, 0, ""},
		// unary
		{"neg", "-3", -3, 0, ""},
		{"negpow", "-2^2", 4, 0, ""},
		{"plus", "+3", 3, 0, ""},
		{"negparens", "-(1+2)", -3, 0, ""},
		{"negrhs", "2×-3", -6, 0, ""},
		// implicit multiplication
		{"juxtapose", "2 3", 6, 0, ""},
		{"juxtapow", "2 3^2", 18, 0, ""},
		{"juxtaparens", "2(3)+4", 10, 0, ""},
		{"parensparens", "(1+1)(2+2)", 8, 0, ""},
		{"juxtaconst", "2π", 6.283185307179586, 0, ""},
		{"complexmul", "(1+2i)(1-2i)", 5, 0, ""},
		// e-notation
		{"enotation", "2e3", 2000, 0, ""},
		{"enegative", "1.5e-3", 0.0015, 0, ""},
		{"ebinds", "2e3^2", 4e6, 0, ""},
		// superscripts
		{"square", "3²", 9, 0, ""},
		{"cube", "2³+1", 9, 0, ""},
		{"negexp", "2⁻¹", 0.5, 0, ""},
		{"isquared", "i²", -1, 0, ""},
		// functions
		{"sin", "sin(30)", 0.5, 0, ""},
		{"cos", "cos(60)", 0.5, 0, ""},
		{"asin", "asin(0.5)", 30, 0, ""},
		{"sqrt", "sqrt(-4)", 0, 2, ""},
		{"ln", "ln(1)", 0, 0, ""},
		{"lg", "lg(100)", 2, 0, ""},
		{"abs", "abs(3+4i)", 5, 0, ""},
		{"funcmul", "2 sqrt(9)", 6, 0, ""},
		{"funcpow", "sqrt(4)^3", 8, 0, ""},
		{"floor", "floor(2.7)", 2, 0, ""},
		// units
		{"unit", "3 km", 3, 0, "km"},
		{"unitsum", "3 km + 200 m", 3200, 0, "m"},
		{"unitdiff", "1 hr - 30 min", 30, 0, "min"},
		{"unitprod", "2 m × 3 m", 6, 0, "m^2"},
		{"unitquo", "10 m / 2 s", 5, 0, "m s^-1"},
		{"unitpow", "2 m^2", 2, 0, "m^2"},
		{"unitsuper", "9.8 m s⁻²", 9.8, 0, "m s^-2"},
		{"unitcancel", "6 m / 2 m", 3, 0, ""},
		{"unitsquare", "(3 m)^2", 9, 0, "m^2"},
		{"bareunit", "kg", 1, 0, "kg"},
		{"unitfunc", "sqrt(16) s", 4, 0, "s"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			v, err := arithma.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", c.src, err)
			}
			if !near(v.Num, c.re, c.im, 1e-9) {
				t.Errorf("%q: want %g%+gi, got %v", c.src, c.re, c.im, v.Num)
			}
			if got := v.Unit.String(); got != c.unit {
				t.Errorf("%q: want unit %q, got %q", c.src, c.unit, got)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		col  int
	}{
		{"empty", "", &arithma.ParseError{Kind: arithma.ExpectedExpression}, 0},
		{"dangling", "1 +", &arithma.ParseError{Kind: arithma.ExpectedExpression}, 4},
		{"emptyparens", "()", &arithma.ParseError{Kind: arithma.ExpectedExpression}, 2},
		{"close", "(1+2))", &arithma.ParseError{Kind: arithma.ExpectedOperator}, 7},
		{"unclosed", "((1", &arithma.ParseError{Kind: arithma.ExpectedCharacter}, 4},
		{"operator", "1 × × 2", &arithma.ParseError{Kind: arithma.UnknownOperator}, 5},
		{"unknown", "2 x", &arithma.ParseError{Kind: arithma.UnknownSymbol}, 3},
		{"noparens", "sin 30", &arithma.ParseError{Kind: arithma.ExpectedCharacter}, 5},
		{"unitfrac", "m^1.5", &arithma.ParseError{Kind: arithma.ExpectedInteger}, 3},
		{"unitunit", "m^(2 s)", &arithma.ParseError{Kind: arithma.UnexpectedUnit}, 3},
		{"mismatch", "1 m + 1 s", &arithma.OperationError{Kind: arithma.UnitConversionFailed}, 5},
		{"unitexp", "2^(1 m)", &arithma.OperationError{Kind: arithma.UnexpectedOperandUnit}, 2},
		{"unitenotation", "2e(1 m)", &arithma.OperationError{Kind: arithma.UnexpectedOperandUnit}, 2},
		{"divzero", "1/0", &arithma.OperationError{Kind: arithma.MathError}, 2},
		{"logzero", "ln(0)", &arithma.OperationError{Kind: arithma.MathError}, 1},
		{"zeropow", "0^-1", &arithma.OperationError{Kind: arithma.MathError}, 2},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := arithma.EvalString(c.src)
			if !errors.Is(err, c.err) {
				t.Fatalf("%q: wrong error: want %v, got %v", c.src, c.err, err)
			}
			var ie arithma.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %v is not an InputError", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: wrong column: want %d, got %d (%v)", c.src, c.col, ie.Pos(), err)
			}
		})
	}
}

func TestRadians(t *testing.T) {
	env := arithma.NewEnvironment()
	in := env.NewInterpreter()
	rad := arithma.EvalContext{Radians: true}
	v, err := in.EvaluateString(rad, "sin(π/2)")
	if err != nil {
		t.Fatal(err)
	}
	if !near(v.Num, 1, 0, 1e-12) {
		t.Errorf("sin(π/2): want 1, got %v", v.Num)
	}
	v, err = in.EvaluateString(rad, "atan(1)")
	if err != nil {
		t.Fatal(err)
	}
	if !near(v.Num, 0.7853981633974483, 0, 1e-12) {
		t.Errorf("atan(1): want π/4, got %v", v.Num)
	}
}

func TestEval(t *testing.T) {
	v, err := arithma.Eval(strings.NewReader("x + 1"), arithma.SetVar("x", arithma.Scalar(cx(2, 0))))
	if err != nil {
		t.Fatal(err)
	}
	if !near(v.Num, 3, 0, 0) {
		t.Errorf("want 3, got %v", v)
	}
}

func TestLinkEval(t *testing.T) {
	reg := arithma.DefaultUnits()
	w := arithma.Value{Num: cx(0.5, 0), Unit: arithma.UnitOf(reg.Lookup("km"), 1)}
	v, err := arithma.EvalString("4" + arithma.EncodeLink(w) + " + 1 m")
	if err != nil {
		t.Fatal(err)
	}
	if !near(v.Num, 2001, 0, 1e-12) || v.Unit.String() != "m" {
		t.Errorf("want 2001 m, got %v", v)
	}
}

func TestPrecision(t *testing.T) {
	v, err := arithma.EvalString("1/3", arithma.Prec(256))
	if err != nil {
		t.Fatal(err)
	}
	if v.Num.Prec() != 256 {
		t.Errorf("wrong precision: want 256, got %d", v.Num.Prec())
	}
	got := v.Num.Text(60, false)
	want := "0." + strings.Repeat("3", 60)
	if got != want {
		t.Errorf("wrong digits:\nwant %s\ngot  %s", want, got)
	}
}
