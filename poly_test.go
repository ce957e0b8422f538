package arithma_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/arithma"
)

func polynomial(t *testing.T, coeffs ...float64) *arithma.Polynomial {
	t.Helper()
	c := make([]*big.Float, len(coeffs))
	for i, x := range coeffs {
		c[i] = big.NewFloat(x)
	}
	p, err := arithma.NewPolynomial(c...)
	if err != nil {
		t.Fatalf("creating polynomial %v: %v", coeffs, err)
	}
	return p
}

// sameRoots reports whether got and want are equal as multisets to within
// tol.
func sameRoots(got []arithma.Complex, want []complex128, tol float64) bool {
	if len(got) != len(want) {
		return false
	}
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, z := range got {
			if !used[i] && near(z, real(w), imag(w), tol) {
				used[i], found = true, true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestRoots(t *testing.T) {
	h := math.Sqrt(3) / 2
	cases := []struct {
		name   string
		coeffs []float64
		want   []complex128
	}{
		{"linear", []float64{2, -4}, []complex128{2}},
		{"quadratic", []float64{1, -3, 2}, []complex128{1, 2}},
		{"quadcomplex", []float64{1, 0, 1}, []complex128{1i, -1i}},
		{"quaddouble", []float64{1, -2, 1}, []complex128{1, 1}},
		{"quadzero", []float64{1, -1, 0}, []complex128{0, 1}},
		{"quadlead", []float64{0, 2, -4}, []complex128{2}},
		{"cubiclead", []float64{0, 0, 1, -3, 2}, []complex128{1, 2}},
		{"quinticlead", []float64{0, 0, 0, 0, 0, 1, -1}, []complex128{1}},
		{"constlead", []float64{0, 0, 3}, []complex128{}},
		{"quadcancel", []float64{1, 1e8, 1}, []complex128{-1e-8, -1e8}},
		{"cubic", []float64{1, -6, 11, -6}, []complex128{1, 2, 3}},
		{"cubicscaled", []float64{2, -12, 22, -12}, []complex128{1, 2, 3}},
		{"cubicunity", []float64{1, 0, 0, -1}, []complex128{1, complex(-0.5, h), complex(-0.5, -h)}},
		{"cubicneg", []float64{1, 0, 0, 1}, []complex128{-1, complex(0.5, h), complex(0.5, -h)}},
		{"cubictriple", []float64{1, -3, 3, -1}, []complex128{1, 1, 1}},
		{"cubicdouble", []float64{1, -4, 5, -2}, []complex128{1, 1, 2}},
		{"cubiczero", []float64{1, -3, 2, 0}, []complex128{0, 1, 2}},
		{"quartic", []float64{1, -1, -19, 49, -30}, []complex128{1, 2, 3, -5}},
		{"quarticsymmetric", []float64{1, -10, 35, -50, 24}, []complex128{1, 2, 3, 4}},
		{"biquadratic", []float64{1, 0, -5, 0, 4}, []complex128{1, -1, 2, -2}},
		{"quarticunity", []float64{1, 0, 0, 0, -1}, []complex128{1, -1, 1i, -1i}},
		{"quarticcomplex", []float64{1, 0, 0, 4, 3}, nil},
		{"quarticzero", []float64{1, -6, 11, -6, 0}, []complex128{0, 1, 2, 3}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			p := polynomial(t, c.coeffs...)
			for _, closed := range []bool{true, false} {
				got := p.Roots(closed)
				if c.want == nil {
					// Check by substitution.
					if len(got) != p.Degree() {
						t.Errorf("closed form %t: want %d roots, got %v", closed, p.Degree(), got)
					}
					for _, z := range got {
						if y := p.Eval(z); !near(y, 0, 0, 1e-9) {
							t.Errorf("closed form %t: p(%v) = %v", closed, z, y)
						}
					}
					continue
				}
				if c.name == "quadcancel" && !closed {
					continue
				}
				if !sameRoots(got, c.want, 1e-6) {
					t.Errorf("closed form %t: want %v, got %v", closed, c.want, got)
				}
			}
		})
	}
}

func TestRootsHighDegree(t *testing.T) {
	// (x-1)(x-2)(x-3)(x-4)(x-5)
	p := polynomial(t, 1, -15, 85, -225, 274, -120)
	for _, closed := range []bool{true, false} {
		got := p.Roots(closed)
		if !sameRoots(got, []complex128{1, 2, 3, 4, 5}, 1e-9) {
			t.Errorf("closed form %t: wrong roots %v", closed, got)
		}
	}
	// Sixth roots of unity.
	p = polynomial(t, 1, 0, 0, 0, 0, 0, -1)
	h := math.Sqrt(3) / 2
	want := []complex128{1, -1, complex(0.5, h), complex(0.5, -h), complex(-0.5, h), complex(-0.5, -h)}
	if got := p.Roots(true); !sameRoots(got, want, 1e-9) {
		t.Errorf("x⁶-1: wrong roots %v", got)
	}
	// (x-1)(x+2)(x-3)(x-0.5)(x²+x+1)
	p = polynomial(t, 1, -1.5, -5.5, 2, 1.5, 5.5, -3)
	want = []complex128{1, -2, 3, 0.5, complex(-0.5, h), complex(-0.5, -h)}
	if got := p.Roots(true); !sameRoots(got, want, 1e-6) {
		t.Errorf("mixed sextic: wrong roots %v", got)
	}
}

func TestPolynomialDegenerate(t *testing.T) {
	if _, err := arithma.NewPolynomial(); !errors.Is(err, arithma.ErrZeroPolynomial) {
		t.Errorf("no coefficients: want ErrZeroPolynomial, got %v", err)
	}
	if _, err := arithma.NewPolynomial(new(big.Float)); !errors.Is(err, arithma.ErrZeroPolynomial) {
		t.Errorf("zero constant: want ErrZeroPolynomial, got %v", err)
	}
	p := polynomial(t, 5)
	if p.Degree() != 0 {
		t.Errorf("wrong degree: %d", p.Degree())
	}
	if r := p.Roots(true); len(r) != 0 {
		t.Errorf("constant has roots %v", r)
	}
	if r := p.Roots(false); len(r) != 0 {
		t.Errorf("constant has iterative roots %v", r)
	}
}

func TestPolynomialEval(t *testing.T) {
	p := polynomial(t, 1, -3, 2)
	if y := p.Eval(cx(5, 0)); !near(y, 12, 0, 0) {
		t.Errorf("p(5): want 12, got %v", y)
	}
	if y := p.Eval(cx(0, 1)); !near(y, 1, -3, 0) {
		t.Errorf("p(i): want 1-3i, got %v", y)
	}
	c := p.Coefficients()
	c[0].SetInt64(100)
	if y := p.Eval(cx(5, 0)); !near(y, 12, 0, 0) {
		t.Errorf("Coefficients aliases the polynomial")
	}
}

func TestPolynomialFromValues(t *testing.T) {
	reg := arithma.DefaultUnits()
	vals := []arithma.Value{arithma.Scalar(cx(1, 0)), arithma.Scalar(cx(0, 0)), arithma.Scalar(cx(-4, 0))}
	p, err := arithma.PolynomialFromValues(vals)
	if err != nil {
		t.Fatal(err)
	}
	if !sameRoots(p.Roots(true), []complex128{2, -2}, 1e-12) {
		t.Errorf("x²-4: wrong roots %v", p.Roots(true))
	}
	vals[1] = arithma.Value{Num: cx(1, 0), Unit: arithma.UnitOf(reg.Lookup("m"), 1)}
	if _, err := arithma.PolynomialFromValues(vals); !errors.Is(err, &arithma.ParseError{Kind: arithma.UnexpectedUnit}) {
		t.Errorf("unit coefficient: want unexpected unit, got %v", err)
	}
	vals[1] = arithma.Scalar(cx(1, 1))
	if _, err := arithma.PolynomialFromValues(vals); !errors.Is(err, &arithma.OperationError{Kind: arithma.MathError}) {
		t.Errorf("complex coefficient: want math error, got %v", err)
	}
	if _, err := arithma.PolynomialFromValues(nil); !errors.Is(err, arithma.ErrZeroPolynomial) {
		t.Errorf("no values: want ErrZeroPolynomial, got %v", err)
	}
}
