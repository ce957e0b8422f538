package arithma

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Sin returns the sine of c, with c in radians.
func (c Complex) Sin() Complex {
	a, b := c.parts()
	p := c.Prec()
	s, k := sincos(a, p)
	if b.Sign() == 0 {
		return Complex{re: s, im: nf(p)}
	}
	sh, ch := sinhcosh(b, p)
	return Complex{re: s.Mul(s, ch), im: k.Mul(k, sh)}
}

// Cos returns the cosine of c, with c in radians.
func (c Complex) Cos() Complex {
	a, b := c.parts()
	p := c.Prec()
	s, k := sincos(a, p)
	if b.Sign() == 0 {
		return Complex{re: k, im: nf(p)}
	}
	sh, ch := sinhcosh(b, p)
	s.Mul(s, sh)
	return Complex{re: k.Mul(k, ch), im: s.Neg(s)}
}

// Tan returns the tangent of c, with c in radians.
func (c Complex) Tan() Complex {
	wp := guard(c.Prec())
	w := c.WithPrec(wp)
	return w.Sin().Quo(w.Cos()).WithPrec(c.Prec())
}

// Asin returns the principal arcsine of c in radians.
func (c Complex) Asin() Complex {
	a, b := c.parts()
	p := c.Prec()
	if b.Sign() == 0 && nf(p).Abs(a).Cmp(one) <= 0 {
		// asin a = atan2(a, sqrt(1 - a²))
		wp := guard(p)
		t := nf(wp).Mul(a, a)
		t.Sub(one, t)
		t.Sqrt(t)
		return Complex{re: atan2(a, t, p), im: nf(p)}
	}
	// -i ln(iz + sqrt(1 - z²))
	w := c.WithPrec(guard(p))
	iz := Complex{re: nf(w.Prec()).Neg(w.im), im: w.re}
	r := Float(1, 0, w.Prec()).Sub(w.Mul(w)).Sqrt()
	l := iz.Add(r).Log()
	return Complex{re: l.im, im: l.re.Neg(l.re)}.WithPrec(p)
}

// Acos returns the principal arccosine of c in radians.
func (c Complex) Acos() Complex {
	p := c.Prec()
	h := pi(guard(p))
	h.Mul(h, half)
	return Real(h).Sub(c.WithPrec(guard(p)).Asin()).WithPrec(p)
}

// Atan returns the principal arctangent of c in radians.
func (c Complex) Atan() Complex {
	a, b := c.parts()
	p := c.Prec()
	if b.Sign() == 0 {
		return Complex{re: atan(a, p), im: nf(p)}
	}
	// i/2 (ln(1 - iz) - ln(1 + iz))
	w := c.WithPrec(guard(p))
	wp := w.Prec()
	u := Complex{re: nf(wp).Add(one, w.im), im: nf(wp).Neg(w.re)}
	v := Complex{re: nf(wp).Sub(one, w.im), im: nf(wp).Set(w.re)}
	l := u.Log().Sub(v.Log())
	re := nf(wp).Mul(l.im, half)
	return Complex{re: re.Neg(re), im: nf(wp).Mul(l.re, half)}.WithPrec(p)
}

// Sinh returns the hyperbolic sine of c.
func (c Complex) Sinh() Complex {
	a, b := c.parts()
	p := c.Prec()
	if b.Sign() == 0 {
		s, _ := sinhcosh(a, p)
		return Complex{re: s, im: nf(p)}
	}
	// sinh(a+bi) = sinh a cos b + i cosh a sin b
	sh, ch := sinhcosh(a, p)
	s, k := sincos(b, p)
	return Complex{re: sh.Mul(sh, k), im: ch.Mul(ch, s)}
}

// Cosh returns the hyperbolic cosine of c.
func (c Complex) Cosh() Complex {
	a, b := c.parts()
	p := c.Prec()
	if b.Sign() == 0 {
		_, ch := sinhcosh(a, p)
		return Complex{re: ch, im: nf(p)}
	}
	// cosh(a+bi) = cosh a cos b + i sinh a sin b
	sh, ch := sinhcosh(a, p)
	s, k := sincos(b, p)
	return Complex{re: ch.Mul(ch, k), im: sh.Mul(sh, s)}
}

// Tanh returns the hyperbolic tangent of c.
func (c Complex) Tanh() Complex {
	w := c.WithPrec(guard(c.Prec()))
	return w.Sinh().Quo(w.Cosh()).WithPrec(c.Prec())
}

// Asinh returns the principal inverse hyperbolic sine of c.
func (c Complex) Asinh() Complex {
	p := c.Prec()
	w := c.WithPrec(guard(p))
	if w.im.Sign() == 0 && w.re.Sign() < 0 {
		return w.Neg().Asinh().Neg().WithPrec(p)
	}
	// ln(z + sqrt(z² + 1))
	r := w.Mul(w).Add(Float(1, 0, w.Prec())).Sqrt()
	return w.Add(r).Log().WithPrec(p)
}

// Acosh returns the principal inverse hyperbolic cosine of c.
func (c Complex) Acosh() Complex {
	p := c.Prec()
	w := c.WithPrec(guard(p))
	o := Float(1, 0, w.Prec())
	// ln(z + sqrt(z + 1) sqrt(z - 1))
	r := w.Add(o).Sqrt().Mul(w.Sub(o).Sqrt())
	return w.Add(r).Log().WithPrec(p)
}

// Atanh returns the principal inverse hyperbolic tangent of c.
func (c Complex) Atanh() Complex {
	p := c.Prec()
	w := c.WithPrec(guard(p))
	o := Float(1, 0, w.Prec())
	// ln((1 + z) / (1 - z)) / 2
	l := o.Add(w).Quo(o.Sub(w)).Log()
	return l.Scale(half).WithPrec(p)
}

// Log10 returns the principal common logarithm of c.
func (c Complex) Log10() Complex {
	p := c.Prec()
	wp := guard(p)
	l := bigfloat.Log(nf(wp), nf(wp).SetInt64(10))
	return c.WithPrec(wp).Log().Quo(Real(l)).WithPrec(p)
}

// Floor rounds both parts of c toward negative infinity.
func (c Complex) Floor() Complex {
	a, b := c.parts()
	return Complex{re: floor(a), im: floor(b)}
}

// Ceil rounds both parts of c toward positive infinity.
func (c Complex) Ceil() Complex {
	a, b := c.parts()
	return Complex{re: ceil(a), im: ceil(b)}
}

func degToRad(c Complex) Complex {
	wp := guard(c.Prec())
	k := pi(wp)
	k.Quo(k, big.NewFloat(180))
	return c.WithPrec(wp).Scale(k)
}

func radToDeg(c Complex) Complex {
	wp := guard(c.Prec())
	k := nf(wp).SetInt64(180)
	k.Quo(k, pi(wp))
	return c.WithPrec(wp).Scale(k).WithPrec(c.Prec())
}
