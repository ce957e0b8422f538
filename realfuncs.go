package arithma

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Real-valued elementary functions not provided by bigfloat. Each evaluates
// its series at a working precision above the requested one and rounds the
// result back down.

func guard(prec uint) uint {
	return prec + 64
}

func ulp(prec uint) *big.Float {
	return new(big.Float).SetMantExp(one, -int(prec))
}

// sincos returns sin x and cos x to prec bits.
func sincos(x *big.Float, prec uint) (sin, cos *big.Float) {
	if x.Sign() == 0 {
		return nf(prec), nf(prec).SetInt64(1)
	}
	if x.IsInf() {
		panic(DomainError{X: Real(x), Func: "sin"})
	}
	wp := guard(prec)
	if e := x.MantExp(nil); e > 0 {
		wp += uint(e)
	}
	r := nf(wp).Set(x)
	tau := pi(wp)
	tau.Mul(tau, two)
	q := nf(wp).Quo(r, tau)
	if k, _ := q.Int(nil); k.Sign() != 0 {
		kf := nf(wp).SetInt(k)
		r.Sub(r, kf.Mul(kf, tau))
	}
	r2 := nf(wp).Mul(r, r)
	s, c := nf(wp).Set(r), nf(wp).SetInt64(1)
	st, ct := nf(wp).Set(r), nf(wp).SetInt64(1)
	eps := ulp(wp)
	d := nf(wp)
	for n := int64(1); ; n++ {
		ct.Mul(ct, r2)
		ct.Quo(ct, d.SetInt64((2*n-1)*(2*n)))
		ct.Neg(ct)
		c.Add(c, ct)
		st.Mul(st, r2)
		st.Quo(st, d.SetInt64((2*n)*(2*n+1)))
		st.Neg(st)
		s.Add(s, st)
		if absLess(st, eps) && absLess(ct, eps) {
			break
		}
	}
	return nf(prec).Set(s), nf(prec).Set(c)
}

// sinhcosh returns sinh x and cosh x to prec bits.
func sinhcosh(x *big.Float, prec uint) (sinh, cosh *big.Float) {
	if x.Sign() == 0 {
		return nf(prec), nf(prec).SetInt64(1)
	}
	wp := guard(prec)
	if e := x.MantExp(nil); e < 0 {
		wp += uint(-e)
	}
	e := bigfloat.Exp(nf(wp), nf(wp).Set(x))
	ei := nf(wp).Quo(one, e)
	s := nf(wp).Sub(e, ei)
	c := nf(wp).Add(e, ei)
	s.Mul(s, half)
	c.Mul(c, half)
	return nf(prec).Set(s), nf(prec).Set(c)
}

// atan returns the arctangent of x in radians to prec bits.
func atan(x *big.Float, prec uint) *big.Float {
	if x.Sign() == 0 {
		return nf(prec)
	}
	wp := guard(prec)
	if x.IsInf() {
		h := pi(wp)
		h.Mul(h, half)
		if x.Sign() < 0 {
			h.Neg(h)
		}
		return nf(prec).Set(h)
	}
	t := nf(wp).Abs(x)
	inv := t.Cmp(one) > 0
	if inv {
		t.Quo(one, t)
	}
	// atan t = 2 atan(t / (1 + sqrt(1 + t²)))
	var k int
	d := nf(wp)
	for t.Cmp(eighth) > 0 {
		d.Mul(t, t)
		d.Add(d, one)
		d.Sqrt(d)
		d.Add(d, one)
		t.Quo(t, d)
		k++
	}
	t2 := nf(wp).Mul(t, t)
	sum := nf(wp).Set(t)
	pw := nf(wp).Set(t)
	term := nf(wp)
	eps := ulp(wp)
	for n := int64(1); ; n++ {
		pw.Mul(pw, t2)
		pw.Neg(pw)
		term.Quo(pw, d.SetInt64(2*n+1))
		sum.Add(sum, term)
		if absLess(term, eps) {
			break
		}
	}
	sum.SetMantExp(sum, k)
	if inv {
		h := pi(wp)
		h.Mul(h, half)
		sum.Sub(h, sum)
	}
	if x.Sign() < 0 {
		sum.Neg(sum)
	}
	return nf(prec).Set(sum)
}

var eighth = big.NewFloat(0.125)

// atan2 returns the angle of the point (x, y) in (-π, π].
func atan2(y, x *big.Float, prec uint) *big.Float {
	switch x.Sign() {
	case 1:
		return atan(nf(guard(prec)).Quo(y, x), prec)
	case -1:
		wp := guard(prec)
		a := atan(nf(wp).Quo(y, x), wp)
		if y.Sign() >= 0 {
			a.Add(a, pi(wp))
		} else {
			a.Sub(a, pi(wp))
		}
		return nf(prec).Set(a)
	}
	h := pi(prec)
	h.Mul(h, half)
	switch y.Sign() {
	case 1:
		return h
	case -1:
		return h.Neg(h)
	}
	return nf(prec)
}

// floor returns the greatest integer not greater than x.
func floor(x *big.Float) *big.Float {
	if x.IsInf() || x.IsInt() {
		return nf(x.Prec()).Set(x)
	}
	i, _ := x.Int(nil)
	if x.Sign() < 0 {
		i.Sub(i, big.NewInt(1))
	}
	return nf(x.Prec()).SetInt(i)
}

// ceil returns the least integer not less than x.
func ceil(x *big.Float) *big.Float {
	r := floor(nf(x.Prec()).Neg(x))
	return r.Neg(r)
}
