package arithma

import (
	"errors"
	"math/big"
)

// ErrZeroPolynomial is the error from creating a polynomial with no
// coefficients or only a zero constant.
var ErrZeroPolynomial = errors.New("arithma: the zero polynomial has no defined roots")

// Polynomial is a polynomial with real coefficients, ordered from the
// coefficient of the highest-degree term to the constant term.
type Polynomial struct {
	coeffs []*big.Float
	prec   uint
}

// NewPolynomial creates a polynomial from copies of its coefficients, highest
// degree first. The precision of the polynomial is the greatest precision of
// its coefficients, or DefaultPrec if that is greater.
func NewPolynomial(coeffs ...*big.Float) (*Polynomial, error) {
	p := uint(DefaultPrec)
	for _, c := range coeffs {
		if c.Prec() > p {
			p = c.Prec()
		}
	}
	if len(coeffs) == 0 || len(coeffs) == 1 && isZero(coeffs[0], p) {
		return nil, ErrZeroPolynomial
	}
	r := make([]*big.Float, len(coeffs))
	for i, c := range coeffs {
		r[i] = nf(p).Set(c)
	}
	return &Polynomial{coeffs: r, prec: p}, nil
}

// PolynomialFromValues creates a polynomial from evaluated coefficients,
// highest degree first. Every value must be dimensionless and real.
func PolynomialFromValues(vals []Value) (*Polynomial, error) {
	coeffs := make([]*big.Float, len(vals))
	for i, v := range vals {
		if v.HasUnit() {
			return nil, &ParseError{Kind: UnexpectedUnit}
		}
		if !v.Num.IsReal() {
			return nil, &OperationError{Kind: MathError, Op: "only real coefficients"}
		}
		coeffs[i] = v.Num.Re()
	}
	return NewPolynomial(coeffs...)
}

// poly creates a polynomial for the solver's recursive cases. It does not
// reject the zero polynomial.
func (p *Polynomial) poly(coeffs ...*big.Float) *Polynomial {
	return &Polynomial{coeffs: coeffs, prec: p.prec}
}

// Degree returns the degree of p, which is one less than the number of
// coefficients. Leading zero coefficients are counted.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns copies of the coefficients of p, highest degree first.
func (p *Polynomial) Coefficients() []*big.Float {
	r := make([]*big.Float, len(p.coeffs))
	for i, c := range p.coeffs {
		r[i] = nf(p.prec).Set(c)
	}
	return r
}

// Eval evaluates p at x by Horner's rule.
func (p *Polynomial) Eval(x Complex) Complex {
	return horner(realsToComplex(p.coeffs), x)
}

func horner(coeffs []Complex, x Complex) Complex {
	r := coeffs[0]
	for _, c := range coeffs[1:] {
		r = r.Mul(x).Add(c)
	}
	return r
}

func realsToComplex(xs []*big.Float) []Complex {
	r := make([]Complex, len(xs))
	for i, x := range xs {
		r[i] = Real(x)
	}
	return r
}

// Roots finds the roots of p, with multiplicity. Polynomials of degree at
// most 4 are solved in closed form if preferClosedForm is true. Otherwise, or
// for higher degrees, the roots are approximated by the Durand-Kerner method,
// which stops after 1000 iterations even if it has not converged.
//
// Leading coefficients within epsilon of zero are ignored, so the number of
// roots may be less than Degree. A constant polynomial has no roots.
func (p *Polynomial) Roots(preferClosedForm bool) []Complex {
	p = p.trimmed()
	if p.Degree() < 1 {
		return nil
	}
	if preferClosedForm {
		switch p.Degree() {
		case 1:
			return p.linear()
		case 2:
			return p.quadratic()
		case 3:
			return p.cubic()
		case 4:
			return p.quartic()
		}
	}
	return p.durandKerner()
}

// trimmed returns p without its leading zero coefficients.
func (p *Polynomial) trimmed() *Polynomial {
	k := 0
	for k < len(p.coeffs)-1 && p.zero(p.coeffs[k]) {
		k++
	}
	if k == 0 {
		return p
	}
	return p.poly(p.coeffs[k:]...)
}

func (p *Polynomial) zero(x *big.Float) bool {
	return isZero(x, p.prec)
}

func (p *Polynomial) num(f float64) *big.Float {
	return nf(p.prec).SetFloat64(f)
}

func (p *Polynomial) add(x, y *big.Float) *big.Float { return nf(p.prec).Add(x, y) }
func (p *Polynomial) sub(x, y *big.Float) *big.Float { return nf(p.prec).Sub(x, y) }
func (p *Polynomial) mul(x, y *big.Float) *big.Float { return nf(p.prec).Mul(x, y) }
func (p *Polynomial) quo(x, y *big.Float) *big.Float { return nf(p.prec).Quo(x, y) }

func (p *Polynomial) linear() []Complex {
	a, b := p.coeffs[0], p.coeffs[1]
	if p.zero(a) {
		return nil
	}
	x := p.quo(b, a)
	return []Complex{Real(x.Neg(x))}
}

func (p *Polynomial) quadratic() []Complex {
	a, b, c := p.coeffs[0], p.coeffs[1], p.coeffs[2]
	if p.zero(a) {
		return p.poly(b, c).Roots(true)
	}
	if p.zero(c) {
		return append([]Complex{Float(0, 0, p.prec)}, p.poly(a, b).Roots(true)...)
	}
	disc := p.sub(p.mul(b, b), p.mul(p.num(4), p.mul(a, c)))
	d := Real(disc).Sqrt()
	if b.Sign() < 0 {
		d = d.Neg()
	}
	// x1 takes the root without cancellation; x2 follows from x1 x2 = c/a.
	x1 := Real(b).Add(d).Neg().Quo(Real(p.mul(p.num(2), a)))
	x2 := Real(c).Quo(Real(a).Mul(x1))
	return []Complex{x1, x2}
}

func (p *Polynomial) cubic() []Complex {
	a, b, c, d := p.coeffs[0], p.coeffs[1], p.coeffs[2], p.coeffs[3]
	if p.zero(a) {
		return p.poly(b, c, d).Roots(true)
	}
	if p.zero(d) {
		return append([]Complex{Float(0, 0, p.prec)}, p.poly(a, b, c).Roots(true)...)
	}
	if a.Cmp(one) != 0 {
		b, c, d = p.quo(b, a), p.quo(c, a), p.quo(d, a)
	}
	b2 := p.mul(b, b)
	b3 := p.mul(b2, b)
	d0 := p.sub(b2, p.mul(p.num(3), c))
	bc9 := p.mul(p.num(9), p.mul(b, c))
	d1 := p.add(p.sub(p.mul(p.num(2), b3), bc9), p.mul(p.num(27), d))
	disc := p.sub(p.mul(d1, d1), p.mul(p.num(4), p.mul(d0, p.mul(d0, d0))))
	sq := Real(disc).Sqrt()
	third := p.quo(one, p.num(3))

	switch d0z, dz := p.zero(d0), p.zero(disc); {
	case d0z && dz:
		x := p.mul(third, b)
		r := Real(x.Neg(x))
		return []Complex{r, r, r}
	case dz:
		d9 := p.mul(p.num(9), d)
		bc4 := p.mul(p.num(4), p.mul(b, c))
		x12 := p.quo(p.sub(d9, p.mul(b, c)), p.mul(p.num(2), d0))
		x3 := p.quo(p.sub(p.sub(bc4, d9), b3), d0)
		return []Complex{Real(x12), Real(x12), Real(x3)}
	case d0z:
		if Real(d1).Add(sq).IsZero() {
			sq = sq.Neg()
		}
	}
	k := Real(d1).Add(sq).Scale(half).Pow(Real(third))
	h := nf(p.prec).Sqrt(p.num(3))
	h.Mul(h, half)
	u2 := Complex{re: p.num(-0.5), im: h}
	u3 := u2.Conj()
	bc, d0c := Real(b), Real(d0)
	r := make([]Complex, 0, 3)
	for _, t := range []Complex{k, u2.Mul(k), u3.Mul(k)} {
		x := bc.Add(t).Add(d0c.Quo(t))
		r = append(r, x.Scale(third).Neg())
	}
	return r
}

func (p *Polynomial) quartic() []Complex {
	a, b, c, d, e := p.coeffs[0], p.coeffs[1], p.coeffs[2], p.coeffs[3], p.coeffs[4]
	if p.zero(a) {
		return p.poly(b, c, d, e).Roots(true)
	}
	if p.zero(e) {
		return append([]Complex{Float(0, 0, p.prec)}, p.poly(a, b, c, d).Roots(true)...)
	}
	if p.zero(b) && p.zero(d) {
		return bothRoots(p.poly(a, c, e).Roots(true), Complex{})
	}

	// Ferrari: depress to u⁴ + pu² + qu + r = 0 with x = u - a/4.
	a, b, c, d = p.quo(b, a), p.quo(c, a), p.quo(d, a), p.quo(e, a)
	a2 := p.mul(a, a)
	m3a2 := p.mul(p.num(-3), a2)
	shift := Real(p.quo(a, p.num(4)))
	dp := p.add(b, p.quo(m3a2, p.num(8)))
	dq := p.add(p.quo(p.sub(p.mul(a2, a), p.mul(p.num(4), p.mul(a, b))), p.num(8)), c)
	r1 := p.add(p.sub(p.mul(m3a2, a2), p.mul(p.num(64), p.mul(a, c))), p.mul(p.num(16), p.mul(a2, b)))
	dr := p.add(p.quo(r1, p.num(256)), d)

	if p.zero(dq) {
		return bothRoots(p.poly(p.num(1), dp, dr).Roots(true), shift)
	}

	// Resolvent cubic y³ + 5/2 p y² + (2p² - r) y + p(p² - r)/2 - q²/8.
	p2 := p.mul(dp, dp)
	cb := p.mul(p.num(2.5), dp)
	cc := p.sub(p.mul(p.num(2), p2), dr)
	cd := p.sub(p.mul(p.mul(half, dp), p.sub(p2, dr)), p.quo(p.mul(dq, dq), p.num(8)))
	var y, s Complex
	found := false
	for _, y = range p.poly(p.num(1), cb, cc, cd).Roots(true) {
		s = Real(dp).Add(y.Scale(two)).Sqrt()
		if !s.IsZero() {
			found = true
			break
		}
	}
	if !found {
		panic("arithma: quartic resolvent has no root with nonzero p+2y")
	}
	y2 := y.Scale(two)
	f := Real(p.mul(two, dq)).Quo(s)
	p3y2 := Real(p.mul(p.num(3), dp)).Add(y2)
	v := p3y2.Add(f).Neg().Sqrt()
	w := p3y2.Sub(f).Neg().Sqrt()
	return []Complex{
		s.Add(v).Scale(half).Sub(shift),
		s.Neg().Add(w).Scale(half).Sub(shift),
		s.Sub(v).Scale(half).Sub(shift),
		s.Neg().Sub(w).Scale(half).Sub(shift),
	}
}

// bothRoots returns ±√z - shift for each z in squares.
func bothRoots(squares []Complex, shift Complex) []Complex {
	r := make([]Complex, 0, 2*len(squares))
	for _, z := range squares {
		x := z.Sqrt()
		r = append(r, x.Sub(shift), x.Neg().Sub(shift))
	}
	return r
}

const dkIterations = 1000

func (p *Polynomial) durandKerner() []Complex {
	coeffs := realsToComplex(p.coeffs)
	if lead := coeffs[0]; !lead.Equal(Float(1, 0, p.prec)) {
		for i := range coeffs {
			coeffs[i] = coeffs[i].Quo(lead)
		}
	}
	n := len(coeffs) - 1
	seed := Float(0.4, 0.9, p.prec)
	guess := make([]Complex, n)
	guess[0] = Float(1, 0, p.prec)
	for i := 1; i < n; i++ {
		guess[i] = guess[i-1].Mul(seed)
	}
	eps := Epsilon(p.prec)
	next := make([]Complex, n)
	for k := 0; k < dkIterations; k++ {
		done := true
		for i, z := range guess {
			den := Float(1, 0, p.prec)
			for j, w := range guess {
				if i != j {
					den = den.Mul(z.Sub(w))
				}
			}
			if den.IsZero() {
				next[i] = z
				continue
			}
			next[i] = z.Sub(horner(coeffs, z).Quo(den))
			if next[i].Sub(z).Abs().Cmp(eps) > 0 {
				done = false
			}
		}
		guess, next = next, guess
		if done {
			break
		}
	}
	return guess
}
