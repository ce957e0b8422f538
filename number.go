package arithma

import (
	"math/big"
	"strings"
	"sync"

	"github.com/zephyrtronium/bigfloat"
)

// DefaultPrec is the precision in bits of numbers whose precision is not
// otherwise specified.
const DefaultPrec = 128

// Complex is an arbitrary-precision complex number. Complex values are
// immutable; every operation returns a new value. The zero value is 0.
//
// Operations which are undefined for their arguments, such as division by
// zero or the logarithm of zero, panic with a DomainError or big.ErrNaN.
// Value recovers those panics into an OperationError.
type Complex struct {
	re, im *big.Float
}

func nf(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

var (
	one  = big.NewFloat(1)
	two  = big.NewFloat(2)
	half = big.NewFloat(0.5)
)

// NewComplex creates a complex number from copies of its real and imaginary
// parts. A nil part is zero.
func NewComplex(re, im *big.Float) Complex {
	p := uint(DefaultPrec)
	if re != nil && re.Prec() > 0 {
		p = re.Prec()
	}
	if im != nil && im.Prec() > p {
		p = im.Prec()
	}
	c := Complex{re: nf(p), im: nf(p)}
	if re != nil {
		c.re.Set(re)
	}
	if im != nil {
		c.im.Set(im)
	}
	return c
}

// Real creates a real number from a copy of x.
func Real(x *big.Float) Complex {
	return NewComplex(x, nil)
}

// Float creates a complex number from float64 parts at the given precision.
// A precision of 0 means DefaultPrec.
func Float(re, im float64, prec uint) Complex {
	if prec == 0 {
		prec = DefaultPrec
	}
	return Complex{re: nf(prec).SetFloat64(re), im: nf(prec).SetFloat64(im)}
}

// I returns the imaginary unit at the given precision.
func I(prec uint) Complex {
	return Float(0, 1, prec)
}

func (c Complex) parts() (re, im *big.Float) {
	re, im = c.re, c.im
	if re == nil {
		re = nf(c.Prec())
	}
	if im == nil {
		im = nf(c.Prec())
	}
	return re, im
}

// Prec returns the precision of c in bits.
func (c Complex) Prec() uint {
	var p uint
	if c.re != nil {
		p = c.re.Prec()
	}
	if c.im != nil && c.im.Prec() > p {
		p = c.im.Prec()
	}
	if p == 0 {
		p = DefaultPrec
	}
	return p
}

// WithPrec returns c rounded to prec bits.
func (c Complex) WithPrec(prec uint) Complex {
	re, im := c.parts()
	return Complex{re: nf(prec).Set(re), im: nf(prec).Set(im)}
}

func maxprec(a, b Complex) uint {
	p, q := a.Prec(), b.Prec()
	if q > p {
		return q
	}
	return p
}

// Re returns a copy of the real part of c.
func (c Complex) Re() *big.Float {
	re, _ := c.parts()
	return nf(c.Prec()).Set(re)
}

// Im returns a copy of the imaginary part of c.
func (c Complex) Im() *big.Float {
	_, im := c.parts()
	return nf(c.Prec()).Set(im)
}

// Epsilon returns the magnitude below which numbers of the given precision
// are considered to be zero.
func Epsilon(prec uint) *big.Float {
	switch {
	case prec <= 128:
		return epsilons[0]
	case prec <= 256:
		return epsilons[1]
	default:
		return epsilons[2]
	}
}

var epsilons = func() [3]*big.Float {
	var r [3]*big.Float
	for i, s := range []string{"1e-30", "1e-60", "1e-100"} {
		r[i], _, _ = big.ParseFloat(s, 10, 512, big.ToNearestEven)
	}
	return r
}()

func isZero(x *big.Float, prec uint) bool {
	if x.Sign() == 0 {
		return true
	}
	return absLess(x, Epsilon(prec))
}

func absLess(x, eps *big.Float) bool {
	var t big.Float
	return t.Abs(x).Cmp(eps) < 0
}

// IsZero reports whether both parts of c are within epsilon of zero.
func (c Complex) IsZero() bool {
	re, im := c.parts()
	p := c.Prec()
	return isZero(re, p) && isZero(im, p)
}

// IsReal reports whether the imaginary part of c is within epsilon of zero.
func (c Complex) IsReal() bool {
	_, im := c.parts()
	return isZero(im, c.Prec())
}

// Equal reports whether c and d are exactly equal.
func (c Complex) Equal(d Complex) bool {
	a, b := c.parts()
	x, y := d.parts()
	return a.Cmp(x) == 0 && b.Cmp(y) == 0
}

// Int returns c as an integer if it is real, integral, and fits in 32 bits.
func (c Complex) Int() (int, bool) {
	re, _ := c.parts()
	if !c.IsReal() || re.IsInf() || !re.IsInt() {
		return 0, false
	}
	n, acc := re.Int64()
	if acc != big.Exact || n < -1<<31 || n >= 1<<31 {
		return 0, false
	}
	return int(n), true
}

// Add returns c+d.
func (c Complex) Add(d Complex) Complex {
	p := maxprec(c, d)
	a, b := c.parts()
	x, y := d.parts()
	return Complex{re: nf(p).Add(a, x), im: nf(p).Add(b, y)}
}

// Sub returns c-d.
func (c Complex) Sub(d Complex) Complex {
	p := maxprec(c, d)
	a, b := c.parts()
	x, y := d.parts()
	return Complex{re: nf(p).Sub(a, x), im: nf(p).Sub(b, y)}
}

// Neg returns -c.
func (c Complex) Neg() Complex {
	a, b := c.parts()
	p := c.Prec()
	return Complex{re: nf(p).Neg(a), im: nf(p).Neg(b)}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	a, b := c.parts()
	p := c.Prec()
	return Complex{re: nf(p).Set(a), im: nf(p).Neg(b)}
}

// Mul returns c×d.
func (c Complex) Mul(d Complex) Complex {
	p := maxprec(c, d)
	a, b := c.parts()
	x, y := d.parts()
	if b.Sign() == 0 && y.Sign() == 0 {
		return Complex{re: nf(p).Mul(a, x), im: nf(p)}
	}
	t := nf(p).Mul(a, x)
	u := nf(p).Mul(b, y)
	v := nf(p).Mul(a, y)
	w := nf(p).Mul(b, x)
	return Complex{re: t.Sub(t, u), im: v.Add(v, w)}
}

// Scale returns c×k for real k.
func (c Complex) Scale(k *big.Float) Complex {
	a, b := c.parts()
	p := c.Prec()
	return Complex{re: nf(p).Mul(a, k), im: nf(p).Mul(b, k)}
}

// Quo returns c÷d. It panics with a DomainError if d is exactly zero.
func (c Complex) Quo(d Complex) Complex {
	p := maxprec(c, d)
	a, b := c.parts()
	x, y := d.parts()
	if y.Sign() == 0 {
		if x.Sign() == 0 {
			panic(DomainError{X: d, Func: "÷"})
		}
		return Complex{re: nf(p).Quo(a, x), im: nf(p).Quo(b, x)}
	}
	wp := p + 32
	den := nf(wp).Mul(x, x)
	den.Add(den, nf(wp).Mul(y, y))
	re := nf(wp).Mul(a, x)
	re.Add(re, nf(wp).Mul(b, y))
	im := nf(wp).Mul(b, x)
	im.Sub(im, nf(wp).Mul(a, y))
	return Complex{re: nf(p).Quo(re, den), im: nf(p).Quo(im, den)}
}

// Abs returns the modulus of c.
func (c Complex) Abs() *big.Float {
	a, b := c.parts()
	p := c.Prec()
	switch {
	case b.Sign() == 0:
		return nf(p).Abs(a)
	case a.Sign() == 0:
		return nf(p).Abs(b)
	}
	wp := p + 32
	r := nf(wp).Mul(a, a)
	r.Add(r, nf(wp).Mul(b, b))
	return nf(p).Set(r.Sqrt(r))
}

// Arg returns the principal argument of c in radians.
func (c Complex) Arg() *big.Float {
	a, b := c.parts()
	return atan2(b, a, c.Prec())
}

// Sqrt returns the principal square root of c.
func (c Complex) Sqrt() Complex {
	a, b := c.parts()
	p := c.Prec()
	if b.Sign() == 0 {
		if a.Sign() >= 0 {
			return Complex{re: nf(p).Sqrt(a), im: nf(p)}
		}
		t := nf(p).Neg(a)
		return Complex{re: nf(p), im: t.Sqrt(t)}
	}
	// t = sqrt((|c| + |a|) / 2), then the other part is b / 2t.
	wp := p + 32
	m := c.WithPrec(wp).Abs()
	t := nf(wp).Abs(a)
	t.Add(t, m)
	t.Mul(t, half)
	t.Sqrt(t)
	u := nf(wp).Quo(b, t)
	u.Mul(u, half)
	if a.Sign() >= 0 {
		return Complex{re: nf(p).Set(t), im: nf(p).Set(u)}
	}
	u.Abs(u)
	if b.Sign() < 0 {
		t.Neg(t)
	}
	return Complex{re: nf(p).Set(u), im: nf(p).Set(t)}
}

// Exp returns e**c.
func (c Complex) Exp() Complex {
	a, b := c.parts()
	p := c.Prec()
	m := bigfloat.Exp(nf(p), nf(p).Set(a))
	if b.Sign() == 0 {
		return Complex{re: m, im: nf(p)}
	}
	s, k := sincos(b, p)
	return Complex{re: k.Mul(k, m), im: s.Mul(s, m)}
}

// Log returns the principal natural logarithm of c. It panics with a
// DomainError if c is exactly zero.
func (c Complex) Log() Complex {
	a, b := c.parts()
	p := c.Prec()
	if a.Sign() == 0 && b.Sign() == 0 {
		panic(DomainError{X: c, Func: "ln"})
	}
	if b.Sign() == 0 && a.Sign() > 0 {
		return Complex{re: bigfloat.Log(nf(p), nf(p).Set(a)), im: nf(p)}
	}
	wp := p + 32
	r := bigfloat.Log(nf(wp), c.WithPrec(wp).Abs())
	return Complex{re: nf(p).Set(r), im: atan2(b, a, p)}
}

// Pow returns c**w using the principal branch.
func (c Complex) Pow(w Complex) Complex {
	p := maxprec(c, w)
	x, _ := w.parts()
	if w.IsReal() && !x.IsInf() && x.IsInt() {
		if n, acc := x.Int64(); acc == big.Exact && n > -1<<31 && n < 1<<31 {
			return c.WithPrec(p).powInt(n)
		}
	}
	a, b := c.parts()
	if a.Sign() == 0 && b.Sign() == 0 {
		if x.Sign() > 0 {
			return Complex{re: nf(p), im: nf(p)}
		}
		panic(DomainError{X: c, Func: "^"})
	}
	if b.Sign() == 0 && a.Sign() > 0 && w.IsReal() {
		return Complex{re: bigfloat.Pow(nf(p), nf(p).Set(a), nf(p).Set(x)), im: nf(p)}
	}
	return c.WithPrec(p).Log().Mul(w.WithPrec(p)).Exp()
}

func (c Complex) powInt(n int64) Complex {
	neg := n < 0
	if neg {
		n = -n
	}
	r := Float(1, 0, c.Prec())
	for b := c; n > 0; n >>= 1 {
		if n&1 != 0 {
			r = r.Mul(b)
		}
		if n > 1 {
			b = b.Mul(b)
		}
	}
	if neg {
		return Float(1, 0, c.Prec()).Quo(r)
	}
	return r
}

// Text formats c with sf significant figures. If sci is true, both parts are
// written in scientific notation. Parts within epsilon of zero are omitted.
func (c Complex) Text(sf int, sci bool) string {
	a, b := c.parts()
	p := c.Prec()
	rz, iz := isZero(a, p), isZero(b, p)
	if iz {
		if rz {
			return "0"
		}
		return realText(a, sf, sci)
	}
	var s strings.Builder
	if !rz {
		s.WriteString(realText(a, sf, sci))
		if b.Sign() > 0 {
			s.WriteByte('+')
		}
	}
	switch t := realText(b, sf, sci); t {
	case "1":
		s.WriteString("i")
	case "-1":
		s.WriteString("-i")
	default:
		s.WriteString(t)
		s.WriteString("i")
	}
	return s.String()
}

// String formats c to ten significant figures.
func (c Complex) String() string {
	return c.Text(10, false)
}

func realText(x *big.Float, sf int, sci bool) string {
	if x.IsInf() {
		if x.Sign() < 0 {
			return "-∞"
		}
		return "∞"
	}
	if sf < 1 {
		sf = 1
	}
	var s string
	if sci {
		s = x.Text('e', sf-1)
	} else {
		s = x.Text('g', sf)
	}
	m, e := s, ""
	if k := strings.IndexByte(s, 'e'); k >= 0 {
		m, e = s[:k], s[k:]
	}
	if strings.IndexByte(m, '.') >= 0 {
		m = strings.TrimRight(m, "0")
		m = strings.TrimSuffix(m, ".")
	}
	return m + e
}

// parseReal parses a decimal literal made of digits and at most one point.
func parseReal(s string, prec uint) (*big.Float, bool) {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return nil, false
		}
	}
	if digits == 0 {
		return nil, false
	}
	x, _, err := nf(prec).Parse(s, 10)
	if err != nil {
		return nil, false
	}
	return x, true
}

var pis struct {
	sync.Mutex
	m map[uint]*big.Float
}

// pi returns a new π to prec bits.
func pi(prec uint) *big.Float {
	pis.Lock()
	defer pis.Unlock()
	v := pis.m[prec]
	if v == nil {
		if pis.m == nil {
			pis.m = make(map[uint]*big.Float)
		}
		v = bigfloat.Pi(nf(prec))
		pis.m[prec] = v
	}
	return nf(prec).Set(v)
}
