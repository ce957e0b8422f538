package arithma

import (
	"math/big"
	"sort"
)

// Func is a function from complex numbers to complex numbers. If the function
// is called on an argument outside its domain, it should panic with a
// DomainError or big.ErrNaN; evaluation reports such panics as an
// OperationError with kind MathError.
type Func interface {
	// Call evaluates the function. ctx gives the angle mode for functions
	// which take or return angles.
	Call(ctx EvalContext, x Complex) Complex
}

// Function is a named Func, as it appears in a lexed expression.
type Function struct {
	Name string
	Func Func
}

var globalfuncs = map[string]Func{
	"sin":   angular{Complex.Sin},
	"cos":   angular{Complex.Cos},
	"tan":   angular{Complex.Tan},
	"asin":  inverseAngular{Complex.Asin},
	"acos":  inverseAngular{Complex.Acos},
	"atan":  inverseAngular{Complex.Atan},
	"sinh":  Monadic(Complex.Sinh),
	"cosh":  Monadic(Complex.Cosh),
	"tanh":  Monadic(Complex.Tanh),
	"asinh": Monadic(Complex.Asinh),
	"acosh": Monadic(Complex.Acosh),
	"atanh": Monadic(Complex.Atanh),
	"ln":    Monadic(Complex.Log),
	"lg":    Monadic(Complex.Log10),
	"sqrt":  Monadic(Complex.Sqrt),
	"exp":   Monadic(Complex.Exp),
	"abs": Monadic(func(x Complex) Complex {
		return Real(x.Abs())
	}),
	"floor": Monadic(Complex.Floor),
	"ceil":  Monadic(Complex.Ceil),
}

// DefaultFuncs returns the sorted names of the functions recognized by
// default.
func DefaultFuncs() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

type monadic struct {
	f func(Complex) Complex
}

func (m monadic) Call(ctx EvalContext, x Complex) Complex {
	return m.f(x)
}

// Monadic wraps a function of one variable into a Func which ignores the
// evaluation context.
func Monadic(f func(Complex) Complex) Func {
	return monadic{f}
}

// angular is a function of an angle in radians.
type angular struct {
	f func(Complex) Complex
}

func (a angular) Call(ctx EvalContext, x Complex) Complex {
	p := x.Prec()
	if ctx.Radians {
		return a.f(x)
	}
	return a.f(degToRad(x)).WithPrec(p)
}

// inverseAngular is a function whose result is an angle in radians.
type inverseAngular struct {
	f func(Complex) Complex
}

func (a inverseAngular) Call(ctx EvalContext, x Complex) Complex {
	r := a.f(x)
	if ctx.Radians {
		return r
	}
	return radToDeg(r)
}

// DomainError is the panic value of an operation on arguments outside its
// domain. DomainError unwraps to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument.
	X Complex
	// Func is a name identifying the operation.
	Func string
}

func (err DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}
