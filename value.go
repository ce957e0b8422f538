package arithma

import (
	"math/big"
)

// Value is a complex magnitude with a unit.
type Value struct {
	Num  Complex
	Unit CompoundUnit
}

// Scalar returns the dimensionless value x.
func Scalar(x Complex) Value {
	return Value{Num: x}
}

// HasUnit reports whether v has a non-empty unit.
func (v Value) HasUnit() bool {
	return !v.Unit.IsEmpty()
}

// InBase returns the magnitude of v expressed in the base form of its unit.
func (v Value) InBase() Complex {
	return v.Unit.ToBase(v.Num)
}

// ConvertedTo expresses v in the unit u. If v's unit cannot convert to u, the
// result is an OperationError with kind UnitConversionFailed.
func (v Value) ConvertedTo(u CompoundUnit) (Value, error) {
	if v.Unit.Equal(u) {
		return Value{Num: v.Num, Unit: u}, nil
	}
	if !v.Unit.CanConvert(u) {
		return Value{}, &OperationError{Kind: UnitConversionFailed, From: v.Unit, To: u}
	}
	return Value{Num: u.FromBase(v.InBase()), Unit: u}, nil
}

// Equal reports whether v and w have exactly equal magnitudes and the same
// units.
func (v Value) Equal(w Value) bool {
	return v.Num.Equal(w.Num) && v.Unit.Equal(w.Unit)
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{Num: v.Num.Neg(), Unit: v.Unit}
}

// Operator is a binary operator.
type Operator int8

const (
	OpNone Operator = iota
	// OpAdd is addition. The left operand is converted to the unit of the
	// right.
	OpAdd
	// OpSub is subtraction, with units as for OpAdd.
	OpSub
	// OpMul is multiplication, adding unit powers.
	OpMul
	// OpDiv is division, subtracting unit powers.
	OpDiv
	// OpPow is exponentiation. The exponent must be dimensionless.
	OpPow
	// OpExp10 is e-notation: a e b is a×10^b.
	OpExp10
)

var opText = [...]string{
	OpNone:  "",
	OpAdd:   "+",
	OpSub:   "-",
	OpMul:   "×",
	OpDiv:   "÷",
	OpPow:   "^",
	OpExp10: "e",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opText) {
		return "?"
	}
	return opText[op]
}

// prec returns the binding strength of the operator.
func (op Operator) prec() int {
	switch op {
	case OpAdd, OpSub:
		return precAdd
	case OpMul, OpDiv:
		return precMul
	case OpPow:
		return precPow
	case OpExp10:
		return precExp10
	}
	return -1
}

const (
	precAdd   = 20
	precMul   = 40
	precPow   = 60
	precExp10 = 80
)

// Binary applies op with v as the left operand and w as the right.
func (v Value) Binary(op Operator, w Value) (r Value, err error) {
	defer recoverMath(op.String(), &err)
	switch op {
	case OpAdd, OpSub:
		l, err := v.ConvertedTo(w.Unit)
		if err != nil {
			return Value{}, err
		}
		if op == OpAdd {
			return Value{Num: l.Num.Add(w.Num), Unit: w.Unit}, nil
		}
		return Value{Num: l.Num.Sub(w.Num), Unit: w.Unit}, nil
	case OpMul:
		return Value{Num: v.Num.Mul(w.Num), Unit: v.Unit.Mul(w.Unit)}, nil
	case OpDiv:
		return Value{Num: v.Num.Quo(w.Num), Unit: v.Unit.Div(w.Unit)}, nil
	case OpPow:
		if w.HasUnit() {
			return Value{}, &OperationError{Kind: UnexpectedOperandUnit, Op: op.String()}
		}
		u := v.Unit
		if !u.IsEmpty() {
			u = u.Scale(truncAbs(w.Num))
		}
		return Value{Num: v.Num.Pow(w.Num), Unit: u}, nil
	case OpExp10:
		if w.HasUnit() {
			return Value{}, &OperationError{Kind: UnexpectedOperandUnit, Op: op.String()}
		}
		k := Float(10, 0, w.Num.Prec()).Pow(w.Num)
		return Value{Num: v.Num.Mul(k), Unit: v.Unit}, nil
	}
	panic("arithma: invalid operator " + op.String())
}

// truncAbs returns the modulus of x truncated to an int, saturating at the
// limits of int32.
func truncAbs(x Complex) int {
	m := x.Abs()
	if m.IsInf() {
		return 1<<31 - 1
	}
	n, _ := m.Int64()
	if n > 1<<31-1 {
		n = 1<<31 - 1
	}
	return int(n)
}

// Apply calls f on the magnitude of v. The result keeps v's unit.
func (v Value) Apply(ctx EvalContext, f Function) (r Value, err error) {
	defer recoverMath(f.Name, &err)
	return Value{Num: f.Func.Call(ctx, v.Num), Unit: v.Unit}, nil
}

// recoverMath converts a domain panic into an OperationError.
func recoverMath(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r.(type) {
	case big.ErrNaN, DomainError:
		*err = &OperationError{Kind: MathError, Op: op}
	default:
		panic(r)
	}
}

// String formats v with its unit as held, e.g. "3 km". Complex magnitudes
// with units are parenthesized so that the result lexes back to v.
func (v Value) String() string {
	return format(v.Num, v.Unit.String(), 10, false)
}

// Format formats v in the base form of its unit, e.g. "3000 m" for 3 km,
// using sf significant figures and the notation selected by ctx.
func (v Value) Format(ctx EvalContext, sf int) string {
	return format(v.InBase(), v.Unit.BaseString(), sf, ctx.Scientific)
}

func format(x Complex, unit string, sf int, sci bool) string {
	s := x.Text(sf, sci)
	if unit == "" {
		return s
	}
	if re, _ := x.parts(); !x.IsReal() && !isZero(re, x.Prec()) {
		s = "(" + s + ")"
	}
	return s + " " + unit
}
