package arithma

import (
	"strconv"
)

// InputError is an error caused by a specific position in an expression.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error.
	Pos() int
}

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int8

const (
	_ ParseErrorKind = iota
	// ExpectedNumber is a numeric literal missing where one was required.
	ExpectedNumber
	// ExpectedCharacter is a missing bracket. The error's Char is the
	// bracket.
	ExpectedCharacter
	// ExpectedExpression is a missing operand, including empty input.
	ExpectedExpression
	// UnknownOperator is an operator token with no binary meaning.
	UnknownOperator
	// ExpectedOperator is input left over after a complete expression.
	ExpectedOperator
	// UnknownSymbol is an identifier with no value in the environment.
	UnknownSymbol
	// DuplicateDeclaration is an assignment to a name that already has a
	// value.
	DuplicateDeclaration
	// UnexpectedUnit is a unit-bearing exponent of a unit.
	UnexpectedUnit
	// ExpectedInteger is a non-integer exponent of a unit.
	ExpectedInteger
	// CyclicDependency is an assignment to a name whose dependents are
	// already being recalculated.
	CyclicDependency
)

var parseErrorText = [...]string{
	ExpectedNumber:       "expected number",
	ExpectedCharacter:    "expected character",
	ExpectedExpression:   "expected expression",
	UnknownOperator:      "unknown operator",
	ExpectedOperator:     "expected operator",
	UnknownSymbol:        "unknown symbol",
	DuplicateDeclaration: "duplicate declaration",
	UnexpectedUnit:       "unexpected unit",
	ExpectedInteger:      "expected integer",
	CyclicDependency:     "cyclic dependency",
}

func (k ParseErrorKind) String() string {
	if k <= 0 || int(k) >= len(parseErrorText) {
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return parseErrorText[k]
}

// ParseError is an error in the structure of an expression or in the names it
// uses. It implements InputError. errors.Is reports a ParseError as matching
// any *ParseError with the same Kind.
type ParseError struct {
	Kind ParseErrorKind
	// Col is the 1-based column of the offending token, or 0 if the error
	// does not come from a particular token.
	Col int
	// Char is the expected bracket for ExpectedCharacter.
	Char rune
	// Name is the symbol, operator, or variable the error concerns.
	Name string
}

func (err *ParseError) Error() string {
	s := err.Kind.String()
	switch err.Kind {
	case ExpectedCharacter:
		s += " " + strconv.QuoteRune(err.Char)
	case UnknownOperator, UnknownSymbol, DuplicateDeclaration, CyclicDependency:
		if err.Name != "" {
			s += " " + strconv.Quote(err.Name)
		}
	}
	return errpos(err.Col, s)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// Is reports whether target is a *ParseError of the same kind.
func (err *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == err.Kind
}

// OperationErrorKind classifies an OperationError.
type OperationErrorKind int8

const (
	_ OperationErrorKind = iota
	// UnitConversionFailed is an addition or subtraction of values whose
	// units are not commensurable.
	UnitConversionFailed
	// UnexpectedOperandUnit is a unit where the operation requires a
	// dimensionless operand, such as an exponent.
	UnexpectedOperandUnit
	// MathError is an operation outside its domain, such as division by
	// zero.
	MathError
)

var opErrorText = [...]string{
	UnitConversionFailed:  "cannot convert units",
	UnexpectedOperandUnit: "unexpected unit",
	MathError:             "math error",
}

func (k OperationErrorKind) String() string {
	if k <= 0 || int(k) >= len(opErrorText) {
		return "OperationErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opErrorText[k]
}

// OperationError is an error produced by applying an operator or function to
// values. It implements InputError. errors.Is reports an OperationError as
// matching any *OperationError with the same Kind.
type OperationError struct {
	Kind OperationErrorKind
	// Col is the column of the operator or function, if known.
	Col int
	// From and To are the units involved in a failed conversion.
	From, To CompoundUnit
	// Op names the operator or function.
	Op string
}

func (err *OperationError) Error() string {
	var s string
	switch err.Kind {
	case UnitConversionFailed:
		s = "cannot convert " + unitText(err.From) + " to " + unitText(err.To)
	default:
		s = err.Kind.String()
	}
	if err.Op != "" {
		s += " in " + err.Op
	}
	return errpos(err.Col, s)
}

func unitText(u CompoundUnit) string {
	if u.IsEmpty() {
		return "a dimensionless value"
	}
	return u.String()
}

func (err *OperationError) Pos() int {
	return err.Col
}

// Is reports whether target is an *OperationError of the same kind.
func (err *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Kind == err.Kind
}

func errpos(col int, s string) string {
	if col <= 0 {
		return s
	}
	return strconv.Itoa(col) + ": " + s
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*OperationError)(nil)
)
