package arithma

import (
	"io"
	"strings"
)

// EvalContext selects the modes of an evaluation. The zero value evaluates
// trigonometric functions in degrees and displays plain notation.
type EvalContext struct {
	// Radians makes trigonometric functions take and return radians.
	Radians bool
	// Scientific makes Value.Format use scientific notation.
	Scientific bool
}

// Eval is a shortcut to lex an expression read to EOF and return its result,
// evaluated in degrees in a new environment created with opts.
func Eval(src io.Reader, opts ...EnvOption) (Value, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, src); err != nil {
		return Value{}, err
	}
	return EvalString(b.String(), opts...)
}

// EvalString is a shortcut to lex and evaluate a string expression.
func EvalString(src string, opts ...EnvOption) (Value, error) {
	env := NewEnvironment(opts...)
	in := env.NewInterpreter()
	defer in.Close()
	return in.EvaluateString(EvalContext{}, src)
}
