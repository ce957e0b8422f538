package arithma

import (
	"sort"
)

// Interpreter evaluates one expression at a time against an Environment. An
// interpreter remembers its last expression and the variables it referenced;
// when any of those variables changes, the environment re-evaluates the
// expression and reports the new result through OnChange.
//
// Interpreters are not safe for concurrent use, nor is their environment.
type Interpreter struct {
	env *Environment
	id  int

	expr *Expression
	ctx  EvalContext
	// assign is the variable this interpreter's result is assigned to.
	assign string
	// bound is whether the environment holds our value for assign.
	bound bool
	refs  map[string]bool

	toks []Token
	pos  int

	value  *Value
	err    error
	gen    uint64
	notify func(Value, error)
	closed bool
}

// NewInterpreter creates an interpreter in env.
func (env *Environment) NewInterpreter() *Interpreter {
	env.nextID++
	in := &Interpreter{env: env, id: env.nextID}
	env.live = append(env.live, in)
	return in
}

// OnChange sets a function to be called with the result of every evaluation
// of the interpreter's expression, including re-evaluations caused by changes
// to the variables it references. If the evaluation failed, err is non-nil
// and v is the zero Value.
func (in *Interpreter) OnChange(f func(v Value, err error)) {
	in.notify = f
}

// Evaluate evaluates e. If e assigns a variable, the result is bound to that
// name in the environment, and dependents of the name are re-evaluated. Any
// variable previously assigned by the interpreter is removed first.
//
// Evaluating an empty expression fails with ExpectedExpression. Assigning a
// name which already has a value fails with DuplicateDeclaration.
func (in *Interpreter) Evaluate(ctx EvalContext, e *Expression) (Value, error) {
	if in.closed {
		panic("arithma: Evaluate on closed Interpreter")
	}
	in.refs = nil
	in.release()
	in.expr, in.ctx = e, ctx
	if e == nil || len(e.tokens) == 0 {
		in.expr = nil
		return in.fail(&ParseError{Kind: ExpectedExpression})
	}
	if name := e.assign; name != "" {
		if _, ok := in.env.Lookup(name); ok {
			in.expr = nil
			return in.fail(&ParseError{Kind: DuplicateDeclaration, Name: name})
		}
		in.assign = name
	}
	return in.run()
}

// EvaluateString lexes s with the environment's units and precision, then
// evaluates it.
func (in *Interpreter) EvaluateString(ctx EvalContext, s string, opts ...LexOption) (Value, error) {
	return in.Evaluate(ctx, in.env.Lex(Styled(s), opts...))
}

// release removes the interpreter's variable, if any, and forgets its name.
func (in *Interpreter) release() {
	in.unbind()
	in.assign = ""
}

// unbind removes the interpreter's value from the environment.
func (in *Interpreter) unbind() {
	if !in.bound {
		return
	}
	in.bound = false
	in.env.Remove(in.assign)
}

func (in *Interpreter) fail(err error) (Value, error) {
	in.value, in.err = nil, err
	in.emit()
	return Value{}, err
}

// run evaluates the current expression and publishes the result.
func (in *Interpreter) run() (Value, error) {
	in.gen++
	gen := in.gen
	in.toks, in.pos = in.expr.tokens, 0
	in.refs = make(map[string]bool)
	v, err := in.top()
	in.toks = nil
	if err == nil && in.assign != "" {
		in.value, in.err = &v, nil
		in.bound = true
		err = in.env.Set(in.assign, v)
		if err != nil {
			in.bound = false
		} else if in.gen != gen {
			// A cascade from our own assignment re-evaluated us; its result
			// is newer.
			return in.result()
		}
	}
	if err != nil {
		in.env.tracef("#%d: %v", in.id, err)
		in.unbind()
		return in.fail(err)
	}
	in.value, in.err = &v, nil
	in.emit()
	return v, nil
}

// reEvaluate runs the interpreter's expression again after a change in the
// environment.
func (in *Interpreter) reEvaluate() {
	if in.closed || in.expr == nil {
		return
	}
	in.env.tracef("#%d: re-evaluating %v", in.id, in.expr)
	in.run()
}

func (in *Interpreter) emit() {
	if in.notify != nil {
		if in.err != nil {
			in.notify(Value{}, in.err)
		} else {
			in.notify(*in.value, nil)
		}
	}
}

func (in *Interpreter) result() (Value, error) {
	if in.err != nil || in.value == nil {
		return Value{}, in.err
	}
	return *in.value, nil
}

// Value returns the result of the last evaluation, or false if there is none
// or it failed.
func (in *Interpreter) Value() (Value, bool) {
	if in.value == nil || in.err != nil {
		return Value{}, false
	}
	return *in.value, true
}

// Err returns the error from the last evaluation, if any.
func (in *Interpreter) Err() error {
	return in.err
}

// Expression returns the interpreter's current expression, or nil if there
// is none.
func (in *Interpreter) Expression() *Expression {
	return in.expr
}

// References returns the sorted names of the variables read by the last
// evaluation, including those which had no value.
func (in *Interpreter) References() []string {
	r := make([]string, 0, len(in.refs))
	for k := range in.refs {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// AssignsTo returns the name of the variable bound to the interpreter's
// result, or the empty string if there is none.
func (in *Interpreter) AssignsTo() string {
	return in.assign
}

// SetAssign changes the variable bound to the interpreter's result. The
// previous variable, if any, is removed. If the interpreter has a result, it
// is assigned to the new name immediately. Passing the empty string removes
// the binding.
func (in *Interpreter) SetAssign(name string) error {
	if name == in.assign {
		return nil
	}
	if name != "" {
		if _, ok := in.env.Lookup(name); ok {
			return &ParseError{Kind: DuplicateDeclaration, Name: name}
		}
	}
	in.release()
	in.assign = name
	if name == "" || in.value == nil || in.err != nil {
		return nil
	}
	in.bound = true
	if err := in.env.Set(name, *in.value); err != nil {
		in.bound = false
		return err
	}
	return nil
}

// Close removes the interpreter from its environment, along with any variable
// it assigned. Dependents of that variable are re-evaluated.
func (in *Interpreter) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.env.drop(in)
	in.release()
}
