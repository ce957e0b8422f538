package arithma

import (
	"log"
	"sort"
)

// Environment is a set of named values shared by a group of interpreters.
// Changing a variable re-evaluates every live interpreter whose last
// evaluation referenced it. An Environment is not safe for concurrent use.
type Environment struct {
	vars  map[string]Value
	live  []*Interpreter
	units *UnitRegistry
	prec  uint
	trace *log.Logger
	// active holds the names whose dependents are being re-evaluated.
	active map[string]bool
	nextID int
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt  map[string]Value
	precopt  uint
	regopt   struct{ reg *UnitRegistry }
	traceopt struct{ l *log.Logger }
	noconsts struct{}
)

func (varopt) envOption()   {}
func (varsopt) envOption()  {}
func (precopt) envOption()  {}
func (regopt) envOption()   {}
func (traceopt) envOption() {}
func (noconsts) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val Value) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]Value) EnvOption {
	return varsopt(vars)
}

// Prec sets the precision of calculations. The default is DefaultPrec.
func Prec(prec uint) EnvOption {
	return precopt(prec)
}

// WithUnits sets the unit registry used to lex expressions for the
// environment. The default is the registry returned by DefaultUnits.
func WithUnits(reg *UnitRegistry) EnvOption {
	return regopt{reg}
}

// Trace logs re-evaluations and their failures to l.
func Trace(l *log.Logger) EnvOption {
	return traceopt{l}
}

// NoConstants omits the predefined constants pi and π.
func NoConstants() EnvOption {
	return noconsts{}
}

// NewEnvironment creates an environment. Unless NoConstants is given, the
// variables pi and π hold π.
func NewEnvironment(opts ...EnvOption) *Environment {
	env := Environment{
		vars:  make(map[string]Value),
		units: defaultUnits,
		prec:  DefaultPrec,
	}
	consts := true
	var set []EnvOption
	for _, opt := range opts {
		switch o := opt.(type) {
		case precopt:
			env.prec = uint(o)
		case regopt:
			env.units = o.reg
		case traceopt:
			env.trace = o.l
		case noconsts:
			consts = false
		case varopt, varsopt:
			set = append(set, o)
		default:
			panic("arithma: unknown environment option")
		}
	}
	if consts {
		v := Scalar(Real(pi(env.prec)))
		env.vars["pi"] = v
		env.vars["π"] = v
	}
	for _, opt := range set {
		switch o := opt.(type) {
		case varopt:
			env.vars[o.name] = o.val
		case varsopt:
			for k, v := range o {
				env.vars[k] = v
			}
		}
	}
	return &env
}

// Prec returns the precision of calculations in the environment.
func (env *Environment) Prec() uint {
	return env.prec
}

// Units returns the environment's unit registry.
func (env *Environment) Units() *UnitRegistry {
	return env.units
}

// Lex lexes text with the environment's units and precision. Later options
// override them.
func (env *Environment) Lex(text Text, opts ...LexOption) *Expression {
	o := make([]LexOption, 0, len(opts)+2)
	o = append(o, Units(env.units), LiteralPrec(env.prec))
	return Lex(text, append(o, opts...)...)
}

// Lookup returns the value of a variable.
func (env *Environment) Lookup(name string) (Value, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Names returns the sorted names of the variables which have values.
func (env *Environment) Names() []string {
	r := make([]string, 0, len(env.vars))
	for k := range env.vars {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Set sets the value of a variable and re-evaluates its dependents. If the
// variable's dependents are already being re-evaluated, i.e. the change is
// part of a cycle, the variable is unchanged and the result is a ParseError
// with kind CyclicDependency.
func (env *Environment) Set(name string, v Value) error {
	if env.active[name] {
		return &ParseError{Kind: CyclicDependency, Name: name}
	}
	env.vars[name] = v
	env.tracef("set %s = %v", name, v)
	env.cascade(name)
	return nil
}

// Remove removes a variable and re-evaluates its dependents, which then fail
// to find it. Removing a variable whose dependents are already being
// re-evaluated removes it without re-evaluating them again.
func (env *Environment) Remove(name string) {
	if _, ok := env.vars[name]; !ok {
		return
	}
	delete(env.vars, name)
	env.tracef("removed %s", name)
	if env.active[name] {
		return
	}
	env.cascade(name)
}

// Refresh re-evaluates every live interpreter with ctx, e.g. after a change
// of angle mode.
func (env *Environment) Refresh(ctx EvalContext) {
	for _, in := range append([]*Interpreter(nil), env.live...) {
		if in.closed || in.expr == nil {
			continue
		}
		in.ctx = ctx
		in.reEvaluate()
	}
}

func (env *Environment) cascade(name string) {
	deps := env.dependents(name)
	if len(deps) == 0 {
		return
	}
	if env.active == nil {
		env.active = make(map[string]bool)
	}
	env.active[name] = true
	defer delete(env.active, name)
	for _, in := range deps {
		in.reEvaluate()
	}
}

// dependents returns the live interpreters whose last evaluation referenced
// name.
func (env *Environment) dependents(name string) []*Interpreter {
	var r []*Interpreter
	for _, in := range env.live {
		if in.refs[name] {
			r = append(r, in)
		}
	}
	return r
}

func (env *Environment) drop(in *Interpreter) {
	for i, x := range env.live {
		if x == in {
			env.live = append(env.live[:i], env.live[i+1:]...)
			return
		}
	}
}

func (env *Environment) tracef(format string, args ...interface{}) {
	if env.trace != nil {
		env.trace.Printf(format, args...)
	}
}
