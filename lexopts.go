package arithma

// LexOption is an option for lexing.
type LexOption interface {
	lexOption(lexctx) lexctx
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt  map[string]Func
	unitsopt  struct{ reg *UnitRegistry }
	assignopt string
	litprec   uint
	nounits   struct{}
)

// lexctx holds the configuration for lexing.
type lexctx struct {
	// funcs overrides the default functions. A nil entry disables a
	// function so that its name lexes as an identifier.
	funcs map[string]Func
	// units is the registry used to recognize units.
	units *UnitRegistry
	// nounits disables unit recognition.
	nounits bool
	// assign is the variable the expression assigns.
	assign string
	// prec is the precision of numeric literals.
	prec uint
	// nodefaults indicates that the default functions are disabled.
	nodefaults bool
}

func (p *lexctx) fn(name string) (Func, bool) {
	if f, ok := p.funcs[name]; ok {
		return f, f != nil
	}
	if p.nodefaults {
		return nil, false
	}
	f, ok := globalfuncs[name]
	return f, ok
}

func (p *lexctx) unit(name string) *BasicUnit {
	if p.nounits {
		return nil
	}
	return p.units.Lookup(name)
}

// LexFunc sets a function for lexing. To disable lexing a function, pass nil
// for fn; its name then lexes as an identifier.
func LexFunc(name string, fn Func) LexOption {
	return &funcopt{name, fn}
}

func (o *funcopt) lexOption(p lexctx) lexctx {
	p.funcs = cloneFuncs(p.funcs)
	p.funcs[o.name] = o.fn
	return p
}

// LexFuncs sets a group of functions for lexing. To disable lexing any
// function, set it to nil.
func LexFuncs(fns map[string]Func) LexOption {
	return funcsopt(fns)
}

func (o funcsopt) lexOption(p lexctx) lexctx {
	p.funcs = cloneFuncs(p.funcs)
	for k, v := range o {
		p.funcs[k] = v
	}
	return p
}

func cloneFuncs(m map[string]Func) map[string]Func {
	// Always make a copy so options never modify each other's maps.
	r := make(map[string]Func, len(m)+1)
	for k, v := range m {
		r[k] = v
	}
	return r
}

// DisableDefaultFuncs disables all default functions during lexing. Their
// names lex as identifiers instead. Functions set by other options are
// unaffected.
func DisableDefaultFuncs() LexOption {
	return disablefns{}
}

type disablefns struct{}

func (disablefns) lexOption(p lexctx) lexctx {
	p.nodefaults = true
	return p
}

// NoUnits disables recognition of units. Unit names lex as identifiers.
func NoUnits() LexOption {
	return nounits{}
}

func (nounits) lexOption(p lexctx) lexctx {
	p.nounits = true
	return p
}

// Units sets the registry used to recognize units. The default is the
// registry returned by DefaultUnits.
func Units(reg *UnitRegistry) LexOption {
	return unitsopt{reg}
}

func (o unitsopt) lexOption(p lexctx) lexctx {
	p.units = o.reg
	return p
}

// AssignTo makes the expression assign its value to the named variable when
// it is evaluated.
func AssignTo(name string) LexOption {
	return assignopt(name)
}

func (o assignopt) lexOption(p lexctx) lexctx {
	p.assign = string(o)
	return p
}

// LiteralPrec sets the precision in bits of numeric literals. The default is
// DefaultPrec.
func LiteralPrec(prec uint) LexOption {
	return litprec(prec)
}

func (o litprec) lexOption(p lexctx) lexctx {
	p.prec = uint(o)
	return p
}
