package arithma

// The interpreter evaluates tokens directly by precedence climbing:
//
//	expr    = primary { op expr | primary }
//	primary = number | ident | i | link | "-" primary | "+" primary
//	        | "(" expr ")" | func "(" expr ")" | unit [ "^" expr ] { unit [ "^" expr ] }
//
// Two primaries with no operator between them multiply with the precedence
// of ×, so "2 3^2" is 18 and "2(3)+4" is 10. Negation applies to a primary
// alone, so "-2^2" is 4.

func (in *Interpreter) more() bool {
	return in.pos < len(in.toks)
}

func (in *Interpreter) cur() Token {
	return in.toks[in.pos]
}

// col returns the column of the current token, or of the end of the input.
func (in *Interpreter) col() int {
	if in.more() {
		return in.cur().Pos
	}
	if len(in.toks) == 0 {
		return 0
	}
	return in.toks[len(in.toks)-1].Pos
}

func (in *Interpreter) prec() uint {
	return in.env.prec
}

func (in *Interpreter) perr(kind ParseErrorKind) *ParseError {
	return &ParseError{Kind: kind, Col: in.col()}
}

// top evaluates the whole token stream.
func (in *Interpreter) top() (Value, error) {
	if !in.more() {
		return Value{}, in.perr(ExpectedExpression)
	}
	v, err := in.climb(0)
	if err != nil {
		return Value{}, err
	}
	if in.more() {
		if in.cur().Kind != TokenClose {
			return Value{}, in.perr(ExpectedOperator)
		}
		in.pos++
		if in.more() {
			return Value{}, in.perr(ExpectedOperator)
		}
	}
	return v, nil
}

// peekPrec returns the precedence of the current token if it is an operator,
// or -1 otherwise.
func (in *Interpreter) peekPrec() int {
	if !in.more() || in.cur().Kind != TokenOperator {
		return -1
	}
	return in.cur().Op.prec()
}

// climb evaluates operators binding more tightly than outer.
func (in *Interpreter) climb(outer int) (Value, error) {
	v, err := in.primary()
	if err != nil {
		return Value{}, err
	}
	for in.more() {
		tok := in.cur()
		switch tok.Kind {
		case TokenOperator:
			var stop bool
			v, stop, err = in.binary(v, outer)
			if err != nil {
				return Value{}, err
			}
			if stop {
				return v, nil
			}
		case TokenClose:
			return v, nil
		default:
			// Implicit multiplication.
			if outer > precMul {
				return v, nil
			}
			rhs, err := in.climb(precMul)
			if err != nil {
				return Value{}, err
			}
			v, err = in.apply(v, OpMul, rhs, tok.Pos)
			if err != nil {
				return Value{}, err
			}
		}
	}
	return v, nil
}

// binary applies the operator at the current token to lhs if it binds more
// tightly than outer. stop reports that the operator did not, so the caller
// must return to let an outer level apply it.
func (in *Interpreter) binary(lhs Value, outer int) (v Value, stop bool, err error) {
	prec := in.peekPrec()
	if prec <= outer {
		return lhs, true, nil
	}
	op := in.cur()
	in.pos++
	rhs, err := in.climb(prec)
	if err != nil {
		return Value{}, false, err
	}
	if next := in.peekPrec(); prec < next {
		rhs, stop, err = in.binary(rhs, prec)
		if err != nil {
			return Value{}, false, err
		}
	}
	v, err = in.apply(lhs, op.Op, rhs, op.Pos)
	return v, stop, err
}

func (in *Interpreter) apply(lhs Value, op Operator, rhs Value, col int) (Value, error) {
	v, err := lhs.Binary(op, rhs)
	if err != nil {
		if e, ok := err.(*OperationError); ok {
			e.Col = col
		}
		return Value{}, err
	}
	return v, nil
}

func (in *Interpreter) primary() (Value, error) {
	if !in.more() {
		return Value{}, in.perr(ExpectedExpression)
	}
	tok := in.cur()
	switch tok.Kind {
	case TokenNumber:
		return in.number()
	case TokenOpen:
		return in.parens()
	case TokenFunction:
		return in.call()
	case TokenUnit:
		u, err := in.units()
		if err != nil {
			return Value{}, err
		}
		return Value{Num: Float(1, 0, in.prec()), Unit: u}, nil
	case TokenIdent:
		in.pos++
		in.refs[tok.Text] = true
		v, ok := in.env.Lookup(tok.Text)
		if !ok {
			return Value{}, &ParseError{Kind: UnknownSymbol, Col: tok.Pos, Name: tok.Text}
		}
		return v, nil
	case TokenImaginary:
		in.pos++
		return Scalar(I(in.prec())), nil
	case TokenLink:
		in.pos++
		return *tok.Link, nil
	case TokenOperator:
		switch tok.Op {
		case OpSub:
			in.pos++
			v, err := in.primary()
			if err != nil {
				return Value{}, err
			}
			return v.Neg(), nil
		case OpAdd:
			in.pos++
			return in.primary()
		}
		return Value{}, &ParseError{Kind: UnknownOperator, Col: tok.Pos, Name: tok.Text}
	}
	return Value{}, in.perr(ExpectedExpression)
}

func (in *Interpreter) number() (Value, error) {
	tok := in.cur()
	if tok.Kind != TokenNumber {
		return Value{}, in.perr(ExpectedNumber)
	}
	in.pos++
	return Scalar(Real(tok.Num)), nil
}

func (in *Interpreter) expect(r rune, kind TokenKind) error {
	if !in.more() || in.cur().Kind != kind {
		return &ParseError{Kind: ExpectedCharacter, Col: in.col(), Char: r}
	}
	in.pos++
	return nil
}

func (in *Interpreter) parens() (Value, error) {
	if err := in.expect('(', TokenOpen); err != nil {
		return Value{}, err
	}
	if in.more() && in.cur().Kind == TokenClose {
		return Value{}, in.perr(ExpectedExpression)
	}
	v, err := in.climb(0)
	if err != nil {
		return Value{}, err
	}
	if err := in.expect(')', TokenClose); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (in *Interpreter) call() (Value, error) {
	tok := in.cur()
	in.pos++
	x, err := in.parens()
	if err != nil {
		return Value{}, err
	}
	v, err := x.Apply(in.ctx, tok.Func)
	if err != nil {
		if e, ok := err.(*OperationError); ok {
			e.Col = tok.Pos
		}
		return Value{}, err
	}
	return v, nil
}

// units evaluates a run of units, each with an optional integer exponent.
func (in *Interpreter) units() (CompoundUnit, error) {
	var u CompoundUnit
	for in.more() && in.cur().Kind == TokenUnit {
		b := in.cur().Unit
		in.pos++
		if in.peekPrec() != precPow {
			u = u.With(b, 1)
			continue
		}
		in.pos++
		col := in.col()
		x, err := in.climb(precPow)
		if err != nil {
			return CompoundUnit{}, err
		}
		if x.HasUnit() {
			return CompoundUnit{}, &ParseError{Kind: UnexpectedUnit, Col: col}
		}
		n, ok := x.Num.Int()
		if !ok {
			return CompoundUnit{}, &ParseError{Kind: ExpectedInteger, Col: col}
		}
		u = u.With(b, n)
	}
	return u, nil
}
