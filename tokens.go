package arithma

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// TokenKind is the kind of a lexed token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a real numeric literal.
	TokenNumber
	// TokenUnit is the name of a unit in the lexer's registry.
	TokenUnit
	// TokenOpen is an open parenthesis, written or implied by the start of
	// superscript text.
	TokenOpen
	// TokenClose is a close parenthesis, written or implied by the end of
	// superscript text or of the expression.
	TokenClose
	// TokenOperator is a binary operator, or - as negation.
	TokenOperator
	// TokenFunction is the name of a function.
	TokenFunction
	// TokenIdent is any other name, or a single unrecognized character.
	TokenIdent
	// TokenImaginary is the imaginary unit i.
	TokenImaginary
	// TokenLink is a value embedded in the text as a link.
	TokenLink
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Token is a lexed token.
type Token struct {
	Kind TokenKind
	// Pos is the 1-based column of the token's first character.
	Pos int
	// Text is the token's source text. Tokens implied by superscript
	// transitions and by the end of the expression have their punctuation
	// as text.
	Text string
	// Num is the value of a TokenNumber.
	Num *big.Float
	// Unit is the unit of a TokenUnit.
	Unit *BasicUnit
	// Op is the operator of a TokenOperator.
	Op Operator
	// Func is the function of a TokenFunction.
	Func Function
	// Link is the value of a TokenLink.
	Link *Value
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Expression is a lexed expression, ready for evaluation by an Interpreter.
// An Expression is immutable and may be evaluated by any number of
// interpreters.
type Expression struct {
	tokens []Token
	assign string
}

// Tokens returns a copy of the expression's tokens, including the implied
// closing parenthesis at the end of a non-empty expression.
func (e *Expression) Tokens() []Token {
	return append([]Token(nil), e.tokens...)
}

// AssignsTo returns the name of the variable the expression's value is
// assigned to, or the empty string if there is none.
func (e *Expression) AssignsTo() string {
	return e.assign
}

// Vars returns the sorted names of the identifiers in e.
func (e *Expression) Vars() []string {
	seen := make(map[string]bool)
	var r []string
	for _, t := range e.tokens {
		if t.Kind == TokenIdent && !seen[t.Text] {
			seen[t.Text] = true
			r = append(r, t.Text)
		}
	}
	sort.Strings(r)
	return r
}

// String renders the tokens of e separated by spaces, without the implied
// closing parenthesis.
func (e *Expression) String() string {
	toks := e.tokens
	if len(toks) > 0 {
		toks = toks[:len(toks)-1]
	}
	var b strings.Builder
	if e.assign != "" {
		b.WriteString(e.assign)
		b.WriteString(" := ")
	}
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
