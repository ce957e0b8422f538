package arithma

import (
	"unicode"
	"unicode/utf8"
)

// glyph is a character of styled text. A link glyph stands for its whole
// span.
type glyph struct {
	r     rune
	super bool
	link  string
	col   int
}

func glyphs(t Text) ([]glyph, int) {
	var r []glyph
	col := 1
	for _, sp := range t {
		if sp.Link != "" {
			r = append(r, glyph{super: sp.Super, link: sp.Link, col: col})
			col += utf8.RuneCountInString(sp.Text)
			continue
		}
		for _, c := range sp.Text {
			r = append(r, glyph{r: c, super: sp.Super, col: col})
			col++
		}
	}
	return r, col
}

type lexer struct {
	src   []glyph
	end   int
	i     int
	super bool
	toks  []Token
	p     lexctx
}

// Lex converts styled text into an expression. Lexing never fails;
// unrecognized characters become identifiers, which fail to evaluate.
//
// Superscript text is an exponent: a transition into superscript lexes as
// "^ (" and a transition out of it as ")". A non-empty expression always
// ends with an implied ")".
func Lex(text Text, opts ...LexOption) *Expression {
	var p lexctx
	for _, opt := range opts {
		p = opt.lexOption(p)
	}
	if p.units == nil {
		p.units = defaultUnits
	}
	if p.prec == 0 {
		p.prec = DefaultPrec
	}
	src, end := glyphs(text)
	l := lexer{src: src, end: end, p: p}
	l.run()
	return &Expression{tokens: l.toks, assign: p.assign}
}

// LexString lexes plain text, recognizing superscripts and links as Styled
// does.
func LexString(s string, opts ...LexOption) *Expression {
	return Lex(Styled(s), opts...)
}

func (l *lexer) run() {
	for {
		for l.i < len(l.src) && l.src[l.i].link == "" && unicode.IsSpace(l.src[l.i].r) {
			l.i++
		}
		if l.i >= len(l.src) {
			break
		}
		l.transition(l.src[l.i])
		l.next()
	}
	if l.super {
		l.emit(Token{Kind: TokenClose, Text: ")", Pos: l.end})
	}
	if len(l.toks) > 0 {
		l.emit(Token{Kind: TokenClose, Text: ")", Pos: l.end})
	}
}

func (l *lexer) emit(t Token) {
	l.toks = append(l.toks, t)
}

// transition emits the tokens implied by a change of style before g.
func (l *lexer) transition(g glyph) {
	if g.super == l.super {
		return
	}
	l.super = g.super
	if !g.super {
		l.emit(Token{Kind: TokenClose, Text: ")", Pos: g.col})
		return
	}
	if len(l.toks) > 0 {
		l.emit(Token{Kind: TokenOperator, Op: OpPow, Text: "^", Pos: g.col})
	}
	l.emit(Token{Kind: TokenOpen, Text: "(", Pos: g.col})
}

var singles = map[rune]Token{
	'(': {Kind: TokenOpen},
	')': {Kind: TokenClose},
	'+': {Kind: TokenOperator, Op: OpAdd},
	'-': {Kind: TokenOperator, Op: OpSub},
	'−': {Kind: TokenOperator, Op: OpSub},
	'×': {Kind: TokenOperator, Op: OpMul},
	'*': {Kind: TokenOperator, Op: OpMul},
	'÷': {Kind: TokenOperator, Op: OpDiv},
	'/': {Kind: TokenOperator, Op: OpDiv},
	'^': {Kind: TokenOperator, Op: OpPow},
	'i': {Kind: TokenImaginary},
}

func (l *lexer) next() {
	g := l.src[l.i]
	if g.link != "" {
		l.i++
		v, err := DecodeLink(g.link, l.p.units)
		if err != nil {
			l.emit(Token{Kind: TokenIdent, Text: g.link, Pos: g.col})
			return
		}
		l.emit(Token{Kind: TokenLink, Text: g.link, Pos: g.col, Link: &v})
		return
	}
	if t, ok := singles[g.r]; ok {
		l.i++
		t.Text = string(g.r)
		t.Pos = g.col
		l.emit(t)
		return
	}
	if !l.wordStart() {
		l.i++
		l.emit(Token{Kind: TokenIdent, Text: string(g.r), Pos: g.col})
		return
	}
	s := l.word()
	t := Token{Text: s, Pos: g.col}
	if x, ok := parseReal(s, l.p.prec); ok {
		t.Kind, t.Num = TokenNumber, x
	} else if f, ok := l.p.fn(s); ok {
		t.Kind, t.Func = TokenFunction, Function{Name: s, Func: f}
	} else if u := l.p.unit(s); u != nil {
		t.Kind, t.Unit = TokenUnit, u
	} else if s == "e" {
		t.Kind, t.Op = TokenOperator, OpExp10
	} else {
		t.Kind = TokenIdent
	}
	l.emit(t)
}

func (l *lexer) wordStart() bool {
	r := l.src[l.i].r
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return r == '.' && l.i+1 < len(l.src) && l.same(l.i, l.i+1) && unicode.IsDigit(l.src[l.i+1].r)
}

// same reports whether the glyph at j can continue a word begun at i.
func (l *lexer) same(i, j int) bool {
	return l.src[j].link == "" && l.src[j].super == l.src[i].super
}

// word reads a run of letters followed by a run of digits and points. A run of
// letters which is exactly "e" or which ends at a change of style is a word
// by itself.
func (l *lexer) word() string {
	start := l.i
	if unicode.IsLetter(l.src[l.i].r) {
		for l.i < len(l.src) && l.same(start, l.i) && unicode.IsLetter(l.src[l.i].r) {
			l.i++
		}
		if l.i-start == 1 && l.src[start].r == 'e' {
			return "e"
		}
		if l.i < len(l.src) && !l.same(start, l.i) {
			return l.text(start, l.i)
		}
	}
	for l.i < len(l.src) && l.same(start, l.i) && (unicode.IsDigit(l.src[l.i].r) || l.src[l.i].r == '.') {
		l.i++
	}
	return l.text(start, l.i)
}

func (l *lexer) text(i, j int) string {
	r := make([]rune, 0, j-i)
	for _, g := range l.src[i:j] {
		r = append(r, g.r)
	}
	return string(r)
}
