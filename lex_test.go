package arithma

import (
	"testing"
)

type tk struct {
	kind TokenKind
	text string
	pos  int
}

func tks(e *Expression) []tk {
	var r []tk
	for _, t := range e.tokens {
		r = append(r, tk{t.Kind, t.Text, t.Pos})
	}
	return r
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		opts   []LexOption
		tokens []tk
	}{
		// spaces
		{"empty", "", nil, nil},
		{"spaces", " \t \r\n ", nil, nil},
		// numbers
		{"int", "12", nil, []tk{{TokenNumber, "12", 1}, {TokenClose, ")", 3}}},
		{"real", "1.5", nil, []tk{{TokenNumber, "1.5", 1}, {TokenClose, ")", 4}}},
		{"point", ".5", nil, []tk{{TokenNumber, ".5", 1}, {TokenClose, ")", 3}}},
		{"twopoints", "1.2.3", nil, []tk{{TokenIdent, "1.2.3", 1}, {TokenClose, ")", 6}}},
		{"enotation", "2e3", nil, []tk{
			{TokenNumber, "2", 1}, {TokenOperator, "e", 2}, {TokenNumber, "3", 3}, {TokenClose, ")", 4},
		}},
		{"e", "e", nil, []tk{{TokenOperator, "e", 1}, {TokenClose, ")", 2}}},
		// identifiers
		{"ident", "x", nil, []tk{{TokenIdent, "x", 1}, {TokenClose, ")", 2}}},
		{"identdigits", "x2", nil, []tk{{TokenIdent, "x2", 1}, {TokenClose, ")", 3}}},
		{"pi", "π", nil, []tk{{TokenIdent, "π", 1}, {TokenClose, ")", 2}}},
		{"symbol", "2$", nil, []tk{{TokenNumber, "2", 1}, {TokenIdent, "$", 2}, {TokenClose, ")", 3}}},
		{"imaginary", "2i", nil, []tk{{TokenNumber, "2", 1}, {TokenImaginary, "i", 2}, {TokenClose, ")", 3}}},
		// operators
		{"ops", "a+b-c×d÷f^h", nil, []tk{
			{TokenIdent, "a", 1}, {TokenOperator, "+", 2}, {TokenIdent, "b", 3},
			{TokenOperator, "-", 4}, {TokenIdent, "c", 5}, {TokenOperator, "×", 6},
			{TokenIdent, "d", 7}, {TokenOperator, "÷", 8}, {TokenIdent, "f", 9},
			{TokenOperator, "^", 10}, {TokenIdent, "h", 11}, {TokenClose, ")", 12},
		}},
		{"ascii", "a*b/c", nil, []tk{
			{TokenIdent, "a", 1}, {TokenOperator, "*", 2}, {TokenIdent, "b", 3},
			{TokenOperator, "/", 4}, {TokenIdent, "c", 5}, {TokenClose, ")", 6},
		}},
		// functions and units
		{"func", "sin(30)", nil, []tk{
			{TokenFunction, "sin", 1}, {TokenOpen, "(", 4}, {TokenNumber, "30", 5},
			{TokenClose, ")", 7}, {TokenClose, ")", 8},
		}},
		{"nofuncs", "sin", []LexOption{DisableDefaultFuncs()}, []tk{{TokenIdent, "sin", 1}, {TokenClose, ")", 4}}},
		{"nofunc", "ln", []LexOption{LexFunc("ln", nil)}, []tk{{TokenIdent, "ln", 1}, {TokenClose, ")", 3}}},
		{"customfunc", "f", []LexOption{LexFunc("f", Monadic(Complex.Neg))}, []tk{{TokenFunction, "f", 1}, {TokenClose, ")", 2}}},
		{"unit", "3 km", nil, []tk{{TokenNumber, "3", 1}, {TokenUnit, "km", 3}, {TokenClose, ")", 5}}},
		{"nounits", "3 km", []LexOption{NoUnits()}, []tk{{TokenNumber, "3", 1}, {TokenIdent, "km", 3}, {TokenClose, ")", 5}}},
		{"unitdigits", "km2", nil, []tk{{TokenIdent, "km2", 1}, {TokenClose, ")", 4}}},
		// superscripts
		{"super", "x²", nil, []tk{
			{TokenIdent, "x", 1}, {TokenOperator, "^", 2}, {TokenOpen, "(", 2},
			{TokenNumber, "2", 2}, {TokenClose, ")", 3}, {TokenClose, ")", 3},
		}},
		{"superunit", "m²", nil, []tk{
			{TokenUnit, "m", 1}, {TokenOperator, "^", 2}, {TokenOpen, "(", 2},
			{TokenNumber, "2", 2}, {TokenClose, ")", 3}, {TokenClose, ")", 3},
		}},
		{"superstart", "²x", nil, []tk{
			{TokenOpen, "(", 1}, {TokenNumber, "2", 1}, {TokenClose, ")", 2},
			{TokenIdent, "x", 2}, {TokenClose, ")", 3},
		}},
		{"supermid", "x² y", nil, []tk{
			{TokenIdent, "x", 1}, {TokenOperator, "^", 2}, {TokenOpen, "(", 2},
			{TokenNumber, "2", 2}, {TokenClose, ")", 4}, {TokenIdent, "y", 4},
			{TokenClose, ")", 5},
		}},
		{"superneg", "s⁻¹", nil, []tk{
			{TokenUnit, "s", 1}, {TokenOperator, "^", 2}, {TokenOpen, "(", 2},
			{TokenOperator, "-", 2}, {TokenNumber, "1", 3}, {TokenClose, ")", 4},
			{TokenClose, ")", 4},
		}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := tks(LexString(c.src, c.opts...))
			if len(got) != len(c.tokens) {
				t.Fatalf("wrong tokens: want %v, got %v", c.tokens, got)
			}
			for i := range got {
				if got[i] != c.tokens[i] {
					t.Errorf("token %d: want %v, got %v", i, c.tokens[i], got[i])
				}
			}
		})
	}
}

func TestLexLink(t *testing.T) {
	v := Value{Num: Float(2.5, -1, 0), Unit: UnitOf(defaultUnits.Lookup("km"), 1)}
	link := EncodeLink(v)
	e := LexString("3" + link + "+1")
	got := tks(e)
	want := []tk{
		{TokenNumber, "3", 1},
		{TokenLink, link, 2},
		{TokenOperator, "+", 2 + len(link)},
		{TokenNumber, "1", 3 + len(link)},
		{TokenClose, ")", 4 + len(link)},
	}
	if len(got) != len(want) {
		t.Fatalf("wrong tokens: want %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], got[i])
		}
	}
	if !e.tokens[1].Link.Equal(v) {
		t.Errorf("wrong link value: want %v, got %v", v, e.tokens[1].Link)
	}
}

func TestLexBadLink(t *testing.T) {
	e := LexString(LinkPrefix + "AAAA")
	if len(e.tokens) != 2 || e.tokens[0].Kind != TokenIdent {
		t.Errorf("bad link should lex as identifier, got %v", tks(e))
	}
}

func TestLexAssign(t *testing.T) {
	e := LexString("x + 1", AssignTo("y"))
	if e.AssignsTo() != "y" {
		t.Errorf("wrong assignment: want y, got %q", e.AssignsTo())
	}
	if got := e.String(); got != "y := x + 1" {
		t.Errorf("wrong string: want %q, got %q", "y := x + 1", got)
	}
}

func TestVars(t *testing.T) {
	e := LexString("b a² + sin(c) × b km")
	want := []string{"a", "b", "c"}
	got := e.Vars()
	if len(got) != len(want) {
		t.Fatalf("wrong vars: want %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("wrong vars: want %q, got %q", want, got)
		}
	}
}

func TestStyled(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want Text
	}{
		{"plain", "x+1", Text{{Text: "x+1"}}},
		{"super", "x²⁺¹", Text{{Text: "x"}, {Text: "2+1", Super: true}}},
		{"back", "x²y", Text{{Text: "x"}, {Text: "2", Super: true}, {Text: "y"}}},
		{"space", "x² y", Text{{Text: "x"}, {Text: "2 ", Super: true}, {Text: "y"}}},
		{"link", "2" + LinkPrefix + "e30", Text{{Text: "2"}, {Text: LinkPrefix + "e30", Link: LinkPrefix + "e30"}}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got := Styled(c.src)
			if len(got) != len(c.want) {
				t.Fatalf("want %+v, got %+v", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("span %d: want %+v, got %+v", i, c.want[i], got[i])
				}
			}
			if c.name != "link" && got.String() != c.src {
				t.Errorf("round trip: want %q, got %q", c.src, got.String())
			}
		})
	}
}
