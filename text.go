package arithma

import (
	"strings"
	"unicode/utf8"
)

// Span is a run of characters with the same style.
type Span struct {
	Text string
	// Super is whether the characters are superscript. Superscript
	// characters in an expression are an exponent of what precedes them.
	Super bool
	// Link is an embedded value URI covering the whole span, as produced by
	// EncodeLink. When Link is set, the lexer reads the span as the value.
	Link string
}

// Text is a styled character stream.
type Text []Span

var superscripts = map[rune]rune{
	'⁰': '0', '¹': '1', '²': '2', '³': '3', '⁴': '4',
	'⁵': '5', '⁶': '6', '⁷': '7', '⁸': '8', '⁹': '9',
	'⁺': '+', '⁻': '-', '⁽': '(', '⁾': ')', 'ⁱ': 'i',
}

var unsuperscripts = func() map[rune]rune {
	m := make(map[rune]rune, len(superscripts))
	for k, v := range superscripts {
		m[v] = k
	}
	return m
}()

// Styled creates styled text from plain text. Unicode superscript characters
// become their ordinary forms in superscript spans, and embedded value links
// become link spans.
func Styled(s string) Text {
	var (
		t     Text
		b     strings.Builder
		super bool
	)
	flush := func() {
		if b.Len() > 0 {
			t = append(t, Span{Text: b.String(), Super: super})
			b.Reset()
		}
	}
	for len(s) > 0 {
		if strings.HasPrefix(s, LinkPrefix) {
			n := len(LinkPrefix) + linkLen(s[len(LinkPrefix):])
			flush()
			t = append(t, Span{Text: s[:n], Link: s[:n]})
			s = s[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		c, sup := superscripts[r]
		if !sup {
			c = r
			// Spaces take the style of what precedes them.
			sup = super && r == ' '
		}
		if sup != super {
			flush()
			super = sup
		}
		b.WriteRune(c)
	}
	flush()
	return t
}

// linkLen returns the length of the base64 payload at the start of s.
func linkLen(s string) int {
	for i, r := range s {
		switch {
		case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == '-', r == '_':
		default:
			return i
		}
	}
	return len(s)
}

// String renders t as plain text, using Unicode superscript characters where
// they exist and ^(...) otherwise. Styled(t.String()) is equivalent to t when
// every superscript character has a superscript form.
func (t Text) String() string {
	var b strings.Builder
	for _, sp := range t {
		if !sp.Super || sp.Link != "" {
			b.WriteString(sp.Text)
			continue
		}
		sup, ok := superscript(sp.Text)
		if ok {
			b.WriteString(sup)
			continue
		}
		b.WriteString("^(")
		b.WriteString(sp.Text)
		b.WriteString(")")
	}
	return b.String()
}

func superscript(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		c, ok := unsuperscripts[r]
		if !ok {
			if r != ' ' {
				return "", false
			}
			c = r
		}
		b.WriteRune(c)
	}
	return b.String(), true
}
