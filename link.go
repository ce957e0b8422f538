package arithma

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

// LinkPrefix begins every embedded value link.
const LinkPrefix = "arithma://data64/"

// LinkError is an error decoding an embedded value link.
type LinkError struct {
	Link string
	Err  error
}

func (err *LinkError) Error() string {
	return "bad value link " + err.Link + ": " + err.Err.Error()
}

func (err *LinkError) Unwrap() error {
	return err.Err
}

type wireValue struct {
	Value wireComplex    `json:"value"`
	Unit  map[string]int `json:"unit,omitempty"`
}

type wireComplex struct {
	Re   string `json:"re"`
	Im   string `json:"im"`
	Prec uint   `json:"prec,omitempty"`
}

// EncodeLink serializes v into a link which can be pasted into another
// expression. Decoding the link yields a value exactly equal to v.
func EncodeLink(v Value) string {
	re, im := v.Num.parts()
	w := wireValue{
		Value: wireComplex{
			Re:   re.Text('g', -1),
			Im:   im.Text('g', -1),
			Prec: v.Num.Prec(),
		},
		Unit: v.Unit.ids(),
	}
	b, err := json.Marshal(w)
	if err != nil {
		panic("arithma: encoding value link: " + err.Error())
	}
	return LinkPrefix + base64.RawURLEncoding.EncodeToString(b)
}

// DecodeLink parses a link created by EncodeLink. Unit ids are resolved in
// units, or in the default units if units is nil.
func DecodeLink(link string, units *UnitRegistry) (Value, error) {
	if units == nil {
		units = defaultUnits
	}
	if !strings.HasPrefix(link, LinkPrefix) {
		return Value{}, &LinkError{Link: link, Err: errors.New("missing " + LinkPrefix + " prefix")}
	}
	b, err := base64.RawURLEncoding.DecodeString(link[len(LinkPrefix):])
	if err != nil {
		return Value{}, &LinkError{Link: link, Err: err}
	}
	var w wireValue
	if err := json.Unmarshal(b, &w); err != nil {
		return Value{}, &LinkError{Link: link, Err: err}
	}
	p := w.Value.Prec
	if p == 0 {
		p = DefaultPrec
	}
	re, _, err := nf(p).Parse(w.Value.Re, 10)
	if err != nil {
		return Value{}, &LinkError{Link: link, Err: err}
	}
	im, _, err := nf(p).Parse(w.Value.Im, 10)
	if err != nil {
		return Value{}, &LinkError{Link: link, Err: err}
	}
	var u CompoundUnit
	for id, pow := range w.Unit {
		bu := units.Lookup(id)
		if bu == nil {
			return Value{}, &LinkError{Link: link, Err: errors.New("unknown unit " + id)}
		}
		u = u.With(bu, pow)
	}
	return Value{Num: Complex{re: re, im: im}, Unit: u}, nil
}
