package arithma

import (
	"math"
	"math/big"
	"strconv"
)

// BasicUnit is a named unit of measure. A root unit is its own base. A derived
// unit is worth a fixed multiple of its root, e.g. a km is worth 1000 m.
type BasicUnit struct {
	id    string
	base  *BasicUnit
	worth float64
}

// ID returns the unit's identifier, e.g. "km".
func (u *BasicUnit) ID() string {
	return u.id
}

// Base returns the root unit of u's family.
func (u *BasicUnit) Base() *BasicUnit {
	return u.base
}

// Worth returns how many base units one u is.
func (u *BasicUnit) Worth() float64 {
	return u.worth
}

// IsRoot reports whether u is the base of its family.
func (u *BasicUnit) IsRoot() bool {
	return u.base == u
}

func (u *BasicUnit) String() string {
	return u.id
}

// CanConvert reports whether amounts in u can be expressed in v.
func (u *BasicUnit) CanConvert(v *BasicUnit) bool {
	return u.id == v.id || u.base.id == v.id || v.base.id == u.id || u.base.id == v.base.id
}

// ToBase converts an amount in u^power to the same power of u's base unit.
func (u *BasicUnit) ToBase(x Complex, power int) Complex {
	if u.IsRoot() || power == 0 {
		return x
	}
	return x.Scale(worthPow(u.worth, power, x.Prec()))
}

// FromBase converts an amount in the power of u's base unit to u^power.
func (u *BasicUnit) FromBase(x Complex, power int) Complex {
	return u.ToBase(x, -power)
}

// UnitRegistry is a set of units with distinct ids. The registry must not be
// modified while expressions lexed with it are being evaluated.
type UnitRegistry struct {
	units []*BasicUnit
	byID  map[string]*BasicUnit
}

// NewUnitRegistry creates an empty unit registry.
func NewUnitRegistry() *UnitRegistry {
	return &UnitRegistry{byID: make(map[string]*BasicUnit)}
}

// DefaultUnits creates a registry holding the standard unit families:
//
//	m    mm cm km
//	s    min hr day
//	kg   mg g ton
//	A    µA mA kA
//	K    µK mK kK
//	mol  mmol kmol
func DefaultUnits() *UnitRegistry {
	r := NewUnitRegistry()
	r.Root("m").Derive("mm", 1e-3).Derive("cm", 1e-2).Derive("km", 1e3)
	r.Root("s").Derive("min", 60).Derive("hr", 3600).Derive("day", 86400)
	r.Root("kg").Derive("mg", 1e-6).Derive("g", 1e-3).Derive("ton", 1e3)
	r.Root("A").Derive("µA", 1e-6).Derive("mA", 1e-3).Derive("kA", 1e3)
	r.Root("K").Derive("µK", 1e-6).Derive("mK", 1e-3).Derive("kK", 1e3)
	r.Root("mol").Derive("mmol", 1e-3).Derive("kmol", 1e3)
	return r
}

var defaultUnits = DefaultUnits()

// UnitFamily adds derived units to a root unit in a registry.
type UnitFamily struct {
	reg  *UnitRegistry
	root *BasicUnit
}

// Root registers a root unit. If id is already registered, the family of the
// existing unit is returned instead.
func (r *UnitRegistry) Root(id string) UnitFamily {
	if id == "" {
		panic("arithma: empty unit id")
	}
	if u := r.byID[id]; u != nil {
		return UnitFamily{reg: r, root: u.base}
	}
	u := &BasicUnit{id: id, worth: 1}
	u.base = u
	r.add(u)
	return UnitFamily{reg: r, root: u}
}

// Derive registers a unit worth the given multiple of the family's root and
// returns the family for chaining. If id is already registered, the existing
// unit is kept. Derive panics if worth is not positive and finite.
func (f UnitFamily) Derive(id string, worth float64) UnitFamily {
	if id == "" {
		panic("arithma: empty unit id")
	}
	if !(worth > 0) || math.IsInf(worth, 0) {
		panic("arithma: unit " + id + " has invalid worth " + strconv.FormatFloat(worth, 'g', -1, 64))
	}
	if f.reg.byID[id] == nil {
		f.reg.add(&BasicUnit{id: id, base: f.root, worth: worth})
	}
	return f
}

// Unit returns the family's root unit.
func (f UnitFamily) Unit() *BasicUnit {
	return f.root
}

func (r *UnitRegistry) add(u *BasicUnit) {
	r.units = append(r.units, u)
	r.byID[u.id] = u
}

// Lookup returns the unit with the given id, or nil if there is none.
func (r *UnitRegistry) Lookup(id string) *BasicUnit {
	return r.byID[id]
}

// Units returns the registered units in registration order.
func (r *UnitRegistry) Units() []*BasicUnit {
	return append([]*BasicUnit(nil), r.units...)
}

// worthPow returns worth**n to prec bits.
func worthPow(worth float64, n int, prec uint) *big.Float {
	r := nf(prec).SetInt64(1)
	w := nf(prec).SetFloat64(worth)
	neg := n < 0
	if neg {
		n = -n
	}
	for ; n > 0; n >>= 1 {
		if n&1 != 0 {
			r.Mul(r, w)
		}
		w.Mul(w, w)
	}
	if neg {
		r.Quo(one, r)
	}
	return r
}
