package arithma

import (
	"sort"
	"strconv"
	"strings"
)

// CompoundUnit is a product of basic units raised to nonzero integer powers,
// e.g. kg m² s⁻². The zero value is dimensionless. CompoundUnit values are
// immutable.
type CompoundUnit struct {
	pow map[*BasicUnit]int
}

// UnitOf returns the compound unit u^power.
func UnitOf(u *BasicUnit, power int) CompoundUnit {
	return CompoundUnit{}.With(u, power)
}

func (c CompoundUnit) clone(extra int) map[*BasicUnit]int {
	m := make(map[*BasicUnit]int, len(c.pow)+extra)
	for u, p := range c.pow {
		m[u] = p
	}
	return m
}

// IsEmpty reports whether c is dimensionless.
func (c CompoundUnit) IsEmpty() bool {
	return len(c.pow) == 0
}

// Power returns the power of u in c, or 0 if u does not appear.
func (c CompoundUnit) Power(u *BasicUnit) int {
	return c.pow[u]
}

// Units returns the basic units appearing in c, sorted by id.
func (c CompoundUnit) Units() []*BasicUnit {
	r := make([]*BasicUnit, 0, len(c.pow))
	for u := range c.pow {
		r = append(r, u)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].id < r[j].id })
	return r
}

// With returns c with the power of u increased by n.
func (c CompoundUnit) With(u *BasicUnit, n int) CompoundUnit {
	if n == 0 {
		return c
	}
	m := c.clone(1)
	if p := m[u] + n; p != 0 {
		m[u] = p
	} else {
		delete(m, u)
	}
	return CompoundUnit{pow: m}
}

// Mul returns the product of c and d, adding powers.
func (c CompoundUnit) Mul(d CompoundUnit) CompoundUnit {
	for u, p := range d.pow {
		c = c.With(u, p)
	}
	return c
}

// Div returns the quotient of c and d, subtracting powers.
func (c CompoundUnit) Div(d CompoundUnit) CompoundUnit {
	for u, p := range d.pow {
		c = c.With(u, -p)
	}
	return c
}

// Scale returns c with every power multiplied by n.
func (c CompoundUnit) Scale(n int) CompoundUnit {
	if n == 0 {
		return CompoundUnit{}
	}
	m := c.clone(0)
	for u := range m {
		m[u] *= n
	}
	return CompoundUnit{pow: m}
}

// BaseForm returns the powers of the root units of c, keyed by id, with every
// unit replaced by its root. Roots whose powers cancel are omitted.
func (c CompoundUnit) BaseForm() map[string]int {
	m := make(map[string]int, len(c.pow))
	for u, p := range c.pow {
		m[u.base.id] += p
	}
	for id, p := range m {
		if p == 0 {
			delete(m, id)
		}
	}
	return m
}

// CanConvert reports whether amounts in c can be expressed in d, i.e. whether
// they reduce to the same powers of the same root units.
func (c CompoundUnit) CanConvert(d CompoundUnit) bool {
	return samePowers(c.BaseForm(), d.BaseForm())
}

// Equal reports whether c and d contain the same units to the same powers.
func (c CompoundUnit) Equal(d CompoundUnit) bool {
	return samePowers(c.ids(), d.ids())
}

func (c CompoundUnit) ids() map[string]int {
	m := make(map[string]int, len(c.pow))
	for u, p := range c.pow {
		m[u.id] = p
	}
	return m
}

func samePowers(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// ToBase converts an amount in c to c's base form.
func (c CompoundUnit) ToBase(x Complex) Complex {
	for _, u := range c.Units() {
		x = u.ToBase(x, c.pow[u])
	}
	return x
}

// FromBase converts an amount in c's base form to c.
func (c CompoundUnit) FromBase(x Complex) Complex {
	for _, u := range c.Units() {
		x = u.FromBase(x, c.pow[u])
	}
	return x
}

// String formats c as a space-separated list of units with powers, e.g.
// "kg m^2 s^-2". The result lexes back to the same unit.
func (c CompoundUnit) String() string {
	m := c.ids()
	return powersText(m)
}

// BaseString formats the base form of c.
func (c CompoundUnit) BaseString() string {
	return powersText(c.BaseForm())
}

func powersText(m map[string]int) string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	// Positive powers first.
	sort.SliceStable(ids, func(i, j int) bool { return m[ids[i]] > 0 && m[ids[j]] < 0 })
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(id)
		if p := m[id]; p != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(p))
		}
	}
	return b.String()
}
