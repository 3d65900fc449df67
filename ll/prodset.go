package ll

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// ProductionSet is an immutable set of productions, remembering insertion
// order like SymbolSet does. The zero value is the empty set.
type ProductionSet struct {
	prods *linkedhashmap.Map // key → Production
}

// NewProductionSet creates a set of productions. Duplicates collapse to their
// first occurrence.
func NewProductionSet(prods ...Production) ProductionSet {
	ps := ProductionSet{prods: linkedhashmap.New()}
	for _, p := range prods {
		if _, found := ps.prods.Get(p.key()); !found {
			ps.prods.Put(p.key(), p)
		}
	}
	return ps
}

// Size returns the number of productions.
func (ps ProductionSet) Size() int {
	if ps.prods == nil {
		return 0
	}
	return ps.prods.Size()
}

// IsEmpty is true for a set without productions.
func (ps ProductionSet) IsEmpty() bool {
	return ps.Size() == 0
}

// Contains checks if a production is a member of ps.
func (ps ProductionSet) Contains(p Production) bool {
	if ps.prods == nil {
		return false
	}
	_, found := ps.prods.Get(p.key())
	return found
}

// Each calls f for every production, in insertion order.
func (ps ProductionSet) Each(f func(Production)) {
	if ps.prods == nil {
		return
	}
	it := ps.prods.Iterator()
	for it.Next() {
		f(it.Value().(Production))
	}
}

// Values returns the productions in insertion order.
func (ps ProductionSet) Values() []Production {
	r := make([]Production, 0, ps.Size())
	ps.Each(func(p Production) {
		r = append(r, p)
	})
	return r
}

// ForLHS returns all productions with left side lhs, in insertion order.
func (ps ProductionSet) ForLHS(lhs Symbol) []Production {
	var r []Production
	ps.Each(func(p Production) {
		if p.LHS() == lhs {
			r = append(r, p)
		}
	})
	return r
}

// Equals compares two sets of productions, disregarding order.
func (ps ProductionSet) Equals(other ProductionSet) bool {
	if ps.Size() != other.Size() {
		return false
	}
	eq := true
	ps.Each(func(p Production) {
		eq = eq && other.Contains(p)
	})
	return eq
}

// String returns "{A -> a, B -> b}" in insertion order, or "{}".
func (ps ProductionSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	ps.Each(func(p Production) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.String())
	})
	b.WriteByte('}')
	return b.String()
}
