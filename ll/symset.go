package ll

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// SymbolSet is a set of symbols. Mathematically it is unordered, but it
// remembers the order of insertion. Iteration and the textual form
// "{a, b, c}" follow this order, which makes output reproducible.
//
// Sets are immutable: all operations return new sets. The zero value is the
// empty set.
type SymbolSet struct {
	set *linkedhashset.Set
}

// Pre-defined sets. Never modified.
var (
	EmptySet   = SymbolSet{}
	EpsilonSet = NewSymbolSet(Epsilon)
)

// NewSymbolSet creates a set from a list of symbols. Duplicates collapse to
// their first occurrence.
func NewSymbolSet(symbols ...Symbol) SymbolSet {
	if len(symbols) == 0 {
		return SymbolSet{}
	}
	s := SymbolSet{set: linkedhashset.New()}
	for _, sym := range symbols {
		s.set.Add(sym)
	}
	return s
}

// Size returns the number of symbols in s.
func (s SymbolSet) Size() int {
	if s.set == nil {
		return 0
	}
	return s.set.Size()
}

// IsEmpty is true for the empty set.
func (s SymbolSet) IsEmpty() bool {
	return s.Size() == 0
}

// Contains checks if sym is an element of s.
func (s SymbolSet) Contains(sym Symbol) bool {
	if s.set == nil {
		return false
	}
	return s.set.Contains(sym)
}

// Values returns the symbols of s in insertion order.
func (s SymbolSet) Values() []Symbol {
	syms := make([]Symbol, 0, s.Size())
	s.Each(func(sym Symbol) {
		syms = append(syms, sym)
	})
	return syms
}

// Each calls f for every symbol of s, in insertion order.
func (s SymbolSet) Each(f func(Symbol)) {
	if s.set == nil {
		return
	}
	it := s.set.Iterator()
	for it.Next() {
		f(it.Value().(Symbol))
	}
}

// IsSubsetOf is true if every element of s is contained in other.
func (s SymbolSet) IsSubsetOf(other SymbolSet) bool {
	if s.Size() > other.Size() {
		return false
	}
	subset := true
	s.Each(func(sym Symbol) {
		subset = subset && other.Contains(sym)
	})
	return subset
}

// Equals compares two sets as mathematical sets, i.e. disregarding order.
func (s SymbolSet) Equals(other SymbolSet) bool {
	return s.Size() == other.Size() && s.IsSubsetOf(other)
}

// String returns "{a, b, c}" in insertion order, or "{}".
func (s SymbolSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.Each(func(sym Symbol) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(sym.String())
	})
	b.WriteByte('}')
	return b.String()
}

// with returns a copy of s extended by sym.
func (s SymbolSet) with(sym Symbol) SymbolSet {
	if s.Contains(sym) {
		return s
	}
	r := s.clone()
	r.set.Add(sym)
	return r
}

// clone returns a non-nil copy of s. Only used while constructing new sets.
func (s SymbolSet) clone() SymbolSet {
	r := SymbolSet{set: linkedhashset.New()}
	s.Each(func(sym Symbol) {
		r.set.Add(sym)
	})
	return r
}

// --- Set algebra -----------------------------------------------------------

// Union returns a new set containing the elements of a, followed by the
// elements of b not contained in a.
func Union(a, b SymbolSet) SymbolSet {
	if b.IsSubsetOf(a) {
		return a
	}
	r := a.clone()
	b.Each(func(sym Symbol) {
		r.set.Add(sym)
	})
	return r
}

// Difference returns a new set containing the elements of a not contained in b.
func Difference(a, b SymbolSet) SymbolSet {
	r := SymbolSet{}
	a.Each(func(sym Symbol) {
		if !b.Contains(sym) {
			if r.set == nil {
				r.set = linkedhashset.New()
			}
			r.set.Add(sym)
		}
	})
	return r
}

// SymmetricDifference returns a new set containing the elements which are in
// either a or b, but not in both.
func SymmetricDifference(a, b SymbolSet) SymbolSet {
	return Union(Difference(a, b), Difference(b, a))
}

// Intersection returns a new set containing the elements of a which are also
// in b, in the order of a.
func Intersection(a, b SymbolSet) SymbolSet {
	r := SymbolSet{}
	a.Each(func(sym Symbol) {
		if b.Contains(sym) {
			if r.set == nil {
				r.set = linkedhashset.New()
			}
			r.set.Add(sym)
		}
	})
	return r
}
