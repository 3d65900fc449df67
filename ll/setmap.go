package ll

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// SymbolSetMap maps nonterminals to symbol sets. It is the result type of
// FIRST and FOLLOW computations. Keys are kept in the order of the grammar's
// nonterminals.
type SymbolSetMap struct {
	sets *linkedhashmap.Map // Symbol → SymbolSet
}

func newSymbolSetMap(keys SymbolSet) *SymbolSetMap {
	sm := &SymbolSetMap{sets: linkedhashmap.New()}
	keys.Each(func(N Symbol) {
		sm.sets.Put(N, EmptySet)
	})
	return sm
}

// Get returns the set for nonterminal N, or the empty set if N is not a key.
func (sm *SymbolSetMap) Get(N Symbol) SymbolSet {
	if sm == nil {
		return EmptySet
	}
	if s, found := sm.sets.Get(N); found {
		return s.(SymbolSet)
	}
	return EmptySet
}

// Keys returns the nonterminals of sm, in order.
func (sm *SymbolSetMap) Keys() []Symbol {
	keys := make([]Symbol, 0, sm.Size())
	sm.Each(func(N Symbol, _ SymbolSet) {
		keys = append(keys, N)
	})
	return keys
}

// Size returns the number of entries.
func (sm *SymbolSetMap) Size() int {
	if sm == nil {
		return 0
	}
	return sm.sets.Size()
}

// Each calls f for every entry, in order.
func (sm *SymbolSetMap) Each(f func(N Symbol, set SymbolSet)) {
	if sm == nil {
		return
	}
	it := sm.sets.Iterator()
	for it.Next() {
		f(it.Key().(Symbol), it.Value().(SymbolSet))
	}
}

// Equals is true if both maps have the same keys, mapped to equal sets.
func (sm *SymbolSetMap) Equals(other *SymbolSetMap) bool {
	if sm.Size() != other.Size() {
		return false
	}
	eq := true
	sm.Each(func(N Symbol, set SymbolSet) {
		if eq {
			_, found := other.sets.Get(N)
			eq = found && set.Equals(other.Get(N))
		}
	})
	return eq
}

// String returns "{A={a, b}, B={c}}".
func (sm *SymbolSetMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	sm.Each(func(N Symbol, set SymbolSet) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(N.String())
		b.WriteByte('=')
		b.WriteString(set.String())
	})
	b.WriteByte('}')
	return b.String()
}

func (sm *SymbolSetMap) put(N Symbol, set SymbolSet) {
	sm.sets.Put(N, set)
}

// copy returns a new map sharing the (immutable) sets of sm.
func (sm *SymbolSetMap) copy() *SymbolSetMap {
	c := &SymbolSetMap{sets: linkedhashmap.New()}
	sm.Each(func(N Symbol, set SymbolSet) {
		c.sets.Put(N, set)
	})
	return c
}

// --- Predict maps ----------------------------------------------------------

// PredictMap maps productions to symbol sets. It is the result type of
// PREDICT computations. Keys are kept in the order of the grammar's productions.
type PredictMap struct {
	sets *linkedhashmap.Map // production key → predictEntry
}

type predictEntry struct {
	prod Production
	set  SymbolSet
}

func newPredictMap() *PredictMap {
	return &PredictMap{sets: linkedhashmap.New()}
}

// Get returns the set for production p, or the empty set if p is not a key.
func (pm *PredictMap) Get(p Production) SymbolSet {
	if pm == nil {
		return EmptySet
	}
	if e, found := pm.sets.Get(p.key()); found {
		return e.(predictEntry).set
	}
	return EmptySet
}

// Keys returns the productions of pm, in order.
func (pm *PredictMap) Keys() []Production {
	keys := make([]Production, 0, pm.Size())
	pm.Each(func(p Production, _ SymbolSet) {
		keys = append(keys, p)
	})
	return keys
}

// Size returns the number of entries.
func (pm *PredictMap) Size() int {
	if pm == nil {
		return 0
	}
	return pm.sets.Size()
}

// Each calls f for every entry, in order.
func (pm *PredictMap) Each(f func(p Production, set SymbolSet)) {
	if pm == nil {
		return
	}
	it := pm.sets.Iterator()
	for it.Next() {
		e := it.Value().(predictEntry)
		f(e.prod, e.set)
	}
}

// Equals is true if both maps have the same keys, mapped to equal sets.
func (pm *PredictMap) Equals(other *PredictMap) bool {
	if pm.Size() != other.Size() {
		return false
	}
	eq := true
	pm.Each(func(p Production, set SymbolSet) {
		if eq {
			_, found := other.sets.Get(p.key())
			eq = found && set.Equals(other.Get(p))
		}
	})
	return eq
}

// String returns "{A -> a={a}, B -> ε={$}}".
func (pm *PredictMap) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	pm.Each(func(p Production, set SymbolSet) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.String())
		b.WriteByte('=')
		b.WriteString(set.String())
	})
	b.WriteByte('}')
	return b.String()
}

func (pm *PredictMap) put(p Production, set SymbolSet) {
	pm.sets.Put(p.key(), predictEntry{prod: p, set: set})
}
