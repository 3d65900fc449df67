package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	abc = NewSymbolSet(T("a"), T("b"), T("c"))
	cde = NewSymbolSet(T("c"), T("d"), T("e"))
	xy  = NewSymbolSet(T("x"), T("y"))
)

func TestSymbolSetString(t *testing.T) {
	assert.Equal(t, "{}", EmptySet.String())
	assert.Equal(t, "{}", SymbolSet{}.String())
	assert.Equal(t, "{a, b, c}", abc.String())
	assert.Equal(t, "{b, a}", NewSymbolSet(T("b"), T("a"), T("b")).String())
	assert.Equal(t, "{ε, $}", NewSymbolSet(Epsilon, Endmarker).String())
}

func TestSymbolSetMembership(t *testing.T) {
	assert.True(t, abc.Contains(T("b")))
	assert.False(t, abc.Contains(N("b")))
	assert.False(t, EmptySet.Contains(Epsilon))
	assert.True(t, EpsilonSet.Contains(Epsilon))
	assert.Equal(t, 3, abc.Size())
	assert.True(t, EmptySet.IsEmpty())
	assert.Equal(t, []Symbol{T("a"), T("b"), T("c")}, abc.Values())
}

func TestSetAlgebra(t *testing.T) {
	assert.Equal(t, "{a, b, c, d, e}", Union(abc, cde).String())
	assert.Equal(t, "{c, d, e, a, b}", Union(cde, abc).String())
	assert.Equal(t, "{a, b}", Difference(abc, cde).String())
	assert.Equal(t, "{c}", Intersection(abc, cde).String())
	assert.Equal(t, "{a, b, d, e}", SymmetricDifference(abc, cde).String())
	assert.Equal(t, "{}", Intersection(abc, xy).String())
	assert.Equal(t, "{a, b, c}", Difference(abc, xy).String())
	assert.Equal(t, "{a, b, c}", Union(EmptySet, abc).String())
}

func TestSetAlgebraIsPure(t *testing.T) {
	a := NewSymbolSet(T("a"))
	b := NewSymbolSet(T("b"))
	_ = Union(a, b)
	_ = Difference(a, b)
	_ = SymmetricDifference(a, b)
	_ = Intersection(a, b)
	assert.Equal(t, "{a}", a.String())
	assert.Equal(t, "{b}", b.String())
	assert.Equal(t, "{}", EmptySet.String())
	assert.Equal(t, "{ε}", EpsilonSet.String())
}

func TestSetAlgebraIdempotence(t *testing.T) {
	for _, s := range []SymbolSet{EmptySet, abc, cde, xy} {
		assert.True(t, Union(s, s).Equals(s))
		assert.True(t, Difference(s, s).IsEmpty())
		assert.True(t, Intersection(s, s).Equals(s))
	}
}

func TestSetAlgebraLaws(t *testing.T) {
	sets := []SymbolSet{EmptySet, abc, cde, xy, EpsilonSet}
	for _, a := range sets {
		for _, b := range sets {
			assert.True(t, Union(a, b).Equals(Union(b, a)), "union commutes for %v, %v", a, b)
			assert.True(t, Difference(Union(a, b), b).IsSubsetOf(a))
			assert.True(t, SymmetricDifference(a, b).Equals(SymmetricDifference(b, a)))
			for _, c := range sets {
				assert.True(t, Union(Union(a, b), c).Equals(Union(a, Union(b, c))),
					"union is associative for %v, %v, %v", a, b, c)
			}
		}
	}
}

func TestSetEquality(t *testing.T) {
	assert.True(t, NewSymbolSet(T("b"), T("a")).Equals(NewSymbolSet(T("a"), T("b"))))
	assert.False(t, abc.Equals(cde))
	assert.True(t, EmptySet.Equals(SymbolSet{}))
	assert.True(t, EmptySet.IsSubsetOf(abc))
	assert.False(t, abc.IsSubsetOf(xy))
}

func TestProductionSet(t *testing.T) {
	p1 := NewProduction(N("S"), NewWord(N("A")))
	p2 := NewProduction(N("A"), NewWord(T("a")))
	p3 := NewProduction(N("A"), NewWord(T("a"), T("b")))
	ps := NewProductionSet(p1, p2, p2, NewProduction(N("A"), NewWord(T("a"))), p3)
	assert.Equal(t, 3, ps.Size())
	assert.Equal(t, "{S -> A, A -> a, A -> a b}", ps.String())
	assert.True(t, ps.Contains(NewProduction(N("A"), NewWord(T("a")))))
	assert.False(t, ps.Contains(NewProduction(N("A"), NewWord(N("a")))))
	assert.Equal(t, []Production{p2, p3}, ps.ForLHS(N("A")))
	assert.Empty(t, ps.ForLHS(N("X")))
	assert.True(t, ps.Equals(NewProductionSet(p3, p2, p1)))
	assert.Equal(t, "{}", ProductionSet{}.String())
	assert.True(t, ProductionSet{}.IsEmpty())
}
