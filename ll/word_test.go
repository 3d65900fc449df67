package ll

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordString(t *testing.T) {
	assert.Equal(t, "", Word{}.String())
	assert.Equal(t, "A b C", NewWord(N("A"), T("b"), N("C")).String())
	assert.Equal(t, "ε", NewWord(Epsilon).String())
	assert.Equal(t, "ε", NewWord(Epsilon, Epsilon).String())
	assert.Equal(t, "a ε", NewWord(T("a"), Epsilon).String())
}

func TestWordFirstLast(t *testing.T) {
	w := NewWord(N("A"), N("B"), T("c"))
	first, err := w.First()
	require.NoError(t, err)
	assert.Equal(t, N("A"), first)
	last, err := w.Last()
	require.NoError(t, err)
	assert.Equal(t, T("c"), last)
	//
	_, err = Word{}.First()
	var ewe *EmptyWordError
	require.True(t, errors.As(err, &ewe))
	assert.Equal(t, "First", ewe.Op)
	_, err = NewWord().Last()
	require.True(t, errors.As(err, &ewe))
	assert.Equal(t, "Last", ewe.Op)
}

func TestWordLeftRight(t *testing.T) {
	w := NewWord(N("A"), N("B"), N("C"), N("D"))
	left, err := w.LeftOf(N("C"))
	require.NoError(t, err)
	assert.Equal(t, "A B", left.String())
	right, err := w.RightOf(N("A"))
	require.NoError(t, err)
	assert.Equal(t, "B C D", right.String())
	right, err = w.RightOf(N("D"))
	require.NoError(t, err)
	assert.True(t, right.IsEmpty())
	//
	_, err = w.LeftOf(N("X"))
	var snf *SymbolNotFoundError
	require.True(t, errors.As(err, &snf))
	assert.Equal(t, N("X"), snf.Symbol)
	_, err = w.RightOf(T("A"))
	assert.True(t, errors.As(err, &snf), "terminal A is not contained")
}

func TestWordRepeatedSymbol(t *testing.T) {
	w := NewWord(T("a"), N("A"), T("b"), N("A"), T("c"))
	left, err := w.LeftOf(N("A"))
	require.NoError(t, err)
	assert.Equal(t, "a", left.String())
	right, err := w.RightOf(N("A"))
	require.NoError(t, err)
	assert.Equal(t, "b A c", right.String())
}

func TestWordIsImmutable(t *testing.T) {
	syms := []Symbol{T("a"), T("b")}
	w := NewWord(syms...)
	syms[0] = T("x")
	assert.Equal(t, "a b", w.String())
	out := w.Symbols()
	out[1] = T("y")
	assert.Equal(t, "a b", w.String())
}

func TestSubWord(t *testing.T) {
	w := NewWord(T("a"), T("b"), T("c"))
	assert.Equal(t, "b c", w.SubWord(1).String())
	assert.True(t, w.SubWord(3).IsEmpty())
	assert.True(t, w.SubWord(7).IsEmpty())
	assert.Equal(t, "a b c", w.SubWord(-1).String())
	assert.True(t, w.Equals(w.SubWord(0)))
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, T("b"), w.At(1))
}

func TestWordCompare(t *testing.T) {
	assert.True(t, NewWord(T("a")).Equals(NewWord(T("a"))))
	assert.False(t, NewWord(T("A")).Equals(NewWord(N("A"))))
	assert.Equal(t, 0, NewWord(T("a"), T("b")).Compare(NewWord(T("a"), T("b"))))
	assert.Equal(t, -1, NewWord(T("a")).Compare(NewWord(T("b"))))
}
