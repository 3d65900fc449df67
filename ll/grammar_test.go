package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	b := NewGrammarBuilder()
	b.LHS("S").N("A").N("B").N("C").End()
	b.LHS("A").N("C").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("C").T("c").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	g.Dump()
	assert.Equal(t, "({S, A, B, C}, {a, b, ε, c}, {S -> A B C, A -> C, A -> a, B -> b, B -> ε, C -> c}, S)", g.String())
	assert.Equal(t, N("S"), g.StartSymbol())
	assert.True(t, g.IsVocabulary(T("c")))
	assert.True(t, g.IsVocabulary(Epsilon))
	assert.False(t, g.IsVocabulary(T("x")))
	assert.False(t, g.IsVocabulary(T("S")))
}

func TestBuilderStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	b := NewGrammarBuilder().Start("E")
	b.LHS("T").T("t").End()
	b.LHS("E").N("T").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, N("E"), g.StartSymbol())
	assert.Equal(t, "{E, T}", g.Nonterminals().String())
}

func TestGrammarValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	S, A := N("S"), N("A")
	prods := NewProductionSet(NewProduction(S, NewWord(A, T("a"))), NewProduction(A, NewWord(Epsilon)))
	tests := []struct {
		caption string
		nts, ts SymbolSet
		prods   ProductionSet
		start   Symbol
		reason  ValidationReason
	}{
		{"terminal among nonterminals", NewSymbolSet(S, A, T("x")), NewSymbolSet(T("a")), prods, S, WrongSymbolKind},
		{"nonterminal among terminals", NewSymbolSet(S, A), NewSymbolSet(T("a"), N("B")), prods, S, WrongSymbolKind},
		{"empty nonterminal", NewSymbolSet(S, A, N("")), NewSymbolSet(T("a")), prods, S, EmptySymbolName},
		{"unknown start", NewSymbolSet(S, A), NewSymbolSet(T("a")), prods, N("X"), StartNotNonterminal},
		{"terminal start", NewSymbolSet(S, A), NewSymbolSet(T("a")), prods, T("a"), StartNotNonterminal},
		{"unknown lhs", NewSymbolSet(S), NewSymbolSet(T("a")),
			NewProductionSet(NewProduction(A, NewWord(Epsilon))), S, LHSNotNonterminal},
		{"unknown rhs symbol", NewSymbolSet(S, A), NewSymbolSet(T("b")), prods, S, UnknownSymbol},
	}
	for _, tt := range tests {
		g, err := NewGrammar(tt.nts, tt.ts, tt.prods, tt.start)
		assert.Nil(t, g, tt.caption)
		var gve *GrammarValidationError
		if assert.True(t, errors.As(err, &gve), "%s: expected validation error, got %v", tt.caption, err) {
			assert.Equal(t, tt.reason, gve.Reason, tt.caption)
		}
	}
	g, err := NewGrammar(NewSymbolSet(S, A), NewSymbolSet(T("a")), prods, S)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Productions().Size())
}

func TestTerminalAndNonterminalOfEqualText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	S, A := N("S"), N("A")
	prods := NewProductionSet(NewProduction(S, NewWord(A, T("A"))), NewProduction(A, NewWord(T("a"))))
	g, err := NewGrammar(NewSymbolSet(S, A), NewSymbolSet(T("A"), T("a")), prods, S)
	require.NoError(t, err)
	assert.True(t, g.Nonterminals().Contains(A))
	assert.True(t, g.Terminals().Contains(T("A")))
	assert.False(t, g.Terminals().Contains(A))
	//
	b := NewGrammarBuilder()
	b.LHS("S").N("A").T("A").End()
	b.LHS("A").T("a").End()
	g, err = b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, "({S, A}, {A, a}, {S -> A A, A -> a}, S)", g.String())
	ga := Analysis(g)
	assert.Equal(t, "{a}", ga.First(A).String())
	assert.Equal(t, "{A}", ga.Follow(A).String())
}

func TestBuilderWithoutRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	_, err := NewGrammarBuilder().Grammar()
	var gve *GrammarValidationError
	require.True(t, errors.As(err, &gve))
	assert.Equal(t, StartNotNonterminal, gve.Reason)
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llsets.ll")
	defer teardown()
	//
	g1 := makeGrammar(t, "S : A b", "A : a", "A : ε")
	g2 := makeGrammar(t, "S : A b", "A : a", "A : ε")
	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint())
	assert.NotEmpty(t, g1.Fingerprint())
	//
	b := NewGrammarBuilder().Start("S") // same grammar, different order
	b.Declare(T("b"), T("a"))
	b.LHS("A").Epsilon()
	b.LHS("A").T("a").End()
	b.LHS("S").N("A").T("b").End()
	g3, err := b.Grammar()
	require.NoError(t, err)
	assert.Equal(t, g1.Fingerprint(), g3.Fingerprint())
	//
	g4 := makeGrammar(t, "S : A b", "A : a")
	assert.NotEqual(t, g1.Fingerprint(), g4.Fingerprint())
	g5 := makeGrammar(t, "A : a", "A : ε", "S : A b") // start symbol differs
	assert.NotEqual(t, g1.Fingerprint(), g5.Fingerprint())
}
