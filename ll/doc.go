/*
Package ll implements prerequisites for LL(1) parsing: a data model for
context-free grammars and the computation of FIRST, FOLLOW and PREDICT sets.

Symbols, Words and Productions

Symbols are small values, either terminals or nonterminals. Two symbols are
equal if both their kind and their text match:

    a := ll.T("a")        // terminal a
    A := ll.N("A")        // nonterminal A
    ll.T("A") == A        // false

The empty word is represented by the terminal ll.Epsilon, the end of input
by ll.Endmarker ($). Words are immutable sequences of symbols, productions
pair a nonterminal with a word.

Building a Grammar

Grammars are either parsed from text (see package ll/parser) or specified
using a grammar builder object. Clients add rules, consisting of nonterminal
symbols and terminals. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder()
    b.LHS("S").N("A").N("B").N("C").End()  // S  ->  A B C
    b.LHS("A").N("C").End()                // A  ->  C
    b.LHS("A").T("a").End()                // A  ->  a
    b.LHS("B").T("b").End()                // B  ->  b
    b.LHS("B").Epsilon()                   // B  ->  ε
    b.LHS("C").T("c").End()                // C  ->  c
    g, err := b.Grammar()

Grammars are validated when they are assembled and are never modified
afterwards.

Static Grammar Analysis

FIRST, FOLLOW and PREDICT sets are computed by fixed-point iteration. Every
call allocates fresh result maps; nothing is cached within the grammar, so
concurrent analysis of the same grammar is safe.

    first := ll.First(g)
    follow := ll.FollowWith(g, first)
    predict := ll.PredictWith(g, first, follow)
    fmt.Println(first)   // {S={a, c}, A={a, c}, B={b, ε}, C={c}}

Alternatively, an analysis object computes all three maps at once:

    ga := ll.Analysis(g)
    ga.Grammar().EachNonterminal(func(N ll.Symbol) {
        fmt.Printf("FIRST(%s) = %v\n", N, ga.First(N))
    })

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llsets.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llsets.ll")
}
