package ll

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Grammar is a context-free grammar, consisting of nonterminals, terminals,
// productions and a start symbol.
//
// Grammars are created with NewGrammar, by a GrammarBuilder or by package
// ll/parser, and are immutable afterwards.
type Grammar struct {
	nonterminals SymbolSet
	terminals    SymbolSet
	productions  ProductionSet
	start        Symbol
}

// NewGrammar assembles a grammar and checks its invariants:
//
//    - nonterminals contains only nonterminals, none of them with an empty name
//    - terminals contains only terminals, thus both are disjoint
//    - start is one of nonterminals
//    - every left side of a production is one of nonterminals
//    - every symbol of a right side is a known symbol or ε
//
// If an invariant is violated, a *GrammarValidationError is returned.
func NewGrammar(nonterminals, terminals SymbolSet, productions ProductionSet, start Symbol) (*Grammar, error) {
	g := &Grammar{
		nonterminals: nonterminals,
		terminals:    terminals,
		productions:  productions,
		start:        start,
	}
	if err := g.validate(); err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	return g, nil
}

func (g *Grammar) validate() error {
	var err error
	g.nonterminals.Each(func(N Symbol) {
		if err != nil {
			return
		}
		if !N.IsNonterminal() {
			err = &GrammarValidationError{Reason: WrongSymbolKind, Symbol: N}
		} else if N.Text() == "" {
			err = &GrammarValidationError{Reason: EmptySymbolName, Symbol: N}
		}
	})
	if err != nil {
		return err
	}
	g.terminals.Each(func(t Symbol) {
		if err != nil {
			return
		}
		if !t.IsTerminal() {
			err = &GrammarValidationError{Reason: WrongSymbolKind, Symbol: t}
		}
	})
	if err != nil {
		return err
	}
	if !g.nonterminals.Contains(g.start) {
		return &GrammarValidationError{Reason: StartNotNonterminal, Symbol: g.start}
	}
	g.productions.Each(func(p Production) {
		if err != nil {
			return
		}
		if !g.nonterminals.Contains(p.LHS()) {
			err = &GrammarValidationError{Reason: LHSNotNonterminal, Symbol: p.LHS(), Production: p.String()}
			return
		}
		p.RHS().Each(func(_ int, sym Symbol) {
			if err == nil && !g.IsVocabulary(sym) {
				err = &GrammarValidationError{Reason: UnknownSymbol, Symbol: sym, Production: p.String()}
			}
		})
	})
	return err
}

// Nonterminals returns the set of nonterminals of g.
func (g *Grammar) Nonterminals() SymbolSet {
	return g.nonterminals
}

// Terminals returns the set of terminals of g.
func (g *Grammar) Terminals() SymbolSet {
	return g.terminals
}

// Productions returns the set of productions of g.
func (g *Grammar) Productions() ProductionSet {
	return g.productions
}

// StartSymbol returns the start symbol of g.
func (g *Grammar) StartSymbol() Symbol {
	return g.start
}

// IsVocabulary checks if sym is a nonterminal or terminal of g.
// ε is always part of the vocabulary.
func (g *Grammar) IsVocabulary(sym Symbol) bool {
	return sym.IsEpsilon() || g.nonterminals.Contains(sym) || g.terminals.Contains(sym)
}

// EachNonterminal calls f for every nonterminal of g, in vocabulary order.
func (g *Grammar) EachNonterminal(f func(N Symbol)) {
	g.nonterminals.Each(f)
}

// EachProduction calls f for every production of g, in order of definition.
func (g *Grammar) EachProduction(f func(p Production)) {
	g.productions.Each(f)
}

// String returns "(Nonterminals, Terminals, Productions, StartSymbol)".
func (g *Grammar) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", g.nonterminals, g.terminals, g.productions, g.start)
}

// Dump is a debugging helper, tracing all productions of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- Grammar, start symbol %s -------------", g.start)
	i := 0
	g.productions.Each(func(p Production) {
		tracer().Debugf("%3d: %v", i, p)
		i++
	})
	tracer().Debugf("-------------------------------------------")
}

// grammarDigest is the hashing input for a grammar. Symbols are represented
// by their keys, so a terminal and a nonterminal of equal text differ.
type grammarDigest struct {
	Nonterminals []string
	Terminals    []string
	Productions  []string
	Start        string
}

// Fingerprint returns a structural hash of g. Grammars with equal
// vocabularies, productions and start symbol have equal fingerprints,
// independent of the order in which symbols and productions were added.
func (g *Grammar) Fingerprint() string {
	d := grammarDigest{Start: g.start.key()}
	g.nonterminals.Each(func(N Symbol) {
		d.Nonterminals = append(d.Nonterminals, N.key())
	})
	g.terminals.Each(func(t Symbol) {
		d.Terminals = append(d.Terminals, t.key())
	})
	g.productions.Each(func(p Production) {
		d.Productions = append(d.Productions, p.key())
	})
	sort.Strings(d.Nonterminals)
	sort.Strings(d.Terminals)
	sort.Strings(d.Productions)
	return fmt.Sprintf("%x", structhash.Sha1(d, 1))
}
