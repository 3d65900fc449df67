package ll

// === FIRST, FOLLOW and PREDICT =============================================

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 5.5 "Computing FIRST and FOLLOW sets"
//
// FIRST and FOLLOW are computed as least fixed points. Every pass starts
// from a copy of the previous pass' map; sets within the copy are replaced,
// never modified, and only ever grow. A pass which does not grow any set
// terminates the iteration. As sets are bounded by the terminal alphabet
// (plus ε and $), the number of passes is bounded, too.

// First computes the FIRST sets of all nonterminals of g.
// FIRST(N) contains the terminals which may begin a word derived from N,
// and ε if N may derive the empty word.
func First(g *Grammar) *SymbolSetMap {
	first := newSymbolSetMap(g.Nonterminals())
	for pass := 1; ; pass++ {
		next := first.copy()
		changed := false
		g.EachProduction(func(p Production) {
			S := next.Get(p.LHS())
			if grown := Union(S, FirstOf(next, p.RHS())); grown.Size() > S.Size() {
				tracer().Debugf("FIRST(%s) = %v   by %v", p.LHS(), grown, p)
				next.put(p.LHS(), grown)
				changed = true
			}
		})
		first = next
		if !changed {
			tracer().Infof("FIRST sets stable after %d passes", pass)
			return first
		}
	}
}

// FirstOf computes FIRST of an arbitrary word, given the FIRST sets of the
// nonterminals. Symbols are scanned left to right as long as they may derive
// the empty word. If the whole word may derive the empty word, the result
// contains ε. ε itself is treated as deriving the empty word.
func FirstOf(first *SymbolSetMap, w Word) SymbolSet {
	S := EmptySet
	for _, sym := range w.symbols {
		if sym.IsEpsilon() {
			continue
		}
		if sym.IsTerminal() {
			return S.with(sym)
		}
		F := first.Get(sym)
		S = Union(S, Difference(F, EpsilonSet))
		if !F.Contains(Epsilon) {
			return S
		}
	}
	return S.with(Epsilon)
}

// Nullable is true if w may derive the empty word, i.e. if every symbol of w
// is either ε or a nonterminal with ε in its FIRST set. The empty word is nullable.
func Nullable(first *SymbolSetMap, w Word) bool {
	for _, sym := range w.symbols {
		if sym.IsEpsilon() {
			continue
		}
		if sym.IsTerminal() || !first.Get(sym).Contains(Epsilon) {
			return false
		}
	}
	return true
}

// Follow computes the FOLLOW sets of all nonterminals of g, computing the
// FIRST sets first.
func Follow(g *Grammar) *SymbolSetMap {
	return FollowWith(g, First(g))
}

// FollowWith computes the FOLLOW sets of all nonterminals of g, given
// previously computed FIRST sets. FOLLOW(N) contains the terminals which may
// immediately follow N in a word derived from the start symbol. The FOLLOW
// set of the start symbol always contains the Endmarker $.
func FollowWith(g *Grammar, first *SymbolSetMap) *SymbolSetMap {
	follow := newSymbolSetMap(g.Nonterminals())
	follow.put(g.StartSymbol(), NewSymbolSet(Endmarker))
	for pass := 1; ; pass++ {
		next := follow.copy()
		changed := false
		g.EachProduction(func(p Production) {
			rhs := p.RHS()
			for i, sym := range rhs.symbols {
				if !sym.IsNonterminal() {
					continue
				}
				// every occurrence of a nonterminal counts on its own
				F := next.Get(sym)
				S := followOf(first, next, p.LHS(), rhs.SubWord(i+1))
				if grown := Union(F, S); grown.Size() > F.Size() {
					tracer().Debugf("FOLLOW(%s) = %v   by %v", sym, grown, p)
					next.put(sym, grown)
					changed = true
				}
			}
		})
		follow = next
		if !changed {
			tracer().Infof("FOLLOW sets stable after %d passes", pass)
			return follow
		}
	}
}

// followOf collects the terminals which may follow a nonterminal occurrence,
// given the rest of the right side after it. If the rest may derive the
// empty word, FOLLOW(lhs) is included. The result never contains ε.
func followOf(first, follow *SymbolSetMap, lhs Symbol, rest Word) SymbolSet {
	S := EmptySet
	for _, sym := range rest.symbols {
		if sym.IsEpsilon() {
			continue
		}
		if sym.IsTerminal() {
			return S.with(sym)
		}
		F := first.Get(sym)
		S = Union(S, Difference(F, EpsilonSet))
		if !F.Contains(Epsilon) {
			return S
		}
	}
	return Union(S, follow.Get(lhs))
}

// Predict computes the PREDICT sets of all productions of g, computing the
// FIRST and FOLLOW sets first.
func Predict(g *Grammar) *PredictMap {
	first := First(g)
	return PredictWith(g, first, FollowWith(g, first))
}

// PredictWith computes the PREDICT sets of all productions of g, given
// previously computed FIRST and FOLLOW sets. For a production N -> w,
// PREDICT is FIRST(w) without ε, extended by FOLLOW(N) if w is nullable.
func PredictWith(g *Grammar, first, follow *SymbolSetMap) *PredictMap {
	predict := newPredictMap()
	g.EachProduction(func(p Production) {
		P := Difference(FirstOf(first, p.RHS()), EpsilonSet)
		if Nullable(first, p.RHS()) {
			P = Union(P, follow.Get(p.LHS()))
		}
		tracer().Debugf("PREDICT(%v) = %v", p, P)
		predict.put(p, P)
	})
	return predict
}

// --- Analysis --------------------------------------------------------------

// LLAnalysis bundles a grammar with its FIRST, FOLLOW and PREDICT sets.
// The sets belong to the analysis, not to the grammar: every call to Analysis
// computes them anew.
type LLAnalysis struct {
	g       *Grammar
	first   *SymbolSetMap
	follow  *SymbolSetMap
	predict *PredictMap
}

// Analysis computes FIRST, FOLLOW and PREDICT sets for g, in this order.
func Analysis(g *Grammar) *LLAnalysis {
	ga := &LLAnalysis{g: g}
	ga.first = First(g)
	ga.follow = FollowWith(g, ga.first)
	ga.predict = PredictWith(g, ga.first, ga.follow)
	return ga
}

// Grammar returns the analysed grammar.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(N).
func (ga *LLAnalysis) First(N Symbol) SymbolSet {
	return ga.first.Get(N)
}

// Follow returns FOLLOW(N).
func (ga *LLAnalysis) Follow(N Symbol) SymbolSet {
	return ga.follow.Get(N)
}

// Predict returns PREDICT(p).
func (ga *LLAnalysis) Predict(p Production) SymbolSet {
	return ga.predict.Get(p)
}

// FirstSets returns the FIRST sets of all nonterminals.
func (ga *LLAnalysis) FirstSets() *SymbolSetMap {
	return ga.first
}

// FollowSets returns the FOLLOW sets of all nonterminals.
func (ga *LLAnalysis) FollowSets() *SymbolSetMap {
	return ga.follow
}

// PredictSets returns the PREDICT sets of all productions.
func (ga *LLAnalysis) PredictSets() *PredictMap {
	return ga.predict
}
