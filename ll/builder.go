package ll

// GrammarBuilder is a builder type for grammars. Clients add rules one at a
// time; symbols used in rules are added to the vocabulary on the fly.
// Symbols may also be declared up front, which fixes their position in the
// vocabulary and allows for symbols not used in any rule.
//
//    b := NewGrammarBuilder()
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").Epsilon()            // A  ->  ε
//    g, err := b.Grammar()
//
// The start symbol is the left side of the first rule, unless set explicitly.
type GrammarBuilder struct {
	nonterminals []Symbol
	terminals    []Symbol
	known        map[Symbol]struct{}
	rules        []Production
	start        *Symbol
}

// NewGrammarBuilder creates an empty builder.
func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{
		known: make(map[Symbol]struct{}),
	}
}

// Declare adds symbols to the vocabulary, in order, skipping known symbols.
func (gb *GrammarBuilder) Declare(symbols ...Symbol) *GrammarBuilder {
	for _, sym := range symbols {
		gb.declare(sym)
	}
	return gb
}

func (gb *GrammarBuilder) declare(sym Symbol) {
	if _, ok := gb.known[sym]; ok {
		return
	}
	gb.known[sym] = struct{}{}
	if sym.IsNonterminal() {
		gb.nonterminals = append(gb.nonterminals, sym)
	} else {
		gb.terminals = append(gb.terminals, sym)
	}
}

// Start sets the start symbol.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	S := N(name)
	gb.declare(S)
	gb.start = &S
	return gb
}

// LHS starts a new rule for nonterminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	lhs := N(name)
	gb.declare(lhs)
	if gb.start == nil {
		gb.start = &lhs
	}
	return &RuleBuilder{gb: gb, lhs: lhs}
}

// Grammar assembles the grammar. Invariants are checked by NewGrammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	var start Symbol
	if gb.start != nil {
		start = *gb.start
	}
	return NewGrammar(
		NewSymbolSet(gb.nonterminals...),
		NewSymbolSet(gb.terminals...),
		NewProductionSet(gb.rules...),
		start)
}

// RuleBuilder collects the right side of a rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// N appends a nonterminal to the right side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	return rb.Sym(N(name))
}

// T appends a terminal to the right side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	return rb.Sym(T(name))
}

// Sym appends symbols to the right side.
func (rb *RuleBuilder) Sym(symbols ...Symbol) *RuleBuilder {
	for _, sym := range symbols {
		rb.gb.declare(sym)
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// End completes the rule and adds it to the grammar.
func (rb *RuleBuilder) End() Production {
	p := NewProduction(rb.lhs, NewWord(rb.rhs...))
	tracer().Debugf("builder: %v", p)
	rb.gb.rules = append(rb.gb.rules, p)
	return p
}

// Epsilon appends ε and completes the rule.
func (rb *RuleBuilder) Epsilon() Production {
	return rb.Sym(Epsilon).End()
}
