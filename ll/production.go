package ll

// Production is a rewrite rule LHS -> RHS of a context-free grammar.
// Two productions are equal if both sides are equal.
type Production struct {
	lhs Symbol
	rhs Word
}

// NewProduction creates a production with a nonterminal as its left side.
// It does not check the kind of lhs; this is done when a grammar is assembled.
func NewProduction(lhs Symbol, rhs Word) Production {
	return Production{lhs: lhs, rhs: rhs}
}

// LHS returns the left hand side (head) of a production.
func (p Production) LHS() Symbol {
	return p.lhs
}

// RHS returns the right hand side (body) of a production.
func (p Production) RHS() Word {
	return p.rhs
}

// Equals is true if p and other have equal left and right sides.
func (p Production) Equals(other Production) bool {
	return p.lhs == other.lhs && p.rhs.Equals(other.rhs)
}

func (p Production) String() string {
	return p.lhs.String() + " -> " + p.rhs.String()
}

// key identifies a production by value. Words are slices and therefore not
// comparable, so sets and maps of productions are keyed by this string.
func (p Production) key() string {
	return p.lhs.key() + "\x01" + p.rhs.key()
}
