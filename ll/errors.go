package ll

import "fmt"

// EmptyWordError is returned when requesting the first or last symbol of an
// empty word.
type EmptyWordError struct {
	Op string // operation requested, "First" or "Last"
}

func (e *EmptyWordError) Error() string {
	return fmt.Sprintf("%s called on an empty word", e.Op)
}

// SymbolNotFoundError is returned when a word is split at a symbol it does
// not contain.
type SymbolNotFoundError struct {
	Symbol Symbol
	Word   Word
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol %s (%s) not found in word [%s]", e.Symbol, e.Symbol.Kind(), e.Word)
}

// ValidationReason names the grammar invariant a GrammarValidationError
// reports on.
type ValidationReason string

// Invariants checked when a grammar is assembled.
const (
	EmptySymbolName     ValidationReason = "nonterminal with empty name"
	WrongSymbolKind     ValidationReason = "symbol of wrong kind in vocabulary"
	StartNotNonterminal ValidationReason = "start symbol is not a nonterminal of the grammar"
	LHSNotNonterminal   ValidationReason = "left side of production is not a nonterminal of the grammar"
	UnknownSymbol       ValidationReason = "right side of production contains an unknown symbol"
)

// GrammarValidationError is returned when a grammar violates one of its
// invariants. Production is empty if the violation is not tied to a production.
type GrammarValidationError struct {
	Reason     ValidationReason
	Symbol     Symbol // offending symbol
	Production string // offending production, if any
}

func (e *GrammarValidationError) Error() string {
	if e.Production != "" {
		return fmt.Sprintf("invalid grammar: %s: %q in production %s", e.Reason, e.Symbol, e.Production)
	}
	return fmt.Sprintf("invalid grammar: %s: %q", e.Reason, e.Symbol)
}
