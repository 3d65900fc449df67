package ll

import (
	"strings"
)

// Kind discriminates terminal from nonterminal symbols.
type Kind int8

// Symbol kinds. The zero value of Kind is not a valid kind, so the zero value
// of Symbol cannot be mistaken for a grammar symbol.
const (
	TerminalSymbol Kind = iota + 1
	NonterminalSymbol
)

func (k Kind) String() string {
	switch k {
	case TerminalSymbol:
		return "terminal"
	case NonterminalSymbol:
		return "nonterminal"
	}
	return "<invalid>"
}

// EpsilonText is the character denoting the empty word in grammar input.
const EpsilonText = "ε"

// Symbol is a grammar symbol, either a terminal or a nonterminal.
// Symbols are values: they may be copied, compared with == and used as
// map keys.
type Symbol struct {
	kind Kind
	text string
}

// Pre-defined symbols. Both are terminals.
var (
	// Epsilon represents the empty word. Its text is empty.
	Epsilon = T("")
	// Endmarker marks the end of input. It is inserted into FOLLOW sets and
	// never appears in parsed grammars.
	Endmarker = T("$")
)

// T creates a terminal symbol.
func T(text string) Symbol {
	return Symbol{kind: TerminalSymbol, text: text}
}

// N creates a nonterminal symbol.
func N(text string) Symbol {
	return Symbol{kind: NonterminalSymbol, text: text}
}

// Kind returns the kind of a symbol.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Text returns the content of a symbol. For Epsilon this is the empty string.
func (s Symbol) Text() string {
	return s.text
}

// IsTerminal is true for terminals, including Epsilon and Endmarker.
func (s Symbol) IsTerminal() bool {
	return s.kind == TerminalSymbol
}

// IsNonterminal is true for nonterminals.
func (s Symbol) IsNonterminal() bool {
	return s.kind == NonterminalSymbol
}

// IsEpsilon is true for the empty-word terminal.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// Compare orders symbols by kind first, then by text.
// It returns -1, 0 or +1.
func (s Symbol) Compare(other Symbol) int {
	if s.kind != other.kind {
		if s.kind < other.kind {
			return -1
		}
		return 1
	}
	return strings.Compare(s.text, other.text)
}

func (s Symbol) String() string {
	if s.IsEpsilon() {
		return EpsilonText
	}
	return s.text
}

// key is a string unique for (kind, text).
func (s Symbol) key() string {
	if s.kind == NonterminalSymbol {
		return "N:" + s.text
	}
	return "T:" + s.text
}
