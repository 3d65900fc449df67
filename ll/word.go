package ll

import (
	"strings"
)

// Word is an immutable sequence of symbols, possibly empty.
// The zero value is the empty word.
type Word struct {
	symbols []Symbol
}

// NewWord creates a word from a list of symbols. The symbols are copied.
func NewWord(symbols ...Symbol) Word {
	if len(symbols) == 0 {
		return Word{}
	}
	w := Word{symbols: make([]Symbol, len(symbols))}
	copy(w.symbols, symbols)
	return w
}

// IsEmpty is true if the word contains no symbols.
func (w Word) IsEmpty() bool {
	return len(w.symbols) == 0
}

// Len returns the number of symbols in w.
func (w Word) Len() int {
	return len(w.symbols)
}

// At returns the symbol at position i. It panics if i is out of range, like
// a slice access would.
func (w Word) At(i int) Symbol {
	return w.symbols[i]
}

// Symbols returns a copy of the symbols of w.
func (w Word) Symbols() []Symbol {
	return append([]Symbol(nil), w.symbols...)
}

// Each calls f for every symbol of w, from left to right.
func (w Word) Each(f func(int, Symbol)) {
	for i, sym := range w.symbols {
		f(i, sym)
	}
}

// First returns the leftmost symbol of w.
func (w Word) First() (Symbol, error) {
	if w.IsEmpty() {
		return Symbol{}, &EmptyWordError{Op: "First"}
	}
	return w.symbols[0], nil
}

// Last returns the rightmost symbol of w.
func (w Word) Last() (Symbol, error) {
	if w.IsEmpty() {
		return Symbol{}, &EmptyWordError{Op: "Last"}
	}
	return w.symbols[len(w.symbols)-1], nil
}

// LeftOf returns the sub-word left of the first occurrence of sym, excluding sym.
func (w Word) LeftOf(sym Symbol) (Word, error) {
	inx := w.indexOf(sym)
	if inx < 0 {
		return Word{}, &SymbolNotFoundError{Symbol: sym, Word: w}
	}
	return NewWord(w.symbols[:inx]...), nil
}

// RightOf returns the sub-word right of the first occurrence of sym, excluding sym.
func (w Word) RightOf(sym Symbol) (Word, error) {
	inx := w.indexOf(sym)
	if inx < 0 {
		return Word{}, &SymbolNotFoundError{Symbol: sym, Word: w}
	}
	return NewWord(w.symbols[inx+1:]...), nil
}

// SubWord returns the word starting at position begin. begin is clamped
// to [0…Len()].
func (w Word) SubWord(begin int) Word {
	if begin < 0 {
		begin = 0
	} else if begin > len(w.symbols) {
		begin = len(w.symbols)
	}
	return NewWord(w.symbols[begin:]...)
}

func (w Word) indexOf(sym Symbol) int {
	for i, s := range w.symbols {
		if s == sym {
			return i
		}
	}
	return -1
}

// Equals is true if both words consist of equal symbols in equal order.
func (w Word) Equals(other Word) bool {
	if len(w.symbols) != len(other.symbols) {
		return false
	}
	for i := range w.symbols {
		if w.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// Compare orders words by their textual representation.
func (w Word) Compare(other Word) int {
	return strings.Compare(w.String(), other.String())
}

// String returns the symbols separated by single spaces.
// A word consisting of ε only is rendered as "ε".
func (w Word) String() string {
	if w.IsEmpty() {
		return ""
	}
	allEpsilon := true
	var b strings.Builder
	for i, sym := range w.symbols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
		allEpsilon = allEpsilon && sym.IsEpsilon()
	}
	if allEpsilon {
		return EpsilonText
	}
	return b.String()
}

func (w Word) key() string {
	var b strings.Builder
	for _, sym := range w.symbols {
		b.WriteString(sym.key())
		b.WriteByte(0)
	}
	return b.String()
}
