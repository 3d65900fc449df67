/*
Package parser converts textual grammar definitions into grammars of package ll.

Input is a sequence of lines, each one defining alternatives for a nonterminal:

    S -> A B C
    A -> C | a
    B -> b | ε
    C -> c

Lines without an arrow "->" are ignored, so blank lines and comments may be
interspersed. The left side of the first rule is the start symbol.

Right sides are free-form text: whitespace between symbols is optional. Symbols
are recognized by greedy longest-match against the vocabulary of the whole
input. Nonterminals are tried first, then ε, then terminals. Terminals are
whatever remains of a right side after all nonterminal names have been removed.
The tokenizer never backtracks; if a right side cannot be consumed completely,
parsing fails with a *TokenizationError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llsets.parser'.
func tracer() tracing.Trace {
	return tracing.Select("llsets.parser")
}
