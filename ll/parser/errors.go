package parser

import (
	"fmt"

	"github.com/npillmayer/llsets"
)

// EmptyInputError is returned if no input line contains a rule.
type EmptyInputError struct {
	Lines int // number of lines inspected
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no grammar rule found in %d line(s) of input", e.Lines)
}

// TokenizationError is returned if the right side of a rule contains text
// which matches no symbol of the grammar's vocabulary.
type TokenizationError struct {
	Line        int         // line number, starting at 1
	Alternative string      // the alternative being tokenized, trimmed
	Remainder   string      // text which could not be consumed
	Span        llsets.Span // position of Remainder within the line
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("line %d %v: cannot tokenize %q in alternative %q",
		e.Line, e.Span, e.Remainder, e.Alternative)
}
