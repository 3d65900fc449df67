package llsets

import "fmt"

// --- Spans ------------------------------------------------------------

// Span locates a piece of text within an input line. Errors occurring
// during grammar parsing report the span of the offending text. A span
// denotes a start position and the position just behind the end, counted
// in bytes.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Shift moves a span to the right by offset.
func (s Span) Shift(offset uint64) Span {
	return Span{s[0] + offset, s[1] + offset}
}

// Of returns the text of line covered by s, clipped to the length of line.
func (s Span) Of(line string) string {
	from, to := s[0], s[1]
	if n := uint64(len(line)); to > n {
		to = n
	}
	if from > to {
		return ""
	}
	return line[from:to]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
