package parser

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/llsets"
	"github.com/npillmayer/llsets/ll"
)

// Arrow separates the left side of a rule from its right side.
const Arrow = "->"

// Bar separates alternatives on the right side of a rule.
const Bar = "|"

// rule is an input line containing an arrow.
type rule struct {
	lineno    int    // line number, starting at 1
	lhs       string // trimmed left side
	rhs       string // right side, untrimmed
	rhsOffset int    // byte position of rhs within the line
}

// ParseGrammar creates a grammar from lines of text. Every line containing an
// arrow "->" defines alternatives for the nonterminal left of the arrow; all
// other lines are skipped. Parsing happens in two passes: first the
// vocabulary of the whole input is collected, then the right sides are
// tokenized against it.
//
// Errors are *EmptyInputError, *TokenizationError, or *ll.GrammarValidationError.
func ParseGrammar(lines []string) (*ll.Grammar, error) {
	rules := collectRules(lines)
	if len(rules) == 0 {
		err := &EmptyInputError{Lines: len(lines)}
		tracer().Errorf(err.Error())
		return nil, err
	}
	nonterminals, err := discoverNonterminals(rules)
	if err != nil {
		return nil, err
	}
	byLength := longestFirst(nonterminals)
	terminals := discoverTerminals(rules, byLength)
	tracer().Debugf("nonterminals = %v", nonterminals)
	tracer().Debugf("terminals    = %v", terminals)
	//
	b := ll.NewGrammarBuilder()
	b.Declare(nonterminals...).Start(rules[0].lhs).Declare(terminals...)
	tz := &tokenizer{
		nonterminals: byLength,
		terminals:    longestFirst(terminals),
	}
	for _, r := range rules {
		if err := tz.parseRule(b, r); err != nil {
			tracer().Errorf(err.Error())
			return nil, err
		}
	}
	return b.Grammar()
}

// ParseReader reads lines from r and parses them with ParseGrammar.
func ParseReader(r io.Reader) (*ll.Grammar, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar: %w", err)
	}
	return ParseGrammar(lines)
}

func collectRules(lines []string) []rule {
	var rules []rule
	for i, line := range lines {
		lhs, rhs, found := strings.Cut(line, Arrow)
		if !found {
			continue
		}
		rules = append(rules, rule{
			lineno:    i + 1,
			lhs:       strings.TrimSpace(lhs),
			rhs:       rhs,
			rhsOffset: len(lhs) + len(Arrow),
		})
	}
	return rules
}

// discoverNonterminals collects the left sides of all rules, in order of
// first appearance.
func discoverNonterminals(rules []rule) ([]ll.Symbol, error) {
	var nonterminals []ll.Symbol
	seen := make(map[string]bool)
	for _, r := range rules {
		if r.lhs == "" {
			err := &ll.GrammarValidationError{Reason: ll.EmptySymbolName, Symbol: ll.N("")}
			tracer().Errorf("line %d: %v", r.lineno, err)
			return nil, err
		}
		if !seen[r.lhs] {
			seen[r.lhs] = true
			nonterminals = append(nonterminals, ll.N(r.lhs))
		}
	}
	return nonterminals, nil
}

// discoverTerminals removes all nonterminal names from the right sides of the
// rules, longest first. Everything left over, apart from bars, is a terminal.
// The text "ε" denotes the shared epsilon terminal.
func discoverTerminals(rules []rule, nonterminals []ll.Symbol) []ll.Symbol {
	var terminals []ll.Symbol
	seen := make(map[ll.Symbol]bool)
	for _, r := range rules {
		rhs := r.rhs
		for _, N := range nonterminals {
			rhs = strings.ReplaceAll(rhs, N.Text(), "")
		}
		rhs = strings.ReplaceAll(rhs, Bar, "")
		for _, token := range strings.Fields(rhs) {
			t := ll.T(token)
			if token == ll.EpsilonText {
				t = ll.Epsilon
			}
			if !seen[t] {
				seen[t] = true
				terminals = append(terminals, t)
			}
		}
	}
	return terminals
}

// longestFirst returns a copy of symbols, sorted by descending text length.
// Symbols of equal length keep their relative order.
func longestFirst(symbols []ll.Symbol) []ll.Symbol {
	sorted := append([]ll.Symbol(nil), symbols...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Text()) > utf8.RuneCountInString(sorted[j].Text())
	})
	return sorted
}

// --- Tokenizer -------------------------------------------------------------

// tokenizer splits alternatives into symbols by greedy longest match.
// Both symbol lists are sorted longest first.
type tokenizer struct {
	nonterminals []ll.Symbol
	terminals    []ll.Symbol
}

// parseRule adds a production to b for every non-empty alternative of r.
func (tz *tokenizer) parseRule(b *ll.GrammarBuilder, r rule) error {
	offset := r.rhsOffset
	for _, alt := range strings.Split(r.rhs, Bar) {
		syms, stuck := tz.tokenize(alt)
		if stuck >= 0 {
			remainder := strings.TrimRightFunc(alt[stuck:], unicode.IsSpace)
			span := llsets.Span{uint64(stuck), uint64(stuck + len(remainder))}
			return &TokenizationError{
				Line:        r.lineno,
				Alternative: strings.TrimSpace(alt),
				Remainder:   remainder,
				Span:        span.Shift(uint64(offset)),
			}
		}
		offset += len(alt) + len(Bar)
		if len(syms) == 0 {
			continue
		}
		p := b.LHS(r.lhs).Sym(syms...).End()
		tracer().Debugf("line %d: %v", r.lineno, p)
	}
	return nil
}

// tokenize consumes alt from left to right. If it gets stuck, the byte
// position of the unmatched text is returned as well, otherwise -1.
func (tz *tokenizer) tokenize(alt string) ([]ll.Symbol, int) {
	var syms []ll.Symbol
	pos := 0
	for {
		pos = skipSpace(alt, pos)
		if pos == len(alt) {
			return syms, -1
		}
		sym, n := tz.match(alt[pos:])
		if n == 0 {
			return syms, pos
		}
		syms = append(syms, sym)
		pos += n
	}
}

// match finds the symbol at the start of text. Nonterminals take precedence
// over ε, which takes precedence over terminals. It returns the symbol and
// the number of bytes matched, or 0 if nothing matches.
func (tz *tokenizer) match(text string) (ll.Symbol, int) {
	for _, N := range tz.nonterminals {
		if strings.HasPrefix(text, N.Text()) {
			return N, len(N.Text())
		}
	}
	if strings.HasPrefix(text, ll.EpsilonText) {
		return ll.Epsilon, len(ll.EpsilonText)
	}
	for _, t := range tz.terminals {
		if !t.IsEpsilon() && strings.HasPrefix(text, t.Text()) {
			return t, len(t.Text())
		}
	}
	return ll.Symbol{}, 0
}

func skipSpace(s string, pos int) int {
	i := strings.IndexFunc(s[pos:], func(r rune) bool {
		return !unicode.IsSpace(r)
	})
	if i < 0 {
		return len(s)
	}
	return pos + i
}
