package main

import (
	"strings"

	"github.com/npillmayer/llsets/ll"
	"github.com/pterm/pterm"
)

// setsTable lists FIRST and FOLLOW for every nonterminal of the analysed grammar.
func setsTable(ga *ll.LLAnalysis, full bool) pterm.TableData {
	data := pterm.TableData{{"Symbol", "FIRST", "FOLLOW"}}
	ga.Grammar().EachNonterminal(func(N ll.Symbol) {
		data = append(data, []string{
			symbolLabel(ga.Grammar(), N, full),
			ga.First(N).String(),
			ga.Follow(N).String(),
		})
	})
	return data
}

// mapTable lists a single FIRST or FOLLOW map, titled by header.
func mapTable(g *ll.Grammar, header string, sets *ll.SymbolSetMap, full bool) pterm.TableData {
	data := pterm.TableData{{"Symbol", header}}
	g.EachNonterminal(func(N ll.Symbol) {
		data = append(data, []string{symbolLabel(g, N, full), sets.Get(N).String()})
	})
	return data
}

// predictTable lists PREDICT for every production.
func predictTable(predict *ll.PredictMap) pterm.TableData {
	data := pterm.TableData{{"Production", "PREDICT"}}
	predict.Each(func(p ll.Production, set ll.SymbolSet) {
		data = append(data, []string{p.String(), set.String()})
	})
	return data
}

// symbolLabel is N, or "N -> alt1 | alt2" if full is set.
func symbolLabel(g *ll.Grammar, N ll.Symbol, full bool) string {
	if !full {
		return N.String()
	}
	prods := g.Productions().ForLHS(N)
	if len(prods) == 0 {
		return N.String()
	}
	alts := make([]string, len(prods))
	for i, p := range prods {
		alts[i] = p.RHS().String()
	}
	return N.String() + " -> " + strings.Join(alts, " | ")
}

func renderTable(data pterm.TableData) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func printTable(data pterm.TableData) error {
	s, err := renderTable(data)
	if err != nil {
		return err
	}
	pterm.Println(s)
	return nil
}
