package main

import (
	"errors"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/llsets/ll"
	"github.com/npillmayer/llsets/ll/parser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Enter grammars interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repl, err := readline.New("llsets> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		pterm.Info.Println("Welcome to llsets") // colored welcome message
		tracer().Infof("Enter rules, an empty line computes the sets. Quit with <ctrl>D")
		intp := &Intp{repl: repl, full: viper.GetBool("full-productions")}
		intp.REPL()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Intp collects grammar rules entered interactively.
type Intp struct {
	repl  *readline.Instance
	lines []string // rules of the current grammar
	full  bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) { // <ctrl>C discards input
			intp.lines = intp.lines[:0]
			continue
		} else if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) != "" {
			intp.lines = append(intp.lines, line)
			continue
		}
		if len(intp.lines) > 0 {
			intp.Eval()
		}
	}
	if len(intp.lines) > 0 {
		intp.Eval()
	}
	println("Good bye!")
}

// Eval analyses the rules collected so far and starts a new grammar.
func (intp *Intp) Eval() {
	defer func() { intp.lines = intp.lines[:0] }()
	g, err := parser.ParseGrammar(intp.lines)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if err := printAnalysis(ll.Analysis(g), intp.full); err != nil {
		pterm.Error.Println(err.Error())
	}
}
