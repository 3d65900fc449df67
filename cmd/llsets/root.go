package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/llsets/ll"
	"github.com/npillmayer/llsets/ll/parser"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "llsets",
	Short: "FIRST, FOLLOW and PREDICT sets for context-free grammars",
	Long: `llsets reads a context-free grammar, one rule per line, and computes
the FIRST, FOLLOW and PREDICT sets needed to construct an LL(1) parser.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// traceKeys lists the tracers whose level is set by flag --trace.
var traceKeys = []string{"llsets.ll", "llsets.parser", "llsets.cli"}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().Bool("full-productions", false, "Show all alternatives of a nonterminal in set tables")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Grammar file (default: stdin)")

	_ = viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	_ = viper.BindPFlag("full-productions", rootCmd.PersistentFlags().Lookup("full-productions"))
	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
}

func initConfig() {
	viper.SetEnvPrefix("LLSETS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(viper.GetString("trace"))
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", viper.GetString("trace"))
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadGrammar parses the grammar from the file given as an argument, from
// the file configured by --file, or from stdin, in this order.
func loadGrammar(args []string) (*ll.Grammar, error) {
	filename := viper.GetString("file")
	if len(args) > 0 {
		filename = args[0]
	}
	var r io.Reader = os.Stdin
	if filename != "" && filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("opening grammar file: %w", err)
		}
		defer f.Close()
		r = f
	}
	g, err := parser.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing grammar: %w", err)
	}
	g.Dump()
	return g, nil
}
