package main

import (
	"github.com/npillmayer/llsets/ll"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var setsCmd = &cobra.Command{
	Use:   "sets [grammar-file]",
	Short: "Print FIRST, FOLLOW and PREDICT sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(args)
		if err != nil {
			return err
		}
		return printAnalysis(ll.Analysis(g), viper.GetBool("full-productions"))
	},
}

var firstCmd = &cobra.Command{
	Use:   "first [grammar-file]",
	Short: "Print FIRST sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(args)
		if err != nil {
			return err
		}
		return printTable(mapTable(g, "FIRST", ll.First(g), viper.GetBool("full-productions")))
	},
}

var followCmd = &cobra.Command{
	Use:   "follow [grammar-file]",
	Short: "Print FOLLOW sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(args)
		if err != nil {
			return err
		}
		return printTable(mapTable(g, "FOLLOW", ll.Follow(g), viper.GetBool("full-productions")))
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict [grammar-file]",
	Short: "Print PREDICT sets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(args)
		if err != nil {
			return err
		}
		return printTable(predictTable(ll.Predict(g)))
	},
}

func init() {
	rootCmd.AddCommand(setsCmd, firstCmd, followCmd, predictCmd)
}

func printAnalysis(ga *ll.LLAnalysis, full bool) error {
	g := ga.Grammar()
	pterm.Info.Printf("Grammar %v\n", g)
	pterm.Info.Printf("Start symbol %v, %d productions\n", g.StartSymbol(), g.Productions().Size())
	if err := printTable(setsTable(ga, full)); err != nil {
		return err
	}
	return printTable(predictTable(ga.PredictSets()))
}
