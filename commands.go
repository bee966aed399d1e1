package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wyang/propcheck/logic"
	"github.com/wyang/propcheck/script"
)

var (
	verbose   bool
	showTable bool
	check     bool
)

var rootCmd = &cobra.Command{
	Use:   "propcheck",
	Short: "Analyze propositional sentences",
	Long: `propcheck decides validity, satisfiability, contingency, entailment and
equivalence of propositional sentences written over single-character
variables, by exhaustive enumeration of all variable assignments.

Sentences use "~" for negation, "&" for conjunction, "|" for disjunction
and parentheses for grouping; every other character is a variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <sentence>",
	Short: "Report validity, satisfiability and contingency of a sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := logic.Parse(args[0])
		if err != nil {
			return err
		}
		n := len(s.Vars())
		log.Debugf("%d distinct variables, %d assignments to evaluate", n, 1<<n)
		v := logic.Analyze(s)
		fmt.Printf("valid:       %s\n", verdictString(v.Valid))
		fmt.Printf("satisfiable: %s\n", verdictString(v.Satisfiable))
		fmt.Printf("contingent:  %s\n", verdictString(v.Contingent))
		if showTable {
			if err := logic.Table(s, os.Stdout); err != nil {
				return err
			}
		}
		if check {
			sv, err := script.Analyze(s)
			if err != nil {
				return fmt.Errorf("cross-check failed: %v", err)
			}
			if sv != v {
				return fmt.Errorf("cross-check disagrees: analyzer says %+v, expr engine says %+v", v, sv)
			}
			fmt.Println("cross-check: expr engine agrees")
		}
		return nil
	},
}

var entailsCmd = &cobra.Command{
	Use:   "entails <sentence> <sentence>",
	Short: "Report whether the first sentence entails the second",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		fmt.Println(verdictString(logic.Entails(a, b)))
		return nil
	},
}

var equivCmd = &cobra.Command{
	Use:   "equiv <sentence> <sentence>",
	Short: "Report whether two sentences are logically equivalent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		fmt.Println(verdictString(logic.Equivalent(a, b)))
		return nil
	},
}

var tableCmd = &cobra.Command{
	Use:   "table <sentence>",
	Short: "Print the full truth table of a sentence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := logic.Parse(args[0])
		if err != nil {
			return err
		}
		return logic.Table(s, os.Stdout)
	},
}

func parsePair(args []string) (a, b *logic.Sentence, err error) {
	if a, err = logic.Parse(args[0]); err != nil {
		return nil, nil, fmt.Errorf("first sentence: %v", err)
	}
	if b, err = logic.Parse(args[1]); err != nil {
		return nil, nil, fmt.Errorf("second sentence: %v", err)
	}
	return a, b, nil
}

func verdictString(b bool) string {
	if b {
		return color.GreenString("true")
	}
	return color.RedString("false")
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	analyzeCmd.Flags().BoolVar(&showTable, "table", false, "also print the truth table")
	analyzeCmd.Flags().BoolVar(&check, "check", false, "cross-check the verdict with the expr engine")
	rootCmd.AddCommand(analyzeCmd, entailsCmd, equivCmd, tableCmd)
}
