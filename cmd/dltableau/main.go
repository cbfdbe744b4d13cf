// Package main is a thin command-line demo around pkg/dltableau: it
// builds a handful of hard-coded knowledge bases and reports the
// tableau's verdict for each, to exercise the library end to end
// without a concrete-syntax parser.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ExtenDD/dltableau/pkg/dltableau"
)

var (
	verbose bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dltableau",
	Short: "Semantic-tableau satisfiability checker for ALCi with definite descriptions",
}

var solveCmd = &cobra.Command{
	Use:   "solve [scenario]",
	Short: "Run a built-in scenario through the tableau and print the verdict",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level rule-by-rule logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "search wall-clock budget (default: library default, 12s)")
	solveCmd.Flags().Bool("render", false, "print the initial interpretation and the worlds of the final branch alongside the verdict")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	name := "default"
	if len(args) == 1 {
		name = args[0]
	}
	scenario, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q (known: %s)", name, scenarioNames())
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		logger = l
	}
	defer logger.Sync() //nolint:errcheck

	opts := []dltableau.Option{dltableau.WithLogger(logger)}
	if timeout > 0 {
		opts = append(opts, dltableau.WithTimeout(timeout))
	}

	tableau, err := dltableau.NewTableau(scenario, opts...)
	if err != nil {
		return fmt.Errorf("build tableau: %w", err)
	}

	render, _ := cmd.Flags().GetBool("render")
	if render {
		fmt.Println("initial interpretation:")
		_ = tableau.InitialInterpretation().Render(os.Stdout)
		fmt.Println()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := tableau.Build(ctx)
	fmt.Printf("scenario %q: %s (closed branches: %d, rules applied: %d)\n",
		name, result.Verdict, result.ClosedBranches, result.RulesApplied)

	if render && result.Verdict != dltableau.VerdictTimedOut {
		fmt.Println("final branch:")
		return tableau.Interpretation().Render(os.Stdout)
	}
	return nil
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	return fmt.Sprint(names)
}

// scenarios are small, hand-built knowledge bases meant to demonstrate
// the library's shape: an asserted individual, a TBox constraint, and
// a concept query whose satisfiability the tableau decides.
var scenarios = map[string]dltableau.KnowledgeBase{
	"default": {
		ABox: []dltableau.ABoxEntry{
			{Individual: "alice", Concepts: []dltableau.Formula{dltableau.NewAtom("Person")}},
		},
		TBox: []*dltableau.Conditional{
			dltableau.NewConditional(dltableau.NewAtom("Person"), dltableau.NewDiamond("knows", dltableau.NewAtom("Person"))),
		},
		Concept: dltableau.NewDiamond("knows", dltableau.NewAtom("Person")),
	},
	"clash": {
		Concept: dltableau.NewConjunction(dltableau.NewAtom("Person"), dltableau.NewNegation(dltableau.NewAtom("Person"))),
	},
	"unique-description": {
		Concept: dltableau.NewGlobalDesc(dltableau.NewAtom("King"), dltableau.NewAtom("Bald")),
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
