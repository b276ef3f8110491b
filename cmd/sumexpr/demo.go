package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sansecio/sumexpr/ast"
	"github.com/sansecio/sumexpr/eval"
)

var demoTrace bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Evaluate a fixed set of example expressions",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&demoTrace, "trace", false, "Print each reduction step")
	rootCmd.AddCommand(demoCmd)
}

func demoExprs() []ast.Expr {
	return []ast.Expr{
		ast.NewNumber(5),
		ast.NewSum(ast.NewNumber(2), ast.NewNumber(3)),
		ast.NewSum(ast.NewSum(ast.NewNumber(1), ast.NewNumber(2)), ast.NewNumber(3)),
		ast.NewSum(ast.NewNumber(-4), ast.NewNumber(4)),
	}
}

// result is the JSON form of one evaluated expression.
type result struct {
	Expr  string `json:"expr"`
	Value int64  `json:"value"`
	Steps []step `json:"steps,omitempty"`
}

type step struct {
	Expr  string `json:"expr"`
	Depth int    `json:"depth"`
	Value int64  `json:"value"`
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	exprs := demoExprs()
	results := make([]result, 0, len(exprs))

	for _, e := range exprs {
		r := result{Expr: fmt.Sprint(e)}
		if demoTrace {
			r.Value = eval.Trace(e, func(s eval.Step) {
				r.Steps = append(r.Steps, step{Expr: fmt.Sprint(s.Node), Depth: s.Depth, Value: s.Value})
			})
		} else {
			r.Value = eval.Eval(e)
		}
		results = append(results, r)
	}

	if jsonOut {
		return printJSON(out, results)
	}

	for _, r := range results {
		for _, s := range r.Steps {
			fmt.Fprintf(out, "  %s%s = %d\n", strings.Repeat("  ", s.Depth), s.Expr, s.Value)
		}
		fmt.Fprintf(out, "%s = %d\n", r.Expr, r.Value)
	}
	printInfo("evaluated %d expressions\n", len(results))
	return nil
}
