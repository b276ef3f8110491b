package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sansecio/sumexpr/ast"
	"github.com/sansecio/sumexpr/eval"
)

var (
	chainValue int64
	chainStack bool
)

var chainCmd = &cobra.Command{
	Use:   "chain <n>",
	Short: "Evaluate a right-nested chain of n sums",
	Long: `chain builds Sum(Number(v), Sum(Number(v), ... Number(0))) with n sums
and evaluates it. Use --stack for chains too deep for recursive evaluation.`,
	Args: cobra.ExactArgs(1),
	RunE: runChain,
}

func init() {
	chainCmd.Flags().Int64Var(&chainValue, "value", 1, "Literal value repeated in the chain")
	chainCmd.Flags().BoolVar(&chainStack, "stack", false, "Evaluate with an explicit work stack")
	rootCmd.AddCommand(chainCmd)
}

// buildChain returns a right-nested chain of n sums of v, ending in Number(0).
func buildChain(n int, v int64) ast.Expr {
	var e ast.Expr = ast.NewNumber(0)
	for i := 0; i < n; i++ {
		e = ast.NewSum(ast.NewNumber(v), e)
	}
	return e
}

type chainResult struct {
	Sums   int   `json:"sums"`
	Height int   `json:"height"`
	Value  int64 `json:"value"`
}

func runChain(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid chain length %q: %w", args[0], err)
	}
	if n < 0 {
		return fmt.Errorf("invalid chain length %d: must not be negative", n)
	}

	e := buildChain(n, chainValue)
	printInfo("built chain of %d sums\n", n)

	var v int64
	if chainStack {
		v = eval.EvalStack(e)
	} else {
		v = eval.Eval(e)
	}

	r := chainResult{Sums: n, Height: n + 1, Value: v}
	if jsonOut {
		return printJSON(cmd.OutOrStdout(), r)
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Value)
	return nil
}
