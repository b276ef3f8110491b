package eval

import (
	"fmt"

	"github.com/sansecio/sumexpr/ast"
)

// frame is a pending node on the work stack. A Sum is pushed twice: once
// to schedule its operands and once, with reduce set, to add their values.
type frame struct {
	node   ast.Expr
	reduce bool
}

// EvalStack returns the same value as Eval but walks the tree with an
// explicit work stack, so tree height is bounded by available memory
// rather than by the goroutine stack.
//
// EvalStack panics if e, or any node below it, is nil.
func EvalStack(e ast.Expr) int64 {
	work := []frame{{node: e}}
	var values []int64

	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		if f.reduce {
			// The right operand was reduced first, so it sits below the left.
			n := len(values)
			right, left := values[n-2], values[n-1]
			values = append(values[:n-2], right+left)
			continue
		}

		switch n := f.node.(type) {
		case ast.Number:
			values = append(values, n.Value)
		case ast.Sum:
			// Popped in reverse: Right is evaluated before Left.
			work = append(work, frame{node: n, reduce: true}, frame{node: n.Left}, frame{node: n.Right})
		case nil:
			panic("eval: nil expression")
		default:
			panic(fmt.Sprintf("eval: unknown expression %T", n))
		}
	}

	return values[0]
}
