package eval

import (
	"fmt"

	"github.com/sansecio/sumexpr/ast"
)

// Step describes one reduced node during Trace.
type Step struct {
	Node  ast.Expr
	Depth int // 0 for the root
	Value int64
}

// Trace evaluates e like Eval and calls visit once per node, after the
// node's value is known. Nodes are reported in post-order with the right
// subtree before the left, matching Eval's evaluation order.
func Trace(e ast.Expr, visit func(Step)) int64 {
	if visit == nil {
		return Eval(e)
	}
	return trace(e, 0, visit)
}

func trace(e ast.Expr, depth int, visit func(Step)) int64 {
	var v int64
	switch n := e.(type) {
	case ast.Number:
		v = n.Value
	case ast.Sum:
		r := trace(n.Right, depth+1, visit)
		l := trace(n.Left, depth+1, visit)
		v = r + l
	case nil:
		panic("eval: nil expression")
	default:
		panic(fmt.Sprintf("eval: unknown expression %T", e))
	}
	visit(Step{Node: e, Depth: depth, Value: v})
	return v
}
