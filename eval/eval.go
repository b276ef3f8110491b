// Package eval reduces ast expression trees to integers.
package eval

import (
	"fmt"

	"github.com/sansecio/sumexpr/ast"
)

// Eval returns the integer value of e. A Sum evaluates its right operand
// before its left one. Addition wraps on int64 overflow.
//
// Eval panics if e, or any node below it, is nil.
func Eval(e ast.Expr) int64 {
	switch e := e.(type) {
	case ast.Number:
		return e.Value
	case ast.Sum:
		return Eval(e.Right) + Eval(e.Left)
	case nil:
		panic("eval: nil expression")
	default:
		panic(fmt.Sprintf("eval: unknown expression %T", e))
	}
}
