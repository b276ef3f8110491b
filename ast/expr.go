// Package ast defines the expression tree evaluated by package eval.
package ast

import "strconv"

// Expr represents an expression node. The set of node types is closed:
// only Number and Sum implement it.
type Expr interface {
	exprNode()
}

// Number represents an integer literal.
type Number struct {
	Value int64
}

func (Number) exprNode() {}

func (n Number) String() string {
	return strconv.FormatInt(n.Value, 10)
}

// Sum represents the addition of two sub-expressions.
type Sum struct {
	Left  Expr
	Right Expr
}

func (Sum) exprNode() {}

func (s Sum) String() string {
	return "(" + exprString(s.Left) + " + " + exprString(s.Right) + ")"
}

// NewNumber returns a literal holding v.
func NewNumber(v int64) Number {
	return Number{Value: v}
}

// NewSum returns the sum of left and right.
func NewSum(left, right Expr) Sum {
	return Sum{Left: left, Right: right}
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case Number:
		return e.String()
	case Sum:
		return e.String()
	default:
		return "<nil>"
	}
}
