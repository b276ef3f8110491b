package ast

// Height returns the number of nodes on the longest root-to-leaf path.
// A single Number has height 1; nil has height 0.
func Height(e Expr) int {
	switch e := e.(type) {
	case Number:
		return 1
	case Sum:
		return 1 + max(Height(e.Left), Height(e.Right))
	default:
		return 0
	}
}

// Size returns the total number of nodes in the tree.
func Size(e Expr) int {
	switch e := e.(type) {
	case Number:
		return 1
	case Sum:
		return 1 + Size(e.Left) + Size(e.Right)
	default:
		return 0
	}
}
