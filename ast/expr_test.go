package ast

import "testing"

func TestNewNumber(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -9223372036854775808, 9223372036854775807} {
		n := NewNumber(v)
		if n.Value != v {
			t.Errorf("NewNumber(%d).Value = %d", v, n.Value)
		}
	}
}

func TestNewSum(t *testing.T) {
	left := NewNumber(2)
	right := NewSum(NewNumber(3), NewNumber(4))
	s := NewSum(left, right)

	if s.Left != Expr(left) {
		t.Errorf("Left = %v, want %v", s.Left, left)
	}
	if got, ok := s.Right.(Sum); !ok || got != right {
		t.Errorf("Right = %v, want %v", s.Right, right)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		expr interface{ String() string }
		want string
	}{
		{"number", NewNumber(5), "5"},
		{"negative", NewNumber(-4), "-4"},
		{"sum", NewSum(NewNumber(2), NewNumber(3)), "(2 + 3)"},
		{"nested_left", NewSum(NewSum(NewNumber(1), NewNumber(2)), NewNumber(3)), "((1 + 2) + 3)"},
		{"nested_right", NewSum(NewNumber(1), NewSum(NewNumber(2), NewNumber(3))), "(1 + (2 + 3))"},
		{"nil_child", Sum{Left: NewNumber(1)}, "(1 + <nil>)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeightAndSize(t *testing.T) {
	tests := []struct {
		name       string
		expr       Expr
		wantHeight int
		wantSize   int
	}{
		{"nil", nil, 0, 0},
		{"number", NewNumber(1), 1, 1},
		{"sum", NewSum(NewNumber(1), NewNumber(2)), 2, 3},
		{"left_deep", NewSum(NewSum(NewNumber(1), NewNumber(2)), NewNumber(3)), 3, 5},
		{"balanced", NewSum(NewSum(NewNumber(1), NewNumber(2)), NewSum(NewNumber(3), NewNumber(4))), 3, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Height(tt.expr); got != tt.wantHeight {
				t.Errorf("Height() = %d, want %d", got, tt.wantHeight)
			}
			if got := Size(tt.expr); got != tt.wantSize {
				t.Errorf("Size() = %d, want %d", got, tt.wantSize)
			}
		})
	}
}
