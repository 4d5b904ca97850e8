package eval

import (
	"github.com/DjordjeVuckovic/infix-calc/internal/parser"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
)

// ReduceMultiplicative folds every STAR into its left operand, left to right.
// The result holds only PLUS and MINUS operators. A run such as 2*3*4 folds
// into a single operand because the fold target stays on the same slot until a
// non-STAR operator is seen. Products wrap on int64 overflow.
func ReduceMultiplicative(ops parser.Operands) parser.Operands {
	if len(ops.Numbers) == 0 {
		return parser.Operands{}
	}

	out := parser.Operands{
		Numbers:   make([]int64, 1, len(ops.Numbers)),
		Operators: make([]token.Type, 0, len(ops.Operators)),
	}
	out.Numbers[0] = ops.Numbers[0]

	for i, op := range ops.Operators {
		next := ops.Numbers[i+1]
		if op == token.STAR {
			out.Numbers[len(out.Numbers)-1] *= next
			continue
		}
		out.Operators = append(out.Operators, op)
		out.Numbers = append(out.Numbers, next)
	}

	return out
}

// ReduceAdditive folds PLUS and MINUS strictly left to right with int64
// wraparound. Operators other than PLUS and MINUS must be reduced first.
func ReduceAdditive(ops parser.Operands) int64 {
	if len(ops.Numbers) == 0 {
		return 0
	}

	acc := ops.Numbers[0]
	for i, op := range ops.Operators {
		switch op {
		case token.PLUS:
			acc += ops.Numbers[i+1]
		case token.MINUS:
			acc -= ops.Numbers[i+1]
		}
	}
	return acc
}
