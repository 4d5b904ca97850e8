package parser

import (
	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
)

// Operands is the working form handed to the reducers.
// len(Numbers) == len(Operators)+1 holds for every value Split builds from a
// validated sequence.
type Operands struct {
	Numbers   []int64
	Operators []token.Type
}

// AlternationValidator accepts only NUMBER (op NUMBER)* sequences.
type AlternationValidator struct{}

var _ token.Validator = (*AlternationValidator)(nil)

func NewAlternationValidator() *AlternationValidator {
	return &AlternationValidator{}
}

func (v *AlternationValidator) Validate(tokens []token.Token) error {
	if len(tokens) == 0 {
		return apperr.NewMalformed(apperr.NoPosition, "empty expression")
	}
	if first := tokens[0]; first.Type.IsOperator() {
		return apperr.NewMalformed(first.Pos, "expression starts with operator")
	} else if first.Type != token.NUMBER {
		return apperr.NewMalformed(first.Pos, "unexpected token "+first.Type.String())
	}

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		switch {
		case cur.Type == token.NUMBER && prev.Type == token.NUMBER:
			return apperr.NewMalformed(cur.Pos, "missing operator")
		case cur.Type.IsOperator() && prev.Type.IsOperator():
			return apperr.NewMalformed(cur.Pos, "consecutive operators")
		case cur.Type != token.NUMBER && !cur.Type.IsOperator():
			return apperr.NewMalformed(cur.Pos, "unexpected token "+cur.Type.String())
		}
	}

	last := tokens[len(tokens)-1]
	if last.Type != token.NUMBER {
		return apperr.NewMalformed(last.Pos, "expression ends with operator")
	}
	return nil
}

// Split separates a validated token sequence into operand and operator lists.
// Callers run a token.Validator first; Split does not re-check alternation.
func Split(tokens []token.Token) Operands {
	ops := Operands{
		Numbers:   make([]int64, 0, len(tokens)/2+1),
		Operators: make([]token.Type, 0, len(tokens)/2),
	}
	for _, tok := range tokens {
		if tok.Type == token.NUMBER {
			ops.Numbers = append(ops.Numbers, tok.Num)
		} else {
			ops.Operators = append(ops.Operators, tok.Type)
		}
	}
	return ops
}
