package eval

import (
	"github.com/DjordjeVuckovic/infix-calc/internal/parser"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
)

// Evaluator runs tokenize -> validate -> multiplicative -> additive.
// It keeps no per-call state, so one value can be shared between goroutines.
type Evaluator struct {
	tokenizer token.Tokenizer
	validator token.Validator
}

func New(tokenizer token.Tokenizer, validator token.Validator) *Evaluator {
	return &Evaluator{tokenizer: tokenizer, validator: validator}
}

func NewDefault() *Evaluator {
	return New(parser.NewArithTokenizer(), parser.NewAlternationValidator())
}

// Evaluate returns the value of expr. Errors are *apperr.ExpressionError and
// match apperr.ErrMalformedExpression or apperr.ErrNumericOverflow.
func (e *Evaluator) Evaluate(expr string) (int64, error) {
	tokens, err := e.tokenizer.Tokenize(expr)
	if err != nil {
		return 0, err
	}

	if err := e.validator.Validate(tokens); err != nil {
		return 0, err
	}

	return EvaluateOperands(parser.Split(tokens)), nil
}

// EvaluateOperands reduces an already validated operand list.
func EvaluateOperands(ops parser.Operands) int64 {
	return ReduceAdditive(ReduceMultiplicative(ops))
}

var defaultEvaluator = NewDefault()

// Evaluate evaluates expr with the default tokenizer and validator.
func Evaluate(expr string) (int64, error) {
	return defaultEvaluator.Evaluate(expr)
}
