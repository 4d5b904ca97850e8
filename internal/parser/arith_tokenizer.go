package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
)

// ArithTokenizer breaks an arithmetic expression into NUMBER and operator tokens.
// It holds no state between calls and is safe for concurrent use.
type ArithTokenizer struct{}

var _ token.Tokenizer = (*ArithTokenizer)(nil)

// NewArithTokenizer creates a new Tokenizer for arithmetic expressions.
func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

type scanner struct {
	input  string
	pos    int
	tokens []token.Token
}

// Tokenize strips whitespace from input and scans it into tokens. A token
// boundary is emitted on every digit/operator transition: digit runs become
// NUMBER tokens, every operator character becomes its own token. Errors are
// reported for the first defect in scan order.
func (t *ArithTokenizer) Tokenize(input string) ([]token.Token, error) {
	s := &scanner{input: StripWhitespace(input)}
	if len(s.input) == 0 {
		return nil, apperr.NewMalformed(apperr.NoPosition, "empty expression")
	}
	s.tokens = make([]token.Token, 0, len(s.input)/2+1)

	for s.pos < len(s.input) {
		ch := s.input[s.pos]
		if isDigit(ch) {
			if err := s.readNumber(); err != nil {
				return nil, err
			}
			continue
		}

		typ, ok := token.OperatorType(ch)
		if !ok {
			r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
			return nil, apperr.NewMalformed(s.pos, fmt.Sprintf("unexpected character %q", r))
		}
		if err := s.checkOperatorPlacement(); err != nil {
			return nil, err
		}
		s.tokens = append(s.tokens, token.Operator(typ, s.pos))
		s.pos++
	}

	if last := s.tokens[len(s.tokens)-1]; last.Type.IsOperator() {
		return nil, apperr.NewMalformed(last.Pos, "expression ends with operator")
	}
	return s.tokens, nil
}

// checkOperatorPlacement rejects an operator at s.pos that has no number
// before it. Running it during the scan means a misplaced operator is
// reported ahead of any overflow in a literal that follows it.
func (s *scanner) checkOperatorPlacement() error {
	if len(s.tokens) == 0 {
		return apperr.NewMalformed(s.pos, "expression starts with operator")
	}
	if s.tokens[len(s.tokens)-1].Type.IsOperator() {
		return apperr.NewMalformed(s.pos, "consecutive operators")
	}
	return nil
}

func (s *scanner) readNumber() error {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}
	literal := s.input[start:s.pos]

	n, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return apperr.NewOverflow(start, literal, err)
		}
		return apperr.NewMalformed(start, fmt.Sprintf("invalid number %q", literal))
	}

	s.tokens = append(s.tokens, token.Number(literal, n, start))
	return nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// StripWhitespace removes every ASCII whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
