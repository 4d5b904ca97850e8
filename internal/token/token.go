package token

import "fmt"

type Type int

const (
	ILLEGAL Type = iota
	NUMBER
	PLUS
	MINUS
	STAR
)

func (t Type) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether t is one of the binary operator types.
func (t Type) IsOperator() bool {
	return t == PLUS || t == MINUS || t == STAR
}

// OperatorType maps an operator character to its token type.
func OperatorType(ch byte) (Type, bool) {
	switch ch {
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '*':
		return STAR, true
	default:
		return ILLEGAL, false
	}
}

// Token represents a lexical token with its type and literal value.
// Num is only meaningful for NUMBER tokens. Pos is the byte offset of the
// token in the whitespace-stripped input.
type Token struct {
	Type  Type
	Value string
	Num   int64
	Pos   int
}

func (t Token) String() string {
	if t.Type == NUMBER {
		return fmt.Sprintf("%s(%d)@%d", t.Type, t.Num, t.Pos)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Value, t.Pos)
}

func Number(value string, num int64, pos int) Token {
	return Token{Type: NUMBER, Value: value, Num: num, Pos: pos}
}

func Operator(t Type, pos int) Token {
	return Token{Type: t, Value: t.Symbol(), Pos: pos}
}

// Symbol returns the source character of an operator type.
func (t Type) Symbol() string {
	switch t {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	default:
		return ""
	}
}
