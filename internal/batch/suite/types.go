package suite

import (
	"strconv"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
)

type TestSuite struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Templates   []ExpressionTemplate `yaml:"templates,omitempty"`
	Cases       []Case               `yaml:"cases"`
}

// Case is one expression with its expected outcome. Exactly one of Expect and
// ExpectError is set. A case either spells out Expression or names a
// Template whose placeholders Params fills; Parse renders the latter into
// Expression.
type Case struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description,omitempty"`
	Expression  string         `yaml:"expression,omitempty"`
	Template    string         `yaml:"template,omitempty"`
	Params      TemplateParams `yaml:"params,omitempty"`
	Expect      *int64         `yaml:"expect,omitempty"`
	ExpectError string         `yaml:"expect_error,omitempty"`
}

// Group names the template a case came from, or "inline" for literal cases.
func (c Case) Group() string {
	if c.Template != "" {
		return c.Template
	}
	return InlineGroup
}

const InlineGroup = "inline"

// Outcome renders the expected result for reports.
func (c Case) Outcome() string {
	if c.Expect != nil {
		return strconv.FormatInt(*c.Expect, 10)
	}
	return "error:" + c.ExpectError
}

func validErrorKind(kind string) bool {
	return kind == apperr.KindMalformed || kind == apperr.KindOverflow
}
