package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid suite", func(t *testing.T) {
		yaml := `
name: precedence
description: operator precedence
cases:
  - id: p1
    expression: "5+3*2"
    expect: 11
  - id: neg
    expression: "3-10"
    expect: -7
  - id: bad
    expression: "5+*3"
    expect_error: malformed
  - id: big
    expression: "9223372036854775807*2"
    expect: -2
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		assert.Equal(t, "precedence", s.Name)
		require.Len(t, s.Cases, 4)

		require.NotNil(t, s.Cases[0].Expect)
		assert.Equal(t, int64(11), *s.Cases[0].Expect)
		assert.Equal(t, "11", s.Cases[0].Outcome())
		assert.Equal(t, int64(-7), *s.Cases[1].Expect)
		assert.Nil(t, s.Cases[2].Expect)
		assert.Equal(t, "error:malformed", s.Cases[2].Outcome())
	})

	t.Run("zero is a valid expectation", func(t *testing.T) {
		s, err := Parse([]byte("name: z\ncases:\n  - id: z\n    expression: \"0*5\"\n    expect: 0\n"))
		require.NoError(t, err)
		require.NotNil(t, s.Cases[0].Expect)
		assert.Zero(t, *s.Cases[0].Expect)
	})

	errorCases := []struct {
		name string
		yaml string
		msg  string
	}{
		{name: "no cases", yaml: "name: empty\n", msg: "suite has no cases"},
		{name: "missing id", yaml: "cases:\n  - expression: \"1\"\n    expect: 1\n", msg: "has no id"},
		{name: "duplicate id", yaml: "cases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n  - id: a\n    expression: \"2\"\n    expect: 2\n", msg: "duplicate case id"},
		{name: "no expectation", yaml: "cases:\n  - id: a\n    expression: \"1\"\n", msg: "needs expect or expect_error"},
		{name: "both expectations", yaml: "cases:\n  - id: a\n    expression: \"1\"\n    expect: 1\n    expect_error: malformed\n", msg: "sets both"},
		{name: "unknown error kind", yaml: "cases:\n  - id: a\n    expression: \"1/0\"\n    expect_error: division\n", msg: "unknown expect_error"},
		{name: "bad yaml", yaml: "cases: [", msg: "parse suite YAML"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: f\ncases:\n  - id: a\n    expression: \"2*3*4\"\n    expect: 24\n"), 0644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "f", s.Name)

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read suite file")
}

func TestParse_Templates(t *testing.T) {
	t.Run("renders template cases", func(t *testing.T) {
		yaml := `
name: templated
templates:
  - id: product
    expression: "{{a}}*{{b}}"
cases:
  - id: literal
    expression: "1+1"
    expect: 2
  - id: small
    template: product
    params: {a: 6, b: 7}
    expect: 42
  - id: wraps
    template: product
    params: {a: 9223372036854775807, b: 2}
    expect: -2
`
		s, err := Parse([]byte(yaml))
		require.NoError(t, err)
		require.Len(t, s.Cases, 3)

		assert.Equal(t, "1+1", s.Cases[0].Expression)
		assert.Equal(t, InlineGroup, s.Cases[0].Group())
		assert.Equal(t, "6*7", s.Cases[1].Expression)
		assert.Equal(t, "product", s.Cases[1].Group())
		assert.Equal(t, "9223372036854775807*2", s.Cases[2].Expression)
	})

	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "unknown template",
			yaml:    "name: x\ncases:\n  - id: c\n    template: nope\n    params: {a: 1}\n    expect: 1\n",
			message: `template "nope" not found`,
		},
		{
			name:    "missing param",
			yaml:    "name: x\ntemplates:\n  - id: t\n    expression: \"{{a}}+{{b}}\"\ncases:\n  - id: c\n    template: t\n    params: {a: 1}\n    expect: 1\n",
			message: "missing params",
		},
		{
			name:    "expression and template",
			yaml:    "name: x\ntemplates:\n  - id: t\n    expression: \"{{a}}\"\ncases:\n  - id: c\n    expression: \"1\"\n    template: t\n    params: {a: 1}\n    expect: 1\n",
			message: "sets both expression and template",
		},
		{
			name:    "params without template",
			yaml:    "name: x\ncases:\n  - id: c\n    expression: \"1\"\n    params: {a: 1}\n    expect: 1\n",
			message: "params without a template",
		},
		{
			name:    "duplicate template",
			yaml:    "name: x\ntemplates:\n  - id: t\n    expression: \"{{a}}\"\n  - id: t\n    expression: \"{{b}}\"\ncases:\n  - id: c\n    expression: \"1\"\n    expect: 1\n",
			message: "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.message)
		})
	}
}
