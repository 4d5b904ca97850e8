package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	os.Exit(run(cfg, os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 when every expression evaluated.
func run(cfg cliConfig, in io.Reader, out, errOut io.Writer) int {
	evaluator := eval.NewDefault()

	if cfg.Expression != "" {
		if !evaluateLine(evaluator, cfg.Expression, out, errOut) {
			return 1
		}
		return 0
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, cfg.Prompt)
	}

	code := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !evaluateLine(evaluator, line, out, errOut) {
			code = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(errOut, "Error reading input:", err)
		return 1
	}
	return code
}

func evaluateLine(evaluator *eval.Evaluator, line string, out, errOut io.Writer) bool {
	result, err := evaluator.Evaluate(line)
	if err != nil {
		fmt.Fprintln(errOut, "Error:", describe(err))
		return false
	}
	fmt.Fprintln(out, "Result:", result)
	return true
}

// describe maps an evaluation error to the line shown to the user.
func describe(err error) string {
	var ee *apperr.ExpressionError
	if !errors.As(err, &ee) {
		return err.Error()
	}

	switch {
	case errors.Is(err, apperr.ErrNumericOverflow):
		return "number out of range: " + ee.Message
	case ee.Pos != apperr.NoPosition:
		return fmt.Sprintf("malformed expression: %s (at position %d)", ee.Message, ee.Pos)
	default:
		return "malformed expression: " + ee.Message
	}
}
