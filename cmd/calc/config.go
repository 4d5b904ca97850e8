package main

import (
	"flag"
	"io"
)

type cliConfig struct {
	Expression string
	Prompt     string
	Quiet      bool
}

func parseFlags(args []string, errOut io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&cfg.Expression, "e", "", "Evaluate a single expression and exit")
	fs.StringVar(&cfg.Prompt, "prompt", "Enter an expression (e.g. 5 + 3 * 2):", "Prompt printed before reading input")
	fs.BoolVar(&cfg.Quiet, "q", false, "Do not print the prompt")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
