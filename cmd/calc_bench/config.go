package main

import (
	"errors"
	"flag"
)

type cliConfig struct {
	SuitePath string
	Warmup    int
	Runs      int
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/precedence.yaml", "Path to expression suite YAML")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup evaluations per case")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured evaluations per case")
	flag.StringVar(&cfg.Output, "output", "", "Output path for a JSON report")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.SuitePath == "" {
		return errors.New("suite path is required")
	}
	if c.Warmup < 0 {
		return errors.New("warmup must not be negative")
	}
	if c.Runs < 1 {
		return errors.New("runs must be at least 1")
	}
	return nil
}
