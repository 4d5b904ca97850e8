package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/infix-calc/internal/batch/report"
	"github.com/DjordjeVuckovic/infix-calc/internal/batch/runner"
	"github.com/DjordjeVuckovic/infix-calc/internal/batch/suite"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
)

var (
	errInvalidFlags = errors.New("invalid flags")
	errSuiteFailed  = errors.New("suite failed")
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg, os.Stdout)
	stop()

	if err != nil {
		slog.Error("Bench run failed", "error", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errInvalidFlags) {
		return 2
	}
	return 1
}

// run loads the suite, evaluates it and writes the table to out. A suite with
// failing cases returns errSuiteFailed after every report is written.
func run(ctx context.Context, cfg cliConfig, out io.Writer) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidFlags, err)
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		return fmt.Errorf("load suite %s: %w", cfg.SuitePath, err)
	}

	r := runner.New(runner.Config{WarmupRuns: cfg.Warmup, Runs: cfg.Runs}, eval.NewDefault())
	result, err := r.Run(ctx, s)
	if err != nil {
		return fmt.Errorf("run suite: %w", err)
	}

	rep := report.FromResult(result)
	if err := report.WriteTable(rep, out); err != nil {
		slog.Error("Failed to write table", "error", err)
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(rep, cfg.Output); err != nil {
			return fmt.Errorf("write JSON report %s: %w", cfg.Output, err)
		}
		slog.Info("JSON report written", "path", cfg.Output)
	}

	if result.Failed() {
		return fmt.Errorf("%w: %d of %d cases passed", errSuiteFailed, result.PassedCount(), len(result.Cases))
	}
	return nil
}
