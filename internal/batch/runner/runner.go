package runner

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/batch/suite"
	"github.com/google/uuid"
)

type Evaluator interface {
	Evaluate(expr string) (int64, error)
}

type Runner struct {
	config    Config
	evaluator Evaluator
}

func New(cfg Config, evaluator Evaluator) *Runner {
	cfg.Runs = max(cfg.Runs, 1)
	cfg.WarmupRuns = max(cfg.WarmupRuns, 0)
	return &Runner{config: cfg, evaluator: evaluator}
}

// Run evaluates every case of s. It stops early only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, s *suite.TestSuite) (*SuiteResult, error) {
	sr := &SuiteResult{
		RunID:     uuid.New(),
		SuiteName: s.Name,
		StartedAt: time.Now().UTC(),
		Config:    r.config,
		Cases:     make([]CaseResult, 0, len(s.Cases)),
	}
	slog.Info("Running suite", "suite", s.Name, "cases", len(s.Cases), "run_id", sr.RunID)

	perCase := make([]LatencyStats, 0, len(s.Cases))
	for _, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cr := r.runCase(c)
		if !cr.Passed {
			slog.Warn("Case failed", "id", c.ID, "expected", cr.Expected, "got", cr.Got)
		}
		sr.Cases = append(sr.Cases, cr)
		perCase = append(perCase, cr.Latency)
	}

	sr.Latency = MergeLatencyStats(perCase)
	slog.Info("Suite finished", "suite", s.Name, "passed", sr.PassedCount(), "total", len(sr.Cases))
	return sr, nil
}

func (r *Runner) runCase(c suite.Case) CaseResult {
	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = r.evaluator.Evaluate(c.Expression)
	}

	var (
		result int64
		err    error
	)
	durations := make([]time.Duration, 0, r.config.Runs)
	for i := 0; i < r.config.Runs; i++ {
		start := time.Now()
		result, err = r.evaluator.Evaluate(c.Expression)
		durations = append(durations, time.Since(start))
	}

	cr := CaseResult{
		ID:         c.ID,
		Group:      c.Group(),
		Expression: c.Expression,
		Expected:   c.Outcome(),
		Latency:    ComputeLatencyStats(durations),
	}

	if err != nil {
		kind := errorKind(err)
		cr.Got = "error:" + kind
		cr.Passed = c.ExpectError != "" && c.ExpectError == kind
		return cr
	}

	cr.Got = strconv.FormatInt(result, 10)
	cr.Passed = c.Expect != nil && *c.Expect == result
	return cr
}

func errorKind(err error) string {
	var ee *apperr.ExpressionError
	if errors.As(err, &ee) {
		return ee.KindName()
	}
	return "unknown"
}
