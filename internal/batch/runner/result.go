package runner

import (
	"time"

	"github.com/google/uuid"
)

type CaseResult struct {
	ID         string       `json:"id"`
	Group      string       `json:"group"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Passed     bool         `json:"passed"`
	Latency    LatencyStats `json:"latency"`
}

type SuiteResult struct {
	RunID     uuid.UUID    `json:"run_id"`
	SuiteName string       `json:"suite_name"`
	StartedAt time.Time    `json:"started_at"`
	Config    Config       `json:"config"`
	Cases     []CaseResult `json:"cases"`
	Latency   LatencyStats `json:"latency"`
}

func (r *SuiteResult) PassedCount() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

func (r *SuiteResult) Failed() bool {
	return r.PassedCount() != len(r.Cases)
}
