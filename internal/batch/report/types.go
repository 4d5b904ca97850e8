package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/batch/runner"
	"github.com/DjordjeVuckovic/infix-calc/pkg/utils"
	"github.com/google/uuid"
)

type Report struct {
	Meta    Meta         `json:"meta"`
	Summary Summary      `json:"summary"`
	Groups  []GroupEntry `json:"groups"`
	Cases   []CaseEntry  `json:"cases"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Config      runner.Config   `json:"config"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Summary struct {
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Latency LatencyEntry `json:"latency"`
}

type CaseEntry struct {
	ID         string       `json:"id"`
	Group      string       `json:"group"`
	Expression string       `json:"expression"`
	Expected   string       `json:"expected"`
	Got        string       `json:"got"`
	Passed     bool         `json:"passed"`
	Latency    LatencyEntry `json:"latency"`
}

// LatencyEntry holds latencies in microseconds rounded to two decimals.
type LatencyEntry struct {
	MinUs    float64 `json:"min_us"`
	MedianUs float64 `json:"median_us"`
	P90Us    float64 `json:"p90_us"`
	P99Us    float64 `json:"p99_us"`
	MaxUs    float64 `json:"max_us"`
	Samples  int     `json:"samples"`
}

func newLatencyEntry(s runner.LatencyStats) LatencyEntry {
	return LatencyEntry{
		MinUs:    micros(s.Min),
		MedianUs: micros(s.Median),
		P90Us:    micros(s.P90()),
		P99Us:    micros(s.P99()),
		MaxUs:    micros(s.Max),
		Samples:  s.SampleCount,
	}
}

func micros(d time.Duration) float64 {
	return utils.RoundDecimal(float64(d)/float64(time.Microsecond), 2)
}

func FromResult(r *runner.SuiteResult) *Report {
	rep := &Report{
		Meta: Meta{
			RunID:       r.RunID,
			Suite:       r.SuiteName,
			Timestamp:   r.StartedAt,
			Config:      r.Config,
			Environment: NewEnvironmentInfo(),
		},
		Cases: make([]CaseEntry, 0, len(r.Cases)),
	}

	for _, c := range r.Cases {
		rep.Cases = append(rep.Cases, CaseEntry{
			ID:         c.ID,
			Group:      c.Group,
			Expression: c.Expression,
			Expected:   c.Expected,
			Got:        c.Got,
			Passed:     c.Passed,
			Latency:    newLatencyEntry(c.Latency),
		})
	}

	passed := r.PassedCount()
	rep.Summary = Summary{
		Total:   len(r.Cases),
		Passed:  passed,
		Failed:  len(r.Cases) - passed,
		Latency: newLatencyEntry(r.Latency),
	}
	rep.Groups = aggregate(r)
	return rep
}
