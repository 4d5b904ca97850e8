package report

import (
	"strings"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/batch/runner"
)

// GroupEntry summarises the cases that share a template, or the inline cases.
type GroupEntry struct {
	Group           string  `json:"group"`
	CaseCount       int     `json:"case_count"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	ErrorCount      int     `json:"error_count"`
	MeanLatencyUs   float64 `json:"mean_latency_us"`
	MedianLatencyUs float64 `json:"median_of_medians_us"`
	SampleCount     int     `json:"samples"`
}

// aggregate groups case results in first-seen order. ErrorCount counts cases
// whose evaluation returned an error, expected or not. Latencies are averaged
// over every sample of the group.
func aggregate(r *runner.SuiteResult) []GroupEntry {
	var order []string
	byGroup := make(map[string][]runner.CaseResult)
	for _, c := range r.Cases {
		if _, ok := byGroup[c.Group]; !ok {
			order = append(order, c.Group)
		}
		byGroup[c.Group] = append(byGroup[c.Group], c)
	}

	entries := make([]GroupEntry, 0, len(order))
	for _, group := range order {
		agg := GroupEntry{Group: group}

		var total time.Duration
		stats := make([]runner.LatencyStats, 0, len(byGroup[group]))
		for _, c := range byGroup[group] {
			agg.CaseCount++
			if c.Passed {
				agg.Passed++
			} else {
				agg.Failed++
			}
			if strings.HasPrefix(c.Got, "error:") {
				agg.ErrorCount++
			}

			total += c.Latency.Mean * time.Duration(c.Latency.SampleCount)
			agg.SampleCount += c.Latency.SampleCount
			stats = append(stats, c.Latency)
		}

		if agg.SampleCount > 0 {
			agg.MeanLatencyUs = micros(total / time.Duration(agg.SampleCount))
		}
		agg.MedianLatencyUs = micros(medianOfMedians(stats))
		entries = append(entries, agg)
	}
	return entries
}

func medianOfMedians(stats []runner.LatencyStats) time.Duration {
	medians := make([]time.Duration, 0, len(stats))
	for _, s := range stats {
		if s.SampleCount > 0 {
			medians = append(medians, s.Median)
		}
	}
	return runner.ComputeLatencyStats(medians).Median
}
