package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s (run %s) ===\n\n", r.Meta.Suite, r.Meta.RunID)

	header := []string{"Case", "Expression", "Expected", "Got", "Status", "Median(us)", "P99(us)"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, c := range r.Cases {
		row := []string{
			c.ID,
			c.Expression,
			c.Expected,
			c.Got,
			status(c.Passed),
			fmt.Sprintf("%.2f", c.Latency.MedianUs),
			fmt.Sprintf("%.2f", c.Latency.P99Us),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if len(r.Groups) > 1 {
		writeGroups(tw, r.Groups)
	}

	fmt.Fprintf(tw, "\nPassed %d/%d, failed %d. Median %.2fus, p99 %.2fus over %d samples.\n",
		r.Summary.Passed, r.Summary.Total, r.Summary.Failed,
		r.Summary.Latency.MedianUs, r.Summary.Latency.P99Us, r.Summary.Latency.Samples)

	return tw.Flush()
}

func writeGroups(w io.Writer, groups []GroupEntry) {
	fmt.Fprintln(w, "\nGroup\tCases\tPassed\tErrors\tMean(us)\tMedian(us)")
	fmt.Fprintln(w, "---\t---\t---\t---\t---\t---")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.2f\t%.2f\n",
			g.Group, g.CaseCount, g.Passed, g.ErrorCount, g.MeanLatencyUs, g.MedianLatencyUs)
	}
}

func status(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
