package bench

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport prints the per-cell table and the format and operation
// summaries. Cells without observations are left out of the table.
func WriteReport(w io.Writer, r *Result) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintf(w, "\n%s\nBENCHMARK RESULTS\n%s\n", rule, rule)

	fmt.Fprintf(w, "\n%-20s %-8s %6s %12s %12s %12s %10s\n",
		"Operation", "Format", "Count", "Avg (ms)", "Min (ms)", "Max (ms)", "StdDev")
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for _, s := range r.AllSeries() {
		st := s.Stats()
		if st.Count == 0 {
			continue
		}
		fmt.Fprintf(w, "%-20s %-8s %6d %12.2f %12.2f %12.2f %10.2f\n",
			s.Operation, s.Format, st.Count, st.Mean, st.Min, st.Max, st.StdDev)
	}
	fmt.Fprintln(w, strings.Repeat("-", 70))

	fmt.Fprintln(w, "\nSUMMARY BY FORMAT:")
	for _, f := range r.Matrix.Formats {
		if ru := r.ByFormat(f.Name); ru.Count > 0 {
			fmt.Fprintf(w, "  %-5s: %d operations, avg %.2f ms/op, total %.2f ms\n",
				strings.ToUpper(ru.Name), ru.Count, ru.Mean, ru.Total)
		}
	}

	fmt.Fprintln(w, "\nSUMMARY BY OPERATION:")
	for _, op := range r.Matrix.Operations {
		if ru := r.ByOperation(op.Name); ru.Count > 0 {
			fmt.Fprintf(w, "  %-10s: %d operations, avg %.2f ms/op, total %.2f ms\n",
				capitalize(ru.Name), ru.Count, ru.Mean, ru.Total)
		}
	}

	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "\nFAILED IMAGES: %d\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  %v\n", e)
		}
	}

	fmt.Fprintf(w, "\nTotal benchmark time: %.2f seconds\n", r.Elapsed.Seconds())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
