package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/labelmaker/internal/thermal"
)

// SegmentTable lists every segment with its span, duration, share of the
// total time and, for ramps, the rounded rate.
func SegmentTable(s *thermal.Schedule, opts Options) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tTIME\tTEMP\tDURATION\tSHARE\tRATE")

	for i, seg := range s.Segments() {
		rate := "-"
		if seg.Kind == thermal.KindRamp {
			if r, err := s.RateOf(seg); err == nil {
				rate = FormatNumber(r) + opts.RateUnit()
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s-%s\t%s-%s\t%s %s\t%d%%\t%s\n",
			i,
			seg.Kind,
			FormatNumber(seg.Time.Start), FormatNumber(seg.Time.End),
			FormatNumber(seg.Temp.Start), FormatNumber(seg.Temp.End),
			FormatNumber(seg.Duration()), opts.TimeUnit,
			s.PercentOfTotal(seg.Time.Start, seg.Time.End),
			rate,
		)
	}
	w.Flush()
	return b.String()
}
